package engine

import (
	"sort"
	"strconv"
	"strings"
	"time"

	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/directory"
	"libdash/internal/domains/report/model/dto"
	resourceModel "libdash/internal/domains/resource/model"
	"libdash/shared/constant"
	"libdash/shared/timezone"
)

const (
	// TableRowLimit caps table views so a large sheet cannot flood the
	// dashboard.
	TableRowLimit = 50

	topChartLimit = 10
	trendMonths   = 12

	unknownLabel = "Unknown"
)

var weekdayLabels = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Overview assembles the headline numbers and charts for the overview tab
// from an already filtered set of bookings.
func Overview(bookings []bookingModel.Booking, libraries directory.Table) dto.OverviewResponse {
	offset := timezone.ClockOffsetHours()

	var response dto.OverviewResponse
	response.TotalBookings = len(bookings)

	emails := make(map[string]struct{})
	daily := newCounter()
	statuses := newCounter()
	libraryUsage := newCounter()
	peakHours := newCounter()
	bookerTypes := newCounter()
	monthly := newCounter()

	for _, booking := range bookings {
		switch {
		case statusIs(booking.Status, bookingModel.StatusCompleted):
			response.CompletedBookings++
		case statusIs(booking.Status, bookingModel.StatusCancelled):
			response.CancelledBookings++
		default:
			response.PendingBookings++
		}

		emails[booking.Email] = struct{}{}
		response.TotalHours += booking.BookedHours

		daily.Add(booking.Date)
		statuses.Add(statusLabel(booking.Status))
		libraryUsage.Add(libraries.Name(booking.LibraryID))
		peakHours.Add(timeLabel(booking.StartTime, offset))
		bookerTypes.Add(bookerTypeLabel(booking.BookerType))

		if booking.DateValid {
			monthly.Add(booking.DateValue.Format(constant.MonthLabelFormat))
		}
	}

	response.CompletionRate = RateOf(response.CompletedBookings, response.TotalBookings)
	response.PendingRate = RateOf(response.PendingBookings, response.TotalBookings)
	response.CancellationRate = RateOf(response.CancelledBookings, response.TotalBookings)
	response.UniqueUsers = len(emails)

	if response.TotalBookings > 0 {
		response.AvgHours = Round1(float64(response.TotalHours) / float64(response.TotalBookings))
	}

	response.DailyTrend = relabel(daily.SortedChartData(), dayLabel)
	response.StatusBreakdown = statuses.ChartData()
	response.LibraryUsage = libraryUsage.ChartData()
	response.PeakHours = peakHours.SortedChartData()
	response.BookerTypes = bookerTypes.ChartData()
	response.MonthlyTrend = monthly.ChartData()

	return response
}

// Libraries assembles the per-library tab. Every library in the directory
// gets a card and a detail row, including ones with no bookings in the
// filtered window.
func Libraries(bookings []bookingModel.Booking, libraries, facilities directory.Table) dto.LibrariesResponse {
	var response dto.LibrariesResponse

	total := len(bookings)

	byLibrary := make(map[string][]bookingModel.Booking)
	for _, booking := range bookings {
		byLibrary[booking.LibraryID] = append(byLibrary[booking.LibraryID], booking)
	}

	ids := libraries.IDs()
	response.Cards = make([]dto.LibraryCard, 0, len(ids))
	response.Shares = make([]dto.LibraryShare, 0, len(ids))
	response.Details = make([]dto.LibraryDetail, 0, len(ids))
	response.Comparison = dto.ChartData{
		Labels: make([]string, 0, len(ids)),
		Values: make([]int, 0, len(ids)),
	}

	for _, id := range ids {
		name := libraries.Name(id)
		rows := byLibrary[id]

		var hours, pending, completed int
		topFacility := newCounter()

		for _, booking := range rows {
			hours += booking.BookedHours

			switch {
			case statusIs(booking.Status, bookingModel.StatusCompleted):
				completed++
			case statusIs(booking.Status, bookingModel.StatusCancelled):
			default:
				pending++
			}

			topFacility.Add(facilities.Name(booking.FacilityID))
		}

		response.Cards = append(response.Cards, dto.LibraryCard{
			ID:       id,
			Name:     name,
			Bookings: len(rows),
			Hours:    hours,
		})

		response.Comparison.Labels = append(response.Comparison.Labels, name)
		response.Comparison.Values = append(response.Comparison.Values, len(rows))

		response.Shares = append(response.Shares, dto.LibraryShare{
			Name:    name,
			Percent: RateOf(len(rows), total),
		})

		detail := dto.LibraryDetail{
			ID:          id,
			Name:        name,
			Total:       len(rows),
			Pending:     pending,
			Completed:   completed,
			Hours:       hours,
			TopFacility: constant.NA,
		}

		if len(rows) > 0 {
			detail.AvgHours = Round1(float64(hours) / float64(len(rows)))
		}

		if facility, _ := topFacility.Max(); facility != "" {
			detail.TopFacility = facility
		}

		response.Details = append(response.Details, detail)
	}

	return response
}

// Monthly assembles the month-over-month tab relative to now.
func Monthly(bookings []bookingModel.Booking, now time.Time) dto.MonthlyResponse {
	var response dto.MonthlyResponse

	lastMonth := now.AddDate(0, -1, 0)
	monthly := newCounter()

	var pending, cancelled, completed int

	for _, booking := range bookings {
		switch {
		case statusIs(booking.Status, bookingModel.StatusCompleted):
			completed++
		case statusIs(booking.Status, bookingModel.StatusCancelled):
			cancelled++
		default:
			pending++
		}

		if strings.EqualFold(booking.BookerType, "student") {
			response.Students++
		} else if strings.EqualFold(booking.BookerType, "faculty") {
			response.Faculty++
		}

		if !booking.DateValid {
			continue
		}

		if sameMonth(booking.DateValue, now) {
			response.ThisMonth++
		}

		if sameMonth(booking.DateValue, lastMonth) {
			response.LastMonth++
		}

		monthly.Add(booking.DateValue.Format(constant.MonthLabelFormat))
	}

	if response.LastMonth > 0 {
		growth := float64(response.ThisMonth-response.LastMonth) / float64(response.LastMonth) * 100
		response.GrowthPercent = Round1(growth)
	}

	response.BestMonth = constant.NA
	if label, count := monthly.Max(); label != "" {
		response.BestMonth = label
		response.BestMonthCount = count
	}

	response.Trend = monthly.TakeLast(trendMonths)

	response.StatusBars = dto.ChartData{
		Labels: []string{bookingModel.StatusPending, bookingModel.StatusCancelled, bookingModel.StatusCompleted},
		Values: []int{pending, cancelled, completed},
	}

	return response
}

// Analytics assembles usage-pattern charts for the analytics tab.
func Analytics(bookings []bookingModel.Booking, libraries directory.Table) dto.AnalyticsResponse {
	offset := timezone.ClockOffsetHours()

	var response dto.AnalyticsResponse
	response.PeakHour = constant.NA
	response.TopLibrary = constant.NA
	response.TopBookerType = constant.NA

	durations := newCounter()
	startTimes := newCounter()
	libraryIDs := newCounter()
	bookerTypes := newCounter()
	hourly := newCounter()
	purposes := newCounter()

	weekdays := make([]int, len(weekdayLabels))

	var totalHours int
	for _, booking := range bookings {
		totalHours += booking.BookedHours

		durations.Add(strconv.Itoa(booking.BookedHours))
		startTimes.Add(booking.StartTime)
		hourly.Add(timeLabel(booking.StartTime, offset))
		libraryIDs.Add(booking.LibraryID)
		bookerTypes.Add(bookerTypeLabel(booking.BookerType))

		purpose := booking.Purpose
		if purpose == "" {
			purpose = constant.NA
		}
		purposes.Add(purpose)

		if booking.DateValid {
			weekdays[int(booking.DateValue.Weekday())]++
		}
	}

	if len(bookings) > 0 {
		response.AvgDuration = Round1(float64(totalHours) / float64(len(bookings)))
	}

	if raw, _ := startTimes.Max(); raw != "" {
		response.PeakHour = timeLabel(raw, offset)
	}

	if id, _ := libraryIDs.Max(); id != "" {
		response.TopLibrary = libraries.Name(id)
	}

	if bookerType, _ := bookerTypes.Max(); bookerType != "" {
		response.TopBookerType = bookerType
	}

	response.DurationDistribution = durations.NumericChartData()
	response.WeekdayDistribution = dto.ChartData{
		Labels: weekdayLabels,
		Values: weekdays,
	}
	response.HourlyDistribution = hourly.SortedChartData()
	response.TopPurposes = purposes.Top(topChartLimit)

	return response
}

// Users aggregates bookings per email and assembles the users tab. Name
// and booker type come from each user's first booking.
func Users(bookings []bookingModel.Booking) dto.UsersResponse {
	var response dto.UsersResponse

	order := make([]string, 0)
	byEmail := make(map[string]*dto.UserRow)
	lastDates := make(map[string]time.Time)

	for _, booking := range bookings {
		row, seen := byEmail[booking.Email]
		if !seen {
			row = &dto.UserRow{
				Email:       booking.Email,
				Name:        booking.BookingName,
				Type:        booking.BookerType,
				LastBooking: constant.NA,
			}
			byEmail[booking.Email] = row
			order = append(order, booking.Email)
		}

		row.Bookings++
		row.Hours += booking.BookedHours

		switch {
		case statusIs(booking.Status, bookingModel.StatusCompleted):
			row.Completed++
		case statusIs(booking.Status, bookingModel.StatusCancelled):
		default:
			row.Pending++
		}

		if booking.DateValid && booking.DateValue.After(lastDates[booking.Email]) {
			lastDates[booking.Email] = booking.DateValue
			row.LastBooking = booking.DateValue.Format(constant.DisplayDateFormat)
		}
	}

	response.TotalUsers = len(order)
	response.Rows = make([]dto.UserRow, 0, len(order))

	var students, faculty int
	types := newCounter()

	for _, email := range order {
		row := byEmail[email]
		response.Rows = append(response.Rows, *row)

		if strings.EqualFold(row.Type, "student") {
			students++
		} else if strings.EqualFold(row.Type, "faculty") {
			faculty++
		}

		types.Add(bookerTypeLabel(row.Type))
	}

	sortUserRows(response.Rows)

	response.StudentPercent = RateOf(students, response.TotalUsers)
	response.FacultyPercent = RateOf(faculty, response.TotalUsers)

	if len(response.Rows) > 0 {
		top := response.Rows[0]
		response.TopUser = &top
	}

	limit := topChartLimit
	if len(response.Rows) < limit {
		limit = len(response.Rows)
	}

	chart := dto.ChartData{
		Labels: make([]string, 0, limit),
		Values: make([]int, 0, limit),
	}
	for _, row := range response.Rows[:limit] {
		label := row.Name
		if label == "" {
			label = row.Email
		}

		chart.Labels = append(chart.Labels, label)
		chart.Values = append(chart.Values, row.Bookings)
	}

	response.TopUsers = chart
	response.TypeDistribution = types.ChartData()

	return response
}

// Resources assembles the material checkout tab.
func Resources(resources []resourceModel.ResourceBooking) dto.ResourcesResponse {
	var response dto.ResourcesResponse
	response.TotalCheckouts = len(resources)
	response.PopularMaterial = constant.NA

	emails := make(map[string]struct{})
	daily := newCounter()
	materials := newCounter()
	utilizations := newCounter()
	topResources := newCounter()
	bookerTypes := newCounter()
	monthly := newCounter()

	for _, resource := range resources {
		emails[resource.Email] = struct{}{}

		if strings.EqualFold(resource.Utilization, resourceModel.UtilizationHome) {
			response.HomeCount++
		} else {
			response.InsideCount++
		}

		if strings.EqualFold(resource.BookerType, "student") {
			response.StudentCount++
		}

		daily.Add(resource.Date)
		materials.Add(labelOrUnknown(resource.MaterialType))
		utilizations.Add(labelOrUnknown(resource.Utilization))
		bookerTypes.Add(bookerTypeLabel(resource.BookerType))

		if resource.ResourceID != "" {
			topResources.Add("Resource " + resource.ResourceID)
		}

		if resource.DateValid {
			monthly.Add(resource.DateValue.Format(constant.MonthLabelFormat))
		}
	}

	response.HomePercent = RateOf(response.HomeCount, response.TotalCheckouts)
	response.InsidePercent = RateOf(response.InsideCount, response.TotalCheckouts)
	response.StudentPercent = RateOf(response.StudentCount, response.TotalCheckouts)
	response.UniqueUsers = len(emails)

	if material, count := materials.Max(); material != "" {
		response.PopularMaterial = material
		response.PopularCount = count
	}

	response.DailyTrend = relabel(daily.SortedChartData(), shortDayLabel)
	response.MaterialBreakdown = materials.ChartData()
	response.UtilizationBreakdown = utilizations.ChartData()
	response.TopResources = topResources.Top(topChartLimit)
	response.BookerTypes = bookerTypes.ChartData()
	response.MonthlyTrend = monthly.ChartData()

	response.Rows = resourceRows(resources)

	return response
}

func resourceRows(resources []resourceModel.ResourceBooking) []dto.ResourceRow {
	limit := len(resources)
	if limit > TableRowLimit {
		limit = TableRowLimit
	}

	rows := make([]dto.ResourceRow, 0, limit)
	for _, resource := range resources[:limit] {
		utilization := "Inside"
		if strings.EqualFold(resource.Utilization, resourceModel.UtilizationHome) {
			utilization = "Home"
		}

		date := resource.Date
		if resource.DateValid {
			date = resource.DateValue.Format(constant.DisplayDateFormat)
		}

		rows = append(rows, dto.ResourceRow{
			Reference:   resource.Reference,
			Name:        resource.BookerName,
			Type:        resource.BookerType,
			Email:       resource.Email,
			Material:    resource.MaterialType,
			Utilization: utilization,
			Date:        date,
		})
	}

	return rows
}

// Bookings assembles the bookings table view, capped at the table row
// limit. The full filtered count is reported separately.
func Bookings(bookings []bookingModel.Booking, libraries, facilities directory.Table) dto.BookingsResponse {
	limit := len(bookings)
	if limit > TableRowLimit {
		limit = TableRowLimit
	}

	response := dto.BookingsResponse{
		TotalData: len(bookings),
		Rows:      make([]dto.BookingRow, 0, limit),
		Libraries: libraryOptions(libraries),
	}

	for _, booking := range bookings[:limit] {
		response.Rows = append(response.Rows, dto.BookingRow{
			Reference:    booking.Reference,
			Name:         booking.BookingName,
			Type:         booking.BookerType,
			Email:        booking.Email,
			NumUsers:     booking.NumUsers,
			Purpose:      booking.Purpose,
			LibraryName:  libraries.Name(booking.LibraryID),
			FacilityName: facilities.Name(booking.FacilityID),
			Date:         booking.Date,
			StartTime:    booking.StartTime,
			EndTime:      booking.EndTime,
			Status:       booking.Status,
			Hours:        booking.BookedHours,
		})
	}

	return response
}

// libraryOptions lists every known library for the filter dropdown.
func libraryOptions(libraries directory.Table) []dto.LibraryOption {
	ids := libraries.IDs()
	options := make([]dto.LibraryOption, 0, len(ids))

	for _, id := range ids {
		options = append(options, dto.LibraryOption{ID: id, Name: libraries.Name(id)})
	}

	return options
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func timeLabel(raw string, offsetHours int) string {
	return timezone.ParseTimeOfDay(raw, offsetHours).String()
}

func dayLabel(raw string) string {
	if parsed, ok := timezone.ParseDate(raw); ok {
		return parsed.Format("01/02/2006")
	}

	return raw
}

func shortDayLabel(raw string) string {
	if parsed, ok := timezone.ParseDate(raw); ok {
		return parsed.Format("Jan 2")
	}

	return raw
}

// statusIs matches a booking status against a canonical status without
// regard to case.
func statusIs(raw, canonical string) bool {
	return strings.EqualFold(raw, canonical)
}

// statusLabel folds recognized statuses to their canonical label; anything
// unrecognized passes through untouched.
func statusLabel(raw string) string {
	for _, canonical := range []string{
		bookingModel.StatusPending,
		bookingModel.StatusCompleted,
		bookingModel.StatusCancelled,
	} {
		if strings.EqualFold(raw, canonical) {
			return canonical
		}
	}

	return raw
}

func bookerTypeLabel(raw string) string {
	if raw == "" {
		return unknownLabel
	}

	return Capitalize(raw)
}

func labelOrUnknown(raw string) string {
	if raw == "" {
		return unknownLabel
	}

	return Capitalize(raw)
}

// sortUserRows orders users by booking count descending, preserving
// first-seen order among equals.
func sortUserRows(rows []dto.UserRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Bookings > rows[j].Bookings
	})
}
