package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"libdash/infras/sheets"
	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/directory"
	"libdash/internal/domains/report/model/dto"
	resourceModel "libdash/internal/domains/resource/model"
)

func testLibraries() directory.Table {
	return directory.NewTable("Library", []sheets.Record{
		{"id": "1", "name": "Main Library"},
		{"id": "2", "name": "Science Library"},
	})
}

func testFacilities() directory.Table {
	return directory.NewTable("Facility", []sheets.Record{
		{"id": "10", "name": "Discussion Room"},
		{"id": "11", "name": "AV Room"},
	})
}

func sampleBookings() []bookingModel.Booking {
	mk := func(id, email, status, library, facility, date, start string, hours int, bookerType string) bookingModel.Booking {
		b := bookingModel.Booking{
			ID:          id,
			Reference:   "REF-" + id,
			BookingName: "User " + id,
			Email:       email,
			Status:      status,
			LibraryID:   library,
			FacilityID:  facility,
			Date:        date,
			StartTime:   start,
			BookedHours: hours,
			BookerType:  bookerType,
		}

		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			b.DateValue = parsed
			b.DateValid = true
		}

		return b
	}

	return []bookingModel.Booking{
		mk("1", "a@x.edu", "Completed", "1", "10", "2025-05-01", "9:00 AM", 2, "Student"),
		mk("2", "a@x.edu", "Pending", "1", "10", "2025-05-02", "9:00 AM", 1, "Student"),
		mk("3", "b@x.edu", "Cancelled", "2", "11", "2025-05-02", "1:00 PM", 3, "Faculty"),
		mk("4", "c@x.edu", "Pending", "1", "11", "2025-06-01", "9:00 AM", 2, "student"),
	}
}

func TestOverview(t *testing.T) {
	response := Overview(sampleBookings(), testLibraries())

	assert.Equal(t, 4, response.TotalBookings)
	assert.Equal(t, 1, response.CompletedBookings)
	assert.Equal(t, 2, response.PendingBookings)
	assert.Equal(t, 1, response.CancelledBookings)
	assert.Equal(t, 25.0, response.CompletionRate)
	assert.Equal(t, 50.0, response.PendingRate)
	assert.Equal(t, 3, response.UniqueUsers)
	assert.Equal(t, 8, response.TotalHours)
	assert.Equal(t, 2.0, response.AvgHours)

	assert.Equal(t, []string{"05/01/2025", "05/02/2025", "06/01/2025"}, response.DailyTrend.Labels)
	assert.Equal(t, []int{1, 2, 1}, response.DailyTrend.Values)

	assert.Equal(t, []string{"Completed", "Pending", "Cancelled"}, response.StatusBreakdown.Labels)
	assert.Equal(t, []string{"Main Library", "Science Library"}, response.LibraryUsage.Labels)
	assert.Equal(t, []int{3, 1}, response.LibraryUsage.Values)

	assert.Equal(t, []string{"Student", "Faculty"}, response.BookerTypes.Labels)
	assert.Equal(t, []int{3, 1}, response.BookerTypes.Values)

	assert.Equal(t, []string{"May 2025", "Jun 2025"}, response.MonthlyTrend.Labels)
}

func TestOverviewEmpty(t *testing.T) {
	response := Overview(nil, testLibraries())

	assert.Equal(t, 0, response.TotalBookings)
	assert.Equal(t, 0.0, response.CompletionRate)
	assert.Equal(t, 0.0, response.AvgHours)
	assert.Empty(t, response.DailyTrend.Labels)
}

func TestOverviewIdempotent(t *testing.T) {
	bookings := sampleBookings()

	first := Overview(bookings, testLibraries())
	second := Overview(bookings, testLibraries())

	assert.Equal(t, first, second)
}

func TestOverviewStatusFoldsCase(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Email: "a@x.edu", Status: "completed", LibraryID: "1"},
		{Email: "b@x.edu", Status: "CANCELLED", LibraryID: "1"},
	}

	response := Overview(bookings, testLibraries())

	assert.Equal(t, 1, response.CompletedBookings)
	assert.Equal(t, 1, response.CancelledBookings)
	assert.Equal(t, 0, response.PendingBookings)
	assert.Equal(t, []string{"Completed", "Cancelled"}, response.StatusBreakdown.Labels)
}

func TestLibrariesIncludesZeroBookingLibraries(t *testing.T) {
	bookings := sampleBookings()[:1]

	response := Libraries(bookings, testLibraries(), testFacilities())

	assert.Len(t, response.Cards, 2)
	assert.Equal(t, "Main Library", response.Cards[0].Name)
	assert.Equal(t, 1, response.Cards[0].Bookings)
	assert.Equal(t, 0, response.Cards[1].Bookings)

	assert.Equal(t, 100.0, response.Shares[0].Percent)
	assert.Equal(t, 0.0, response.Shares[1].Percent)

	assert.Equal(t, "Discussion Room", response.Details[0].TopFacility)
	assert.Equal(t, "N/A", response.Details[1].TopFacility)
	assert.Equal(t, 0.0, response.Details[1].AvgHours)
}

func TestLibrariesStatusFoldsCase(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Status: "completed", LibraryID: "1", FacilityID: "10"},
		{Status: "pending", LibraryID: "1", FacilityID: "10"},
	}

	response := Libraries(bookings, testLibraries(), testFacilities())

	assert.Equal(t, 1, response.Details[0].Completed)
	assert.Equal(t, 1, response.Details[0].Pending)
}

func TestMonthly(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	response := Monthly(sampleBookings(), now)

	assert.Equal(t, 1, response.ThisMonth)
	assert.Equal(t, 3, response.LastMonth)
	assert.Equal(t, -66.7, response.GrowthPercent)
	assert.Equal(t, "May 2025", response.BestMonth)
	assert.Equal(t, 3, response.BestMonthCount)
	assert.Equal(t, 3, response.Students)
	assert.Equal(t, 1, response.Faculty)

	assert.Equal(t, []string{"Pending", "Cancelled", "Completed"}, response.StatusBars.Labels)
	assert.Equal(t, []int{2, 1, 1}, response.StatusBars.Values)
}

func TestMonthlyGrowthZeroWhenNoLastMonth(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	response := Monthly(sampleBookings(), now)

	assert.Equal(t, 0, response.LastMonth)
	assert.Equal(t, 0.0, response.GrowthPercent)
}

func TestMonthlyStatusBarsFoldCase(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Status: "completed"},
		{Status: "CANCELLED"},
	}

	response := Monthly(bookings, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []int{0, 1, 1}, response.StatusBars.Values)
}

func TestMonthlyEmpty(t *testing.T) {
	response := Monthly(nil, time.Now())

	assert.Equal(t, "N/A", response.BestMonth)
	assert.Equal(t, 0, response.BestMonthCount)
}

func TestAnalytics(t *testing.T) {
	response := Analytics(sampleBookings(), testLibraries())

	assert.Equal(t, 2.0, response.AvgDuration)
	assert.Equal(t, "9:00 AM", response.PeakHour)
	assert.Equal(t, "Main Library", response.TopLibrary)
	assert.Equal(t, "Student", response.TopBookerType)

	assert.Equal(t, []string{"1", "2", "3"}, response.DurationDistribution.Labels)
	assert.Len(t, response.WeekdayDistribution.Labels, 7)
	assert.Equal(t, "Sunday", response.WeekdayDistribution.Labels[0])
}

func TestAnalyticsEmpty(t *testing.T) {
	response := Analytics(nil, testLibraries())

	assert.Equal(t, 0.0, response.AvgDuration)
	assert.Equal(t, "N/A", response.PeakHour)
	assert.Equal(t, "N/A", response.TopLibrary)
	assert.Equal(t, "N/A", response.TopBookerType)
}

func TestUsers(t *testing.T) {
	response := Users(sampleBookings())

	assert.Equal(t, 3, response.TotalUsers)
	assert.Equal(t, 66.7, response.StudentPercent)
	assert.Equal(t, 33.3, response.FacultyPercent)

	assert.Equal(t, "a@x.edu", response.Rows[0].Email)
	assert.Equal(t, 2, response.Rows[0].Bookings)
	assert.Equal(t, 1, response.Rows[0].Pending)
	assert.Equal(t, 1, response.Rows[0].Completed)
	assert.Equal(t, 3, response.Rows[0].Hours)
	assert.Equal(t, "May 2, 2025", response.Rows[0].LastBooking)

	assert.NotNil(t, response.TopUser)
	assert.Equal(t, "a@x.edu", response.TopUser.Email)

	assert.Equal(t, []string{"Student", "Faculty"}, response.TypeDistribution.Labels)
	assert.Equal(t, []int{2, 1}, response.TypeDistribution.Values)
}

func TestUsersStatusFoldsCase(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Email: "a@x.edu", Status: "completed"},
		{Email: "a@x.edu", Status: "cancelled"},
	}

	response := Users(bookings)

	assert.Equal(t, 1, response.Rows[0].Completed)
	assert.Equal(t, 0, response.Rows[0].Pending)
}

func TestResources(t *testing.T) {
	mk := func(id, material, utilization, bookerType, email, date string) resourceModel.ResourceBooking {
		r := resourceModel.ResourceBooking{
			ID:           id,
			Reference:    "RES-" + id,
			MaterialType: material,
			Utilization:  utilization,
			BookerType:   bookerType,
			Email:        email,
			Date:         date,
			ResourceID:   id,
		}

		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			r.DateValue = parsed
			r.DateValid = true
		}

		return r
	}

	resources := []resourceModel.ResourceBooking{
		mk("1", "laptop", "Home", "Student", "a@x.edu", "2025-05-01"),
		mk("2", "laptop", "inside", "Faculty", "b@x.edu", "2025-05-01"),
		mk("3", "projector", "home", "Student", "a@x.edu", "2025-05-02"),
	}

	response := Resources(resources)

	assert.Equal(t, 3, response.TotalCheckouts)
	assert.Equal(t, 2, response.HomeCount)
	assert.Equal(t, 1, response.InsideCount)
	assert.Equal(t, 66.7, response.HomePercent)
	assert.Equal(t, 33.3, response.InsidePercent)
	assert.Equal(t, "Laptop", response.PopularMaterial)
	assert.Equal(t, 2, response.PopularCount)
	assert.Equal(t, 2, response.UniqueUsers)
	assert.Equal(t, 2, response.StudentCount)

	assert.Equal(t, []string{"May 1", "May 2"}, response.DailyTrend.Labels)
	assert.Equal(t, []string{"Laptop", "Projector"}, response.MaterialBreakdown.Labels)
	assert.Equal(t, []string{"Home", "Inside"}, response.UtilizationBreakdown.Labels)

	assert.Len(t, response.Rows, 3)
	assert.Equal(t, "Home", response.Rows[0].Utilization)
	assert.Equal(t, "Inside", response.Rows[1].Utilization)
}

func TestBookingsTableCapped(t *testing.T) {
	bookings := make([]bookingModel.Booking, 75)
	for i := range bookings {
		bookings[i] = bookingModel.Booking{ID: "x", LibraryID: "1", FacilityID: "10"}
	}

	response := Bookings(bookings, testLibraries(), testFacilities())

	assert.Equal(t, 75, response.TotalData)
	assert.Len(t, response.Rows, TableRowLimit)
	assert.Equal(t, "Main Library", response.Rows[0].LibraryName)
	assert.Equal(t, "Discussion Room", response.Rows[0].FacilityName)
	assert.Equal(t, []dto.LibraryOption{
		{ID: "1", Name: "Main Library"},
		{ID: "2", Name: "Science Library"},
	}, response.Libraries)
}
