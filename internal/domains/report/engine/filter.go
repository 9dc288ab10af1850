package engine

import (
	"strings"
	"time"

	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/report/model/dto"
	resourceModel "libdash/internal/domains/resource/model"
)

// Filter applies the criteria to a booking snapshot and returns the rows
// that survive every predicate. Rows with a blank library, status, or
// booker type pass the corresponding equality filters, matching how the
// sheet tolerates half-filled rows.
func Filter(bookings []bookingModel.Booking, criteria dto.Criteria, now time.Time) []bookingModel.Booking {
	filtered := make([]bookingModel.Booking, 0, len(bookings))

	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	for _, booking := range bookings {
		if !matchesField(booking.LibraryID, criteria.LibraryID, false) {
			continue
		}

		if !matchesField(booking.Status, criteria.Status, true) {
			continue
		}

		if !matchesField(booking.BookerType, criteria.BookerType, true) {
			continue
		}

		if !inDateRange(booking.DateValue, booking.DateValid, criteria.DateRange, now) {
			continue
		}

		if !matchesBookingSearch(booking, term) {
			continue
		}

		filtered = append(filtered, booking)
	}

	return filtered
}

// FilterResources narrows resource checkouts by date range and search term.
// Library, status, and booker type criteria do not apply to checkouts.
func FilterResources(resources []resourceModel.ResourceBooking, criteria dto.Criteria, now time.Time) []resourceModel.ResourceBooking {
	filtered := make([]resourceModel.ResourceBooking, 0, len(resources))

	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	for _, resource := range resources {
		if !inDateRange(resource.DateValue, resource.DateValid, criteria.DateRange, now) {
			continue
		}

		if !matchesResourceSearch(resource, term) {
			continue
		}

		filtered = append(filtered, resource)
	}

	return filtered
}

func matchesField(value, wanted string, foldCase bool) bool {
	if wanted == "" || value == "" {
		return true
	}

	if foldCase {
		return strings.EqualFold(value, wanted)
	}

	return value == wanted
}

// inDateRange evaluates the preset ranges against the booking date. An
// unparsable date is out of range for every bounded preset.
func inDateRange(date time.Time, valid bool, preset string, now time.Time) bool {
	switch preset {
	case "", dto.DateRangeCustom:
		return true
	}

	if !valid {
		return false
	}

	switch preset {
	case dto.DateRangeToday:
		return date.Year() == now.Year() && date.YearDay() == now.YearDay()
	case dto.DateRangeWeek:
		return !date.Before(now.AddDate(0, 0, -7))
	case dto.DateRangeMonth:
		return !date.Before(now.AddDate(0, -1, 0))
	case dto.DateRangeYear:
		return !date.Before(now.AddDate(-1, 0, 0))
	default:
		return true
	}
}

func matchesBookingSearch(booking bookingModel.Booking, term string) bool {
	if term == "" {
		return true
	}

	fields := []string{
		booking.Reference,
		booking.BookingName,
		booking.Email,
		booking.Purpose,
		booking.NameUsers,
	}

	return anyContains(fields, term)
}

func matchesResourceSearch(resource resourceModel.ResourceBooking, term string) bool {
	if term == "" {
		return true
	}

	fields := []string{
		resource.Reference,
		resource.BookerName,
		resource.Email,
		resource.MaterialType,
		resource.Utilization,
	}

	return anyContains(fields, term)
}

func anyContains(fields []string, term string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}
