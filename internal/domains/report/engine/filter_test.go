package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/report/model/dto"
	resourceModel "libdash/internal/domains/resource/model"
)

func dated(id, library, status, bookerType, date string) bookingModel.Booking {
	booking := bookingModel.Booking{
		ID:         id,
		LibraryID:  library,
		Status:     status,
		BookerType: bookerType,
		Date:       date,
	}

	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			booking.DateValue = parsed
			booking.DateValid = true
		}
	}

	return booking
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	bookings := []bookingModel.Booking{
		dated("1", "1", "Pending", "Student", "2025-05-01"),
		dated("2", "2", "Completed", "Faculty", "2025-05-02"),
	}

	filtered := Filter(bookings, dto.Criteria{}, time.Now())

	assert.Equal(t, bookings, filtered)
}

func TestFilterLibraryBlankFieldPasses(t *testing.T) {
	bookings := []bookingModel.Booking{
		dated("1", "1", "", "", ""),
		dated("2", "2", "", "", ""),
		dated("3", "", "", "", ""),
	}

	filtered := Filter(bookings, dto.Criteria{LibraryID: "1"}, time.Now())

	ids := make([]string, 0, len(filtered))
	for _, b := range filtered {
		ids = append(ids, b.ID)
	}

	// A row without a library column survives library filtering.
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestFilterStatusCaseInsensitive(t *testing.T) {
	bookings := []bookingModel.Booking{
		dated("1", "", "COMPLETED", "", ""),
		dated("2", "", "Pending", "", ""),
	}

	filtered := Filter(bookings, dto.Criteria{Status: "completed"}, time.Now())

	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterDateRanges(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		preset   string
		date     string
		expected bool
	}{
		{name: "today matches same day", preset: dto.DateRangeToday, date: "2025-06-15", expected: true},
		{name: "today excludes yesterday", preset: dto.DateRangeToday, date: "2025-06-14", expected: false},
		{name: "week includes six days ago", preset: dto.DateRangeWeek, date: "2025-06-09", expected: true},
		{name: "week excludes eight days ago", preset: dto.DateRangeWeek, date: "2025-06-07", expected: false},
		{name: "month includes three weeks ago", preset: dto.DateRangeMonth, date: "2025-05-25", expected: true},
		{name: "month excludes six weeks ago", preset: dto.DateRangeMonth, date: "2025-05-01", expected: false},
		{name: "year includes ten months ago", preset: dto.DateRangeYear, date: "2024-08-15", expected: true},
		{name: "year excludes two years ago", preset: dto.DateRangeYear, date: "2023-06-15", expected: false},
		{name: "custom passes everything", preset: dto.DateRangeCustom, date: "1999-01-01", expected: true},
		{name: "unparsable date is out of bounded range", preset: dto.DateRangeWeek, date: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := []bookingModel.Booking{dated("1", "", "", "", tt.date)}

			filtered := Filter(bookings, dto.Criteria{DateRange: tt.preset}, now)

			assert.Equal(t, tt.expected, len(filtered) == 1)
		})
	}
}

func TestFilterSearch(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: "1", Reference: "REF-123", BookingName: "Jordan"},
		{ID: "2", Email: "casey@example.edu", Purpose: "Group study"},
		{ID: "3", NameUsers: "Riley, Drew"},
	}

	tests := []struct {
		term     string
		expected []string
	}{
		{term: "", expected: []string{"1", "2", "3"}},
		{term: "ref-123", expected: []string{"1"}},
		{term: "STUDY", expected: []string{"2"}},
		{term: "drew", expected: []string{"3"}},
		{term: "nothing", expected: []string{}},
	}

	for _, tt := range tests {
		filtered := Filter(bookings, dto.Criteria{Search: tt.term}, time.Now())

		ids := make([]string, 0, len(filtered))
		for _, b := range filtered {
			ids = append(ids, b.ID)
		}

		assert.Equal(t, tt.expected, ids, "term %q", tt.term)
	}
}

func TestFilterResourcesSearch(t *testing.T) {
	resources := []resourceModel.ResourceBooking{
		{ID: "1", MaterialType: "Laptop"},
		{ID: "2", Utilization: "home"},
		{ID: "3", BookerName: "Morgan"},
	}

	filtered := FilterResources(resources, dto.Criteria{Search: "laptop"}, time.Now())

	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	all := FilterResources(resources, dto.Criteria{}, time.Now())
	assert.Len(t, all, 3)
}
