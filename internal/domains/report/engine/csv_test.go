package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "libdash/internal/domains/booking/model"
)

func TestBuildCSV(t *testing.T) {
	bookings := []bookingModel.Booking{
		{
			Reference:   "REF-1",
			BookingName: "Jordan Cruz",
			BookerType:  "Student",
			Email:       "jordan@x.edu",
			NumUsers:    "4",
			Purpose:     "Thesis defense",
			LibraryID:   "1",
			FacilityID:  "10",
			Date:        "2025-05-01",
			StartTime:   "9:00 AM",
			EndTime:     "11:00 AM",
			Status:      "Completed",
			BookedHours: 2,
			Timestamp:   "2025-04-30 08:00:00",
		},
	}

	csv := BuildCSV(bookings, testLibraries(), testFacilities())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t,
		`"Reference","Name","Type","Email","Users","Purpose","Library","Facility","Date","Start Time","End Time","Status","Hours","Timestamp"`,
		lines[0])
	assert.Equal(t,
		`"REF-1","Jordan Cruz","Student","jordan@x.edu","4","Thesis defense","Main Library","Discussion Room","2025-05-01","9:00 AM","11:00 AM","Completed","2","2025-04-30 08:00:00"`,
		lines[1])
}

func TestBuildCSVEscapesQuotes(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Reference: `REF-"A"`, LibraryID: "9"},
	}

	csv := BuildCSV(bookings, testLibraries(), testFacilities())

	assert.Contains(t, csv, `"REF-""A"""`)
	assert.Contains(t, csv, `"Library 9"`, "unknown library falls back to a placeholder name")
}

func TestBuildCSVHeaderOnlyWhenEmpty(t *testing.T) {
	csv := BuildCSV(nil, testLibraries(), testFacilities())

	assert.Equal(t, 1, strings.Count(csv, "\n"))
	assert.True(t, strings.HasPrefix(csv, `"Reference"`))
}
