package engine

import (
	"strconv"
	"strings"

	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/directory"
)

var csvHeaders = []string{
	"Reference", "Name", "Type", "Email", "Users", "Purpose",
	"Library", "Facility", "Date", "Start Time", "End Time",
	"Status", "Hours", "Timestamp",
}

// BuildCSV renders the filtered bookings as a CSV export. Every value is
// double-quoted and library/facility IDs are resolved to display names.
func BuildCSV(bookings []bookingModel.Booking, libraries, facilities directory.Table) string {
	var builder strings.Builder

	writeCSVRow(&builder, csvHeaders)

	for _, booking := range bookings {
		writeCSVRow(&builder, []string{
			booking.Reference,
			booking.BookingName,
			booking.BookerType,
			booking.Email,
			booking.NumUsers,
			booking.Purpose,
			libraries.Name(booking.LibraryID),
			facilities.Name(booking.FacilityID),
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			strconv.Itoa(booking.BookedHours),
			booking.Timestamp,
		})
	}

	return builder.String()
}

func writeCSVRow(builder *strings.Builder, values []string) {
	for i, value := range values {
		if i > 0 {
			builder.WriteByte(',')
		}

		builder.WriteByte('"')
		builder.WriteString(strings.ReplaceAll(value, `"`, `""`))
		builder.WriteByte('"')
	}

	builder.WriteByte('\n')
}
