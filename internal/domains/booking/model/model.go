package model

import (
	"time"

	"libdash/infras/sheets"
	"libdash/shared/timezone"
)

const (
	EntityName = "booking"

	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Booking is a normalized facility booking row. Upstream deployments use
// inconsistent column names, so FromRecord folds the known aliases into one
// shape. A missing status is treated as pending.
type Booking struct {
	ID                 string `json:"id"`
	Reference          string `json:"booked_reference"`
	BookingName        string `json:"booking_name"`
	BookerType         string `json:"booker_type"`
	Email              string `json:"email"`
	NumUsers           string `json:"num_users"`
	NameUsers          string `json:"name_users"`
	Purpose            string `json:"subject_topic_purpose"`
	TeacherCoordinator string `json:"teacher_coordinator"`
	LibraryID          string `json:"library"`
	FacilityID         string `json:"facility"`
	Date               string `json:"date"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Status             string `json:"status"`
	CheckIn            string `json:"in"`
	Timestamp          string `json:"timestamp"`
	BookedHours        int    `json:"booked_hour"`

	DateValue time.Time `json:"-"`
	DateValid bool      `json:"-"`
}

func (b *Booking) FromRecord(record sheets.Record) {
	b.ID = record.String("id", "ID")
	b.Reference = record.String("booked_reference", "booking_reference")
	b.BookingName = record.String("booking_name")
	b.BookerType = record.String("booker_type")
	b.Email = record.String("email")
	b.NumUsers = record.String("num_users")
	b.NameUsers = record.String("name_users")
	b.Purpose = record.String("subject_topic_purpose")
	b.TeacherCoordinator = record.String("teacher_coordinator")
	b.LibraryID = record.String("library")
	b.FacilityID = record.String("facility")
	b.Date = record.String("date")
	b.StartTime = record.String("start_time")
	b.EndTime = record.String("end_time")
	b.Status = record.String("status")
	b.CheckIn = record.String("in")
	b.Timestamp = record.String("timestamp")
	b.BookedHours = record.Int("booked_hour", "hour")

	if b.Status == "" {
		b.Status = StatusPending
	}

	b.DateValue, b.DateValid = timezone.ParseDate(b.Date)
}

func FromRecords(records []sheets.Record) []Booking {
	bookings := make([]Booking, len(records))
	for i, record := range records {
		bookings[i].FromRecord(record)
	}

	return bookings
}
