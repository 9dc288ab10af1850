package model

import (
	"time"

	"libdash/infras/sheets"
	"libdash/shared/timezone"
)

const (
	EntityName = "resource"

	UtilizationHome   = "home"
	UtilizationInside = "inside"
)

// ResourceBooking is a normalized material checkout row. Unlike facility
// bookings these rows carry no status or hour columns.
type ResourceBooking struct {
	ID           string `json:"id"`
	Reference    string `json:"reference_number"`
	BookerName   string `json:"bookers_name"`
	BookerType   string `json:"bookers_type"`
	Email        string `json:"email"`
	Utilization  string `json:"utilization_of_materials"`
	MaterialType string `json:"type_of_materials"`
	ResourceID   string `json:"booked_resources_id"`
	Date         string `json:"date"`
	Timestamp    string `json:"timestamp"`

	DateValue time.Time `json:"-"`
	DateValid bool      `json:"-"`
}

func (r *ResourceBooking) FromRecord(record sheets.Record) {
	r.ID = record.String("id", "ID")
	r.Reference = record.String("reference_number", "booked_reference")
	r.BookerName = record.String("bookers_name", "booking_name")
	r.BookerType = record.String("bookers_type", "booker_type")
	r.Email = record.String("email")
	r.Utilization = record.String("utilization_of_materials", "utilization")
	r.MaterialType = record.String("type_of_materials", "material_type")
	r.ResourceID = record.String("booked_resources_id", "resource_id")
	r.Date = record.String("date")
	r.Timestamp = record.String("timestamp")

	r.DateValue, r.DateValid = timezone.ParseDate(r.Date)
}

func FromRecords(records []sheets.Record) []ResourceBooking {
	resources := make([]ResourceBooking, len(records))
	for i, record := range records {
		resources[i].FromRecord(record)
	}

	return resources
}
