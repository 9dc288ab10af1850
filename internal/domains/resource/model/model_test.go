package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"libdash/infras/sheets"
	"libdash/internal/domains/resource/model"
)

func TestResourceBookingFromRecord(t *testing.T) {
	record := sheets.Record{
		"reference_number":         "RES-010",
		"bookers_name":             "Alex Reyes",
		"bookers_type":             "Faculty",
		"email":                    "alex@example.edu",
		"utilization_of_materials": "Home",
		"type_of_materials":        "Laptop",
		"booked_resources_id":      float64(7),
		"date":                     "2025-04-02",
	}

	var resource model.ResourceBooking
	resource.FromRecord(record)

	assert.Equal(t, "RES-010", resource.Reference)
	assert.Equal(t, "Alex Reyes", resource.BookerName)
	assert.Equal(t, "Home", resource.Utilization)
	assert.Equal(t, "Laptop", resource.MaterialType)
	assert.Equal(t, "7", resource.ResourceID)
	assert.True(t, resource.DateValid)
}

func TestResourceBookingFromRecordFallbackAliases(t *testing.T) {
	record := sheets.Record{
		"booked_reference": "RES-020",
		"booking_name":     "Sam",
		"booker_type":      "Student",
		"utilization":      "inside",
		"material_type":    "Projector",
		"resource_id":      "3",
	}

	var resource model.ResourceBooking
	resource.FromRecord(record)

	assert.Equal(t, "RES-020", resource.Reference)
	assert.Equal(t, "Sam", resource.BookerName)
	assert.Equal(t, "inside", resource.Utilization)
	assert.Equal(t, "Projector", resource.MaterialType)
	assert.Equal(t, "3", resource.ResourceID)
	assert.False(t, resource.DateValid)
}
