package model

import (
	"time"

	bookingModel "libdash/internal/domains/booking/model"
	"libdash/internal/domains/directory"
	resourceModel "libdash/internal/domains/resource/model"
)

const EntityName = "report"

// Refresh states for the dashboard dataset.
type RefreshState string

const (
	RefreshIdle    RefreshState = "idle"
	RefreshLoading RefreshState = "loading"
	RefreshReady   RefreshState = "ready"
	RefreshFailed  RefreshState = "failed"
)

// Snapshot is one immutable, internally consistent view of the upstream
// data. Refreshes build a new snapshot and swap it in wholesale.
type Snapshot struct {
	Bookings   []bookingModel.Booking
	Libraries  directory.Table
	Facilities directory.Table
	Resources  []resourceModel.ResourceBooking
	FetchedAt  time.Time
}
