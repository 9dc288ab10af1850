package dto

import (
	"net/http"

	"libdash/shared/constant"
)

// Date range presets accepted by the report endpoints.
const (
	DateRangeToday  = "today"
	DateRangeWeek   = "week"
	DateRangeMonth  = "month"
	DateRangeYear   = "year"
	DateRangeCustom = "custom"
)

// Criteria narrows every report view. Empty fields match everything.
type Criteria struct {
	LibraryID  string `json:"library_id"`
	Status     string `json:"status"`
	BookerType string `json:"booker_type"`
	DateRange  string `json:"date_range"`
	Search     string `json:"search"`
}

func (c *Criteria) FromRequest(r *http.Request) {
	query := r.URL.Query()

	c.LibraryID = query.Get(constant.RequestParamLibraryID)
	c.Status = query.Get(constant.RequestParamStatus)
	c.BookerType = query.Get(constant.RequestParamBookerType)
	c.DateRange = query.Get(constant.RequestParamDateRange)
	c.Search = query.Get(constant.RequestParamSearch)
}

// ChartData is a label-aligned series for a single chart.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// OverviewResponse backs the overview tab.
type OverviewResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	CompletionRate    float64 `json:"completion_rate"`
	PendingRate       float64 `json:"pending_rate"`
	CancellationRate  float64 `json:"cancellation_rate"`
	UniqueUsers       int     `json:"unique_users"`
	TotalHours        int     `json:"total_hours"`
	AvgHours          float64 `json:"avg_hours"`

	DailyTrend      ChartData `json:"daily_trend"`
	StatusBreakdown ChartData `json:"status_breakdown"`
	LibraryUsage    ChartData `json:"library_usage"`
	PeakHours       ChartData `json:"peak_hours"`
	BookerTypes     ChartData `json:"booker_types"`
	MonthlyTrend    ChartData `json:"monthly_trend"`
}

// LibraryCard is one per-library summary tile.
type LibraryCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
	Hours    int    `json:"hours"`
}

// LibraryShare is one slice of the booking share chart.
type LibraryShare struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// LibraryDetail is one row of the per-library breakdown table.
type LibraryDetail struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Completed   int     `json:"completed"`
	Hours       int     `json:"hours"`
	AvgHours    float64 `json:"avg_hours"`
	TopFacility string  `json:"top_facility"`
}

// LibrariesResponse backs the libraries tab. Every known library appears
// even when it has no bookings in the filtered window.
type LibrariesResponse struct {
	Cards      []LibraryCard   `json:"cards"`
	Comparison ChartData       `json:"comparison"`
	Shares     []LibraryShare  `json:"shares"`
	Details    []LibraryDetail `json:"details"`
}

// MonthlyResponse backs the monthly report tab.
type MonthlyResponse struct {
	ThisMonth      int       `json:"this_month"`
	LastMonth      int       `json:"last_month"`
	GrowthPercent  float64   `json:"growth_percent"`
	BestMonth      string    `json:"best_month"`
	BestMonthCount int       `json:"best_month_count"`
	Trend          ChartData `json:"trend"`
	StatusBars     ChartData `json:"status_bars"`
	Students       int       `json:"students"`
	Faculty        int       `json:"faculty"`
}

// AnalyticsResponse backs the analytics tab.
type AnalyticsResponse struct {
	AvgDuration   float64 `json:"avg_duration"`
	PeakHour      string  `json:"peak_hour"`
	TopLibrary    string  `json:"top_library"`
	TopBookerType string  `json:"top_booker_type"`

	DurationDistribution ChartData `json:"duration_distribution"`
	WeekdayDistribution  ChartData `json:"weekday_distribution"`
	HourlyDistribution   ChartData `json:"hourly_distribution"`
	TopPurposes          ChartData `json:"top_purposes"`
}

// UserRow is one aggregated user keyed by email.
type UserRow struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Bookings    int    `json:"bookings"`
	Pending     int    `json:"pending"`
	Completed   int    `json:"completed"`
	Hours       int    `json:"hours"`
	LastBooking string `json:"last_booking"`
}

// UsersResponse backs the users tab.
type UsersResponse struct {
	TotalUsers     int       `json:"total_users"`
	StudentPercent float64   `json:"student_percent"`
	FacultyPercent float64   `json:"faculty_percent"`
	TopUser        *UserRow  `json:"top_user,omitempty"`
	Rows           []UserRow `json:"rows"`

	TopUsers         ChartData `json:"top_users"`
	TypeDistribution ChartData `json:"type_distribution"`
}

// ResourceRow is one row of the resource checkout table.
type ResourceRow struct {
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Email       string `json:"email"`
	Material    string `json:"material"`
	Utilization string `json:"utilization"`
	Date        string `json:"date"`
}

// ResourcesResponse backs the resources tab.
type ResourcesResponse struct {
	TotalCheckouts  int     `json:"total_checkouts"`
	HomeCount       int     `json:"home_count"`
	InsideCount     int     `json:"inside_count"`
	HomePercent     float64 `json:"home_percent"`
	InsidePercent   float64 `json:"inside_percent"`
	PopularMaterial string  `json:"popular_material"`
	PopularCount    int     `json:"popular_count"`
	UniqueUsers     int     `json:"unique_users"`
	StudentCount    int     `json:"student_count"`
	StudentPercent  float64 `json:"student_percent"`

	DailyTrend           ChartData `json:"daily_trend"`
	MaterialBreakdown    ChartData `json:"material_breakdown"`
	UtilizationBreakdown ChartData `json:"utilization_breakdown"`
	TopResources         ChartData `json:"top_resources"`
	BookerTypes          ChartData `json:"booker_types"`
	MonthlyTrend         ChartData `json:"monthly_trend"`

	Rows []ResourceRow `json:"rows"`
}

// BookingRow is one row of the bookings table.
type BookingRow struct {
	Reference    string `json:"reference"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Email        string `json:"email"`
	NumUsers     string `json:"num_users"`
	Purpose      string `json:"purpose"`
	LibraryName  string `json:"library"`
	FacilityName string `json:"facility"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Hours        int    `json:"hours"`
}

// LibraryOption is one entry of the library filter dropdown.
type LibraryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingsResponse backs the bookings table view.
type BookingsResponse struct {
	TotalData int             `json:"total_data"`
	Rows      []BookingRow    `json:"rows"`
	Libraries []LibraryOption `json:"libraries"`
}

// StatusResponse reports the refresh controller state.
type StatusResponse struct {
	State       string `json:"state"`
	LastUpdated string `json:"last_updated"`
	UpdatedAgo  string `json:"updated_ago"`
	Bookings    int    `json:"bookings"`
	Resources   int    `json:"resources"`
	Libraries   int    `json:"libraries"`
	Facilities  int    `json:"facilities"`
}
