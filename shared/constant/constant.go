package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	RequestParamID         = "id"
	RequestParamLibraryID  = "library_id"
	RequestParamStatus     = "status"
	RequestParamBookerType = "booker_type"
	RequestParamDateRange  = "date_range"
	RequestParamSearch     = "search"
)

const (
	DateFormat        = time.RFC3339
	BookingDateFormat = "2006-01-02"
	DisplayDateFormat = "Jan 2, 2006"
	MonthLabelFormat  = "Jan 2006"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName   = "service"
	OtelHandlerScopeName   = "handler"
	OtelExternalScopeName  = "external"
	OtelSchedulerScopeName = "scheduler"

	OtelS3ScopeName = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
	NA      = "N/A"
)
