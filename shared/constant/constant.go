package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
)

const (
	RequestParamDate       = "date"
	RequestParamStartDate  = "start"
	RequestParamEndDate    = "end"
	RequestParamLatitude   = "latitude"
	RequestParamLongitude  = "longitude"
	RequestParamRadius     = "radius"
	RequestParamHotelID    = "hotelID"
	RequestParamRoomNumber = "roomNumber"
)

const (
	// ReportLimit caps the "recent" and "top" manager reports.
	ReportLimit = 5
)

const (
	SortDirDesc = "DESC"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat       = "2006-01-02"
	LegacyDateFormat = "01/02/2006"
	DateTimeFormat   = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	ImageURLMaxLength = 30
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelConsoleScopeName    = "console"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
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
	Empty = ""
)
