package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyDriverID  contextKey = "driver_id"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

const (
	RequestParamID      = "id"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

// IdentityKeyDriverID is the identity store key holding the current driver's id.
const IdentityKeyDriverID = "driver_id"

const (
	BookingStatusConfirmed = "Confirmed"
)

const (
	PlaceholderUnspecified = "unspecified"
	PlaceholderNoData      = "no data"
	PlaceholderNoDetail    = "no details"
)

const (
	PathRooms = "/rooms"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelURLAttributeKey    = "http.url"
	OtelMethodAttributeKey = "http.method"
	OtelStatusAttributeKey = "http.status_code"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderLocation           = "Location"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseMessageHealthy            = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty   = ""
)
