package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// gin context keys set by the auth middleware
	ContextKeyStaffID   = "staff_id"
	ContextKeyStaffName = "staff_name"
	ContextKeyRole      = "staff_role"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// Staff roles as reported by the platform
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	ErrMsgInternalServerError = "Internal server error occurred"
)
