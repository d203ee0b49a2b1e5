package constants

// Password policy
const (
	MinPasswordLength = 8
)

// Task field limits
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Pagination limits
const (
	MinPageLimit     = 1
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Gin context keys
const (
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"
)
