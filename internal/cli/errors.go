package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Registry errors
	ErrRegistryNotFound    = "REGISTRY_NOT_FOUND"
	ErrRegistryInvalid     = "REGISTRY_INVALID"
	ErrRegistryUnavailable = "REGISTRY_UNAVAILABLE"

	// Site/config errors
	ErrSiteNotFound  = "SITE_NOT_FOUND"
	ErrConfigInvalid = "CONFIG_INVALID"

	// Cache errors
	ErrCacheError = "CACHE_ERROR"
	ErrCacheEmpty = "CACHE_EMPTY"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Render errors
	ErrRenderFailed = "RENDER_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnSlugNotFound = "SLUG_NOT_FOUND"
	WarnStaleCache   = "STALE_CACHE"
)
