package apperror

// Codes sesuai kontrak API: lowercase snake_case di body {error, message}.
const (
	// Client errors (4xx)
	CodeInvalidInput = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeInvalidToken = "invalid_token"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"

	// Server errors (5xx)
	CodeInternalError      = "internal_error"
	CodeServiceUnavailable = "service_unavailable"
)
