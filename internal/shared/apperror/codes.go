package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidPeriod = "INVALID_PERIOD"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidState  = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError        = "INTERNAL_ERROR"
	CodeMissingConfiguration = "MISSING_CONFIGURATION"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
)
