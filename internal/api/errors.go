package api

const (
	ErrTypeInternal    = "internal_error"
	ErrTypeInvalidJSON = "invalid_json"
	ErrTypeValidation  = "validation_failed"
	ErrTypeConflict    = "range_conflict"
	ErrTypeNotFound    = "event_not_found"
)

// ErrorResponse is the error response body for all API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
