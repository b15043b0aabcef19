package event

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an operation targets an event id that is not
// present in the collection.
var ErrNotFound = errors.New("event not found")

// ValidationError reports a structural rule violation on a proposed event.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError reports a proposed time range overlapping an existing event.
type ConflictError struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("range %s – %s overlaps an existing event",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}
