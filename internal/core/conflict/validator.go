// Package conflict gates every create and edit commit: a proposed time range
// is accepted only when it is structurally sound and free of overlap with the
// rest of the collection.
package conflict

import (
	"strings"
	"time"

	"github.com/daymark-app/daymark/internal/core/availability"
	"github.com/daymark-app/daymark/internal/core/event"
)

// Validator checks proposed ranges against a snapshot of existing events.
// It never re-fetches from storage: the snapshot is whatever the caller
// loaded last, which is acceptable for a single active session.
type Validator struct {
	index *availability.Index
}

// NewValidator builds a validator over the given events.
func NewValidator(events []event.Event) *Validator {
	return &Validator{index: availability.Build(events)}
}

// CanCommit decides whether an event with the given title and range may be
// committed. excludeID names the event being edited, so its own committed
// range is not counted as a conflict; pass "" for a create.
//
// Returns nil on acceptance, *event.ValidationError for structural
// violations and *event.ConflictError for range overlap.
func (v *Validator) CanCommit(title string, start, end time.Time, excludeID string) error {
	if strings.TrimSpace(title) == "" {
		return &event.ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if start.After(end) {
		return &event.ValidationError{Field: "startDate", Message: "startDate must not be after endDate"}
	}
	if v.index.IsRangeDisabledExcluding(start, end, excludeID) {
		return &event.ConflictError{Start: start, End: end}
	}
	return nil
}
