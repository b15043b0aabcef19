package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Repeat is the stored repeat cadence of an event. It is metadata only:
// the calendar never expands a repeating event into future occurrences.
type Repeat string

const (
	RepeatNone     Repeat = "None"
	RepeatWeekly   Repeat = "Weekly"
	RepeatBiWeekly Repeat = "Bi-weekly"
	RepeatMonthly  Repeat = "Monthly"
)

// Valid reports whether r is one of the known cadence values.
func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatWeekly, RepeatBiWeekly, RepeatMonthly:
		return true
	}
	return false
}

// UnmarshalJSON rejects cadence values outside the fixed enumeration so a
// malformed blob is caught at decode time rather than persisted onward.
func (r *Repeat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := Repeat(s)
	if !v.Valid() {
		return fmt.Errorf("unknown repeat value %q", s)
	}
	*r = v
	return nil
}

// Event is the sole persisted entity of the calendar.
type Event struct {
	// ID is the unique immutable identifier, assigned once at creation.
	ID string `json:"id"`

	// Title is required; whitespace-only titles are rejected before any
	// mutation is committed.
	Title string `json:"title"`

	Description string `json:"description"`

	// StartDate and EndDate bound the event. StartDate never exceeds
	// EndDate in a committed event; both retain wall-clock time of day.
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// Image is an opaque reference (URI or encoded payload) supplied by
	// the caller, or nil when the event has no image. Encodes as null.
	Image *string `json:"image"`

	Repeat Repeat `json:"repeat"`
}

// Validate checks the structural rules that hold independently of any other
// event: a non-blank title, an ordered time range and a known cadence.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if e.StartDate.After(e.EndDate) {
		return &ValidationError{Field: "startDate", Message: "startDate must not be after endDate"}
	}
	if e.Repeat != "" && !e.Repeat.Valid() {
		return &ValidationError{Field: "repeat", Message: fmt.Sprintf("unknown repeat value %q", e.Repeat)}
	}
	return nil
}
