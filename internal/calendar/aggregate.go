package calendar

import "github.com/daymark-app/daymark/internal/core/event"

// Aggregate is the in-memory authoritative collection for the running
// session. Insertion order is preserved but carries no display semantics;
// lookups are linear scans, which is fine at personal-calendar sizes.
type Aggregate struct {
	events []event.Event
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{events: []event.Event{}}
}

// Add appends e to the collection.
func (a *Aggregate) Add(e event.Event) {
	a.events = append(a.events, e)
}

// Replace substitutes the event whose id matches e.ID. Returns false, with
// the collection untouched, when no entry matches.
func (a *Aggregate) Replace(e event.Event) bool {
	for i := range a.events {
		if a.events[i].ID == e.ID {
			a.events[i] = e
			return true
		}
	}
	return false
}

// Remove deletes the event with the given id. Returns false when absent.
func (a *Aggregate) Remove(id string) bool {
	for i := range a.events {
		if a.events[i].ID == id {
			a.events = append(a.events[:i], a.events[i+1:]...)
			return true
		}
	}
	return false
}

// LoadAll replaces the entire collection, used at hydration.
func (a *Aggregate) LoadAll(events []event.Event) {
	a.events = make([]event.Event, len(events))
	copy(a.events, events)
}

// Get returns the event with the given id.
func (a *Aggregate) Get(id string) (event.Event, bool) {
	for _, e := range a.events {
		if e.ID == id {
			return e, true
		}
	}
	return event.Event{}, false
}

// All returns a copy of the collection so callers cannot mutate the
// aggregate behind its back.
func (a *Aggregate) All() []event.Event {
	out := make([]event.Event, len(a.events))
	copy(out, a.events)
	return out
}

// Len reports the number of events held.
func (a *Aggregate) Len() int {
	return len(a.events)
}
