// Package calendar composes the event collection's persistence, in-memory
// aggregate and mutation service. Every mutation re-persists the whole
// collection; there are no partial or delta writes.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daymark-app/daymark/internal/core/event"
	"github.com/daymark-app/daymark/internal/store"
)

// DefaultKey is the single fixed storage key holding the serialized
// collection.
const DefaultKey = "events"

// PersistenceError wraps a storage or codec failure at the repository
// boundary.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Repository reads and writes the event collection as one JSON blob.
type Repository struct {
	store store.Store
	key   string
}

// NewRepository creates a repository over st. An empty key selects
// DefaultKey.
func NewRepository(st store.Store, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{store: st, key: key}
}

// Load fetches and decodes the persisted collection. An absent key yields an
// empty collection; a present but malformed blob yields a PersistenceError
// rather than being silently discarded.
func (r *Repository) Load(ctx context.Context) ([]event.Event, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	if !ok {
		return []event.Event{}, nil
	}

	var events []event.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("decode event blob: %w", err)}
	}
	return events, nil
}

// Save serializes the full collection and overwrites the stored blob. Saves
// are the only durability point: in-memory mutations not followed by a Save
// are lost on restart.
func (r *Repository) Save(ctx context.Context, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("encode event blob: %w", err)}
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
