package calendar

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/daymark-app/daymark/internal/core/availability"
	"github.com/daymark-app/daymark/internal/core/conflict"
	"github.com/daymark-app/daymark/internal/core/event"
	"github.com/daymark-app/daymark/internal/ident"
)

// CreateInput carries the caller-supplied fields of a new event; the id is
// minted by the service.
type CreateInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Image       *string
	Repeat      event.Repeat
}

// Service owns the aggregate and drives the commit cycle: validate against
// the current snapshot, mutate the aggregate, persist the whole collection.
// A mutex serializes mutations so no two save cycles interleave.
type Service struct {
	mu   sync.Mutex
	agg  *Aggregate
	repo *Repository
	ids  *ident.Generator
}

// NewService wires a service over repo with ids minting event identifiers.
func NewService(repo *Repository, ids *ident.Generator) *Service {
	return &Service{
		agg:  NewAggregate(),
		repo: repo,
		ids:  ids,
	}
}

// Hydrate loads the persisted collection into the aggregate. A read failure
// never crashes the application: it is logged and the session continues
// with an empty collection.
func (s *Service) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.repo.Load(ctx)
	if err != nil {
		slog.Warn("Failed to load persisted events, starting empty", "error", err)
		s.agg.LoadAll(nil)
		return
	}
	s.agg.LoadAll(events)
	slog.Info("Event collection hydrated", "count", len(events))
}

// Create validates the proposed event, assigns it an id, appends it and
// persists the collection. Save failures are rolled back in memory and
// returned to the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Repeat == "" {
		in.Repeat = event.RepeatNone
	}
	e := event.Event{
		ID:          s.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Image:       in.Image,
		Repeat:      in.Repeat,
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}

	v := conflict.NewValidator(s.agg.All())
	if err := v.CanCommit(e.Title, e.StartDate, e.EndDate, ""); err != nil {
		return event.Event{}, err
	}

	s.agg.Add(e)
	if err := s.repo.Save(ctx, s.agg.All()); err != nil {
		s.agg.Remove(e.ID)
		return event.Event{}, err
	}
	return e, nil
}

// Update replaces the stored event with the same id. The edited event is
// excluded from the overlap check against its own committed range. Returns
// event.ErrNotFound when the id is unknown.
func (s *Service) Update(ctx context.Context, e event.Event) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		return event.Event{}, &event.ValidationError{Field: "id", Message: "id must not be empty"}
	}
	if e.Repeat == "" {
		e.Repeat = event.RepeatNone
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}

	prev, ok := s.agg.Get(e.ID)
	if !ok {
		return event.Event{}, event.ErrNotFound
	}

	v := conflict.NewValidator(s.agg.All())
	if err := v.CanCommit(e.Title, e.StartDate, e.EndDate, e.ID); err != nil {
		return event.Event{}, err
	}

	s.agg.Replace(e)
	if err := s.repo.Save(ctx, s.agg.All()); err != nil {
		s.agg.Replace(prev)
		return event.Event{}, err
	}
	return e, nil
}

// Delete removes the event with the given id and persists. Deleting an
// absent id is an idempotent no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.agg.Get(id)
	if !ok {
		return nil
	}

	s.agg.Remove(id)
	if err := s.repo.Save(ctx, s.agg.All()); err != nil {
		s.agg.Add(prev)
		return err
	}
	return nil
}

// Events returns a copy of the current collection.
func (s *Service) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.All()
}

// Get returns the event with the given id or event.ErrNotFound.
func (s *Service) Get(id string) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.agg.Get(id)
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return e, nil
}

// MarkedDays returns every calendar day touched by at least one event, in
// ascending YYYY-MM-DD order. The index is rebuilt from the current
// snapshot on every call.
func (s *Service) MarkedDays() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return availability.Build(s.agg.All()).MarkedDays()
}

// EventsOn returns the events whose day span covers the given YYYY-MM-DD
// day.
func (s *Service) EventsOn(day string) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return availability.EventsOn(day, s.agg.All())
}

// IsPersistenceError reports whether err originated at the repository
// boundary rather than from validation.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
