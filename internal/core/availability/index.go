// Package availability derives the day-marking and overlap-query view of an
// event collection. The index is a pure function of the events it was built
// from: it is rebuilt in full after every mutation and never patched.
package availability

import (
	"sort"
	"time"

	"github.com/daymark-app/daymark/internal/core/event"
)

// DayKey truncates t to its local calendar day in canonical YYYY-MM-DD form.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// startOfDay drops the time-of-day portion, keeping t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// truncateMinute is the granularity of all overlap comparisons. Day marks
// use the calendar date only; range checks keep time of day to the minute.
func truncateMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// span is one event's occupied range, minute-truncated, inclusive both ends.
type span struct {
	id         string
	start, end time.Time
}

// Index answers point, range and day queries over one snapshot of events.
type Index struct {
	days  map[string]struct{}
	spans []span
}

// Build enumerates, for every event, each calendar day between StartDate and
// EndDate inclusive, and records the event's minute-truncated range for
// overlap queries. Marking a day twice is idempotent; there is no count.
func Build(events []event.Event) *Index {
	ix := &Index{
		days:  make(map[string]struct{}),
		spans: make([]span, 0, len(events)),
	}
	for _, e := range events {
		if e.StartDate.After(e.EndDate) {
			// Inverted ranges mark nothing and occupy nothing.
			continue
		}
		last := startOfDay(e.EndDate)
		for d := startOfDay(e.StartDate); !d.After(last); d = d.AddDate(0, 0, 1) {
			ix.days[DayKey(d)] = struct{}{}
		}
		ix.spans = append(ix.spans, span{
			id:    e.ID,
			start: truncateMinute(e.StartDate),
			end:   truncateMinute(e.EndDate),
		})
	}
	return ix
}

// Marked reports whether any event touches the given YYYY-MM-DD day.
func (ix *Index) Marked(day string) bool {
	_, ok := ix.days[day]
	return ok
}

// MarkedDays returns every marked day key in ascending order.
func (ix *Index) MarkedDays() []string {
	keys := make([]string, 0, len(ix.days))
	for k := range ix.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsPointDisabled reports whether t, truncated to the minute, falls within
// any event's [StartDate, EndDate], inclusive on both ends.
func (ix *Index) IsPointDisabled(t time.Time) bool {
	p := truncateMinute(t)
	for _, s := range ix.spans {
		if !p.Before(s.start) && !p.After(s.end) {
			return true
		}
	}
	return false
}

// IsRangeDisabled reports whether the candidate range overlaps any existing
// event's range. A candidate overlaps a span when its start lies inside the
// span, its end lies inside the span, or it fully contains the span; the
// span fully containing the candidate is implied by the first two cases.
func (ix *Index) IsRangeDisabled(start, end time.Time) bool {
	return ix.IsRangeDisabledExcluding(start, end, "")
}

// IsRangeDisabledExcluding is IsRangeDisabled skipping the event with the
// given id. The edit flow passes the edited event's own id so that an event
// never conflicts with its previously committed range.
func (ix *Index) IsRangeDisabledExcluding(start, end time.Time, excludeID string) bool {
	cs, ce := truncateMinute(start), truncateMinute(end)
	for _, s := range ix.spans {
		if excludeID != "" && s.id == excludeID {
			continue
		}
		startInside := !cs.Before(s.start) && !cs.After(s.end)
		endInside := !ce.Before(s.start) && !ce.After(s.end)
		contains := !cs.After(s.start) && !ce.Before(s.end)
		if startInside || endInside || contains {
			return true
		}
	}
	return false
}

// EventsOn filters events whose calendar-day span covers the given
// YYYY-MM-DD day. Used by the day-selection query.
func EventsOn(day string, events []event.Event) []event.Event {
	var out []event.Event
	for _, e := range events {
		if DayKey(e.StartDate) <= day && day <= DayKey(e.EndDate) {
			out = append(out, e)
		}
	}
	return out
}
