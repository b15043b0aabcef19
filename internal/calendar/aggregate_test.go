package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateAddAndGet(t *testing.T) {
	a := NewAggregate()
	require.Equal(t, 0, a.Len())

	events := sampleEvents()
	a.Add(events[0])
	a.Add(events[1])

	require.Equal(t, 2, a.Len())
	got, ok := a.Get("e2")
	require.True(t, ok)
	require.Equal(t, "standup", got.Title)

	_, ok = a.Get("missing")
	require.False(t, ok)
}

func TestAggregateReplace(t *testing.T) {
	a := NewAggregate()
	a.LoadAll(sampleEvents())

	edited := sampleEvents()[0]
	edited.Title = "birthday party"
	require.True(t, a.Replace(edited))

	got, _ := a.Get("e1")
	require.Equal(t, "birthday party", got.Title)

	// Replacing an unknown id leaves the collection untouched.
	unknown := edited
	unknown.ID = "missing"
	require.False(t, a.Replace(unknown))
	require.Equal(t, 2, a.Len())
}

func TestAggregateRemove(t *testing.T) {
	a := NewAggregate()
	a.LoadAll(sampleEvents())

	require.True(t, a.Remove("e1"))
	require.Equal(t, 1, a.Len())

	remaining := a.All()
	require.Equal(t, "e2", remaining[0].ID)

	// Removing an absent id is a no-op.
	require.False(t, a.Remove("e1"))
	require.Equal(t, 1, a.Len())
}

func TestAggregateLoadAllReplaces(t *testing.T) {
	a := NewAggregate()
	a.Add(sampleEvents()[0])

	a.LoadAll(sampleEvents())
	require.Equal(t, 2, a.Len())

	a.LoadAll(nil)
	require.Equal(t, 0, a.Len())
}

func TestAggregateAllReturnsCopy(t *testing.T) {
	a := NewAggregate()
	a.LoadAll(sampleEvents())

	snapshot := a.All()
	snapshot[0].Title = "mutated"

	got, _ := a.Get(snapshot[0].ID)
	require.Equal(t, "birthday", got.Title)
}
