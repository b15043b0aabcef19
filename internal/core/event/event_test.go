package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		event     Event
		wantField string
	}{
		{
			name:  "valid",
			event: Event{ID: "e1", Title: "ok", StartDate: start, EndDate: end, Repeat: RepeatNone},
		},
		{
			name:      "empty title",
			event:     Event{ID: "e1", Title: "", StartDate: start, EndDate: end},
			wantField: "title",
		},
		{
			name:      "whitespace title",
			event:     Event{ID: "e1", Title: "  \t ", StartDate: start, EndDate: end},
			wantField: "title",
		},
		{
			name:      "start after end",
			event:     Event{ID: "e1", Title: "ok", StartDate: end, EndDate: start},
			wantField: "startDate",
		},
		{
			name:      "unknown repeat",
			event:     Event{ID: "e1", Title: "ok", StartDate: start, EndDate: end, Repeat: "Daily"},
			wantField: "repeat",
		},
		{
			name:  "equal start and end is allowed",
			event: Event{ID: "e1", Title: "instant", StartDate: start, EndDate: start},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.event.Validate()
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestRepeatUnmarshal(t *testing.T) {
	var r Repeat
	require.NoError(t, json.Unmarshal([]byte(`"Bi-weekly"`), &r))
	require.Equal(t, RepeatBiWeekly, r)

	require.Error(t, json.Unmarshal([]byte(`"Daily"`), &r))
	require.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestEventJSONShape(t *testing.T) {
	uri := "file:///photos/1.jpg"
	e := Event{
		ID:          "e1",
		Title:       "picnic",
		Description: "in the park",
		StartDate:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Image:       &uri,
		Repeat:      RepeatWeekly,
	}

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"id", "title", "description", "startDate", "endDate", "image", "repeat"} {
		require.Contains(t, fields, key)
	}
	require.JSONEq(t, `"2024-06-01T10:00:00Z"`, string(fields["startDate"]))

	// Absent image encodes as an explicit null marker.
	e.Image = nil
	raw, err = json.Marshal(e)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"image":null`)

	var back Event
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Nil(t, back.Image)
	require.True(t, back.StartDate.Equal(e.StartDate))
}
