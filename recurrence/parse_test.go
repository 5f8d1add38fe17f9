package recurrence

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Rule
	}{
		{
			name:     "plain daily",
			text:     "FREQ=DAILY",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "rrule prefix stripped",
			text:     "RRULE:FREQ=DAILY;INTERVAL=3",
			expected: Rule{Freq: Daily, Interval: 3},
		},
		{
			name:     "weekly with byday list",
			text:     "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE",
			expected: Rule{Freq: Weekly, Interval: 2, ByDay: []Weekday{Monday, Wednesday}},
		},
		{
			name:     "lower-case keys and values",
			text:     "freq=weekly;interval=2;byday=mo,we",
			expected: Rule{Freq: Weekly, Interval: 2, ByDay: []Weekday{Monday, Wednesday}},
		},
		{
			name:     "unknown keys ignored",
			text:     "FREQ=DAILY;WKST=MO;BYSETPOS=1",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "fragment without equals skipped",
			text:     "FREQ=DAILY;BOGUS;INTERVAL=2",
			expected: Rule{Freq: Daily, Interval: 2},
		},
		{
			name:     "zero interval discarded",
			text:     "FREQ=DAILY;INTERVAL=0",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "negative interval discarded",
			text:     "FREQ=DAILY;INTERVAL=-2",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "non-numeric interval discarded",
			text:     "FREQ=DAILY;INTERVAL=often",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "byday tokens kept verbatim",
			text:     "FREQ=WEEKLY;BYDAY=MO,XX, we ",
			expected: Rule{Freq: Weekly, Interval: 1, ByDay: []Weekday{Monday, "XX", Wednesday}},
		},
		{
			name:     "invalid freq fragment ignored when a valid one exists",
			text:     "FREQ=FORTNIGHTLY;FREQ=MONTHLY",
			expected: Rule{Freq: Monthly, Interval: 1},
		},
		{
			name:     "count retained",
			text:     "FREQ=DAILY;COUNT=10",
			expected: Rule{Freq: Daily, Interval: 1, Count: mo.Some(10)},
		},
		{
			name:     "non-positive count discarded",
			text:     "FREQ=DAILY;COUNT=0",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name: "until date-time retained",
			text: "FREQ=DAILY;UNTIL=20240131T101500Z",
			expected: Rule{
				Freq:     Daily,
				Interval: 1,
				Until:    mo.Some(time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC)),
			},
		},
		{
			name: "until bare date retained",
			text: "FREQ=DAILY;UNTIL=20241201",
			expected: Rule{
				Freq:     Daily,
				Interval: 1,
				Until:    mo.Some(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name:     "until with unexpected shape discarded",
			text:     "FREQ=DAILY;UNTIL=2024-01-31",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "until with missing seconds discarded",
			text:     "FREQ=DAILY;UNTIL=20240131T1015",
			expected: Rule{Freq: Daily, Interval: 1},
		},
		{
			name:     "repeated key keeps last usable value",
			text:     "FREQ=DAILY;INTERVAL=2;INTERVAL=5",
			expected: Rule{Freq: Daily, Interval: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rule)
		})
	}
}

func TestParse_MissingFreq(t *testing.T) {
	for _, text := range []string{
		"",
		"INTERVAL=3",
		"FREQ=FORTNIGHTLY",
		"RRULE:",
		"BYDAY=MO;COUNT=4",
	} {
		t.Run(text, func(t *testing.T) {
			rule, err := Parse(text)
			assert.ErrorIs(t, err, ErrInvalidRule)
			assert.Equal(t, Rule{}, rule)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	const text = "RRULE:FREQ=WEEKLY;INTERVAL=2;BYDAY=FR,MO;COUNT=6"

	first, err := Parse(text)
	require.NoError(t, err)
	second, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRule_String(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "default interval omitted",
			text:     "RRULE:FREQ=DAILY;INTERVAL=1",
			expected: "FREQ=DAILY",
		},
		{
			name:     "canonical key order",
			text:     "freq=weekly;byday=mo,we;interval=2",
			expected: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE",
		},
		{
			name:     "inert fields re-encoded",
			text:     "FREQ=DAILY;COUNT=10;UNTIL=20240131T101500Z",
			expected: "FREQ=DAILY;COUNT=10;UNTIL=20240131T101500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rule.String())

			// The canonical text parses back to the same rule.
			again, err := Parse(rule.String())
			require.NoError(t, err)
			assert.Equal(t, rule, again)
		})
	}
}
