package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the timestamp form the string-level API exchanges:
// seconds precision, no zone designator. Reminder anchors are calendar
// times, not instants, so the layout deliberately carries no offset.
const TimeLayout = "2006-01-02T15:04:05"

// UNTIL values come in two shapes, a bare date and a local date-time.
// A trailing "Z" is tolerated and stripped; arithmetic stays
// calendar-local either way.
const (
	untilDateLayout     = "20060102"
	untilDateTimeLayout = "20060102T150405"
)

// ParseTimestamp decodes an anchor timestamp. Any deviation from
// TimeLayout, including a zone suffix, reports ErrInvalidAnchor.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}
	return t, nil
}

// FormatTimestamp encodes t in TimeLayout. Values produced by
// ParseTimestamp round-trip exactly.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

func parseUntil(value string) (time.Time, error) {
	value = strings.TrimSuffix(value, "Z")
	switch len(value) {
	case len(untilDateLayout):
		return time.Parse(untilDateLayout, value)
	case len(untilDateTimeLayout):
		if value[8] != 'T' {
			return time.Time{}, fmt.Errorf("recurrence: malformed UNTIL %q", value)
		}
		return time.Parse(untilDateTimeLayout, value)
	}
	return time.Time{}, fmt.Errorf("recurrence: UNTIL %q matches no known shape", value)
}
