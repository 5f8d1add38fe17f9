package recurrence

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// Sentinel failures of the two entry points. Both components report
// failure as ordinary error values; nothing in this package panics.
var (
	// ErrInvalidRule marks rule text that yields no usable descriptor,
	// which in the recognized grammar means FREQ never parsed.
	ErrInvalidRule = errors.New("recurrence: invalid rule")

	// ErrInvalidAnchor marks an anchor timestamp outside TimeLayout.
	ErrInvalidAnchor = errors.New("recurrence: invalid anchor timestamp")

	// ErrUnsupportedFrequency marks a rule whose frequency has no
	// calculator. Parse never produces such a rule; the error exists for
	// hand-built Rule values.
	ErrUnsupportedFrequency = errors.New("recurrence: unsupported frequency")
)

// Frequency is the base repeat unit of a recurrence rule.
type Frequency string

// The four FREQ values of the practical RRULE subset this package
// implements.
const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Weekday is a two-letter RRULE weekday code.
type Weekday string

// Weekday codes in calendar order. Their indices (Sunday = 0 through
// Saturday = 6) coincide with Go's time.Weekday numbering, which the
// weekly calculator relies on.
const (
	Sunday    Weekday = "SU"
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
)

// weekdayIndex maps a code to its calendar index. Codes outside the
// SU..SA vocabulary report ok == false; the calculator drops them.
func weekdayIndex(code Weekday) (int, bool) {
	switch code {
	case Sunday:
		return 0, true
	case Monday:
		return 1, true
	case Tuesday:
		return 2, true
	case Wednesday:
		return 3, true
	case Thursday:
		return 4, true
	case Friday:
		return 5, true
	case Saturday:
		return 6, true
	}
	return 0, false
}

// Rule is a parsed recurrence descriptor. It is a transient value:
// Parse builds a fresh one per call, the calculator consumes it, and
// nothing in this package retains it afterwards.
type Rule struct {
	// Freq is the base repeat unit. Rules produced by Parse always carry
	// one of the four Frequency constants.
	Freq Frequency

	// Interval multiplies Freq. Parse defaults it to 1 and never stores
	// a value below that.
	Interval int

	// ByDay lists the weekday codes of a weekly rule, trimmed and
	// upper-cased but otherwise verbatim: tokens outside the SU..SA
	// vocabulary are kept here and filtered by the calculator, not the
	// parser. Inert for non-weekly frequencies.
	ByDay []Weekday

	// Count is parsed and retained but not consumed by the calculator.
	// Bounding the number of occurrences is the caller's concern.
	Count mo.Option[int]

	// Until is parsed and retained but, like Count, never consulted when
	// computing the next occurrence.
	Until mo.Option[time.Time]
}

// String re-encodes the rule as canonical RRULE text. INTERVAL is
// omitted when it is the default 1; absent optional fields are omitted
// entirely. Parsing the result reproduces the rule.
func (r Rule) String() string {
	parts := []string{"FREQ=" + string(r.Freq)}
	if r.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	if count, ok := r.Count.Get(); ok {
		parts = append(parts, "COUNT="+strconv.Itoa(count))
	}
	if until, ok := r.Until.Get(); ok {
		parts = append(parts, "UNTIL="+until.Format(untilDateTimeLayout))
	}
	if len(r.ByDay) > 0 {
		codes := make([]string, len(r.ByDay))
		for i, day := range r.ByDay {
			codes[i] = string(day)
		}
		parts = append(parts, "BYDAY="+strings.Join(codes, ","))
	}
	return strings.Join(parts, ";")
}
