package recurrence

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

// Schedule is the recurrence-relevant slice of a calendar component:
// the raw rule text and the anchor the next occurrence is computed from.
type Schedule struct {
	RuleText string
	Anchor   time.Time
}

// ScheduleFromComponent extracts a Schedule from an iCalendar component.
// The anchor comes from DTSTART; VTODO components without one fall back
// to DUE, since reminder-style todos often carry only a due time. The
// second return is false when the component has no RRULE or no usable
// anchor. The rule text is passed through verbatim, leaving validation
// to Parse.
func ScheduleFromComponent(comp *ical.Component) (Schedule, bool) {
	prop := comp.Props.Get(ical.PropRecurrenceRule)
	if prop == nil || prop.Value == "" {
		return Schedule{}, false
	}
	anchor, ok := componentAnchor(comp)
	if !ok {
		return Schedule{}, false
	}
	return Schedule{RuleText: prop.Value, Anchor: anchor}, true
}

func componentAnchor(comp *ical.Component) (time.Time, bool) {
	if start, err := comp.Props.DateTime(ical.PropDateTimeStart, nil); err == nil && !start.IsZero() {
		return start, true
	}
	if comp.Name == ical.CompToDo {
		if due, err := comp.Props.DateTime(ical.PropDue, nil); err == nil && !due.IsZero() {
			return due, true
		}
	}
	return time.Time{}, false
}

// NextFromComponent computes the occurrence following the component's
// own anchor. Callers tracking a later last-fired time should extract
// the Schedule themselves and call Next with that time instead.
func (e *Engine) NextFromComponent(comp *ical.Component) (time.Time, error) {
	schedule, ok := ScheduleFromComponent(comp)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: component %s carries no recurrence schedule",
			ErrInvalidRule, comp.Name)
	}
	rule, err := e.Parse(schedule.RuleText)
	if err != nil {
		return time.Time{}, err
	}
	return e.Next(rule, schedule.Anchor)
}
