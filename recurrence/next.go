package recurrence

import (
	"sort"
	"time"
)

// Next computes the occurrence after anchor using the package's silent
// default engine. See Engine.Next.
func Next(rule Rule, anchor time.Time) (time.Time, error) {
	return defaultEngine.Next(rule, anchor)
}

// Next computes the first occurrence of rule strictly after anchor.
//
// Arithmetic is calendar-local: the anchor's clock time and location are
// preserved and no zone conversion happens. For every supported
// frequency the result is strictly later than the anchor, even when the
// anchor already falls on a day the rule names. An Interval below 1 on a
// hand-built rule is treated as 1.
func (e *Engine) Next(rule Rule, anchor time.Time) (time.Time, error) {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}
	switch rule.Freq {
	case Daily:
		return anchor.AddDate(0, 0, interval), nil
	case Weekly:
		return nextWeekly(anchor, interval, rule.ByDay), nil
	case Monthly:
		return addMonthsClamped(anchor, interval), nil
	case Yearly:
		return addMonthsClamped(anchor, 12*interval), nil
	}
	e.logger.Warn("rule frequency has no calculator",
		"event", "unsupported-freq", "freq", string(rule.Freq))
	return time.Time{}, ErrUnsupportedFrequency
}

// nextWeekly advances anchor within a weekly cycle. Without usable
// weekday codes the anchor's own weekday is the implicit target and the
// whole cycle is skipped. With codes, the earliest target later in the
// anchor's week wins; the strict inequality means the anchor's own
// weekday never matches and a full interval of weeks is crossed instead.
func nextWeekly(anchor time.Time, interval int, byDay []Weekday) time.Time {
	targets := weekdayTargets(byDay)
	if len(targets) == 0 {
		return anchor.AddDate(0, 0, 7*interval)
	}
	weekday := int(anchor.Weekday())
	for _, target := range targets {
		if target > weekday {
			return anchor.AddDate(0, 0, target-weekday)
		}
	}
	days := (7 - weekday + targets[0]) + (interval-1)*7
	return anchor.AddDate(0, 0, days)
}

// weekdayTargets resolves ByDay codes to sorted calendar indices,
// discarding codes the vocabulary does not cover.
func weekdayTargets(codes []Weekday) []int {
	targets := make([]int, 0, len(codes))
	for _, code := range codes {
		if index, ok := weekdayIndex(code); ok {
			targets = append(targets, index)
		}
	}
	sort.Ints(targets)
	return targets
}

// addMonthsClamped moves anchor forward by whole months, clamping the
// day-of-month to the length of the target month. time.AddDate is
// unsuitable for this step: it normalizes Jan 31 plus one month into
// early March instead of landing on the end of February.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
	first = first.AddDate(0, months, 0)

	day := anchor.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

// daysIn reports the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
