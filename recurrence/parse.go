package recurrence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Parse converts RRULE text into a Rule using the package's silent
// default engine. See Engine.Parse for the grammar.
func Parse(text string) (Rule, error) {
	return defaultEngine.Parse(text)
}

// Parse converts RRULE text into a Rule.
//
// The recognized grammar is semicolon-separated KEY=VALUE fragments with
// an optional leading "RRULE:" prefix, as produced by common calendar
// exports. Keys match case-insensitively. The parser is deliberately
// forgiving: fragments without "=", unknown keys, and values that do not
// parse are skipped rather than failing the whole rule, and when a key
// repeats the last usable value wins. The single fatal condition is FREQ
// ending up unset, reported as ErrInvalidRule.
func (e *Engine) Parse(text string) (Rule, error) {
	var (
		rule     Rule
		haveFreq bool
	)
	body := strings.TrimPrefix(strings.TrimSpace(text), "RRULE:")
	for _, fragment := range strings.Split(body, ";") {
		key, value, found := strings.Cut(fragment, "=")
		if !found {
			if fragment != "" {
				e.logger.Debug("skipping rule fragment without '='", "fragment", fragment)
			}
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "FREQ":
			switch freq := Frequency(strings.ToUpper(value)); freq {
			case Daily, Weekly, Monthly, Yearly:
				rule.Freq = freq
				haveFreq = true
			default:
				e.logger.Debug("ignoring unrecognized FREQ value", "value", value)
			}
		case "INTERVAL":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				rule.Interval = n
			} else {
				e.logger.Debug("discarding non-positive INTERVAL", "value", value)
			}
		case "BYDAY":
			var days []Weekday
			for _, token := range strings.Split(value, ",") {
				token = strings.ToUpper(strings.TrimSpace(token))
				if token == "" {
					continue
				}
				days = append(days, Weekday(token))
			}
			rule.ByDay = days
		case "COUNT":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				rule.Count = mo.Some(n)
			} else {
				e.logger.Debug("discarding non-positive COUNT", "value", value)
			}
		case "UNTIL":
			if t, err := parseUntil(value); err == nil {
				rule.Until = mo.Some(t)
			} else {
				e.logger.Debug("discarding malformed UNTIL", "value", value)
			}
		default:
			// Unknown keys (WKST, BYMONTH, ...) are tolerated and ignored.
		}
	}
	if !haveFreq {
		e.logger.Warn("rule text has no usable FREQ", "event", "missing-freq", "rule", text)
		return Rule{}, fmt.Errorf("%w: no usable FREQ in %q", ErrInvalidRule, text)
	}
	if rule.Interval < 1 {
		rule.Interval = 1
	}
	return rule, nil
}
