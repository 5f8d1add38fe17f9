package recurrence

import "time"

// PreviewOptions bounds how far Upcoming expands a rule.
type PreviewOptions struct {
	// MaxOccurrences caps the number of entries produced. Values below 1
	// fall back to DefaultPreviewOptions.MaxOccurrences.
	MaxOccurrences int

	// Horizon caps how far past the anchor expansion may reach. Values
	// below or at zero fall back to DefaultPreviewOptions.Horizon.
	Horizon time.Duration
}

// DefaultPreviewOptions expands a year of weekly occurrences, or two
// years of anything slower, whichever bound hits first.
var DefaultPreviewOptions = PreviewOptions{
	MaxOccurrences: 52,
	Horizon:        2 * 365 * 24 * time.Hour,
}

// Upcoming expands ruleText into the occurrences following anchor, in
// order, until one of the option bounds is reached. Each step feeds the
// previous occurrence back in as the anchor, so the result is exactly
// the chain a reminder service would fire.
//
// Only the option bounds stop expansion. COUNT and UNTIL inside the rule
// are retained by Parse but not consulted here; callers enforcing them
// should truncate the result themselves.
func (e *Engine) Upcoming(ruleText string, anchor time.Time, opts PreviewOptions) ([]time.Time, error) {
	rule, err := e.Parse(ruleText)
	if err != nil {
		return nil, err
	}
	if opts.MaxOccurrences < 1 {
		opts.MaxOccurrences = DefaultPreviewOptions.MaxOccurrences
	}
	if opts.Horizon <= 0 {
		opts.Horizon = DefaultPreviewOptions.Horizon
	}

	limit := anchor.Add(opts.Horizon)
	occurrences := make([]time.Time, 0, opts.MaxOccurrences)
	cursor := anchor
	for len(occurrences) < opts.MaxOccurrences {
		next, err := e.Next(rule, cursor)
		if err != nil {
			return nil, err
		}
		if next.After(limit) {
			break
		}
		occurrences = append(occurrences, next)
		cursor = next
	}
	return occurrences, nil
}
