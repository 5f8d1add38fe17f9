package recurrence

import (
	"io"
	"log/slog"
)

// Engine binds the rule parser and the occurrence calculator to a
// diagnostic logger. It holds no mutable state, so a single value is
// safe for concurrent use, and construction costs nothing. Diagnostics
// never influence results: an Engine with a live logger and one without
// return identical values for identical inputs.
type Engine struct {
	logger *slog.Logger
}

// NewEngine returns an Engine that reports diagnostic events through
// logger. A nil logger discards them.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{logger: logger}
}

// defaultEngine backs the package-level entry points. It stays silent.
var defaultEngine = NewEngine(nil)

// NextOccurrence computes the next firing time for ruleText after the
// anchor timestamp using the package's silent default engine. See
// Engine.NextOccurrence.
func NextOccurrence(ruleText, anchor string) (string, error) {
	return defaultEngine.NextOccurrence(ruleText, anchor)
}

// NextOccurrence is the string-level composition of Parse, ParseTimestamp,
// and Next: both inputs and the result use the package's text forms,
// which is how reminder records store them. The error taxonomy is the
// union of the three steps; errors.Is distinguishes ErrInvalidRule,
// ErrInvalidAnchor, and ErrUnsupportedFrequency.
func (e *Engine) NextOccurrence(ruleText, anchor string) (string, error) {
	rule, err := e.Parse(ruleText)
	if err != nil {
		return "", err
	}
	at, err := ParseTimestamp(anchor)
	if err != nil {
		e.logger.Warn("anchor timestamp does not parse",
			"event", "invalid-anchor", "anchor", anchor)
		return "", err
	}
	next, err := e.Next(rule, at)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(next), nil
}
