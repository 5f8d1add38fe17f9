/*
Package recurrence parses reminder recurrence rules and computes when a
reminder should next fire.

The rule grammar is the practical subset of RFC 5545 RRULE text that
reminder records actually carry: FREQ (required), INTERVAL, BYDAY for
weekly rules, and the retained-but-inert COUNT and UNTIL. Input from
calendar exports is messy, so the parser is forgiving; the calculator
underneath is exact calendar arithmetic with no zone handling.

# Basic Usage

The string-level entry point takes rule text and an anchor timestamp and
returns the next firing time in the same timestamp form:

	next, err := recurrence.NextOccurrence("FREQ=WEEKLY;BYDAY=MO,WE", "2024-01-01T10:00:00")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(next) // 2024-01-03T10:00:00

Callers that keep time.Time values can stay at the typed layer:

	rule, err := recurrence.Parse("FREQ=MONTHLY;INTERVAL=2")
	if err != nil {
		log.Fatal(err)
	}
	next, err := recurrence.Next(rule, lastFired)

# Rule Grammar

Rule text is semicolon-separated KEY=VALUE fragments, optionally behind
an "RRULE:" prefix. Keys match case-insensitively. Malformed fragments,
unknown keys, and unusable values are skipped, never fatal; the one way
text fails to parse is FREQ never being established:

	recurrence.Parse("FREQ=DAILY;WKST=MO;BOGUS") // ok, daily
	recurrence.Parse("INTERVAL=3")               // ErrInvalidRule

# Calendar Arithmetic

Occurrence arithmetic preserves the anchor's clock time and location and
is strictly advancing: the result is always later than the anchor, even
when the anchor's own day already satisfies the rule. Monthly and yearly
steps clamp the day-of-month instead of overflowing, so a reminder
anchored on Jan 31 fires on Feb 29 in a leap year rather than sliding
into March.

# Error Handling

Failures are plain error values matched with errors.Is:

	_, err := recurrence.NextOccurrence(ruleText, anchor)
	switch {
	case errors.Is(err, recurrence.ErrInvalidRule):
		// rule text beyond repair, surface to the user
	case errors.Is(err, recurrence.ErrInvalidAnchor):
		// stored timestamp is corrupt
	}

# Diagnostics

The package-level functions are silent. To see what a forgiving parse
threw away, build an Engine around a log/slog logger; results are
identical either way:

	engine := recurrence.NewEngine(slog.Default())
	next, err := engine.NextOccurrence(ruleText, anchor)

# Calendar Objects

Components parsed with the go-ical package can be fed in directly;
ScheduleFromComponent pulls the RRULE text and the DTSTART (or VTODO
DUE) anchor out of a component:

	if sched, ok := recurrence.ScheduleFromComponent(event.Component); ok {
		next, err := engine.NextFromComponent(event.Component)
		// ...
	}

See example/main.go for a small reminder-list program built on the
package.
*/
package recurrence
