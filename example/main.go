package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/remindery/libremind/recurrence"
	"gopkg.in/yaml.v3"
)

const (
	// Reminder list read when no path is given on the command line
	defaultRemindersFile = "reminders.yaml"
	previewEntries       = 3
)

// reminderList mirrors the YAML layout of the reminders file.
type reminderList struct {
	Reminders []reminder `yaml:"reminders"`
}

type reminder struct {
	Title     string `yaml:"title"`
	Rule      string `yaml:"rule"`
	LastFired string `yaml:"last_fired"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := recurrence.NewEngine(logger)

	path := defaultRemindersFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	list, err := loadReminders(path)
	if err != nil {
		logger.Error("cannot load reminder list", "path", path, "error", err)
		os.Exit(1)
	}

	for _, rem := range list.Reminders {
		printReminder(engine, rem)
	}

	demoCalendarImport(engine)
}

// loadReminders reads and decodes the YAML reminder list.
func loadReminders(path string) (*reminderList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list reminderList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &list, nil
}

// printReminder shows the next firing time and a short preview of the
// chain after it, or explains why the reminder cannot fire.
func printReminder(engine *recurrence.Engine, rem reminder) {
	id := uuid.New().String()[:8]
	fmt.Printf("%s  %s\n", id, rem.Title)

	next, err := engine.NextOccurrence(rem.Rule, rem.LastFired)
	switch {
	case errors.Is(err, recurrence.ErrInvalidRule):
		fmt.Printf("          unusable rule %q\n", rem.Rule)
		return
	case errors.Is(err, recurrence.ErrInvalidAnchor):
		fmt.Printf("          corrupt last-fired timestamp %q\n", rem.LastFired)
		return
	case err != nil:
		fmt.Printf("          %v\n", err)
		return
	}
	fmt.Printf("          next %s\n", next)

	anchor, err := recurrence.ParseTimestamp(rem.LastFired)
	if err != nil {
		return
	}
	upcoming, err := engine.Upcoming(rem.Rule, anchor, recurrence.PreviewOptions{MaxOccurrences: previewEntries})
	if err != nil || len(upcoming) < 2 {
		return
	}
	laterTimes := make([]string, 0, len(upcoming)-1)
	for _, occurrence := range upcoming[1:] {
		laterTimes = append(laterTimes, recurrence.FormatTimestamp(occurrence))
	}
	fmt.Printf("          then %s\n", strings.Join(laterTimes, ", "))
}

// demoCalendarImport exercises the go-ical bridge: reminders imported
// from calendar exports keep their RRULE text verbatim.
func demoCalendarImport(engine *recurrence.Engine) {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	event.Props.SetText(ical.PropSummary, "Stand-up")
	event.Props.SetDateTime(ical.PropDateTimeStart, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	event.Props[ical.PropRecurrenceRule] = []ical.Prop{{
		Name:   ical.PropRecurrenceRule,
		Value:  "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		Params: make(ical.Params),
	}}

	next, err := engine.NextFromComponent(event.Component)
	if err != nil {
		fmt.Printf("calendar import failed: %v\n", err)
		return
	}
	fmt.Printf("\nimported VEVENT %q\n          next %s\n", "Stand-up", recurrence.FormatTimestamp(next))
}
