package models

import (
	"strings"
	"time"

	apperrors "agenda/internal/errors"
)

const (
	// DeadlineLayout renders deadlines as DD-MM-YYYY HH:MM
	DeadlineLayout = "02-01-2006 15:04"
	// ReminderLayout renders reminder times as HH:MM
	ReminderLayout = "15:04"

	// parse layouts also accept single-digit day, month, hour and minute
	deadlineParseLayout = "2-1-2006 15:4"
	reminderParseLayout = "15:4"

	InvalidDeadlineMessage = "Formato de prazo inválido. Use DD-MM-YYYY HH:MM."
	InvalidReminderMessage = "Formato de hora inválido. Use HH:MM."
)

// ParseDeadline parses a "DD-MM-YYYY HH:MM" string in local time.
// Only the empty string yields (nil, nil); surrounding spaces around a valid
// value are tolerated but blank input is malformed. Malformed input yields
// nil and an invalid-format error.
func ParseDeadline(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	deadline, err := time.ParseInLocation(deadlineParseLayout, strings.TrimSpace(input), time.Local)
	if err != nil {
		return nil, apperrors.NewInvalidFormatError(input, DeadlineLayout, InvalidDeadlineMessage, err)
	}
	return &deadline, nil
}

// ParseReminderTime parses "HH:MM" and places it on the calendar day of now
func ParseReminderTime(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)

	clock, err := time.Parse(reminderParseLayout, trimmed)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidFormatError(input, ReminderLayout, InvalidReminderMessage, err)
	}

	year, month, day := now.Date()
	return time.Date(year, month, day, clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

// FormatDeadline renders t as DD-MM-YYYY HH:MM
func FormatDeadline(t time.Time) string {
	return t.Format(DeadlineLayout)
}

// FormatReminder renders the time-of-day of t as HH:MM
func FormatReminder(t time.Time) string {
	return t.Format(ReminderLayout)
}

// TimeOfDay returns the offset of t from its local midnight
func TimeOfDay(t time.Time) time.Duration {
	hour, minute, second := t.Clock()
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(t.Nanosecond())
}
