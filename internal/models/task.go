package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a named to-do item with an optional deadline
type Task struct {
	ID       uuid.UUID
	Name     string
	Deadline *time.Time

	// ReminderID is carried for parity with the record layout; nothing
	// assigns it, the scheduler scans every task instead.
	ReminderID string
}

// NewTask creates a task with a fresh ID. deadline may be nil.
func NewTask(name string, deadline *time.Time) Task {
	return Task{
		ID:       uuid.New(),
		Name:     name,
		Deadline: deadline,
	}
}

// HasDeadline reports whether a deadline is set
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// String renders the task as shown in the task list
func (t Task) String() string {
	if t.Deadline == nil {
		return t.Name
	}
	return fmt.Sprintf("%s (Prazo: %s)", t.Name, FormatDeadline(*t.Deadline))
}
