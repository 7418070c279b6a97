package engine

import (
	"fmt"
	"strings"
)

// TaskKind selects the input widget and value semantics of a task.
type TaskKind string

const (
	TaskKindCheckbox TaskKind = "checkbox"
	TaskKindCounter  TaskKind = "counter"
	TaskKindDropdown TaskKind = "dropdown"
	TaskKindText     TaskKind = "text"
)

func (k TaskKind) IsValid() bool {
	switch k {
	case TaskKindCheckbox, TaskKindCounter, TaskKindDropdown, TaskKindText:
		return true
	default:
		return false
	}
}

func ParseTaskKind(input string) (TaskKind, error) {
	k := TaskKind(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid task kind: %q", input)
	}
	return k, nil
}

// RecurrenceKind determines how a task's schedule is evaluated.
type RecurrenceKind string

const (
	RecurrenceOnce    RecurrenceKind = "once"
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
	RecurrenceCustom  RecurrenceKind = "custom"
)

func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom:
		return true
	default:
		return false
	}
}

func ParseRecurrenceKind(input string) (RecurrenceKind, error) {
	k := RecurrenceKind(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid recurrence kind: %q", input)
	}
	return k, nil
}

// Status is the per-(task, date) completion state. An absent record reads as
// StatusPending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// Canonical priorities for the importance shorthand accepted by the CLI.
// Priority itself is a plain integer; lower sorts first.
const (
	PriorityHigh   = 0
	PriorityMedium = 1
	PriorityLow    = 2
)
