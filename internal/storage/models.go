package storage

import "time"

// Task is a recurring obligation definition. Recurrence and location fields
// are denormalized into columns; the engine package interprets them.
type Task struct {
	ID    string
	Title string
	Kind  string // checkbox | counter | dropdown | text

	RecurrenceKind string // once | daily | weekly | monthly | custom
	Weekdays       []int  // 0=Sunday .. 6=Saturday (weekly/custom)
	DayOfMonth     *int   // 1..31 (monthly/custom)
	StartDate      time.Time
	EndDate        *time.Time

	// ReminderTime is stored for the notification layer; the core never
	// reads it.
	ReminderTime *string // "HH:MM"

	AllowedLocations  []string
	ExcludedLocations []string

	StreakEnabled bool
	Priority      int // lower = higher precedence; no uniqueness constraint
	Archived      bool
	Options       []string // dropdown choices

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record is the per-(task, date) completion state. At most one row exists
// per pair; the primary key is the composite id from RecordID.
type Record struct {
	ID          string
	TaskID      string
	Date        time.Time
	Status      string // pending | completed | skipped
	Value       *string
	CompletedAt *time.Time
}

// WellnessEntry holds the daily metrics, keyed by date.
type WellnessEntry struct {
	Date         time.Time
	WaterGlasses int
	SleepHours   float64
	Weight       *float64
	Note         *string
	UpdatedAt    time.Time
}

// FinanceEntry is a single income or expense line.
type FinanceEntry struct {
	ID          string
	Date        time.Time
	Kind        string // income | expense
	AmountCents int64
	Category    string
	Note        *string
	CreatedAt   time.Time
}

// DateLayout is the canonical calendar-day encoding used across the store.
const DateLayout = "2006-01-02"

// RecordID returns the deterministic composite key for a (task, date) pair.
func RecordID(taskID string, date time.Time) string {
	return taskID + "_" + date.Format(DateLayout)
}
