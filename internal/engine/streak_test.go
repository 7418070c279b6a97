package engine

import (
	"context"
	"testing"
	"time"
)

func TestCurrentStreakDaily(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	today := Date(2026, time.January, 20)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Meditate",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      Date(2026, time.January, 1),
		StreakEnabled:  true,
	})

	for i := 2; i >= 0; i-- {
		mustComplete(t, svc, task.ID, today.AddDate(0, 0, -i))
	}

	streak, err := svc.CurrentStreak(ctx, task.ID, today)
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 3 {
		t.Fatalf("streak=%d, want 3", streak)
	}

	// The next day has no completion, so the streak observed there is 0.
	streak, err = svc.CurrentStreak(ctx, task.ID, today.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 0 {
		t.Fatalf("streak after a miss=%d, want 0", streak)
	}
}

func TestCurrentStreakBreaksOnMissedOccurrence(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	today := Date(2026, time.January, 20)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Stretch",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      Date(2026, time.January, 1),
		StreakEnabled:  true,
	})

	mustComplete(t, svc, task.ID, today.AddDate(0, 0, -2))
	// today-1 missed
	mustComplete(t, svc, task.ID, today)

	streak, err := svc.CurrentStreak(ctx, task.ID, today)
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 1 {
		t.Fatalf("streak=%d, want 1 (gap yesterday)", streak)
	}
}

func TestCurrentStreakSkipsNonOccurrenceDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Weekly review",
		RecurrenceKind: RecurrenceWeekly,
		Weekdays:       []int{1}, // Mondays
		StartDate:      Date(2026, time.January, 1),
		StreakEnabled:  true,
	})

	mustComplete(t, svc, task.ID, Date(2026, time.January, 5))
	mustComplete(t, svc, task.ID, Date(2026, time.January, 12))

	// Observed on the following Wednesday: the Tue/Wed in between are not
	// scheduled and must not break the run.
	streak, err := svc.CurrentStreak(ctx, task.ID, Date(2026, time.January, 14))
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 2 {
		t.Fatalf("streak=%d, want 2", streak)
	}
}

func TestCurrentStreakZeroForUntrackedTask(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "No streak",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      Date(2026, time.January, 1),
	})
	mustComplete(t, svc, task.ID, Date(2026, time.January, 5))

	streak, err := svc.CurrentStreak(ctx, task.ID, Date(2026, time.January, 5))
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 0 {
		t.Fatalf("untracked streak=%d, want 0", streak)
	}
}

func TestIsStreakBroken(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Gym",
		RecurrenceKind: RecurrenceWeekly,
		Weekdays:       []int{1},
		StartDate:      Date(2026, time.January, 1),
		StreakEnabled:  true,
	})

	// Not scheduled on a Wednesday, so nothing to break.
	broken, err := svc.IsStreakBroken(ctx, task.ID, Date(2026, time.January, 7))
	if err != nil {
		t.Fatalf("IsStreakBroken: %v", err)
	}
	if broken {
		t.Fatalf("broken on a non-occurrence day")
	}

	// Scheduled Monday with no record: broken.
	broken, err = svc.IsStreakBroken(ctx, task.ID, Date(2026, time.January, 5))
	if err != nil {
		t.Fatalf("IsStreakBroken: %v", err)
	}
	if !broken {
		t.Fatalf("expected a missed Monday to read as broken")
	}

	mustComplete(t, svc, task.ID, Date(2026, time.January, 5))
	broken, err = svc.IsStreakBroken(ctx, task.ID, Date(2026, time.January, 5))
	if err != nil {
		t.Fatalf("IsStreakBroken: %v", err)
	}
	if broken {
		t.Fatalf("completed Monday must not read as broken")
	}

	// Unknown ids never read as broken.
	broken, err = svc.IsStreakBroken(ctx, "nope", Date(2026, time.January, 5))
	if err != nil {
		t.Fatalf("IsStreakBroken: %v", err)
	}
	if broken {
		t.Fatalf("unknown task read as broken")
	}
}

func TestLongestStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	start := Date(2026, time.January, 1)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Read",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      start,
		StreakEnabled:  true,
	})

	// Three in a row, a gap, then two in a row.
	for _, offset := range []int{0, 1, 2, 4, 5} {
		mustComplete(t, svc, task.ID, start.AddDate(0, 0, offset))
	}

	longest, err := svc.LongestStreak(ctx, task.ID)
	if err != nil {
		t.Fatalf("LongestStreak: %v", err)
	}
	if longest != 3 {
		t.Fatalf("longest=%d, want 3", longest)
	}
}

func TestLongestStreakCountsUntrackedTasks(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// The longest run is a property of the completion history; turning
	// tracking off only disables the live current-streak views.
	start := Date(2026, time.January, 1)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Untracked reading",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      start,
	})

	for _, offset := range []int{4, 5, 6} {
		mustComplete(t, svc, task.ID, start.AddDate(0, 0, offset))
	}

	longest, err := svc.LongestStreak(ctx, task.ID)
	if err != nil {
		t.Fatalf("LongestStreak: %v", err)
	}
	if longest != 3 {
		t.Fatalf("longest=%d, want 3", longest)
	}

	// The current streak stays gated on the tracking flag.
	current, err := svc.CurrentStreak(ctx, task.ID, start.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if current != 0 {
		t.Fatalf("current=%d, want 0 for an untracked task", current)
	}
}

func TestStreakStats(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	start := Date(2026, time.January, 1)
	upTo := Date(2026, time.January, 10) // 10 occurrences inclusive
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Journal",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      start,
		StreakEnabled:  true,
	})

	for _, offset := range []int{0, 1, 8, 9} {
		mustComplete(t, svc, task.ID, start.AddDate(0, 0, offset))
	}

	stats, err := svc.StreakStats(ctx, task.ID, upTo)
	if err != nil {
		t.Fatalf("StreakStats: %v", err)
	}
	if stats.TotalOccurrences != 10 {
		t.Errorf("occurrences=%d, want 10", stats.TotalOccurrences)
	}
	if stats.TotalCompletions != 4 {
		t.Errorf("completions=%d, want 4", stats.TotalCompletions)
	}
	if stats.CompletionRate != 40 {
		t.Errorf("rate=%.1f, want 40", stats.CompletionRate)
	}
	if stats.Current != 2 {
		t.Errorf("current=%d, want 2", stats.Current)
	}
	if stats.Longest != 2 {
		t.Errorf("longest=%d, want 2", stats.Longest)
	}
}

func TestStreakStatsFullCompletion(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	start := Date(2026, time.January, 1)
	upTo := Date(2026, time.January, 5)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Perfect week",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      start,
		StreakEnabled:  true,
	})

	for offset := 0; offset < 5; offset++ {
		mustComplete(t, svc, task.ID, start.AddDate(0, 0, offset))
	}

	stats, err := svc.StreakStats(ctx, task.ID, upTo)
	if err != nil {
		t.Fatalf("StreakStats: %v", err)
	}
	if stats.CompletionRate != 100 {
		t.Errorf("rate=%.1f, want exactly 100", stats.CompletionRate)
	}
	if stats.TotalCompletions != 5 || stats.TotalOccurrences != 5 {
		t.Errorf("completions=%d occurrences=%d, want 5/5", stats.TotalCompletions, stats.TotalOccurrences)
	}
}

func TestStreakStatsNoOccurrences(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// A weekly rule with no weekdays never occurs; the rate must be 0, not NaN.
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Phantom",
		RecurrenceKind: RecurrenceWeekly,
		StartDate:      Date(2026, time.January, 1),
		StreakEnabled:  true,
	})

	stats, err := svc.StreakStats(ctx, task.ID, Date(2026, time.January, 31))
	if err != nil {
		t.Fatalf("StreakStats: %v", err)
	}
	if stats.TotalOccurrences != 0 || stats.CompletionRate != 0 {
		t.Fatalf("stats=%+v, want zero occurrences and zero rate", stats)
	}
}
