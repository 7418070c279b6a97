package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateTaskValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	start := Date(2026, time.January, 10)
	cases := []struct {
		name string
		in   CreateTaskInput
	}{
		{"empty title", CreateTaskInput{
			Title: "   ", RecurrenceKind: RecurrenceDaily, StartDate: start,
		}},
		{"bad kind", CreateTaskInput{
			Title: "x", Kind: "slider", RecurrenceKind: RecurrenceDaily, StartDate: start,
		}},
		{"bad recurrence", CreateTaskInput{
			Title: "x", RecurrenceKind: "fortnightly", StartDate: start,
		}},
		{"missing start", CreateTaskInput{
			Title: "x", RecurrenceKind: RecurrenceDaily,
		}},
		{"end before start", CreateTaskInput{
			Title: "x", RecurrenceKind: RecurrenceDaily, StartDate: start,
			EndDate: datePtr(start.AddDate(0, 0, -1)),
		}},
		{"weekday out of range", CreateTaskInput{
			Title: "x", RecurrenceKind: RecurrenceWeekly, Weekdays: []int{7}, StartDate: start,
		}},
		{"day of month out of range", CreateTaskInput{
			Title: "x", RecurrenceKind: RecurrenceMonthly, DayOfMonth: intPtr(32), StartDate: start,
		}},
		{"options on checkbox", CreateTaskInput{
			Title: "x", RecurrenceKind: RecurrenceDaily, StartDate: start,
			Options: []string{"a", "b"},
		}},
	}

	for _, c := range cases {
		if _, err := svc.CreateTask(ctx, c.in); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		} else {
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%s: error %v is not a ValidationError", c.name, err)
			}
		}
	}
}

func TestCreateTaskDefaultsAndTrimming(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "  Drink water  ",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      Date(2026, time.January, 5),
	})

	if task.Title != "Drink water" {
		t.Errorf("title=%q, want trimmed", task.Title)
	}
	if task.Kind != string(TaskKindCheckbox) {
		t.Errorf("kind=%q, want checkbox default", task.Kind)
	}
	if task.ID == "" {
		t.Errorf("expected a generated id")
	}

	stored, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored == nil || stored.Title != "Drink water" {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestUpdateTaskPatch(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title:          "Gym",
		RecurrenceKind: RecurrenceDaily,
		StartDate:      Date(2026, time.January, 5),
		EndDate:        datePtr(Date(2026, time.June, 1)),
		Priority:       PriorityLow,
	})

	title := "Gym session"
	recur := RecurrenceWeekly
	days := []int{1, 4}
	prio := PriorityHigh
	var noEnd *time.Time

	updated, err := svc.UpdateTask(ctx, task.ID, TaskPatch{
		Title:          &title,
		RecurrenceKind: &recur,
		Weekdays:       &days,
		Priority:       &prio,
		EndDate:        &noEnd, // clears the end date
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Gym session" || updated.RecurrenceKind != string(RecurrenceWeekly) {
		t.Errorf("updated=%+v", updated)
	}
	if len(updated.Weekdays) != 2 || updated.Priority != PriorityHigh {
		t.Errorf("weekdays=%v priority=%d", updated.Weekdays, updated.Priority)
	}
	if updated.EndDate != nil {
		t.Errorf("end date not cleared: %v", updated.EndDate)
	}

	// Untouched fields survive.
	if !updated.StartDate.Equal(Date(2026, time.January, 5)) {
		t.Errorf("start date changed: %v", updated.StartDate)
	}

	// Patches are validated against the merged result.
	bad := []int{9}
	if _, err := svc.UpdateTask(ctx, task.ID, TaskPatch{Weekdays: &bad}); err == nil {
		t.Errorf("expected weekday validation on update")
	}

	// Unknown ids resolve to nil, not an error.
	got, err := svc.UpdateTask(ctx, "missing", TaskPatch{Title: &title})
	if err != nil || got != nil {
		t.Errorf("unknown id: task=%v err=%v, want nil/nil", got, err)
	}
}

func TestSetTaskPriority(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title: "Laundry", RecurrenceKind: RecurrenceDaily,
		StartDate: Date(2026, time.January, 1), Priority: PriorityLow,
	})

	if err := svc.SetTaskPriority(ctx, task.ID, PriorityHigh); err != nil {
		t.Fatalf("SetTaskPriority: %v", err)
	}
	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Priority != PriorityHigh {
		t.Fatalf("priority=%d, want %d", got.Priority, PriorityHigh)
	}

	if err := svc.SetTaskPriority(ctx, "missing", PriorityHigh); err == nil {
		t.Errorf("expected error for unknown id")
	}
}

func TestArchiveRestoreRoundTrip(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task := mustCreateTask(t, svc, CreateTaskInput{
		Title: "Nap", RecurrenceKind: RecurrenceDaily, StartDate: Date(2026, time.January, 1),
	})

	if err := svc.ArchiveTask(ctx, task.ID); err != nil {
		t.Fatalf("ArchiveTask: %v", err)
	}
	active, err := svc.TaskRepo().ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("archived task still listed active")
	}

	if err := svc.RestoreTask(ctx, task.ID); err != nil {
		t.Fatalf("RestoreTask: %v", err)
	}
	active, err = svc.TaskRepo().ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("restored task missing from active list")
	}

	if err := svc.ArchiveTask(ctx, "missing"); err == nil {
		t.Errorf("expected error archiving unknown id")
	}
}

func TestDeleteTaskCascades(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day := Date(2026, time.January, 7)
	task := mustCreateTask(t, svc, CreateTaskInput{
		Title: "Doomed", RecurrenceKind: RecurrenceDaily, StartDate: Date(2026, time.January, 1),
	})
	mustComplete(t, svc, task.ID, day)

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("task survived deletion")
	}
	rec, err := svc.RecordRepo().GetByTaskAndDate(ctx, task.ID, day)
	if err != nil {
		t.Fatalf("GetByTaskAndDate: %v", err)
	}
	if rec != nil {
		t.Fatalf("record survived task deletion")
	}

	if err := svc.DeleteTask(ctx, task.ID); err == nil {
		t.Errorf("expected error deleting twice")
	}
}
