package engine

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// ResolvedTask is a task definition merged with its completion state for one
// date. It is derived on every call and never persisted; when no record
// exists the embedded record is an ephemeral pending one. Streak is only
// meaningful when the task has streak tracking enabled.
type ResolvedTask struct {
	Task   storage.Task
	Record storage.Record
	Streak int
}

// ResolveForDate returns the tasks scheduled and visible on the given date,
// merged with that date's records, ordered by priority (ascending) then
// title.
func (s *Service) ResolveForDate(ctx context.Context, date time.Time, location string) ([]ResolvedTask, error) {
	day := DateOf(date)

	tasks, err := s.tasks.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.records.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	byTask := make(map[string]storage.Record, len(recs))
	for _, rec := range recs {
		byTask[rec.TaskID] = rec
	}

	out := make([]ResolvedTask, 0, len(tasks))
	for _, t := range tasks {
		if !OccursOn(t, day) || !IsLocationAllowed(t, location) {
			continue
		}

		view := ResolvedTask{Task: t}
		if rec, ok := byTask[t.ID]; ok {
			view.Record = rec
		} else {
			view.Record = pendingRecord(t.ID, day)
		}
		if t.StreakEnabled {
			streak, err := s.CurrentStreak(ctx, t.ID, day)
			if err != nil {
				return nil, err
			}
			view.Streak = streak
		}
		out = append(out, view)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Task, out[j].Task
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Title < b.Title
	})
	return out, nil
}

// ResolveTask resolves a single task for a date. The result is nil when the
// task is missing, archived, not scheduled on the date, or hidden by the
// location filter.
func (s *Service) ResolveTask(ctx context.Context, taskID string, date time.Time, location string) (*ResolvedTask, error) {
	day := DateOf(date)

	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Archived || !OccursOn(*t, day) || !IsLocationAllowed(*t, location) {
		return nil, nil
	}

	view := ResolvedTask{Task: *t}
	rec, err := s.records.GetByTaskAndDate(ctx, taskID, day)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		view.Record = *rec
	} else {
		view.Record = pendingRecord(taskID, day)
	}
	if t.StreakEnabled {
		streak, err := s.CurrentStreak(ctx, taskID, day)
		if err != nil {
			return nil, err
		}
		view.Streak = streak
	}
	return &view, nil
}

// CompleteTask marks the task completed for the date, refreshing the
// completion timestamp even when already completed. A supplied value replaces
// the stored one; without a new value a prior value is kept.
func (s *Service) CompleteTask(ctx context.Context, taskID string, date time.Time, value *string) error {
	day := DateOf(date)
	rec, err := s.loadOrPending(ctx, taskID, day)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rec.Status = string(StatusCompleted)
	rec.CompletedAt = &now
	if value != nil {
		rec.Value = value
	}

	if err := s.records.Upsert(ctx, *rec); err != nil {
		return err
	}
	s.log.Debug("task completed",
		zap.String("task_id", taskID),
		zap.String("date", day.Format(storage.DateLayout)))
	return nil
}

// SkipTask marks the task skipped for the date; skips carry no value or
// completion timestamp.
func (s *Service) SkipTask(ctx context.Context, taskID string, date time.Time) error {
	day := DateOf(date)
	rec, err := s.loadOrPending(ctx, taskID, day)
	if err != nil {
		return err
	}

	rec.Status = string(StatusSkipped)
	rec.CompletedAt = nil
	rec.Value = nil

	if err := s.records.Upsert(ctx, *rec); err != nil {
		return err
	}
	s.log.Debug("task skipped",
		zap.String("task_id", taskID),
		zap.String("date", day.Format(storage.DateLayout)))
	return nil
}

// ResetTask returns an existing record to pending, clearing value and
// completion timestamp. The record row is kept; without one this is a no-op.
func (s *Service) ResetTask(ctx context.Context, taskID string, date time.Time) error {
	day := DateOf(date)
	rec, err := s.records.GetByTaskAndDate(ctx, taskID, day)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	rec.Status = string(StatusPending)
	rec.CompletedAt = nil
	rec.Value = nil
	return s.records.Upsert(ctx, *rec)
}

func (s *Service) loadOrPending(ctx context.Context, taskID string, day time.Time) (*storage.Record, error) {
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("task not found: " + taskID)
	}

	rec, err := s.records.GetByTaskAndDate(ctx, taskID, day)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		p := pendingRecord(taskID, day)
		rec = &p
	}
	return rec, nil
}

// pendingRecord synthesizes the implicit pending state for a (task, date)
// pair. It is only written to the store on an explicit complete/skip action.
func pendingRecord(taskID string, day time.Time) storage.Record {
	return storage.Record{
		ID:     storage.RecordID(taskID, day),
		TaskID: taskID,
		Date:   day,
		Status: string(StatusPending),
	}
}
