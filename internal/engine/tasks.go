package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

type CreateTaskInput struct {
	Title          string
	Kind           TaskKind
	RecurrenceKind RecurrenceKind
	Weekdays       []int
	DayOfMonth     *int
	StartDate      time.Time
	EndDate        *time.Time
	ReminderTime   *string
	Allowed        []string
	Excluded       []string
	StreakEnabled  bool
	Priority       int
	Options        []string
}

// TaskPatch is a partial task update; nil pointer means "no change".
type TaskPatch struct {
	Title          *string
	Kind           *TaskKind
	RecurrenceKind *RecurrenceKind
	Weekdays       *[]int
	DayOfMonth     **int
	StartDate      *time.Time
	EndDate        **time.Time
	ReminderTime   **string
	Allowed        *[]string
	Excluded       *[]string
	StreakEnabled  *bool
	Priority       *int
	Options        *[]string
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "is required"}
	}
	return t, nil
}

func validateRecurrence(kind RecurrenceKind, weekdays []int, dayOfMonth *int, start time.Time, end *time.Time) error {
	if !kind.IsValid() {
		return ValidationError{Field: "recurrence", Reason: "unknown kind " + string(kind)}
	}
	if start.IsZero() {
		return ValidationError{Field: "start date", Reason: "is required"}
	}
	if end != nil && DateOf(*end).Before(DateOf(start)) {
		return ValidationError{Field: "end date", Reason: "must not precede the start date"}
	}
	for _, w := range weekdays {
		if w < 0 || w > 6 {
			return ValidationError{Field: "weekdays", Reason: "must be within 0 (Sunday) to 6 (Saturday)"}
		}
	}
	if dayOfMonth != nil && (*dayOfMonth < 1 || *dayOfMonth > 31) {
		return ValidationError{Field: "day of month", Reason: "must be within 1 to 31"}
	}
	return nil
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	kind := in.Kind
	if kind == "" {
		kind = TaskKindCheckbox
	}
	if !kind.IsValid() {
		return nil, ValidationError{Field: "kind", Reason: "unknown kind " + string(kind)}
	}
	if len(in.Options) > 0 && kind != TaskKindDropdown {
		return nil, ValidationError{Field: "options", Reason: "only dropdown tasks take options"}
	}

	if err := validateRecurrence(in.RecurrenceKind, in.Weekdays, in.DayOfMonth, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := storage.Task{
		ID:                uuid.NewString(),
		Title:             title,
		Kind:              string(kind),
		RecurrenceKind:    string(in.RecurrenceKind),
		Weekdays:          in.Weekdays,
		DayOfMonth:        in.DayOfMonth,
		StartDate:         DateOf(in.StartDate),
		EndDate:           normalizeDatePtr(in.EndDate),
		ReminderTime:      in.ReminderTime,
		AllowedLocations:  in.Allowed,
		ExcludedLocations: in.Excluded,
		StreakEnabled:     in.StreakEnabled,
		Priority:          in.Priority,
		Options:           in.Options,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.tasks.Insert(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info("task created",
		zap.String("task_id", t.ID),
		zap.String("recurrence", t.RecurrenceKind))
	return &t, nil
}

// UpdateTask applies a patch to an existing task. Returns nil when the task
// does not exist.
func (s *Service) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if patch.Kind != nil {
		if !patch.Kind.IsValid() {
			return nil, ValidationError{Field: "kind", Reason: "unknown kind " + string(*patch.Kind)}
		}
		t.Kind = string(*patch.Kind)
	}
	if patch.RecurrenceKind != nil {
		t.RecurrenceKind = string(*patch.RecurrenceKind)
	}
	if patch.Weekdays != nil {
		t.Weekdays = *patch.Weekdays
	}
	if patch.DayOfMonth != nil {
		t.DayOfMonth = *patch.DayOfMonth
	}
	if patch.StartDate != nil {
		t.StartDate = DateOf(*patch.StartDate)
	}
	if patch.EndDate != nil {
		t.EndDate = normalizeDatePtr(*patch.EndDate)
	}
	if patch.ReminderTime != nil {
		t.ReminderTime = *patch.ReminderTime
	}
	if patch.Allowed != nil {
		t.AllowedLocations = *patch.Allowed
	}
	if patch.Excluded != nil {
		t.ExcludedLocations = *patch.Excluded
	}
	if patch.StreakEnabled != nil {
		t.StreakEnabled = *patch.StreakEnabled
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Options != nil {
		t.Options = *patch.Options
	}

	if err := validateRecurrence(RecurrenceKind(t.RecurrenceKind), t.Weekdays, t.DayOfMonth, t.StartDate, t.EndDate); err != nil {
		return nil, err
	}
	if len(t.Options) > 0 && TaskKind(t.Kind) != TaskKindDropdown {
		return nil, ValidationError{Field: "options", Reason: "only dropdown tasks take options"}
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, *t); err != nil {
		return nil, err
	}
	s.log.Debug("task updated", zap.String("task_id", t.ID))
	return t, nil
}

func (s *Service) ArchiveTask(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, true)
}

func (s *Service) RestoreTask(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id string, archived bool) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.New("task not found: " + id)
	}
	if err := s.tasks.SetArchived(ctx, id, archived, time.Now().UTC()); err != nil {
		return err
	}
	s.log.Info("task archive state changed",
		zap.String("task_id", id),
		zap.Bool("archived", archived))
	return nil
}

func (s *Service) SetTaskPriority(ctx context.Context, id string, priority int) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.New("task not found: " + id)
	}
	return s.tasks.SetPriority(ctx, id, priority, time.Now().UTC())
}

// DeleteTask removes the task definition and every completion record it owns,
// atomically.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.New("task not found: " + id)
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.records.DeleteByTaskTx(ctx, tx, id); err != nil {
			return err
		}
		return s.tasks.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("task deleted", zap.String("task_id", id))
	return nil
}

func normalizeDatePtr(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	v := DateOf(*d)
	return &v
}
