package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, title, kind, recurrence_kind, weekdays, day_of_month,
	start_date, end_date, reminder_time, allowed_locations, excluded_locations,
	streak_enabled, priority, archived, options, created_at, updated_at`

func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	weekdays, err := marshalInts(t.Weekdays)
	if err != nil {
		return fmt.Errorf("marshal weekdays: %w", err)
	}
	allowed, err := marshalStrings(t.AllowedLocations)
	if err != nil {
		return fmt.Errorf("marshal allowed locations: %w", err)
	}
	excluded, err := marshalStrings(t.ExcludedLocations)
	if err != nil {
		return fmt.Errorf("marshal excluded locations: %w", err)
	}
	options, err := marshalStrings(t.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, title, kind, recurrence_kind, weekdays, day_of_month,
			start_date, end_date, reminder_time, allowed_locations, excluded_locations,
			streak_enabled, priority, archived, options, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Kind, t.RecurrenceKind, weekdays, t.DayOfMonth,
		formatDate(t.StartDate), formatDatePtr(t.EndDate), t.ReminderTime, allowed, excluded,
		boolToInt(t.StreakEnabled), t.Priority, boolToInt(t.Archived), options, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY priority ASC, title ASC`)
}

// ListActive returns all non-archived tasks.
func (r *TaskRepo) ListActive(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE archived = 0 ORDER BY priority ASC, title ASC`)
}

func (r *TaskRepo) list(ctx context.Context, query string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// Update persists all mutable fields of t. The caller owns updated_at.
func (r *TaskRepo) Update(ctx context.Context, t Task) error {
	weekdays, err := marshalInts(t.Weekdays)
	if err != nil {
		return fmt.Errorf("marshal weekdays: %w", err)
	}
	allowed, err := marshalStrings(t.AllowedLocations)
	if err != nil {
		return fmt.Errorf("marshal allowed locations: %w", err)
	}
	excluded, err := marshalStrings(t.ExcludedLocations)
	if err != nil {
		return fmt.Errorf("marshal excluded locations: %w", err)
	}
	options, err := marshalStrings(t.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, kind = ?, recurrence_kind = ?, weekdays = ?, day_of_month = ?,
			start_date = ?, end_date = ?, reminder_time = ?,
			allowed_locations = ?, excluded_locations = ?,
			streak_enabled = ?, priority = ?, archived = ?, options = ?, updated_at = ?
		WHERE id = ?
	`, t.Title, t.Kind, t.RecurrenceKind, weekdays, t.DayOfMonth,
		formatDate(t.StartDate), formatDatePtr(t.EndDate), t.ReminderTime,
		allowed, excluded,
		boolToInt(t.StreakEnabled), t.Priority, boolToInt(t.Archived), options, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) SetArchived(ctx context.Context, id string, archived bool, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET archived = ?, updated_at = ? WHERE id = ?`,
		boolToInt(archived), at, id)
	if err != nil {
		return fmt.Errorf("task set archived: %w", err)
	}
	return nil
}

func (r *TaskRepo) SetPriority(ctx context.Context, id string, priority int, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET priority = ?, updated_at = ? WHERE id = ?`,
		priority, at, id)
	if err != nil {
		return fmt.Errorf("task set priority: %w", err)
	}
	return nil
}

// DeleteTx removes a task row inside a caller-managed transaction; record
// cleanup is the engine's responsibility (see Service.DeleteTask).
func (r *TaskRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		id            string
		title         string
		kind          string
		recKind       string
		weekdaysRaw   sql.NullString
		dayOfMonth    sql.NullInt64
		startDate     string
		endDate       sql.NullString
		reminderTime  sql.NullString
		allowedRaw    sql.NullString
		excludedRaw   sql.NullString
		streakEnabled int
		priority      int
		archived      int
		optionsRaw    sql.NullString
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(
		&id, &title, &kind, &recKind, &weekdaysRaw, &dayOfMonth,
		&startDate, &endDate, &reminderTime, &allowedRaw, &excludedRaw,
		&streakEnabled, &priority, &archived, &optionsRaw, &createdAt, &updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	start, err := parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("task start date: %w", err)
	}
	end, err := parseDateNull(endDate)
	if err != nil {
		return nil, fmt.Errorf("task end date: %w", err)
	}

	weekdays, err := unmarshalInts(weekdaysRaw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal weekdays: %w", err)
	}
	allowed, err := unmarshalStrings(allowedRaw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal allowed locations: %w", err)
	}
	excluded, err := unmarshalStrings(excludedRaw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal excluded locations: %w", err)
	}
	options, err := unmarshalStrings(optionsRaw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal options: %w", err)
	}

	var dom *int
	if dayOfMonth.Valid {
		v := int(dayOfMonth.Int64)
		dom = &v
	}
	var reminder *string
	if reminderTime.Valid {
		v := reminderTime.String
		reminder = &v
	}

	return &Task{
		ID:                id,
		Title:             title,
		Kind:              kind,
		RecurrenceKind:    recKind,
		Weekdays:          weekdays,
		DayOfMonth:        dom,
		StartDate:         start,
		EndDate:           end,
		ReminderTime:      reminder,
		AllowedLocations:  allowed,
		ExcludedLocations: excluded,
		StreakEnabled:     streakEnabled != 0,
		Priority:          priority,
		Archived:          archived != 0,
		Options:           options,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func formatDate(d time.Time) string {
	return d.Format(DateLayout)
}

func formatDatePtr(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DateLayout)
	return &s
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func parseDateNull(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := parseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func marshalInts(v []int) (*string, error) {
	if len(v) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalInts(raw sql.NullString) ([]int, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var out []int
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalStrings(v []string) (*string, error) {
	if len(v) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalStrings(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}
