package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

const recordColumns = `id, task_id, date, status, value, completed_at`

// Upsert writes the record for its (task, date) pair, replacing any prior
// state. The composite primary key enforces one row per pair.
func (r *RecordRepo) Upsert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (id, task_id, date, status, value, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			value = excluded.value,
			completed_at = excluded.completed_at
	`, rec.ID, rec.TaskID, formatDate(rec.Date), rec.Status, rec.Value, rec.CompletedAt)
	if err != nil {
		return fmt.Errorf("record upsert: %w", err)
	}
	return nil
}

func (r *RecordRepo) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	return scanRecordRow(row)
}

func (r *RecordRepo) GetByTaskAndDate(ctx context.Context, taskID string, date time.Time) (*Record, error) {
	return r.Get(ctx, RecordID(taskID, date))
}

func (r *RecordRepo) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE date = ? ORDER BY id ASC`,
		formatDate(date))
}

func (r *RecordRepo) ListByRange(ctx context.Context, start, end time.Time) ([]Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE date >= ? AND date <= ? ORDER BY date ASC, id ASC`,
		formatDate(start), formatDate(end))
}

func (r *RecordRepo) ListByTask(ctx context.Context, taskID string) ([]Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE task_id = ? ORDER BY date ASC`,
		taskID)
}

// ListCompletedByTask returns the task's completed-status records in date order.
func (r *RecordRepo) ListCompletedByTask(ctx context.Context, taskID string) ([]Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE task_id = ? AND status = 'completed' ORDER BY date ASC`,
		taskID)
}

// DeleteByTaskTx removes every record of a task inside a caller-managed
// transaction (task deletion cascade).
func (r *RecordRepo) DeleteByTaskTx(ctx context.Context, tx *sql.Tx, taskID string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("records delete by task: %w", err)
	}
	return nil
}

func (r *RecordRepo) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("record list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record list rows: %w", err)
	}
	return out, nil
}

func scanRecordRow(row scanner) (*Record, error) {
	var (
		id          string
		taskID      string
		date        string
		status      string
		value       sql.NullString
		completedAt sql.NullTime
	)

	if err := row.Scan(&id, &taskID, &date, &status, &value, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("record scan: %w", err)
	}

	d, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("record date: %w", err)
	}

	var val *string
	if value.Valid {
		v := value.String
		val = &v
	}
	var comp *time.Time
	if completedAt.Valid {
		v := completedAt.Time
		comp = &v
	}

	return &Record{
		ID:          id,
		TaskID:      taskID,
		Date:        d,
		Status:      status,
		Value:       val,
		CompletedAt: comp,
	}, nil
}
