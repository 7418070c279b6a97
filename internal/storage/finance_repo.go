package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type FinanceRepo struct {
	db *sql.DB
}

func NewFinanceRepo(db *sql.DB) *FinanceRepo {
	return &FinanceRepo{db: db}
}

const financeColumns = `id, date, kind, amount_cents, category, note, created_at`

func (r *FinanceRepo) Insert(ctx context.Context, e FinanceEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO finance_entries (id, date, kind, amount_cents, category, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, formatDate(e.Date), e.Kind, e.AmountCents, e.Category, e.Note, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("finance insert: %w", err)
	}
	return nil
}

func (r *FinanceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("finance delete: %w", err)
	}
	return nil
}

func (r *FinanceRepo) ListByDate(ctx context.Context, date time.Time) ([]FinanceEntry, error) {
	return r.list(ctx, `SELECT `+financeColumns+` FROM finance_entries WHERE date = ? ORDER BY created_at ASC`,
		formatDate(date))
}

func (r *FinanceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]FinanceEntry, error) {
	return r.list(ctx, `SELECT `+financeColumns+` FROM finance_entries WHERE date >= ? AND date <= ? ORDER BY date ASC, created_at ASC`,
		formatDate(start), formatDate(end))
}

// DatesInRange returns the distinct dates within [start, end] that have at
// least one finance entry.
func (r *FinanceRepo) DatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT date FROM finance_entries
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, formatDate(start), formatDate(end))
	if err != nil {
		return nil, fmt.Errorf("finance dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("finance date scan: %w", err)
		}
		day, err := parseDate(d)
		if err != nil {
			return nil, fmt.Errorf("finance date: %w", err)
		}
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finance date rows: %w", err)
	}
	return out, nil
}

// Totals returns income and expense sums (in cents) over [start, end].
func (r *FinanceRepo) Totals(ctx context.Context, start, end time.Time) (income, expense int64, err error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'income' THEN amount_cents ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount_cents ELSE 0 END), 0)
		FROM finance_entries
		WHERE date >= ? AND date <= ?
	`, formatDate(start), formatDate(end))
	if err := row.Scan(&income, &expense); err != nil {
		return 0, 0, fmt.Errorf("finance totals: %w", err)
	}
	return income, expense, nil
}

func (r *FinanceRepo) list(ctx context.Context, query string, args ...any) ([]FinanceEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finance list: %w", err)
	}
	defer rows.Close()

	var out []FinanceEntry
	for rows.Next() {
		e, err := scanFinanceRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finance list rows: %w", err)
	}
	return out, nil
}

func scanFinanceRow(row scanner) (*FinanceEntry, error) {
	var (
		id        string
		date      string
		kind      string
		amount    int64
		category  string
		note      sql.NullString
		createdAt time.Time
	)
	if err := row.Scan(&id, &date, &kind, &amount, &category, &note, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("finance scan: %w", err)
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("finance entry date: %w", err)
	}
	var n *string
	if note.Valid {
		v := note.String
		n = &v
	}
	return &FinanceEntry{
		ID:          id,
		Date:        day,
		Kind:        kind,
		AmountCents: amount,
		Category:    category,
		Note:        n,
		CreatedAt:   createdAt,
	}, nil
}
