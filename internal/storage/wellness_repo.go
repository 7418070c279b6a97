package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type WellnessRepo struct {
	db *sql.DB
}

func NewWellnessRepo(db *sql.DB) *WellnessRepo {
	return &WellnessRepo{db: db}
}

func (r *WellnessRepo) Upsert(ctx context.Context, e WellnessEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wellness (date, water_glasses, sleep_hours, weight, note, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			water_glasses = excluded.water_glasses,
			sleep_hours = excluded.sleep_hours,
			weight = excluded.weight,
			note = excluded.note,
			updated_at = excluded.updated_at
	`, formatDate(e.Date), e.WaterGlasses, e.SleepHours, e.Weight, e.Note, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("wellness upsert: %w", err)
	}
	return nil
}

func (r *WellnessRepo) Get(ctx context.Context, date time.Time) (*WellnessEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT date, water_glasses, sleep_hours, weight, note, updated_at
		FROM wellness
		WHERE date = ?
	`, formatDate(date))

	var (
		d         string
		water     int
		sleep     float64
		weight    sql.NullFloat64
		note      sql.NullString
		updatedAt time.Time
	)
	if err := row.Scan(&d, &water, &sleep, &weight, &note, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("wellness scan: %w", err)
	}

	day, err := parseDate(d)
	if err != nil {
		return nil, fmt.Errorf("wellness date: %w", err)
	}
	var w *float64
	if weight.Valid {
		v := weight.Float64
		w = &v
	}
	var n *string
	if note.Valid {
		v := note.String
		n = &v
	}
	return &WellnessEntry{
		Date:         day,
		WaterGlasses: water,
		SleepHours:   sleep,
		Weight:       w,
		Note:         n,
		UpdatedAt:    updatedAt,
	}, nil
}

// NoteDatesInRange returns the dates within [start, end] that carry a
// non-empty wellness note.
func (r *WellnessRepo) NoteDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date FROM wellness
		WHERE date >= ? AND date <= ? AND note IS NOT NULL AND note != ''
		ORDER BY date ASC
	`, formatDate(start), formatDate(end))
	if err != nil {
		return nil, fmt.Errorf("wellness note dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("wellness note date scan: %w", err)
		}
		day, err := parseDate(d)
		if err != nil {
			return nil, fmt.Errorf("wellness note date: %w", err)
		}
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wellness note date rows: %w", err)
	}
	return out, nil
}
