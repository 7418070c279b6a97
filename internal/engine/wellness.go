package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// WellnessPatch is a partial update of a day's metrics; nil means unchanged.
type WellnessPatch struct {
	WaterGlasses *int
	SleepHours   *float64
	Weight       **float64
	Note         **string
}

// LogWellness merges the patch into the day's entry, creating it when absent.
func (s *Service) LogWellness(ctx context.Context, date time.Time, patch WellnessPatch) (*storage.WellnessEntry, error) {
	day := DateOf(date)

	entry, err := s.wellness.Get(ctx, day)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &storage.WellnessEntry{Date: day}
	}

	if patch.WaterGlasses != nil {
		if *patch.WaterGlasses < 0 {
			return nil, ValidationError{Field: "water", Reason: "must not be negative"}
		}
		entry.WaterGlasses = *patch.WaterGlasses
	}
	if patch.SleepHours != nil {
		if *patch.SleepHours < 0 || *patch.SleepHours > 24 {
			return nil, ValidationError{Field: "sleep", Reason: "must be within 0 to 24 hours"}
		}
		entry.SleepHours = *patch.SleepHours
	}
	if patch.Weight != nil {
		if w := *patch.Weight; w != nil && *w <= 0 {
			return nil, ValidationError{Field: "weight", Reason: "must be positive"}
		}
		entry.Weight = *patch.Weight
	}
	if patch.Note != nil {
		entry.Note = *patch.Note
	}

	entry.UpdatedAt = time.Now().UTC()
	if err := s.wellness.Upsert(ctx, *entry); err != nil {
		return nil, err
	}
	s.log.Debug("wellness logged", zap.String("date", day.Format(storage.DateLayout)))
	return entry, nil
}

// Wellness returns the day's entry, or zero-valued defaults when none exists.
func (s *Service) Wellness(ctx context.Context, date time.Time) (*storage.WellnessEntry, error) {
	day := DateOf(date)
	entry, err := s.wellness.Get(ctx, day)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &storage.WellnessEntry{Date: day}, nil
	}
	return entry, nil
}
