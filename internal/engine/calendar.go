package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// Indicator glyphs, emitted in the fixed order: completion state, note,
// finance, broken streak.
const (
	IndicatorAllDone      = "✅"
	IndicatorPartial      = "🟡"
	IndicatorNoneDone     = "⬜"
	IndicatorNote         = "📝"
	IndicatorFinance      = "💰"
	IndicatorStreakBroken = "⚠️"
)

// DaySummary is the per-date calendar aggregate.
type DaySummary struct {
	Date         time.Time
	Completed    int
	Scheduled    int
	HasNote      bool
	HasFinance   bool
	StreakBroken bool
	Indicators   []string
}

// BuildRange produces one DaySummary per day in [start, end]. The store is
// hit once per collection up front (tasks, records, note dates and finance
// dates load concurrently); each day is then computed from in-memory lookup
// maps.
func (s *Service) BuildRange(ctx context.Context, start, end time.Time, location string) ([]DaySummary, error) {
	first, last := DateOf(start), DateOf(end)
	if last.Before(first) {
		return nil, nil
	}

	var (
		tasks     []storage.Task
		records   []storage.Record
		noteDates []time.Time
		finDates  []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListByRange(gctx, first, last)
		return err
	})
	g.Go(func() error {
		var err error
		noteDates, err = s.wellness.NoteDatesInRange(gctx, first, last)
		return err
	})
	g.Go(func() error {
		var err error
		finDates, err = s.finance.DatesInRange(gctx, first, last)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// status by day key, then task id
	statusByDay := map[string]map[string]Status{}
	for _, rec := range records {
		key := DateOf(rec.Date).Format(storage.DateLayout)
		if statusByDay[key] == nil {
			statusByDay[key] = map[string]Status{}
		}
		statusByDay[key][rec.TaskID] = Status(rec.Status)
	}
	noteDays := dateSet(noteDates)
	financeDays := dateSet(finDates)

	var out []DaySummary
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(storage.DateLayout)
		statuses := statusByDay[key]

		summary := DaySummary{
			Date:       day,
			HasNote:    noteDays[key],
			HasFinance: financeDays[key],
		}

		for _, t := range tasks {
			if !OccursOn(t, day) || !IsLocationAllowed(t, location) {
				continue
			}
			summary.Scheduled++
			completed := statuses[t.ID] == StatusCompleted
			if completed {
				summary.Completed++
			}
			if t.StreakEnabled && !completed {
				summary.StreakBroken = true
			}
		}

		if summary.Scheduled > 0 {
			switch {
			case summary.Completed == summary.Scheduled:
				summary.Indicators = append(summary.Indicators, IndicatorAllDone)
			case summary.Completed > 0:
				summary.Indicators = append(summary.Indicators, IndicatorPartial)
			default:
				summary.Indicators = append(summary.Indicators, IndicatorNoneDone)
			}
		}
		if summary.HasNote {
			summary.Indicators = append(summary.Indicators, IndicatorNote)
		}
		if summary.HasFinance {
			summary.Indicators = append(summary.Indicators, IndicatorFinance)
		}
		if summary.StreakBroken {
			summary.Indicators = append(summary.Indicators, IndicatorStreakBroken)
		}

		out = append(out, summary)
	}
	return out, nil
}

// BuildMonth builds the summaries for every day of the given month.
func (s *Service) BuildMonth(ctx context.Context, year int, month time.Month, location string) ([]DaySummary, error) {
	first, last := MonthRange(year, month)
	return s.BuildRange(ctx, first, last, location)
}

func dateSet(dates []time.Time) map[string]bool {
	out := make(map[string]bool, len(dates))
	for _, d := range dates {
		out[DateOf(d).Format(storage.DateLayout)] = true
	}
	return out
}
