package engine

import (
	"context"
	"time"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// StreakStats summarizes a task's completion history up to a date.
type StreakStats struct {
	Current          int
	Longest          int
	TotalCompletions int
	TotalOccurrences int
	CompletionRate   float64 // percentage, 0..100
}

// CurrentStreak counts the unbroken run of completed occurrence days reading
// backward from upTo. Days on which the task is not scheduled are skipped
// outright: they neither extend nor break the run. The walk is a plain
// backward scan bounded by the rule's start date.
func (s *Service) CurrentStreak(ctx context.Context, taskID string, upTo time.Time) (int, error) {
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if t == nil || !t.StreakEnabled {
		return 0, nil
	}

	completed, err := s.completedDays(ctx, taskID)
	if err != nil {
		return 0, err
	}

	streak := 0
	start := DateOf(t.StartDate)
	for day := DateOf(upTo); !day.Before(start); day = day.AddDate(0, 0, -1) {
		if !OccursOn(*t, day) {
			continue
		}
		if !completed[day.Format(storage.DateLayout)] {
			break
		}
		streak++
	}
	return streak, nil
}

// IsStreakBroken reports whether the task's streak is broken on the given
// date: the task is scheduled there but carries no completed record. It is
// always false on non-occurrence days, for untracked tasks, and for unknown
// task ids.
func (s *Service) IsStreakBroken(ctx context.Context, taskID string, date time.Time) (bool, error) {
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return false, err
	}
	if t == nil || !t.StreakEnabled || !OccursOn(*t, date) {
		return false, nil
	}

	rec, err := s.records.GetByTaskAndDate(ctx, taskID, DateOf(date))
	if err != nil {
		return false, err
	}
	return rec == nil || Status(rec.Status) != StatusCompleted, nil
}

// LongestStreak finds the longest run of completions that are consecutive in
// occurrence terms: each completion date must be exactly the next scheduled
// occurrence after the previous one. Completion dates that are not occurrence
// dates (stale data) are ignored. The run is a property of the completion
// history alone; the streak tracking flag does not gate it.
func (s *Service) LongestStreak(ctx context.Context, taskID string) (int, error) {
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, nil
	}

	recs, err := s.records.ListCompletedByTask(ctx, taskID)
	if err != nil {
		return 0, err
	}

	longest, run := 0, 0
	var prev time.Time
	havePrev := false
	for _, rec := range recs {
		day := DateOf(rec.Date)
		if !OccursOn(*t, day) {
			continue
		}
		if havePrev {
			if next, ok := NextOccurrence(*t, prev, DefaultHorizonDays); ok && next.Equal(day) {
				run++
			} else {
				run = 1
			}
		} else {
			run = 1
			havePrev = true
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest, nil
}

// StreakStats gathers the streak and completion statistics for a task through
// upTo. The completion rate is 0 when there are no occurrences.
func (s *Service) StreakStats(ctx context.Context, taskID string, upTo time.Time) (StreakStats, error) {
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return StreakStats{}, err
	}
	if t == nil {
		return StreakStats{}, nil
	}

	current, err := s.CurrentStreak(ctx, taskID, upTo)
	if err != nil {
		return StreakStats{}, err
	}
	longest, err := s.LongestStreak(ctx, taskID)
	if err != nil {
		return StreakStats{}, err
	}

	recs, err := s.records.ListCompletedByTask(ctx, taskID)
	if err != nil {
		return StreakStats{}, err
	}
	end := DateOf(upTo)
	completions := 0
	for _, rec := range recs {
		day := DateOf(rec.Date)
		if !day.After(end) && OccursOn(*t, day) {
			completions++
		}
	}

	occurrences := len(OccurrencesInRange(*t, t.StartDate, end))

	// completions only counts occurrence days through upTo, so the rate
	// cannot exceed 100.
	rate := 0.0
	if occurrences > 0 {
		rate = 100 * float64(completions) / float64(occurrences)
	}

	return StreakStats{
		Current:          current,
		Longest:          longest,
		TotalCompletions: completions,
		TotalOccurrences: occurrences,
		CompletionRate:   rate,
	}, nil
}

// completedDays loads the task's completed record dates keyed by day string.
func (s *Service) completedDays(ctx context.Context, taskID string) (map[string]bool, error) {
	recs, err := s.records.ListCompletedByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(recs))
	for _, rec := range recs {
		out[DateOf(rec.Date).Format(storage.DateLayout)] = true
	}
	return out, nil
}
