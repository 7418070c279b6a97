package engine

import (
	"testing"
	"time"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// 2026-01-05 is a Monday.
var monday = Date(2026, time.January, 5)

func intPtr(n int) *int { return &n }

func datePtr(d time.Time) *time.Time { return &d }

func TestOccursOnDaily(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceDaily),
		StartDate:      Date(2026, time.January, 1),
		EndDate:        datePtr(Date(2026, time.January, 10)),
	}

	cases := []struct {
		day  time.Time
		want bool
	}{
		{Date(2025, time.December, 31), false}, // before start
		{Date(2026, time.January, 1), true},    // start inclusive
		{Date(2026, time.January, 7), true},
		{Date(2026, time.January, 10), true},  // end inclusive
		{Date(2026, time.January, 11), false}, // after end
	}
	for _, c := range cases {
		if got := OccursOn(task, c.day); got != c.want {
			t.Errorf("OccursOn(daily, %s)=%v, want %v", c.day.Format(storage.DateLayout), got, c.want)
		}
	}
}

func TestOccursOnWeekly(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceWeekly),
		Weekdays:       []int{1, 3, 5}, // Mon, Wed, Fri
		StartDate:      Date(2026, time.January, 1),
	}

	if !OccursOn(task, monday) {
		t.Errorf("expected occurrence on Monday")
	}
	if !OccursOn(task, monday.AddDate(0, 0, 2)) { // Wednesday
		t.Errorf("expected occurrence on Wednesday")
	}
	if OccursOn(task, monday.AddDate(0, 0, 1)) { // Tuesday
		t.Errorf("did not expect occurrence on Tuesday")
	}
	if OccursOn(task, monday.AddDate(0, 0, 5)) { // Saturday
		t.Errorf("did not expect occurrence on Saturday")
	}
}

func TestOccursOnWeeklyWithoutWeekdaysNeverFires(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceWeekly),
		StartDate:      Date(2026, time.January, 1),
	}
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		if OccursOn(task, day) {
			t.Fatalf("weekly rule without weekdays fired on %s", day.Format(storage.DateLayout))
		}
	}
}

func TestOccursOnMonthly(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceMonthly),
		DayOfMonth:     intPtr(15),
		StartDate:      Date(2026, time.January, 1),
	}

	if !OccursOn(task, Date(2026, time.January, 15)) {
		t.Errorf("expected occurrence on the 15th")
	}
	if !OccursOn(task, Date(2026, time.February, 15)) {
		t.Errorf("expected occurrence in the next month")
	}
	if OccursOn(task, Date(2026, time.January, 16)) {
		t.Errorf("did not expect occurrence on the 16th")
	}

	// Day 31 simply never fires in short months.
	task.DayOfMonth = intPtr(31)
	if OccursOn(task, Date(2026, time.February, 28)) {
		t.Errorf("day-31 rule fired in February")
	}
	if !OccursOn(task, Date(2026, time.March, 31)) {
		t.Errorf("day-31 rule missed March 31")
	}
}

func TestOccursOnOnce(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceOnce),
		StartDate:      Date(2026, time.January, 5),
	}
	if !OccursOn(task, Date(2026, time.January, 5)) {
		t.Errorf("expected occurrence on the start date")
	}
	if OccursOn(task, Date(2026, time.January, 6)) {
		t.Errorf("one-shot task fired past its date")
	}
}

func TestOccursOnCustom(t *testing.T) {
	// Both constraints set: only a Monday that is also the 5th matches.
	task := storage.Task{
		RecurrenceKind: string(RecurrenceCustom),
		Weekdays:       []int{1},
		DayOfMonth:     intPtr(5),
		StartDate:      Date(2026, time.January, 1),
	}
	if !OccursOn(task, Date(2026, time.January, 5)) { // Monday the 5th
		t.Errorf("expected occurrence when both constraints match")
	}
	if OccursOn(task, Date(2026, time.January, 12)) { // Monday the 12th
		t.Errorf("weekday match alone should not fire")
	}
	if OccursOn(task, Date(2026, time.February, 5)) { // Thursday the 5th
		t.Errorf("day-of-month match alone should not fire")
	}

	// No constraints: degenerates to daily.
	bare := storage.Task{
		RecurrenceKind: string(RecurrenceCustom),
		StartDate:      Date(2026, time.January, 1),
	}
	if !OccursOn(bare, Date(2026, time.January, 9)) {
		t.Errorf("unconstrained custom rule should fire daily")
	}
}

func TestOccursOnUnknownKindFailsClosed(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: "fortnightly",
		StartDate:      Date(2026, time.January, 1),
	}
	if OccursOn(task, Date(2026, time.January, 5)) {
		t.Errorf("unknown recurrence kind must never fire")
	}
}

func TestOccurrencesInRange(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceWeekly),
		Weekdays:       []int{1}, // Mondays
		StartDate:      Date(2026, time.January, 1),
	}

	got := OccurrencesInRange(task, Date(2026, time.January, 1), Date(2026, time.January, 31))
	want := []time.Time{
		Date(2026, time.January, 5),
		Date(2026, time.January, 12),
		Date(2026, time.January, 19),
		Date(2026, time.January, 26),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d]=%s, want %s",
				i, got[i].Format(storage.DateLayout), want[i].Format(storage.DateLayout))
		}
	}
}

func TestNextAndPrevOccurrence(t *testing.T) {
	task := storage.Task{
		RecurrenceKind: string(RecurrenceWeekly),
		Weekdays:       []int{1},
		StartDate:      Date(2026, time.January, 1),
	}

	next, ok := NextOccurrence(task, monday, DefaultHorizonDays)
	if !ok || !next.Equal(Date(2026, time.January, 12)) {
		t.Errorf("NextOccurrence=%v ok=%v, want 2026-01-12", next, ok)
	}

	prev, ok := PrevOccurrence(task, Date(2026, time.January, 12), DefaultHorizonDays)
	if !ok || !prev.Equal(monday) {
		t.Errorf("PrevOccurrence=%v ok=%v, want 2026-01-05", prev, ok)
	}

	// An ended rule has nothing ahead; the scan must give up at the horizon.
	ended := storage.Task{
		RecurrenceKind: string(RecurrenceDaily),
		StartDate:      Date(2026, time.January, 1),
		EndDate:        datePtr(Date(2026, time.January, 10)),
	}
	if _, ok := NextOccurrence(ended, Date(2026, time.January, 10), DefaultHorizonDays); ok {
		t.Errorf("expected no occurrence after the end date")
	}
}
