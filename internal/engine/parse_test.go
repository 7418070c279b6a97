package engine

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"high", PriorityHigh, true},
		{"HIGH", PriorityHigh, true},
		{"medium", PriorityMedium, true},
		{"med", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"5", 5, true},
		{"0", 0, true},
		{"urgent", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParsePriority(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParsePriority(%q)=%d,%v, want %d", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParsePriority(%q) succeeded, want error", c.in)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("fri, Mon,wed")
	if err != nil {
		t.Fatalf("ParseWeekdays: %v", err)
	}
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v (sorted)", got, want)
		}
	}

	got, err = ParseWeekdays("1,monday,1")
	if err != nil {
		t.Fatalf("ParseWeekdays: %v", err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("duplicates not collapsed: %v", got)
	}

	if got, err := ParseWeekdays(""); err != nil || got != nil {
		t.Errorf("empty input: got %v, %v", got, err)
	}
	if _, err := ParseWeekdays("7"); err == nil {
		t.Errorf("expected error for weekday 7")
	}
	if _, err := ParseWeekdays("funday"); err == nil {
		t.Errorf("expected error for unknown name")
	}
}

func TestParseKinds(t *testing.T) {
	if k, err := ParseTaskKind(" Counter "); err != nil || k != TaskKindCounter {
		t.Errorf("ParseTaskKind: %v, %v", k, err)
	}
	if _, err := ParseTaskKind("slider"); err == nil {
		t.Errorf("expected error for unknown task kind")
	}

	if k, err := ParseRecurrenceKind("WEEKLY"); err != nil || k != RecurrenceWeekly {
		t.Errorf("ParseRecurrenceKind: %v, %v", k, err)
	}
	if _, err := ParseRecurrenceKind("fortnightly"); err == nil {
		t.Errorf("expected error for unknown recurrence kind")
	}

	if k, err := ParseFinanceKind("in"); err != nil || k != FinanceIncome {
		t.Errorf("ParseFinanceKind(in): %v, %v", k, err)
	}
	if k, err := ParseFinanceKind("out"); err != nil || k != FinanceExpense {
		t.Errorf("ParseFinanceKind(out): %v, %v", k, err)
	}
	if _, err := ParseFinanceKind("transfer"); err == nil {
		t.Errorf("expected error for unknown finance kind")
	}
}
