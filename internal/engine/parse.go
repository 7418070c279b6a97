package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriority accepts a plain integer or one of the importance labels
// high/medium/low, mapping labels to their canonical numeric priorities.
func ParsePriority(input string) (int, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "high":
		return PriorityHigh, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid priority: %q", input)
	}
	return n, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tues": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thur": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday..6=Saturday) into a sorted, de-duplicated set.
func ParseWeekdays(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	seen := map[int]bool{}
	var out []int
	for _, part := range strings.Split(input, ",") {
		p := strings.TrimSpace(strings.ToLower(part))
		if p == "" {
			continue
		}
		d, ok := weekdayNames[p]
		if !ok {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 || n > 6 {
				return nil, fmt.Errorf("invalid weekday: %q", part)
			}
			d = n
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}
