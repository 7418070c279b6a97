package engine

import "github.com/chinmayanaik123/lifeOS/internal/storage"

// IsLocationAllowed reports whether a task is visible at the given location.
// A task with no location lists is visible everywhere. The deny-list always
// wins; a non-empty allow-list is exhaustive.
func IsLocationAllowed(t storage.Task, location string) bool {
	for _, loc := range t.ExcludedLocations {
		if loc == location {
			return false
		}
	}
	if len(t.AllowedLocations) > 0 {
		for _, loc := range t.AllowedLocations {
			if loc == location {
				return true
			}
		}
		return false
	}
	return true
}

// FilterByLocation returns the tasks visible at location, preserving order.
func FilterByLocation(tasks []storage.Task, location string) []storage.Task {
	out := make([]storage.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsLocationAllowed(t, location) {
			out = append(out, t)
		}
	}
	return out
}

// AllowedLocations resolves the task's location lists against a universe of
// known tags: with an allow-list the result is allow minus deny, otherwise
// the universe minus deny.
func AllowedLocations(t storage.Task, universe []string) []string {
	base := t.AllowedLocations
	if len(base) == 0 {
		base = universe
	}

	excluded := map[string]bool{}
	for _, loc := range t.ExcludedLocations {
		excluded[loc] = true
	}

	out := make([]string, 0, len(base))
	for _, loc := range base {
		if !excluded[loc] {
			out = append(out, loc)
		}
	}
	return out
}
