package engine

import "fmt"

// ValidationError reports invalid user input on a create/update call.
// Read paths never return it; a missing entity reads as a nil result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
