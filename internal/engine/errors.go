// Package engine orchestrates the three scoring layers over one set of inputs.
package engine

import "fmt"

// ValidationError reports a structurally required input field that is
// missing or malformed. The caller is expected to refuse to score, not to
// approximate one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}
