package queries

import "fmt"

// ValidationError flags malformed search input (bad date strings, mainly).
// It is always recoverable by the caller and never logged as a fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
