package analytics

import "fmt"

// InvalidInputError reports an empty or malformed input series.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// InsufficientDataError reports that an operation needs more records
// than the series provides.
type InsufficientDataError struct {
	Op       string
	Required int
	Found    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: %d required, %d found", e.Op, e.Required, e.Found)
}

// ComputationError reports an unexpected numeric failure.
type ComputationError struct {
	Op      string
	Message string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error in %s: %s", e.Op, e.Message)
}
