package sun

import (
	"fmt"
	"time"
)

// ValidationError represents a validation error for observer or builder input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NoEventError is returned when the sun does not rise or set within the
// search window, as happens during polar day and polar night.
type NoEventError struct {
	Event Event
	After time.Time
	Days  int
}

func (e *NoEventError) Error() string {
	return fmt.Sprintf("no %s within %d days after %s", e.Event, e.Days, e.After.UTC().Format(time.RFC3339))
}

// DateError ties a failure to the date being computed
type DateError struct {
	Date DateKey
	Err  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("sun times for %s: %v", e.Date, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
