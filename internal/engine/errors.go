package engine

import "fmt"

// InsufficientDriversError aborts a run before any allocation happens.
type InsufficientDriversError struct {
	Available int
	Requested int
}

func (e *InsufficientDriversError) Error() string {
	return fmt.Sprintf("only %d drivers available, but %d requested", e.Available, e.Requested)
}
