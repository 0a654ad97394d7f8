package domain

import "fmt"

// InvalidArgumentError reports a value object or entity constructed with an
// argument that violates one of its invariants. Validation always happens at
// construction time, never later.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidArg(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

// NotFoundError reports a lookup for an entity that does not exist.
// Repositories return an absence sentinel instead; translating absence into
// this error is the service layer's job.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}
