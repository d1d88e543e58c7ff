package typetree

import "fmt"

// InvariantViolationError reports a tree that breaks a structural
// invariant: a scalar carrying members, or a compound node with the
// wrong member count. Correctly parsed trees cannot trigger it; it
// guards trees decoded from external data.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("type tree invariant violated: %s", e.Message)
}
