package cursor

import "fmt"

// Error reports a cursor operation that could not be satisfied at a
// given byte offset.
type Error struct {
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cursor error at offset %d: %s", e.Offset, e.Message)
}
