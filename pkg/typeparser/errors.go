package typeparser

import "fmt"

// SyntaxError reports a required delimiter or keyword missing at the
// expected cursor position.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// UnterminatedError reports a backtick-quoted field name or quoted
// comment that reached end of input before its closing marker.
type UnterminatedError struct {
	Offset int    // offset of the opening marker
	Token  string // "backtick-quoted field name" or "comment"
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated %s starting at offset %d", e.Token, e.Offset)
}

// FieldNameError reports a row field name that does not match the
// identifier grammar.
type FieldNameError struct {
	Offset int
	Found  string
}

func (e *FieldNameError) Error() string {
	return fmt.Sprintf("invalid row field name at offset %d: expected an identifier or backtick-quoted name, found %q", e.Offset, e.Found)
}

// EmptyInputError reports an input that is empty or entirely whitespace.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "empty type descriptor"
}

// DepthError reports type nesting deeper than the configured maximum.
type DepthError struct {
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("type nesting exceeds maximum depth %d", e.Max)
}

// Common expectation messages.
const (
	errExpectedOpenAngle  = "expected '<' after %s"
	errExpectedCloseAngle = "expected '>' closing %s"
	errExpectedTypeName   = "expected a type name, found %s"
	errExpectedMapComma   = "expected ',' between map key and value types"
	errExpectedRowComma   = "expected ',' or '>' after row field %q, found %s"
	errExpectedParamClose = "expected ')' closing parameter list of %s"
	errRowNeedsField      = "row type must declare at least one field"
	errBareNullability    = "expected a type name before nullability marker"
	errExpectedNull       = "expected NULL after NOT"
	errTrailingInput      = "unexpected trailing input %q"
)
