package syntax

import "fmt"

// SyntaxError reports malformed HOA text.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("hoa: %v: %s", e.Pos, e.Msg)
}

func errorf(pos Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Diagnostic is a non-fatal remark about well-formed HOA text, such as an
// unrecognized header.
type Diagnostic struct {
	Pos     Position
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s", d.Pos, d.Message)
}
