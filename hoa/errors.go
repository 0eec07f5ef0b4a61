package hoa

import (
	"fmt"

	"github.com/atlekbai/omega/hoa/syntax"
)

// ConversionError reports a well-formed HOA automaton that cannot be turned
// into an omega automaton.
type ConversionError struct {
	Automaton string
	Pos       syntax.Position
	Msg       string
	Err       error
}

func (e *ConversionError) Error() string {
	name := e.Automaton
	if name == "" {
		name = "unnamed automaton"
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("hoa: %s: %v: %s", name, e.Pos, e.Msg)
	}
	return fmt.Sprintf("hoa: %s: %s", name, e.Msg)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
