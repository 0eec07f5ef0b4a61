package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrSymbolTooWide is returned when a symbol over more than four
	// propositions is packed into a single letter.
	ErrSymbolTooWide = errors.New("symbol is too wide to be packed into a letter")

	// ErrUnsatisfiable is the panic value when an expression that matches no
	// symbol is rendered. Callers building expressions from untrusted input
	// should check IsFalse first.
	ErrUnsatisfiable = errors.New("expression is unsatisfiable")
)

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}
