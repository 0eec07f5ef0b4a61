package omega

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDeterministic is returned when a transition system has two
	// overlapping edges leaving the same state.
	ErrNotDeterministic = errors.New("transition system is not deterministic")

	// ErrUnsupported is returned for acceptance conditions and conversions
	// that are recognized but not implemented.
	ErrUnsupported = errors.New("unsupported")

	// ErrNotPowerOfTwo is returned when an explicit alphabet cannot be read
	// as valuations of propositions.
	ErrNotPowerOfTwo = errors.New("alphabet size is not a power of two")
)

// InvalidOperationError indicates an operation that breaks an invariant of the
// receiver, for instance a second matching edge in a deterministic system.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

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

// InvalidStateError is raised when an operation refers to a state index that
// does not exist in the transition system.
type InvalidStateError struct {
	Op    string
	State StateIndex
	Size  int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: state %d does not exist (transition system has %d states)", e.Op, e.State, e.Size)
}

// NotDeterministicError reports the first state found with overlapping
// outgoing edges.
type NotDeterministicError struct {
	State StateIndex
}

func (e *NotDeterministicError) Error() string {
	return fmt.Sprintf("state %d has overlapping outgoing edges", e.State)
}

func (e *NotDeterministicError) Unwrap() error {
	return ErrNotDeterministic
}

// UnsupportedConditionError is returned when an acceptance condition other
// than parity is evaluated.
type UnsupportedConditionError struct {
	Condition AcceptanceCondition
}

func (e *UnsupportedConditionError) Error() string {
	return fmt.Sprintf("acceptance condition %v cannot be evaluated", e.Condition)
}

func (e *UnsupportedConditionError) Unwrap() error {
	return ErrUnsupported
}

// AlphabetConversionError is returned when an automaton cannot be moved to a
// different alphabet.
type AlphabetConversionError struct {
	Size int
	Err  error
}

func (e *AlphabetConversionError) Error() string {
	return fmt.Sprintf("cannot convert alphabet of size %d: %v", e.Size, e.Err)
}

func (e *AlphabetConversionError) Unwrap() error {
	return e.Err
}
