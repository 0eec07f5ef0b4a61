package graph

import (
	"fmt"
	"strconv"

	"github.com/atlekbai/omega"
)

// Naming decides how the states and edges of a transition system are shown.
type Naming[E, Q, C any] interface {
	// Name is the graph name.
	Name() string

	// StateID is the node identifier of q. Identifiers must be unique and
	// non-empty.
	StateID(q omega.StateIndex, color Q) string

	// StateLabel is the text shown on the node of q.
	StateLabel(q omega.StateIndex, color Q) string

	// StateAttributes are extra node attributes; nil for none.
	StateAttributes(q omega.StateIndex, color Q) map[string]string

	// EdgeLabel is the text shown on e.
	EdgeLabel(e omega.Edge[E, C]) string

	// EdgeAttributes are extra edge attributes; nil for none.
	EdgeAttributes(e omega.Edge[E, C]) map[string]string
}

// DefaultNaming names states q0, q1 and so on and labels edges with the
// alphabet's rendering of their expression followed by their color.
type DefaultNaming[S comparable, E, Q, C any] struct {
	ts   omega.TransitionSystem[S, E, Q, C]
	name string

	// Accepting marks states drawn with a double circle; nil for none.
	Accepting func(color Q) bool
}

// NewDefaultNaming creates the default naming for ts.
func NewDefaultNaming[S comparable, E, Q, C any](ts omega.TransitionSystem[S, E, Q, C], name string) *DefaultNaming[S, E, Q, C] {
	return &DefaultNaming[S, E, Q, C]{ts: ts, name: name}
}

func (n *DefaultNaming[S, E, Q, C]) Name() string {
	return n.name
}

func (n *DefaultNaming[S, E, Q, C]) StateID(q omega.StateIndex, _ Q) string {
	return "q" + strconv.Itoa(q)
}

func (n *DefaultNaming[S, E, Q, C]) StateLabel(q omega.StateIndex, color Q) string {
	if s := show(color); s != "" {
		return "q" + strconv.Itoa(q) + ": " + s
	}
	return "q" + strconv.Itoa(q)
}

func (n *DefaultNaming[S, E, Q, C]) StateAttributes(_ omega.StateIndex, color Q) map[string]string {
	if n.Accepting != nil && n.Accepting(color) {
		return map[string]string{"shape": "doublecircle"}
	}
	return nil
}

func (n *DefaultNaming[S, E, Q, C]) EdgeLabel(e omega.Edge[E, C]) string {
	label := n.ts.Alphabet().Show(e.Expression)
	if c := show(e.Color); c != "" {
		label += " | " + c
	}
	return label
}

func (n *DefaultNaming[S, E, Q, C]) EdgeAttributes(omega.Edge[E, C]) map[string]string {
	return nil
}

func show(v any) string {
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case struct{}:
		return ""
	}
	return fmt.Sprintf("%v", v)
}
