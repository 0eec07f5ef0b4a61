package omega

// StateIndex identifies a state within one transition system. Indices are
// plain integers; no edge owns a pointer to its endpoints.
type StateIndex = int

// Edge describes a transition between two states.
type Edge[E, C any] struct {
	// Source is the state the edge leaves.
	Source StateIndex

	// Expression is the alphabet expression labelling the edge.
	Expression E

	// Color is the edge color, e.g. an acceptance mask or a priority.
	Color C

	// Target is the state the edge enters.
	Target StateIndex
}

// NewEdge creates a new edge.
func NewEdge[E, C any](source StateIndex, expr E, color C, target StateIndex) Edge[E, C] {
	return Edge[E, C]{
		Source:     source,
		Expression: expr,
		Color:      color,
		Target:     target,
	}
}

// IsSelfLoop returns true if the edge leaves and enters the same state.
func (e Edge[E, C]) IsSelfLoop() bool {
	return e.Source == e.Target
}

// WithColor returns a copy of the edge carrying color c.
func WithColor[E, C, D any](e Edge[E, C], c D) Edge[E, D] {
	return Edge[E, D]{Source: e.Source, Expression: e.Expression, Color: c, Target: e.Target}
}
