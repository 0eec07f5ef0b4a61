package omega

import (
	"fmt"
	"iter"

	"github.com/atlekbai/omega/alphabet"
)

// DTS is a deterministic transition system: a wrapper around an NTS whose
// edges leaving any one state never overlap. The wrapper owns the NTS.
type DTS[S comparable, E, Q, C any] struct {
	nts *NTS[S, E, Q, C]
}

var (
	_ Deterministic[rune, rune, int, int]    = (*DTS[rune, rune, int, int])(nil)
	_ PredecessorIterable[rune, int]         = (*DTS[rune, rune, int, int])(nil)
	_ Sproutable[rune, int, int]             = (*DTS[rune, rune, int, int])(nil)
	_ TransitionSystem[rune, rune, int, int] = (*NTS[rune, rune, int, int])(nil)
)

// NewDTS takes ownership of nts and checks that it is deterministic. On
// failure the returned error is a *NotDeterministicError naming the first
// offending state.
func NewDTS[S comparable, E, Q, C any](nts *NTS[S, E, Q, C]) (*DTS[S, E, Q, C], error) {
	if q, bad := nts.firstNondeterministicState(); bad {
		return nil, &NotDeterministicError{State: q}
	}
	return &DTS[S, E, Q, C]{nts: nts}, nil
}

// MustDTS is like NewDTS but panics on failure.
func MustDTS[S comparable, E, Q, C any](nts *NTS[S, E, Q, C]) *DTS[S, E, Q, C] {
	d, err := NewDTS(nts)
	if err != nil {
		panic(err)
	}
	return d
}

// Into releases the underlying NTS. The DTS must not be used afterwards.
func (d *DTS[S, E, Q, C]) Into() *NTS[S, E, Q, C] {
	nts := d.nts
	d.nts = nil
	return nts
}

// Alphabet returns the alphabet of the system.
func (d *DTS[S, E, Q, C]) Alphabet() alphabet.Alphabet[S, E] { return d.nts.Alphabet() }

// Size returns the number of states.
func (d *DTS[S, E, Q, C]) Size() int { return d.nts.Size() }

// EdgeCount returns the number of edges.
func (d *DTS[S, E, Q, C]) EdgeCount() int { return d.nts.EdgeCount() }

// StateIndices yields the state indices in increasing order.
func (d *DTS[S, E, Q, C]) StateIndices() iter.Seq[StateIndex] { return d.nts.StateIndices() }

// StateColor returns the color of q and whether q exists.
func (d *DTS[S, E, Q, C]) StateColor(q StateIndex) (Q, bool) { return d.nts.StateColor(q) }

// EdgesFrom yields the edges leaving q; ok is false if q does not exist.
func (d *DTS[S, E, Q, C]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	return d.nts.EdgesFrom(q)
}

// Edges iterates over all edges in state order.
func (d *DTS[S, E, Q, C]) Edges() iter.Seq[Edge[E, C]] { return d.nts.Edges() }

// Predecessors yields the edges entering q; ok is false if q does not exist.
func (d *DTS[S, E, Q, C]) Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	return d.nts.Predecessors(q)
}

// MaybeInitialState returns the initial state, if one is set.
func (d *DTS[S, E, Q, C]) MaybeInitialState() (StateIndex, bool) { return d.nts.MaybeInitialState() }

// Transition returns the edge leaving q on sym.
func (d *DTS[S, E, Q, C]) Transition(q StateIndex, sym S) (Edge[E, C], bool) {
	edges, ok := d.nts.EdgesFrom(q)
	if !ok {
		return Edge[E, C]{}, false
	}
	return transition(d.nts.alphabet, q, edges, sym)
}

// Edge returns the edge leaving q whose expression satisfies match.
func (d *DTS[S, E, Q, C]) Edge(q StateIndex, match Matcher[E]) (Edge[E, C], bool) {
	edges, ok := d.nts.EdgesFrom(q)
	if !ok {
		return Edge[E, C]{}, false
	}
	return findEdge(q, edges, match)
}

// AddState adds a state with the given color and returns its index.
func (d *DTS[S, E, Q, C]) AddState(color Q) StateIndex { return d.nts.AddState(color) }

// SetStateColor recolors q.
func (d *DTS[S, E, Q, C]) SetStateColor(q StateIndex, color Q) { d.nts.SetStateColor(q, color) }

// SetInitial marks q as the initial state.
func (d *DTS[S, E, Q, C]) SetInitial(q StateIndex) { d.nts.SetInitial(q) }

// RemoveEdges removes the edges leaving q labelled expr and reports whether any existed.
func (d *DTS[S, E, Q, C]) RemoveEdges(q StateIndex, expr E) bool { return d.nts.RemoveEdges(q, expr) }

// TryAddEdge adds e unless its expression overlaps an edge already leaving
// e.Source, in which case a *NotDeterministicError is returned.
func (d *DTS[S, E, Q, C]) TryAddEdge(e Edge[E, C]) error {
	edges, ok := d.nts.EdgesFrom(e.Source)
	if !ok {
		return &InvalidStateError{Op: "AddEdge", State: e.Source, Size: d.nts.Size()}
	}
	for o := range edges {
		if d.nts.alphabet.Overlaps(o.Expression, e.Expression) {
			return &NotDeterministicError{State: e.Source}
		}
	}
	d.nts.AddEdge(e)
	return nil
}

// AddEdge is like TryAddEdge but panics when e would break determinism.
func (d *DTS[S, E, Q, C]) AddEdge(e Edge[E, C]) {
	if err := d.TryAddEdge(e); err != nil {
		panic(fmt.Errorf("AddEdge: %w", err))
	}
}
