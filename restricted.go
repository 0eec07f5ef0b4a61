package omega

import (
	"cmp"
	"iter"

	"github.com/atlekbai/omega/alphabet"
)

// StateFilter decides whether a state remains visible through a view.
type StateFilter func(StateIndex) bool

// Keep returns a filter showing only the given states.
func Keep(states ...StateIndex) StateFilter {
	set := make(map[StateIndex]struct{}, len(states))
	for _, q := range states {
		set[q] = struct{}{}
	}
	return func(q StateIndex) bool {
		_, ok := set[q]
		return ok
	}
}

// Exclude returns a filter hiding the given states.
func Exclude(states ...StateIndex) StateFilter {
	keep := Keep(states...)
	return func(q StateIndex) bool { return !keep(q) }
}

// RestrictByStateIndex is a non-owning view hiding the states rejected by a
// filter. Hidden states disappear from every query, and edges entering them
// are dropped rather than redirected.
type RestrictByStateIndex[S comparable, E, Q, C any] struct {
	ts   TransitionSystem[S, E, Q, C]
	keep StateFilter
}

var (
	_ TransitionSystem[rune, rune, int, int] = (*RestrictByStateIndex[rune, rune, int, int])(nil)
	_ PredecessorIterable[rune, int]         = (*RestrictByStateIndex[rune, rune, int, int])(nil)
	_ Deterministic[rune, rune, int, int]    = (*RestrictedDeterministic[rune, rune, int, int])(nil)
)

// RestrictStates wraps ts, showing only the states keep accepts.
func RestrictStates[S comparable, E, Q, C any](ts TransitionSystem[S, E, Q, C], keep StateFilter) *RestrictByStateIndex[S, E, Q, C] {
	return &RestrictByStateIndex[S, E, Q, C]{ts: ts, keep: keep}
}

// Underlying returns the wrapped system.
func (r *RestrictByStateIndex[S, E, Q, C]) Underlying() TransitionSystem[S, E, Q, C] {
	return r.ts
}

// Alphabet returns the alphabet the edges are labelled over.
func (r *RestrictByStateIndex[S, E, Q, C]) Alphabet() alphabet.Alphabet[S, E] {
	return r.ts.Alphabet()
}

// StateIndices yields the visible states in increasing order.
func (r *RestrictByStateIndex[S, E, Q, C]) StateIndices() iter.Seq[StateIndex] {
	return func(yield func(StateIndex) bool) {
		for q := range r.ts.StateIndices() {
			if r.keep(q) && !yield(q) {
				return
			}
		}
	}
}

// StateColor returns the color of q if q is visible.
func (r *RestrictByStateIndex[S, E, Q, C]) StateColor(q StateIndex) (Q, bool) {
	if !r.keep(q) {
		var zero Q
		return zero, false
	}
	return r.ts.StateColor(q)
}

// EdgesFrom yields the visible edges leaving q.
func (r *RestrictByStateIndex[S, E, Q, C]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	if !r.keep(q) {
		return nil, false
	}
	edges, ok := r.ts.EdgesFrom(q)
	if !ok {
		return nil, false
	}
	return r.visible(edges), true
}

// visible drops edges with a hidden endpoint.
func (r *RestrictByStateIndex[S, E, Q, C]) visible(edges iter.Seq[Edge[E, C]]) iter.Seq[Edge[E, C]] {
	return func(yield func(Edge[E, C]) bool) {
		for e := range edges {
			if r.keep(e.Source) && r.keep(e.Target) && !yield(e) {
				return
			}
		}
	}
}

// MaybeInitialState returns the initial state if it is visible.
func (r *RestrictByStateIndex[S, E, Q, C]) MaybeInitialState() (StateIndex, bool) {
	q, ok := r.ts.MaybeInitialState()
	if !ok || !r.keep(q) {
		return -1, false
	}
	return q, true
}

// Predecessors yields the visible edges entering q. The underlying system's
// own index is used when it has one.
func (r *RestrictByStateIndex[S, E, Q, C]) Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	if !r.keep(q) {
		return nil, false
	}
	var (
		edges iter.Seq[Edge[E, C]]
		ok    bool
	)
	if p, isPred := r.ts.(PredecessorIterable[E, C]); isPred {
		edges, ok = p.Predecessors(q)
	} else {
		edges, ok = ScanPredecessors(r.ts, q)
	}
	if !ok {
		return nil, false
	}
	return r.visible(edges), true
}

// RestrictedDeterministic is a state restriction over a deterministic system.
type RestrictedDeterministic[S comparable, E, Q, C any] struct {
	*RestrictByStateIndex[S, E, Q, C]
	d Deterministic[S, E, Q, C]
}

// RestrictDeterministicStates wraps d, showing only the states keep accepts.
func RestrictDeterministicStates[S comparable, E, Q, C any](d Deterministic[S, E, Q, C], keep StateFilter) *RestrictedDeterministic[S, E, Q, C] {
	return &RestrictedDeterministic[S, E, Q, C]{
		RestrictByStateIndex: RestrictStates[S, E, Q, C](d, keep),
		d:                    d,
	}
}

// Transition is like the underlying Transition but hides edges with a hidden
// endpoint.
func (r *RestrictedDeterministic[S, E, Q, C]) Transition(q StateIndex, sym S) (Edge[E, C], bool) {
	if !r.keep(q) {
		return Edge[E, C]{}, false
	}
	e, ok := r.d.Transition(q, sym)
	if !ok || !r.keep(e.Target) {
		return Edge[E, C]{}, false
	}
	return e, true
}

// Edge is like the underlying Edge but hides edges with a hidden endpoint.
func (r *RestrictedDeterministic[S, E, Q, C]) Edge(q StateIndex, match Matcher[E]) (Edge[E, C], bool) {
	if !r.keep(q) {
		return Edge[E, C]{}, false
	}
	e, ok := r.d.Edge(q, match)
	if !ok || !r.keep(e.Target) {
		return Edge[E, C]{}, false
	}
	return e, true
}

// EdgeColorRestricted is a non-owning view showing only edges whose color
// lies within an inclusive range. States are untouched.
type EdgeColorRestricted[S comparable, E, Q any, C cmp.Ordered] struct {
	ts     TransitionSystem[S, E, Q, C]
	lo, hi C
}

var (
	_ TransitionSystem[rune, rune, int, int] = (*EdgeColorRestricted[rune, rune, int, int])(nil)
	_ Deterministic[rune, rune, int, int]    = (*DeterministicEdgeColorRestricted[rune, rune, int, int])(nil)
)

// RestrictEdgeColors wraps ts, showing only edges colored within [lo, hi].
func RestrictEdgeColors[S comparable, E, Q any, C cmp.Ordered](ts TransitionSystem[S, E, Q, C], lo, hi C) *EdgeColorRestricted[S, E, Q, C] {
	return &EdgeColorRestricted[S, E, Q, C]{ts: ts, lo: lo, hi: hi}
}

// Range returns the inclusive color bounds.
func (r *EdgeColorRestricted[S, E, Q, C]) Range() (C, C) {
	return r.lo, r.hi
}

func (r *EdgeColorRestricted[S, E, Q, C]) inRange(c C) bool {
	return r.lo <= c && c <= r.hi
}

func (r *EdgeColorRestricted[S, E, Q, C]) filter(edges iter.Seq[Edge[E, C]]) iter.Seq[Edge[E, C]] {
	return func(yield func(Edge[E, C]) bool) {
		for e := range edges {
			if r.inRange(e.Color) && !yield(e) {
				return
			}
		}
	}
}

// Alphabet returns the alphabet the edges are labelled over.
func (r *EdgeColorRestricted[S, E, Q, C]) Alphabet() alphabet.Alphabet[S, E] {
	return r.ts.Alphabet()
}

// StateIndices yields every state of the wrapped system.
func (r *EdgeColorRestricted[S, E, Q, C]) StateIndices() iter.Seq[StateIndex] {
	return r.ts.StateIndices()
}

// StateColor returns the color of q in the wrapped system.
func (r *EdgeColorRestricted[S, E, Q, C]) StateColor(q StateIndex) (Q, bool) {
	return r.ts.StateColor(q)
}

// EdgesFrom yields the edges leaving q whose color is in range.
func (r *EdgeColorRestricted[S, E, Q, C]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	edges, ok := r.ts.EdgesFrom(q)
	if !ok {
		return nil, false
	}
	return r.filter(edges), true
}

// MaybeInitialState returns the initial state of the wrapped system.
func (r *EdgeColorRestricted[S, E, Q, C]) MaybeInitialState() (StateIndex, bool) {
	return r.ts.MaybeInitialState()
}

// Predecessors yields the edges entering q whose color is in range.
func (r *EdgeColorRestricted[S, E, Q, C]) Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	var (
		edges iter.Seq[Edge[E, C]]
		ok    bool
	)
	if p, isPred := r.ts.(PredecessorIterable[E, C]); isPred {
		edges, ok = p.Predecessors(q)
	} else {
		edges, ok = ScanPredecessors(r.ts, q)
	}
	if !ok {
		return nil, false
	}
	return r.filter(edges), true
}

// DeterministicEdgeColorRestricted is an edge color restriction over a
// deterministic system.
type DeterministicEdgeColorRestricted[S comparable, E, Q any, C cmp.Ordered] struct {
	*EdgeColorRestricted[S, E, Q, C]
	d Deterministic[S, E, Q, C]
}

// RestrictDeterministicEdgeColors wraps d, showing only edges colored within [lo, hi].
func RestrictDeterministicEdgeColors[S comparable, E, Q any, C cmp.Ordered](d Deterministic[S, E, Q, C], lo, hi C) *DeterministicEdgeColorRestricted[S, E, Q, C] {
	return &DeterministicEdgeColorRestricted[S, E, Q, C]{
		EdgeColorRestricted: RestrictEdgeColors[S, E, Q, C](d, lo, hi),
		d:                   d,
	}
}

// Transition is like the underlying Transition but hides edges colored out
// of range.
func (r *DeterministicEdgeColorRestricted[S, E, Q, C]) Transition(q StateIndex, sym S) (Edge[E, C], bool) {
	e, ok := r.d.Transition(q, sym)
	if !ok || !r.inRange(e.Color) {
		return Edge[E, C]{}, false
	}
	return e, true
}

// Edge is like the underlying Edge but hides edges colored out of range.
func (r *DeterministicEdgeColorRestricted[S, E, Q, C]) Edge(q StateIndex, match Matcher[E]) (Edge[E, C], bool) {
	e, ok := r.d.Edge(q, match)
	if !ok || !r.inRange(e.Color) {
		return Edge[E, C]{}, false
	}
	return e, true
}
