package omega

import (
	"iter"
	"slices"

	"github.com/atlekbai/omega/alphabet"
)

type ntsState[E, Q, C any] struct {
	color Q
	edges []Edge[E, C]
}

// NTS is a nondeterministic transition system. States are numbered densely
// from zero in the order they are added; each owns the list of edges leaving
// it. Any number of edges may share a source, a target and an expression.
type NTS[S comparable, E, Q, C any] struct {
	alphabet alphabet.Alphabet[S, E]
	states   []ntsState[E, Q, C]
	initial  StateIndex
}

var _ Sproutable[rune, int, int] = (*NTS[rune, rune, int, int])(nil)

// NewNTS creates an empty transition system over a.
func NewNTS[S comparable, E, Q, C any](a alphabet.Alphabet[S, E]) *NTS[S, E, Q, C] {
	return NewNTSWithCapacity[S, E, Q, C](a, 0)
}

// NewNTSWithCapacity creates an empty transition system with room for n states.
func NewNTSWithCapacity[S comparable, E, Q, C any](a alphabet.Alphabet[S, E], n int) *NTS[S, E, Q, C] {
	if a == nil {
		panic(&ArgumentError{ParamName: "a", Message: "alphabet must not be nil"})
	}
	return &NTS[S, E, Q, C]{
		alphabet: a,
		states:   make([]ntsState[E, Q, C], 0, n),
		initial:  -1,
	}
}

// Alphabet returns the alphabet of the system.
func (ts *NTS[S, E, Q, C]) Alphabet() alphabet.Alphabet[S, E] {
	return ts.alphabet
}

// Size returns the number of states.
func (ts *NTS[S, E, Q, C]) Size() int {
	return len(ts.states)
}

// EdgeCount returns the number of edges.
func (ts *NTS[S, E, Q, C]) EdgeCount() int {
	n := 0
	for i := range ts.states {
		n += len(ts.states[i].edges)
	}
	return n
}

// Contains reports whether q is a state of the system.
func (ts *NTS[S, E, Q, C]) Contains(q StateIndex) bool {
	return q >= 0 && q < len(ts.states)
}

func (ts *NTS[S, E, Q, C]) mustContain(op string, q StateIndex) {
	if !ts.Contains(q) {
		panic(&InvalidStateError{Op: op, State: q, Size: len(ts.states)})
	}
}

// StateIndices yields 0 through Size()-1.
func (ts *NTS[S, E, Q, C]) StateIndices() iter.Seq[StateIndex] {
	return func(yield func(StateIndex) bool) {
		for q := range ts.states {
			if !yield(q) {
				return
			}
		}
	}
}

// StateColor returns the color of q.
func (ts *NTS[S, E, Q, C]) StateColor(q StateIndex) (Q, bool) {
	if !ts.Contains(q) {
		var zero Q
		return zero, false
	}
	return ts.states[q].color, true
}

// EdgesFrom yields the edges leaving q in insertion order.
func (ts *NTS[S, E, Q, C]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	if !ts.Contains(q) {
		return nil, false
	}
	return slices.Values(ts.states[q].edges), true
}

// Edges yields every edge of the system grouped by source.
func (ts *NTS[S, E, Q, C]) Edges() iter.Seq[Edge[E, C]] {
	return func(yield func(Edge[E, C]) bool) {
		for i := range ts.states {
			for _, e := range ts.states[i].edges {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Predecessors yields the edges entering q. The edge lists are scanned on
// each call; use a PredecessorIndex for repeated queries.
func (ts *NTS[S, E, Q, C]) Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool) {
	return ScanPredecessors[S, E, Q, C](ts, q)
}

// MaybeInitialState returns the initial state, if one is set.
func (ts *NTS[S, E, Q, C]) MaybeInitialState() (StateIndex, bool) {
	return ts.initial, ts.initial >= 0
}

// SetInitial designates q as the initial state.
func (ts *NTS[S, E, Q, C]) SetInitial(q StateIndex) {
	ts.mustContain("SetInitial", q)
	ts.initial = q
}

// AddState appends a state with the given color and returns its index.
func (ts *NTS[S, E, Q, C]) AddState(color Q) StateIndex {
	ts.states = append(ts.states, ntsState[E, Q, C]{color: color})
	return len(ts.states) - 1
}

// SetStateColor replaces the color of q.
func (ts *NTS[S, E, Q, C]) SetStateColor(q StateIndex, color Q) {
	ts.mustContain("SetStateColor", q)
	ts.states[q].color = color
}

// AddEdge appends e to the edges leaving e.Source. It panics if either
// endpoint is not a state of the system.
func (ts *NTS[S, E, Q, C]) AddEdge(e Edge[E, C]) {
	ts.mustContain("AddEdge", e.Source)
	ts.mustContain("AddEdge", e.Target)
	ts.states[e.Source].edges = append(ts.states[e.Source].edges, e)
}

// RemoveEdges deletes every edge leaving q whose expression is equivalent to
// expr and reports whether any was removed.
func (ts *NTS[S, E, Q, C]) RemoveEdges(q StateIndex, expr E) bool {
	ts.mustContain("RemoveEdges", q)
	before := len(ts.states[q].edges)
	ts.states[q].edges = slices.DeleteFunc(ts.states[q].edges, func(e Edge[E, C]) bool {
		return ts.alphabet.Equivalent(e.Expression, expr)
	})
	return len(ts.states[q].edges) != before
}

// IsDeterministic reports whether no two edges leaving a state overlap.
func (ts *NTS[S, E, Q, C]) IsDeterministic() bool {
	_, bad := ts.firstNondeterministicState()
	return !bad
}

func (ts *NTS[S, E, Q, C]) firstNondeterministicState() (StateIndex, bool) {
	for q := range ts.states {
		edges := ts.states[q].edges
		for i := range edges {
			for j := i + 1; j < len(edges); j++ {
				if ts.alphabet.Overlaps(edges[i].Expression, edges[j].Expression) {
					return q, true
				}
			}
		}
	}
	return -1, false
}

// Clone returns a deep copy of the state and edge lists. Colors and
// expressions are copied by value.
func (ts *NTS[S, E, Q, C]) Clone() *NTS[S, E, Q, C] {
	c := &NTS[S, E, Q, C]{
		alphabet: ts.alphabet,
		states:   make([]ntsState[E, Q, C], len(ts.states)),
		initial:  ts.initial,
	}
	for i, st := range ts.states {
		c.states[i] = ntsState[E, Q, C]{color: st.color, edges: slices.Clone(st.edges)}
	}
	return c
}

// MapEdgeColors returns a copy of ts with every edge color replaced by f(color).
func MapEdgeColors[S comparable, E, Q, C, D any](ts *NTS[S, E, Q, C], f func(C) D) *NTS[S, E, Q, D] {
	out := &NTS[S, E, Q, D]{
		alphabet: ts.alphabet,
		states:   make([]ntsState[E, Q, D], len(ts.states)),
		initial:  ts.initial,
	}
	for i, st := range ts.states {
		edges := make([]Edge[E, D], len(st.edges))
		for j, e := range st.edges {
			edges[j] = WithColor(e, f(e.Color))
		}
		out.states[i] = ntsState[E, Q, D]{color: st.color, edges: edges}
	}
	return out
}
