package omega

import (
	"fmt"
	"iter"

	"github.com/atlekbai/omega/alphabet"
)

// TransitionSystem is the read-only view shared by every transition system
// and every view over one.
//
// EdgesFrom returns false when q is not a state of the system. A state with
// no outgoing edges returns true and an empty sequence.
type TransitionSystem[S comparable, E, Q, C any] interface {
	Alphabet() alphabet.Alphabet[S, E]
	StateIndices() iter.Seq[StateIndex]
	StateColor(q StateIndex) (Q, bool)
	EdgesFrom(q StateIndex) (iter.Seq[Edge[E, C]], bool)
	MaybeInitialState() (StateIndex, bool)
}

// Matcher selects edges by their expression.
type Matcher[E any] func(E) bool

// Deterministic is a transition system in which the edges leaving a state
// have pairwise non-overlapping expressions.
type Deterministic[S comparable, E, Q, C any] interface {
	TransitionSystem[S, E, Q, C]

	// Transition returns the unique edge leaving q whose expression matches sym.
	Transition(q StateIndex, sym S) (Edge[E, C], bool)

	// Edge returns the unique edge leaving q whose expression satisfies match.
	Edge(q StateIndex, match Matcher[E]) (Edge[E, C], bool)
}

// PredecessorIterable is implemented by systems able to list incoming edges.
type PredecessorIterable[E, C any] interface {
	Predecessors(q StateIndex) (iter.Seq[Edge[E, C]], bool)
}

// Sproutable is implemented by systems that can grow.
type Sproutable[E, Q, C any] interface {
	AddState(color Q) StateIndex
	SetStateColor(q StateIndex, color Q)
	AddEdge(e Edge[E, C])
	RemoveEdges(q StateIndex, expr E) bool
	SetInitial(q StateIndex)
}

// Pointed is implemented by systems with a designated initial state.
type Pointed interface {
	Initial() StateIndex
}

// Size counts the states of ts.
func Size[S comparable, E, Q, C any](ts TransitionSystem[S, E, Q, C]) int {
	n := 0
	for range ts.StateIndices() {
		n++
	}
	return n
}

// findEdge returns the edge of edges whose expression satisfies match. With
// invariant checks enabled a second match panics.
func findEdge[E, C any](q StateIndex, edges iter.Seq[Edge[E, C]], match Matcher[E]) (Edge[E, C], bool) {
	var found Edge[E, C]
	ok := false
	for e := range edges {
		if !match(e.Expression) {
			continue
		}
		if !checkInvariants {
			return e, true
		}
		if ok {
			panic(&InvalidOperationError{
				Message: fmt.Sprintf("deterministic state %d has edges to %d and %d matching the same symbol", q, found.Target, e.Target),
			})
		}
		found, ok = e, true
	}
	return found, ok
}

// transition looks up the edge of a deterministic system leaving q on sym.
func transition[S comparable, E, C any](a alphabet.Alphabet[S, E], q StateIndex, edges iter.Seq[Edge[E, C]], sym S) (Edge[E, C], bool) {
	return findEdge(q, edges, func(e E) bool { return a.Matches(e, sym) })
}
