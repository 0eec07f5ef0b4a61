package omega

import (
	"iter"
	"slices"

	"github.com/atlekbai/omega/alphabet"
)

// OmegaAutomaton is a pointed nondeterministic transition system whose edges
// carry acceptance masks, together with an acceptance condition. State
// colors hold the state's declared id.
type OmegaAutomaton[S comparable, E any] struct {
	ts  *NTS[S, E, int, AcceptanceMask]
	acc AcceptanceCondition
}

var (
	_ TransitionSystem[rune, rune, int, AcceptanceMask] = (*OmegaAutomaton[rune, rune])(nil)
	_ PredecessorIterable[rune, AcceptanceMask]         = (*OmegaAutomaton[rune, rune])(nil)
	_ Pointed                                           = (*OmegaAutomaton[rune, rune])(nil)
)

// NewOmegaAutomaton takes ownership of ts, marks initial as its initial
// state and attaches acc. It panics if initial is not a state of ts.
func NewOmegaAutomaton[S comparable, E any](ts *NTS[S, E, int, AcceptanceMask], initial StateIndex, acc AcceptanceCondition) *OmegaAutomaton[S, E] {
	ts.SetInitial(initial)
	return &OmegaAutomaton[S, E]{ts: ts, acc: acc}
}

// Condition returns the acceptance condition.
func (a *OmegaAutomaton[S, E]) Condition() AcceptanceCondition { return a.acc }

// TS returns the underlying transition system.
func (a *OmegaAutomaton[S, E]) TS() *NTS[S, E, int, AcceptanceMask] { return a.ts }

// Initial returns the initial state.
func (a *OmegaAutomaton[S, E]) Initial() StateIndex { return a.ts.initial }

// Size returns the number of states.
func (a *OmegaAutomaton[S, E]) Size() int { return a.ts.Size() }

// Alphabet returns the alphabet the edges are labelled over.
func (a *OmegaAutomaton[S, E]) Alphabet() alphabet.Alphabet[S, E] { return a.ts.Alphabet() }

// StateIndices yields the state indices in increasing order.
func (a *OmegaAutomaton[S, E]) StateIndices() iter.Seq[StateIndex] { return a.ts.StateIndices() }

// StateColor returns the color of q and whether q exists.
func (a *OmegaAutomaton[S, E]) StateColor(q StateIndex) (int, bool) { return a.ts.StateColor(q) }

// EdgesFrom yields the edges leaving q; ok is false if q does not exist.
func (a *OmegaAutomaton[S, E]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, AcceptanceMask]], bool) {
	return a.ts.EdgesFrom(q)
}

// Predecessors yields the edges entering q; ok is false if q does not exist.
func (a *OmegaAutomaton[S, E]) Predecessors(q StateIndex) (iter.Seq[Edge[E, AcceptanceMask]], bool) {
	return a.ts.Predecessors(q)
}

// MaybeInitialState returns the initial state, if one is set.
func (a *OmegaAutomaton[S, E]) MaybeInitialState() (StateIndex, bool) {
	return a.ts.MaybeInitialState()
}

// IsDeterministic reports whether no two edges leaving a state overlap.
func (a *OmegaAutomaton[S, E]) IsDeterministic() bool { return a.ts.IsDeterministic() }

// IntoDeterministic checks determinism and hands the system over to a
// DeterministicOmegaAutomaton with the same condition. On success a gives up
// its system: TS returns nil and a must not be used afterwards. On failure a
// is left untouched.
func (a *OmegaAutomaton[S, E]) IntoDeterministic() (*DeterministicOmegaAutomaton[S, E], error) {
	d, err := NewDTS(a.ts)
	if err != nil {
		return nil, err
	}
	a.ts = nil
	return &DeterministicOmegaAutomaton[S, E]{ts: d, acc: a.acc}, nil
}

// DeterministicOmegaAutomaton is a pointed deterministic transition system
// with acceptance masks on its edges and an acceptance condition.
type DeterministicOmegaAutomaton[S comparable, E any] struct {
	ts  *DTS[S, E, int, AcceptanceMask]
	acc AcceptanceCondition
}

var (
	_ Deterministic[rune, rune, int, AcceptanceMask] = (*DeterministicOmegaAutomaton[rune, rune])(nil)
	_ PredecessorIterable[rune, AcceptanceMask]      = (*DeterministicOmegaAutomaton[rune, rune])(nil)
	_ Pointed                                        = (*DeterministicOmegaAutomaton[rune, rune])(nil)
)

// NewDeterministicOmegaAutomaton takes ownership of ts, marks initial as its
// initial state and attaches acc.
func NewDeterministicOmegaAutomaton[S comparable, E any](ts *DTS[S, E, int, AcceptanceMask], initial StateIndex, acc AcceptanceCondition) *DeterministicOmegaAutomaton[S, E] {
	ts.SetInitial(initial)
	return &DeterministicOmegaAutomaton[S, E]{ts: ts, acc: acc}
}

// Condition returns the acceptance condition.
func (a *DeterministicOmegaAutomaton[S, E]) Condition() AcceptanceCondition { return a.acc }

// DTS returns the underlying deterministic transition system.
func (a *DeterministicOmegaAutomaton[S, E]) DTS() *DTS[S, E, int, AcceptanceMask] { return a.ts }

// Initial returns the initial state.
func (a *DeterministicOmegaAutomaton[S, E]) Initial() StateIndex { return a.ts.nts.initial }

// Size returns the number of states.
func (a *DeterministicOmegaAutomaton[S, E]) Size() int { return a.ts.Size() }

// Alphabet returns the alphabet the edges are labelled over.
func (a *DeterministicOmegaAutomaton[S, E]) Alphabet() alphabet.Alphabet[S, E] {
	return a.ts.Alphabet()
}

// StateIndices yields the state indices in increasing order.
func (a *DeterministicOmegaAutomaton[S, E]) StateIndices() iter.Seq[StateIndex] {
	return a.ts.StateIndices()
}

// StateColor returns the color of q and whether q exists.
func (a *DeterministicOmegaAutomaton[S, E]) StateColor(q StateIndex) (int, bool) {
	return a.ts.StateColor(q)
}

// EdgesFrom yields the edges leaving q; ok is false if q does not exist.
func (a *DeterministicOmegaAutomaton[S, E]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, AcceptanceMask]], bool) {
	return a.ts.EdgesFrom(q)
}

// Predecessors yields the edges entering q; ok is false if q does not exist.
func (a *DeterministicOmegaAutomaton[S, E]) Predecessors(q StateIndex) (iter.Seq[Edge[E, AcceptanceMask]], bool) {
	return a.ts.Predecessors(q)
}

// MaybeInitialState returns the initial state, if one is set.
func (a *DeterministicOmegaAutomaton[S, E]) MaybeInitialState() (StateIndex, bool) {
	return a.ts.MaybeInitialState()
}

// Transition returns the edge taken from q on sym.
func (a *DeterministicOmegaAutomaton[S, E]) Transition(q StateIndex, sym S) (Edge[E, AcceptanceMask], bool) {
	return a.ts.Transition(q, sym)
}

// Edge returns the edge leaving q whose expression matches.
func (a *DeterministicOmegaAutomaton[S, E]) Edge(q StateIndex, match Matcher[E]) (Edge[E, AcceptanceMask], bool) {
	return a.ts.Edge(q, match)
}

// AcceptsLasso reports whether the word prefix·cycle^ω is accepted. A word
// on which the run gets stuck is rejected.
func (a *DeterministicOmegaAutomaton[S, E]) AcceptsLasso(prefix, cycle []S) (bool, error) {
	run, ok := RunLasso[S, E, int, AcceptanceMask](a, a.Initial(), prefix, cycle)
	if !ok {
		if a.acc.Kind != KindParity {
			return false, &UnsupportedConditionError{Condition: a.acc}
		}
		return false, nil
	}
	return a.acc.Satisfied(run.Colors())
}

// IntoDPA rewrites every acceptance mask to an integer priority. Masks are
// read with TryAsPriority; empty masks receive the neutral priority, the
// largest priority present on any edge, or 1 when no edge has one. It
// panics unless the condition is Parity. The automaton must not be used
// afterwards.
func (a *DeterministicOmegaAutomaton[S, E]) IntoDPA() *DPA[S, E] {
	if a.acc.Kind != KindParity {
		panic(&InvalidOperationError{Message: "only parity automata convert to a DPA, got " + a.acc.String()})
	}
	nts := a.ts.Into()

	// Min matches TryAsPriority without logging, so each non-singleton mask
	// warns once.
	neutral := -1
	for e := range nts.Edges() {
		if p, ok := e.Color.Min(); ok && p > neutral {
			neutral = p
		}
	}
	if neutral < 0 {
		neutral = 1
	}

	mapped := MapEdgeColors(nts, func(m AcceptanceMask) int {
		if p, ok := m.TryAsPriority(); ok {
			return p
		}
		return neutral
	})
	return &DPA[S, E]{ts: &DTS[S, E, int, int]{nts: mapped}}
}

// DPA is a deterministic parity automaton with one integer priority per
// edge. A run is accepting when the least priority seen infinitely often is
// even.
type DPA[S comparable, E any] struct {
	ts *DTS[S, E, int, int]
}

var (
	_ Deterministic[rune, rune, int, int] = (*DPA[rune, rune])(nil)
	_ PredecessorIterable[rune, int]      = (*DPA[rune, rune])(nil)
	_ Pointed                             = (*DPA[rune, rune])(nil)
)

// NewDPA takes ownership of ts and marks initial as its initial state.
func NewDPA[S comparable, E any](ts *DTS[S, E, int, int], initial StateIndex) *DPA[S, E] {
	ts.SetInitial(initial)
	return &DPA[S, E]{ts: ts}
}

// DTS returns the underlying deterministic transition system.
func (a *DPA[S, E]) DTS() *DTS[S, E, int, int] { return a.ts }

// Initial returns the initial state.
func (a *DPA[S, E]) Initial() StateIndex { return a.ts.nts.initial }

// Size returns the number of states.
func (a *DPA[S, E]) Size() int { return a.ts.Size() }

// Alphabet returns the alphabet the edges are labelled over.
func (a *DPA[S, E]) Alphabet() alphabet.Alphabet[S, E] { return a.ts.Alphabet() }

// StateIndices yields the state indices in increasing order.
func (a *DPA[S, E]) StateIndices() iter.Seq[StateIndex] { return a.ts.StateIndices() }

// StateColor returns the color of q and whether q exists.
func (a *DPA[S, E]) StateColor(q StateIndex) (int, bool) { return a.ts.StateColor(q) }

// EdgesFrom yields the edges leaving q; ok is false if q does not exist.
func (a *DPA[S, E]) EdgesFrom(q StateIndex) (iter.Seq[Edge[E, int]], bool) { return a.ts.EdgesFrom(q) }

// Predecessors yields the edges entering q; ok is false if q does not exist.
func (a *DPA[S, E]) Predecessors(q StateIndex) (iter.Seq[Edge[E, int]], bool) {
	return a.ts.Predecessors(q)
}

// MaybeInitialState returns the initial state, if one is set.
func (a *DPA[S, E]) MaybeInitialState() (StateIndex, bool) { return a.ts.MaybeInitialState() }

// Transition returns the edge taken from q on sym.
func (a *DPA[S, E]) Transition(q StateIndex, sym S) (Edge[E, int], bool) {
	return a.ts.Transition(q, sym)
}

// Edge returns the edge leaving q whose expression matches.
func (a *DPA[S, E]) Edge(q StateIndex, match Matcher[E]) (Edge[E, int], bool) {
	return a.ts.Edge(q, match)
}

// Priorities returns the distinct edge priorities in increasing order.
func (a *DPA[S, E]) Priorities() []int {
	seen := map[int]bool{}
	var out []int
	for e := range a.ts.nts.Edges() {
		if !seen[e.Color] {
			seen[e.Color] = true
			out = append(out, e.Color)
		}
	}
	slices.Sort(out)
	return out
}

// AcceptsLasso reports whether the word prefix·cycle^ω is accepted.
func (a *DPA[S, E]) AcceptsLasso(prefix, cycle []S) bool {
	run, ok := RunLasso[S, E, int, int](a, a.Initial(), prefix, cycle)
	if !ok || len(run.RecurringEdges) == 0 {
		return false
	}
	least := run.RecurringEdges[0].Color
	for _, e := range run.RecurringEdges[1:] {
		least = min(least, e.Color)
	}
	return least%2 == 0
}
