package omega

// FiniteRun records the path a deterministic system takes on a finite word.
type FiniteRun[E, C any] struct {
	// States lists the visited states, starting with the origin.
	States []StateIndex

	// Edges lists the edges taken; len(Edges) == len(States)-1.
	Edges []Edge[E, C]

	// EscapedAt is the position of the first symbol without a transition,
	// or -1 if the whole word was read.
	EscapedAt int
}

// Successful reports whether the whole word was read.
func (r FiniteRun[E, C]) Successful() bool {
	return r.EscapedAt < 0
}

// Reached returns the last state visited.
func (r FiniteRun[E, C]) Reached() StateIndex {
	return r.States[len(r.States)-1]
}

// RunFinite reads word from state from. The run stops at the first symbol
// for which no transition exists.
func RunFinite[S comparable, E, Q, C any](d Deterministic[S, E, Q, C], from StateIndex, word []S) FiniteRun[E, C] {
	run := FiniteRun[E, C]{
		States:    make([]StateIndex, 1, len(word)+1),
		Edges:     make([]Edge[E, C], 0, len(word)),
		EscapedAt: -1,
	}
	run.States[0] = from
	q := from
	for i, sym := range word {
		e, ok := d.Transition(q, sym)
		if !ok {
			run.EscapedAt = i
			return run
		}
		run.Edges = append(run.Edges, e)
		run.States = append(run.States, e.Target)
		q = e.Target
	}
	return run
}

// Accepts runs word from the initial state and reports whether the run
// completes in a state whose color satisfies accepting. Systems without an
// initial state accept nothing.
func Accepts[S comparable, E, Q, C any](d Deterministic[S, E, Q, C], word []S, accepting func(Q) bool) bool {
	q0, ok := d.MaybeInitialState()
	if !ok {
		return false
	}
	run := RunFinite(d, q0, word)
	if !run.Successful() {
		return false
	}
	color, ok := d.StateColor(run.Reached())
	return ok && accepting(color)
}

// OmegaRun is the run of a deterministic system on the ultimately periodic
// word prefix·cycle^ω.
type OmegaRun[E, C any] struct {
	// Prefix is the finite run on the prefix.
	Prefix FiniteRun[E, C]

	// Recurring lists the states visited infinitely often.
	Recurring []StateIndex

	// RecurringEdges lists the edges taken infinitely often, in the order
	// of one period of the run.
	RecurringEdges []Edge[E, C]
}

// Colors returns the colors of the recurring edges.
func (r OmegaRun[E, C]) Colors() []C {
	out := make([]C, len(r.RecurringEdges))
	for i, e := range r.RecurringEdges {
		out[i] = e.Color
	}
	return out
}

// RunLasso runs prefix followed by infinitely many repetitions of cycle from
// state from. It returns false if some symbol has no transition. It panics if
// cycle is empty.
func RunLasso[S comparable, E, Q, C any](d Deterministic[S, E, Q, C], from StateIndex, prefix, cycle []S) (OmegaRun[E, C], bool) {
	if len(cycle) == 0 {
		panic(&ArgumentError{ParamName: "cycle", Message: "the periodic part of a word must not be empty"})
	}
	pre := RunFinite(d, from, prefix)
	if !pre.Successful() {
		return OmegaRun[E, C]{}, false
	}

	// Unroll the cycle until a state repeats at a cycle boundary.
	seen := map[StateIndex]int{}
	var rounds [][]Edge[E, C]
	q := pre.Reached()
	for {
		if k, ok := seen[q]; ok {
			run := OmegaRun[E, C]{Prefix: pre}
			visited := map[StateIndex]bool{}
			for _, round := range rounds[k:] {
				for _, e := range round {
					run.RecurringEdges = append(run.RecurringEdges, e)
					if !visited[e.Source] {
						visited[e.Source] = true
						run.Recurring = append(run.Recurring, e.Source)
					}
				}
			}
			return run, true
		}
		seen[q] = len(rounds)
		round := RunFinite(d, q, cycle)
		if !round.Successful() {
			return OmegaRun[E, C]{}, false
		}
		rounds = append(rounds, round.Edges)
		q = round.Reached()
	}
}

// Reachable returns the states reachable from from, including from itself,
// in breadth-first order. It returns nil if from is not a state of ts.
func Reachable[S comparable, E, Q, C any](ts TransitionSystem[S, E, Q, C], from StateIndex) []StateIndex {
	if _, ok := ts.StateColor(from); !ok {
		return nil
	}
	visited := map[StateIndex]bool{from: true}
	order := []StateIndex{from}
	for i := 0; i < len(order); i++ {
		edges, ok := ts.EdgesFrom(order[i])
		if !ok {
			continue
		}
		for e := range edges {
			if !visited[e.Target] {
				visited[e.Target] = true
				order = append(order, e.Target)
			}
		}
	}
	return order
}
