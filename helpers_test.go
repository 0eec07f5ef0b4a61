package omega_test

import (
	"iter"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
)

// modCounter builds a three-state counter over {a, b}: a advances, b stays.
// State 2 is accepting.
func modCounter() *omega.NTS[rune, rune, bool, int] {
	ts := omega.NewNTS[rune, rune, bool, int](alphabet.CharAlphabetOfSize(2))
	for q := 0; q < 3; q++ {
		ts.AddState(q == 2)
	}
	for q := 0; q < 3; q++ {
		ts.AddEdge(omega.NewEdge(q, 'a', q, (q+1)%3))
		ts.AddEdge(omega.NewEdge(q, 'b', q, q))
	}
	ts.SetInitial(0)
	return ts
}

func accepting(c bool) bool { return c }

func collectEdges[E, C any](seq iter.Seq[omega.Edge[E, C]]) []omega.Edge[E, C] {
	var out []omega.Edge[E, C]
	for e := range seq {
		out = append(out, e)
	}
	return out
}
