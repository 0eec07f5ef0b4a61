// Package omega provides transition systems and omega automata over explicit
// and symbolic alphabets.
//
// A transition system is a set of integer-indexed states, each carrying a
// state color, and a set of edges labeled by an alphabet expression and an
// edge color. The package offers:
//
//   - NTS, a growable nondeterministic transition system
//   - DTS, a checked wrapper guaranteeing that no two edges leaving a state overlap
//   - non-owning views restricting states or edge colors
//   - finite and ultimately periodic runs
//   - omega automata with an acceptance condition, and deterministic parity automata
//
// # Basic Usage
//
// Build a transition system over the characters a and b:
//
//	ts := omega.NewNTS[rune, rune, bool, int](alphabet.CharAlphabetOfSize(2))
//	q0 := ts.AddState(false)
//	q1 := ts.AddState(true)
//	ts.AddEdge(omega.NewEdge(q0, 'a', 0, q1))
//	ts.SetInitial(q0)
//
// Promote it to a deterministic system and run words on it:
//
//	d, err := omega.NewDTS(ts)
//	ok := omega.Accepts(d, []rune("a"), func(c bool) bool { return c })
//
// # Omega Automata
//
// Automata read from HOA text (see package hoa) carry acceptance masks on
// their edges. A deterministic parity automaton can be reduced to integer
// priorities:
//
//	dpa := d.IntoDPA()
//	accepted := dpa.AcceptsLasso(prefix, cycle)
//
// # Graph Generation
//
// Export to DOT or Mermaid format:
//
//	import "github.com/atlekbai/omega/graph"
//	dot, err := graph.DotGraph(ts, graph.NewDefaultNaming(ts, "counter"))
package omega
