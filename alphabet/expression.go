package alphabet

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/dalzilio/rudd"
)

// PropExpression is a boolean formula over the propositions of a
// PropAlphabet. It is held as a node of a reduced ordered BDD, so two
// expressions denoting the same formula share the same node and compare
// Equivalent.
//
// The zero value is not usable; obtain expressions from a PropAlphabet.
type PropExpression struct {
	node rudd.Node
	aps  int
}

func (e PropExpression) mustValid() {
	if e.node == nil {
		panic(&ArgumentError{Message: "use of zero PropExpression"})
	}
}

func (e PropExpression) sameWidth(o PropExpression) {
	e.mustValid()
	o.mustValid()
	if e.aps != o.aps {
		panic(&ArgumentError{
			ParamName: "o",
			Message:   fmt.Sprintf("combining expressions over %d and %d propositions", e.aps, o.aps),
		})
	}
}

// APs returns the number of propositions of the alphabet the expression belongs to.
func (e PropExpression) APs() int {
	return e.aps
}

// And returns the conjunction e & o.
func (e PropExpression) And(o PropExpression) PropExpression {
	e.sameWidth(o)
	return PropExpression{node: bdds().and(e.node, o.node), aps: e.aps}
}

// Or returns the disjunction e | o.
func (e PropExpression) Or(o PropExpression) PropExpression {
	e.sameWidth(o)
	return PropExpression{node: bdds().or(e.node, o.node), aps: e.aps}
}

// Not returns the negation !e restricted to the alphabet's propositions.
func (e PropExpression) Not() PropExpression {
	e.mustValid()
	return PropExpression{node: bdds().not(e.node), aps: e.aps}
}

// IsFalse reports whether no symbol matches e.
func (e PropExpression) IsFalse() bool {
	e.mustValid()
	return bdds().isConstant(e.node, false)
}

// IsTrue reports whether every symbol matches e.
func (e PropExpression) IsTrue() bool {
	e.mustValid()
	return bdds().isConstant(e.node, true)
}

// Equivalent reports whether e and o denote the same formula.
func (e PropExpression) Equivalent(o PropExpression) bool {
	e.sameWidth(o)
	return bdds().equal(e.node, o.node)
}

// Overlaps reports whether some symbol matches both e and o.
func (e PropExpression) Overlaps(o PropExpression) bool {
	e.sameWidth(o)
	return bdds().overlaps(e.node, o.node)
}

// Matches reports whether the valuation sym satisfies e.
func (e PropExpression) Matches(sym PropSymbol) bool {
	e.mustValid()
	if int(sym.aps) != e.aps {
		return false
	}
	m := bdds()
	return m.overlaps(e.node, m.cube(sym.repr, e.aps))
}

// Symbols yields every valuation satisfying e exactly once.
func (e PropExpression) Symbols() iter.Seq[PropSymbol] {
	e.mustValid()
	// Collect under the manager lock, yield outside of it so the caller may
	// build further expressions while iterating.
	cubes := bdds().cubes(e.node)
	aps := e.aps
	return func(yield func(PropSymbol) bool) {
		for _, c := range cubes {
			var fixed uint16
			var free []int
			for i := 0; i < aps; i++ {
				switch c[i] {
				case 1:
					fixed |= 1 << i
				case -1:
					free = append(free, i)
				}
			}
			for combo := 0; combo < 1<<len(free); combo++ {
				repr := fixed
				for j, v := range free {
					if combo&(1<<j) != 0 {
						repr |= 1 << v
					}
				}
				if !yield(PropSymbol{repr: repr, aps: uint8(aps)}) {
					return
				}
			}
		}
	}
}

// String renders e in disjunctive normal form, e.g. "(0 & !1) | (2)".
// A tautology renders as "t". Rendering an unsatisfiable expression panics
// with ErrUnsatisfiable.
func (e PropExpression) String() string {
	e.mustValid()
	cubes := bdds().cubes(e.node)
	if len(cubes) == 0 {
		panic(ErrUnsatisfiable)
	}
	clause := func(c []int) string {
		var lits []string
		for i := 0; i < e.aps && i < len(c); i++ {
			switch c[i] {
			case 1:
				lits = append(lits, strconv.Itoa(i))
			case 0:
				lits = append(lits, "!"+strconv.Itoa(i))
			}
		}
		if len(lits) == 0 {
			return "t"
		}
		return strings.Join(lits, " & ")
	}
	if len(cubes) == 1 {
		return clause(cubes[0])
	}
	parts := make([]string, len(cubes))
	for i, c := range cubes {
		parts[i] = "(" + clause(c) + ")"
	}
	return strings.Join(parts, " | ")
}
