package alphabet

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
)

// PropAlphabet is a symbolic alphabet over atomic propositions.
//
// A symbol is a valuation of all propositions, for example a & !b & c over
// the propositions a, b and c. An expression labels an edge and is a boolean
// formula such as (a | b) & c. The expression is matched by every valuation
// under which it evaluates to true.
//
// Expressions built by MakeExpression are memoized per alphabet. The cache is
// safe for concurrent use and has no observable effect: it takes no part in
// Equal.
type PropAlphabet struct {
	apnames []string

	mu    sync.RWMutex
	exprs map[PropSymbol]PropExpression
}

// NewPropAlphabet creates an alphabet over the given propositions. It panics
// if there are no propositions or at least MaxAPs of them.
func NewPropAlphabet(apnames []string) *PropAlphabet {
	if len(apnames) == 0 {
		panic(&ArgumentError{ParamName: "apnames", Message: "a propositional alphabet needs at least one proposition"})
	}
	if len(apnames) >= MaxAPs {
		panic(&ArgumentError{
			ParamName: "apnames",
			Message:   fmt.Sprintf("%d propositions given, fewer than %d are supported", len(apnames), MaxAPs),
		})
	}
	return &PropAlphabet{
		apnames: slices.Clone(apnames),
		exprs:   make(map[PropSymbol]PropExpression),
	}
}

// APNames returns the proposition names in index order.
func (a *PropAlphabet) APNames() []string {
	return slices.Clone(a.apnames)
}

// APs returns the number of propositions.
func (a *PropAlphabet) APs() int {
	return len(a.apnames)
}

// Size returns 2^APs.
func (a *PropAlphabet) Size() int {
	return 1 << len(a.apnames)
}

// Universe yields every valuation in increasing order of its packed bits.
func (a *PropAlphabet) Universe() iter.Seq[PropSymbol] {
	aps := len(a.apnames)
	return func(yield func(PropSymbol) bool) {
		for repr := 0; repr < 1<<aps; repr++ {
			if !yield(PropSymbol{repr: uint16(repr), aps: uint8(aps)}) {
				return
			}
		}
	}
}

// Contains reports whether sym values exactly this alphabet's propositions.
func (a *PropAlphabet) Contains(sym PropSymbol) bool {
	return int(sym.aps) == len(a.apnames)
}

// MakeExpression returns the expression matching only sym.
func (a *PropAlphabet) MakeExpression(sym PropSymbol) PropExpression {
	if !a.Contains(sym) {
		panic(&ArgumentError{ParamName: "sym", Message: fmt.Sprintf("symbol %v is not part of alphabet %v", sym, a)})
	}

	a.mu.RLock()
	expr, ok := a.exprs[sym]
	a.mu.RUnlock()
	if ok {
		return expr
	}

	expr = PropExpression{node: bdds().cube(sym.repr, len(a.apnames)), aps: len(a.apnames)}

	a.mu.Lock()
	a.exprs[sym] = expr
	a.mu.Unlock()
	return expr
}

// Matches reports whether sym satisfies expr.
func (a *PropAlphabet) Matches(expr PropExpression, sym PropSymbol) bool {
	return expr.Matches(sym)
}

// Symbols yields every valuation satisfying expr.
func (a *PropAlphabet) Symbols(expr PropExpression) iter.Seq[PropSymbol] {
	return expr.Symbols()
}

// Overlaps reports whether x & y is satisfiable.
func (a *PropAlphabet) Overlaps(x, y PropExpression) bool {
	return x.Overlaps(y)
}

// Equivalent reports whether x and y denote the same formula.
func (a *PropAlphabet) Equivalent(x, y PropExpression) bool {
	return x.Equivalent(y)
}

// Show renders expr in disjunctive normal form.
func (a *PropAlphabet) Show(expr PropExpression) string {
	return expr.String()
}

// ShowSymbol renders sym as a conjunction of literals.
func (a *PropAlphabet) ShowSymbol(sym PropSymbol) string {
	return sym.String()
}

// True returns the expression every symbol matches.
func (a *PropAlphabet) True() PropExpression {
	return PropExpression{node: bdds().constant(true), aps: len(a.apnames)}
}

// False returns the expression no symbol matches.
func (a *PropAlphabet) False() PropExpression {
	return PropExpression{node: bdds().constant(false), aps: len(a.apnames)}
}

// Var returns the expression "proposition n holds".
func (a *PropAlphabet) Var(n int) PropExpression {
	a.checkVar(n)
	return PropExpression{node: bdds().literal(n, true), aps: len(a.apnames)}
}

// NotVar returns the expression "proposition n does not hold".
func (a *PropAlphabet) NotVar(n int) PropExpression {
	a.checkVar(n)
	return PropExpression{node: bdds().literal(n, false), aps: len(a.apnames)}
}

func (a *PropAlphabet) checkVar(n int) {
	if n < 0 || n >= len(a.apnames) {
		panic(&ArgumentError{
			ParamName: "n",
			Message:   fmt.Sprintf("proposition %d does not exist, alphabet has %d", n, len(a.apnames)),
		})
	}
}

// Equal reports whether both alphabets have the same propositions in the same order.
func (a *PropAlphabet) Equal(o *PropAlphabet) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil {
		return false
	}
	return slices.Equal(a.apnames, o.apnames)
}

// String returns a string representation of the alphabet.
func (a *PropAlphabet) String() string {
	quoted := make([]string, len(a.apnames))
	for i, name := range a.apnames {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return "AP{" + strings.Join(quoted, ", ") + "}"
}
