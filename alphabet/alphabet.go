// Package alphabet provides the letters automata read and the predicates their
// edges are labelled with.
//
// Every alphabet distinguishes between a Symbol, a single concrete letter, and
// an Expression, a predicate over symbols that labels an edge. For explicit
// alphabets such as CharAlphabet the two coincide: an expression is exactly
// the one symbol it matches. For the symbolic PropAlphabet a symbol is a
// valuation of a fixed set of atomic propositions and an expression is an
// arbitrary boolean formula over those propositions, stored as a BDD.
//
// Algorithms are written once against the Alphabet contract and work for both
// kinds.
package alphabet

import "iter"

// Alphabet is the contract shared by explicit and symbolic alphabets.
type Alphabet[S comparable, E any] interface {
	// Size returns the number of distinct symbols.
	Size() int

	// Universe returns every symbol exactly once. The sequence can be
	// iterated any number of times.
	Universe() iter.Seq[S]

	// Contains reports whether sym belongs to the alphabet.
	Contains(sym S) bool

	// MakeExpression lifts a symbol to the expression matching exactly that symbol.
	MakeExpression(sym S) E

	// Matches reports whether sym satisfies expr.
	Matches(expr E, sym S) bool

	// Symbols returns every symbol matching expr, each exactly once.
	Symbols(expr E) iter.Seq[S]

	// Overlaps reports whether some symbol matches both a and b.
	Overlaps(a, b E) bool

	// Equivalent reports whether a and b match the same symbols.
	Equivalent(a, b E) bool

	// Show renders an expression for humans.
	Show(expr E) string

	// ShowSymbol renders a symbol for humans.
	ShowSymbol(sym S) string
}

var (
	_ Alphabet[rune, rune]                 = (*CharAlphabet)(nil)
	_ Alphabet[PropSymbol, PropExpression] = (*PropAlphabet)(nil)
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
