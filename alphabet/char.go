package alphabet

import (
	"fmt"
	"iter"
	"strings"
)

// CharAlphabet is an explicit alphabet of runes. An expression is the single
// rune it matches.
type CharAlphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewCharAlphabet creates an alphabet with the given symbols, in order.
// It panics if a symbol occurs twice.
func NewCharAlphabet(symbols ...rune) *CharAlphabet {
	a := &CharAlphabet{
		symbols: make([]rune, 0, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	for _, sym := range symbols {
		if _, dup := a.index[sym]; dup {
			panic(&ArgumentError{ParamName: "symbols", Message: fmt.Sprintf("duplicate symbol %q", sym)})
		}
		a.index[sym] = len(a.symbols)
		a.symbols = append(a.symbols, sym)
	}
	return a
}

// CharAlphabetOfSize creates the alphabet 'a', 'b', ... with n symbols.
func CharAlphabetOfSize(n int) *CharAlphabet {
	if n < 0 {
		panic(&ArgumentError{ParamName: "n", Message: "alphabet size must not be negative"})
	}
	symbols := make([]rune, n)
	for i := range symbols {
		symbols[i] = 'a' + rune(i)
	}
	return NewCharAlphabet(symbols...)
}

// Size returns the number of symbols.
func (a *CharAlphabet) Size() int {
	return len(a.symbols)
}

// Universe yields the symbols in declaration order.
func (a *CharAlphabet) Universe() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, sym := range a.symbols {
			if !yield(sym) {
				return
			}
		}
	}
}

// Contains reports whether sym is part of the alphabet.
func (a *CharAlphabet) Contains(sym rune) bool {
	_, ok := a.index[sym]
	return ok
}

// Index returns the position of sym in declaration order.
func (a *CharAlphabet) Index(sym rune) (int, bool) {
	i, ok := a.index[sym]
	return i, ok
}

// MakeExpression returns sym itself.
func (a *CharAlphabet) MakeExpression(sym rune) rune {
	return sym
}

// Matches reports whether expr and sym are the same rune.
func (a *CharAlphabet) Matches(expr, sym rune) bool {
	return expr == sym
}

// Symbols yields expr if it belongs to the alphabet.
func (a *CharAlphabet) Symbols(expr rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if a.Contains(expr) {
			yield(expr)
		}
	}
}

// Overlaps reports whether the two expressions are the same rune.
func (a *CharAlphabet) Overlaps(x, y rune) bool {
	return x == y
}

// Equivalent reports whether the two expressions are the same rune.
func (a *CharAlphabet) Equivalent(x, y rune) bool {
	return x == y
}

// Show renders the rune.
func (a *CharAlphabet) Show(expr rune) string {
	return string(expr)
}

// ShowSymbol renders the rune.
func (a *CharAlphabet) ShowSymbol(sym rune) string {
	return string(sym)
}

// String returns a string representation of the alphabet.
func (a *CharAlphabet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, sym := range a.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune(sym)
	}
	sb.WriteString("}")
	return sb.String()
}
