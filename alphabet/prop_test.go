package alphabet

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(seq func(func(PropSymbol) bool)) []uint16 {
	var out []uint16
	for s := range seq {
		out = append(out, s.Bits())
	}
	slices.Sort(out)
	return out
}

func TestPropAlphabetSize(t *testing.T) {
	a := NewPropAlphabet([]string{"a", "b", "c"})
	assert.Equal(t, 8, a.Size())
	assert.Equal(t, 3, a.APs())

	n := 0
	for range a.Universe() {
		n++
	}
	assert.Equal(t, 8, n)

	// the universe is restartable
	n = 0
	for range a.Universe() {
		n++
	}
	assert.Equal(t, 8, n)
}

func TestPropAlphabetRejectsPropositionCount(t *testing.T) {
	assert.Panics(t, func() { NewPropAlphabet(nil) })

	names := make([]string, MaxAPs)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	assert.Panics(t, func() { NewPropAlphabet(names) })
	assert.NotPanics(t, func() { NewPropAlphabet(names[:MaxAPs-1]) })
}

func TestEnumerationCompleteness(t *testing.T) {
	a := NewPropAlphabet([]string{"p", "q", "r"})
	exprs := map[string]PropExpression{
		"p":         a.Var(0),
		"!q":        a.NotVar(1),
		"p & !q":    a.Var(0).And(a.NotVar(1)),
		"p | r":     a.Var(0).Or(a.Var(2)),
		"!(p & q)":  a.Var(0).And(a.Var(1)).Not(),
		"true":      a.True(),
		"(p|q)&!r":  a.Var(0).Or(a.Var(1)).And(a.NotVar(2)),
		"exact 101": a.MakeExpression(NewPropSymbol(0b101, 3)),
	}

	for name, e := range exprs {
		t.Run(name, func(t *testing.T) {
			var want []uint16
			for s := range a.Universe() {
				if a.Matches(e, s) {
					want = append(want, s.Bits())
				}
			}
			got := collect(a.Symbols(e))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBooleanLaws(t *testing.T) {
	a := NewPropAlphabet([]string{"x", "y", "z"})
	x, y, z := a.Var(0), a.Var(1), a.Var(2)

	assert.True(t, x.And(y).Equivalent(y.And(x)), "and is commutative")
	assert.True(t, x.Or(y).Equivalent(y.Or(x)), "or is commutative")
	assert.True(t, x.And(y).And(z).Equivalent(x.And(y.And(z))), "and is associative")
	assert.True(t, x.Or(y).Or(z).Equivalent(x.Or(y.Or(z))), "or is associative")
	assert.True(t, x.And(x.Or(y)).Equivalent(x), "absorption")
	assert.True(t, x.Or(x.And(y)).Equivalent(x), "absorption")
	assert.True(t, x.And(y).Not().Equivalent(x.Not().Or(y.Not())), "de morgan")
	assert.True(t, x.And(x.Not()).IsFalse())
	assert.True(t, x.Or(x.Not()).IsTrue())
}

func TestMakeExpressionIsExact(t *testing.T) {
	a := NewPropAlphabet([]string{"a", "b"})
	for s := range a.Universe() {
		e := a.MakeExpression(s)
		got := collect(a.Symbols(e))
		assert.Equal(t, []uint16{s.Bits()}, got)
		// cached value is equivalent to a freshly built one
		assert.True(t, e.Equivalent(a.MakeExpression(s)))
	}
}

func TestAlphabetEqualityIgnoresCache(t *testing.T) {
	a := NewPropAlphabet([]string{"a", "b"})
	b := NewPropAlphabet([]string{"a", "b"})
	a.MakeExpression(NewPropSymbol(1, 2))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewPropAlphabet([]string{"b", "a"})))
}

func TestExpressionString(t *testing.T) {
	a := NewPropAlphabet([]string{"a", "b"})
	assert.Equal(t, "t", a.True().String())
	assert.Equal(t, "0 & !1", a.Var(0).And(a.NotVar(1)).String())
	assert.Equal(t, "!1", a.NotVar(1).String())

	s := a.Var(0).Or(a.Var(1)).String()
	assert.Contains(t, s, " | ")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnsatisfiable))
	}()
	_ = a.False().String()
}

func TestOverlaps(t *testing.T) {
	a := NewPropAlphabet([]string{"a", "b"})
	assert.True(t, a.Overlaps(a.Var(0), a.Var(1)))
	assert.False(t, a.Overlaps(a.Var(0), a.NotVar(0)))
}

func TestVarOutOfRange(t *testing.T) {
	a := NewPropAlphabet([]string{"a"})
	assert.Panics(t, func() { a.Var(1) })
	assert.Panics(t, func() { a.NotVar(-1) })
}

func TestMismatchedWidthPanics(t *testing.T) {
	a := NewPropAlphabet([]string{"a"})
	b := NewPropAlphabet([]string{"a", "b"})
	assert.Panics(t, func() { a.Var(0).And(b.Var(0)) })
}
