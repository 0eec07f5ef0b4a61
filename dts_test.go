package omega_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
)

func TestNewDTS_RejectsOverlappingEdges(t *testing.T) {
	ts := modCounter()
	ts.AddEdge(omega.NewEdge(1, 'b', 0, 2))

	_, err := omega.NewDTS(ts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omega.ErrNotDeterministic))

	var nde *omega.NotDeterministicError
	require.True(t, errors.As(err, &nde))
	assert.Equal(t, 1, nde.State)
}

func TestDTS_TransitionAgreesWithEdgeScan(t *testing.T) {
	a := alphabet.NewPropAlphabet([]string{"p", "q"})
	ts := omega.NewNTS[alphabet.PropSymbol, alphabet.PropExpression, int, int](a)
	ts.AddState(0)
	ts.AddState(1)
	ts.AddEdge(omega.NewEdge(0, a.Var(0), 0, 1))
	ts.AddEdge(omega.NewEdge(0, a.NotVar(0).And(a.Var(1)), 1, 0))
	ts.AddEdge(omega.NewEdge(1, a.True(), 2, 1))

	d, err := omega.NewDTS(ts)
	require.NoError(t, err)

	for q := range d.StateIndices() {
		for sym := range a.Universe() {
			var want *omega.Edge[alphabet.PropExpression, int]
			edges, _ := d.EdgesFrom(q)
			for e := range edges {
				if a.Matches(e.Expression, sym) {
					want = &e
				}
			}
			got, ok := d.Transition(q, sym)
			if want == nil {
				assert.False(t, ok, "state %d symbol %v", q, sym)
				continue
			}
			require.True(t, ok, "state %d symbol %v", q, sym)
			assert.Equal(t, want.Target, got.Target)
			assert.Equal(t, want.Color, got.Color)
		}
	}

	e, ok := d.Edge(0, func(x alphabet.PropExpression) bool { return x.Equivalent(a.Var(0)) })
	require.True(t, ok)
	assert.Equal(t, 1, e.Target)
}

func TestDTS_TryAddEdge(t *testing.T) {
	ts := omega.NewNTS[rune, rune, bool, int](alphabet.CharAlphabetOfSize(2))
	ts.AddState(false)
	d, err := omega.NewDTS(ts)
	require.NoError(t, err)

	require.NoError(t, d.TryAddEdge(omega.NewEdge(0, 'a', 0, 0)))
	assert.True(t, errors.Is(d.TryAddEdge(omega.NewEdge(0, 'a', 1, 0)), omega.ErrNotDeterministic))
	require.NoError(t, d.TryAddEdge(omega.NewEdge(0, 'b', 1, 0)))

	var ise *omega.InvalidStateError
	assert.True(t, errors.As(d.TryAddEdge(omega.NewEdge(3, 'a', 0, 0)), &ise))

	assert.Panics(t, func() { d.AddEdge(omega.NewEdge(0, 'b', 2, 0)) })
	assert.Equal(t, 2, d.EdgeCount())

	nts := d.Into()
	assert.Equal(t, 2, nts.EdgeCount())
}

func TestAccepts(t *testing.T) {
	d := omega.MustDTS(modCounter())

	tests := []struct {
		word string
		want bool
	}{
		{"", false},
		{"aa", true},
		{"abab", true},
		{"aaa", false},
		{"bbbaab", true},
		{"c", false},
	}
	for _, tt := range tests {
		if got := omega.Accepts(d, []rune(tt.word), accepting); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestRunFinite(t *testing.T) {
	d := omega.MustDTS(modCounter())

	run := omega.RunFinite(d, 0, []rune("aba"))
	assert.True(t, run.Successful())
	assert.Equal(t, []omega.StateIndex{0, 1, 1, 2}, run.States)
	assert.Len(t, run.Edges, 3)
	assert.Equal(t, 2, run.Reached())

	run = omega.RunFinite(d, 0, []rune("azb"))
	assert.False(t, run.Successful())
	assert.Equal(t, 1, run.EscapedAt)
	assert.Equal(t, 1, run.Reached())
}

func TestDTSEdgesMatchesNTS(t *testing.T) {
	d := omega.MustDTS(modCounter())

	got := collectEdges(d.Edges())
	if len(got) != d.EdgeCount() {
		t.Errorf("Edges() yielded %d edges, EdgeCount() = %d", len(got), d.EdgeCount())
	}
	for i := 1; i < len(got); i++ {
		if got[i].Source < got[i-1].Source {
			t.Errorf("Edges() not in state order at %d", i)
		}
	}
}
