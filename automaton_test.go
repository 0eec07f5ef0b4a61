package omega_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
)

// infinitelyManyA accepts the words over {a, b} containing infinitely many a:
// reading a emits priority 0, reading b emits priority 1.
func infinitelyManyA(t *testing.T) *omega.DeterministicOmegaAutomaton[rune, rune] {
	t.Helper()
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(2))
	q := ts.AddState(0)
	ts.AddEdge(omega.NewEdge(q, 'a', omega.NewAcceptanceMask(0), q))
	ts.AddEdge(omega.NewEdge(q, 'b', omega.NewAcceptanceMask(1), q))
	aut := omega.NewOmegaAutomaton(ts, q, omega.Parity(0, 2))
	d, err := aut.IntoDeterministic()
	require.NoError(t, err)
	return d
}

func TestOmegaAutomaton_IntoDeterministic(t *testing.T) {
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(1))
	q0 := ts.AddState(0)
	q1 := ts.AddState(1)
	ts.AddEdge(omega.NewEdge(q0, 'a', omega.AcceptanceMask{}, q0))
	ts.AddEdge(omega.NewEdge(q0, 'a', omega.AcceptanceMask{}, q1))
	aut := omega.NewOmegaAutomaton(ts, q0, omega.Buchi)

	assert.Equal(t, q0, aut.Initial())
	assert.Equal(t, omega.Buchi, aut.Condition())
	assert.False(t, aut.IsDeterministic())

	_, err := aut.IntoDeterministic()
	assert.True(t, errors.Is(err, omega.ErrNotDeterministic))
	assert.Equal(t, 2, aut.Size(), "a failed conversion leaves the automaton usable")
}

func TestOmegaAutomaton_IntoDeterministicConsumes(t *testing.T) {
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(2))
	q := ts.AddState(0)
	ts.AddEdge(omega.NewEdge(q, 'a', omega.AcceptanceMask{}, q))
	aut := omega.NewOmegaAutomaton(ts, q, omega.Buchi)

	d, err := aut.IntoDeterministic()
	require.NoError(t, err)
	assert.Nil(t, aut.TS(), "the source no longer shares the deterministic system")

	// The only way to grow the system is through the checked wrapper.
	err = d.DTS().TryAddEdge(omega.NewEdge(q, 'a', omega.AcceptanceMask{}, q))
	assert.True(t, errors.Is(err, omega.ErrNotDeterministic))
	assert.Equal(t, 1, d.DTS().EdgeCount())
}

func TestDeterministicOmegaAutomaton_AcceptsLasso(t *testing.T) {
	d := infinitelyManyA(t)

	tests := []struct {
		prefix, cycle string
		want          bool
	}{
		{"", "a", true},
		{"bbb", "ab", true},
		{"aaa", "b", false},
		{"", "bbba", true},
	}
	for _, tt := range tests {
		got, err := d.AcceptsLasso([]rune(tt.prefix), []rune(tt.cycle))
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("AcceptsLasso(%q, %q) = %v, want %v", tt.prefix, tt.cycle, got, tt.want)
		}
	}
}

func TestRunLasso(t *testing.T) {
	d := omega.MustDTS(modCounter())

	run, ok := omega.RunLasso[rune, rune, bool, int](d, 0, []rune("b"), []rune("a"))
	require.True(t, ok)
	assert.ElementsMatch(t, []omega.StateIndex{0, 1, 2}, run.Recurring)
	assert.Len(t, run.RecurringEdges, 3)

	run, ok = omega.RunLasso[rune, rune, bool, int](d, 0, []rune("a"), []rune("b"))
	require.True(t, ok)
	assert.Equal(t, []omega.StateIndex{1}, run.Recurring)
	assert.Equal(t, []int{1}, run.Colors())

	_, ok = omega.RunLasso[rune, rune, bool, int](d, 0, nil, []rune("ac"))
	assert.False(t, ok)

	assert.Panics(t, func() { omega.RunLasso[rune, rune, bool, int](d, 0, nil, nil) })
}

func TestIntoDPA(t *testing.T) {
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(2))
	q0 := ts.AddState(0)
	q1 := ts.AddState(1)
	ts.AddEdge(omega.NewEdge(q0, 'a', omega.NewAcceptanceMask(3), q1))
	ts.AddEdge(omega.NewEdge(q0, 'b', omega.AcceptanceMask{}, q0))
	ts.AddEdge(omega.NewEdge(q1, 'a', omega.NewAcceptanceMask(2), q0))
	ts.AddEdge(omega.NewEdge(q1, 'b', omega.AcceptanceMask{}, q1))
	d, err := omega.NewOmegaAutomaton(ts, q0, omega.Parity(0, 4)).IntoDeterministic()
	require.NoError(t, err)

	dpa := d.IntoDPA()
	assert.Equal(t, []int{2, 3}, dpa.Priorities())

	e, ok := dpa.Transition(q0, 'b')
	require.True(t, ok)
	assert.Equal(t, 3, e.Color, "empty masks take the neutral priority")

	assert.True(t, dpa.AcceptsLasso(nil, []rune("a")))
	assert.False(t, dpa.AcceptsLasso(nil, []rune("b")))
	assert.False(t, dpa.AcceptsLasso([]rune("a"), []rune("b")))
}

func TestIntoDPA_WarnsOncePerNonSingletonMask(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	omega.SetLogger(zap.New(core))
	defer omega.SetLogger(nil)

	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(2))
	q := ts.AddState(0)
	ts.AddEdge(omega.NewEdge(q, 'a', omega.NewAcceptanceMask(1, 4), q))
	ts.AddEdge(omega.NewEdge(q, 'b', omega.NewAcceptanceMask(2), q))
	d, err := omega.NewOmegaAutomaton(ts, q, omega.Parity(0, 5)).IntoDeterministic()
	require.NoError(t, err)

	dpa := d.IntoDPA()
	assert.Equal(t, []int{1, 2}, dpa.Priorities())
	assert.Equal(t, 1, logs.FilterMessage("acceptance mask is not a singleton, using its minimum as priority").Len())
	assert.Equal(t, 1, logs.Len())
}

func TestIntoDPA_NeutralWithoutPriorities(t *testing.T) {
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(1))
	q := ts.AddState(0)
	ts.AddEdge(omega.NewEdge(q, 'a', omega.AcceptanceMask{}, q))
	d, err := omega.NewOmegaAutomaton(ts, q, omega.Parity(0, 1)).IntoDeterministic()
	require.NoError(t, err)

	dpa := d.IntoDPA()
	assert.Equal(t, []int{1}, dpa.Priorities())
	assert.False(t, dpa.AcceptsLasso(nil, []rune("a")))
}

func TestIntoDPA_RequiresParity(t *testing.T) {
	ts := omega.NewNTS[rune, rune, int, omega.AcceptanceMask](alphabet.CharAlphabetOfSize(1))
	q := ts.AddState(0)
	d, err := omega.NewOmegaAutomaton(ts, q, omega.Buchi).IntoDeterministic()
	require.NoError(t, err)
	assert.Panics(t, func() { d.IntoDPA() })
}
