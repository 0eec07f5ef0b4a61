package omega_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atlekbai/omega"
)

func TestAcceptanceMask(t *testing.T) {
	var zero omega.AcceptanceMask
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "", zero.String())
	_, ok := zero.Min()
	assert.False(t, ok)

	m := omega.NewAcceptanceMask(2, 0)
	assert.Equal(t, []int{0, 2}, m.Sets())
	assert.Equal(t, "{0}, {2}", m.String())
	assert.True(t, m.Contains(2))
	assert.False(t, m.Contains(1))
	assert.False(t, m.Contains(-1))
	hi, _ := m.Max()
	assert.Equal(t, 2, hi)

	w := m.With(5)
	assert.Equal(t, []int{0, 2, 5}, w.Sets())
	assert.Equal(t, []int{0, 2}, m.Sets(), "With must not modify its receiver")

	assert.True(t, omega.NewAcceptanceMask(0, 2).Equal(m))
	assert.True(t, zero.Equal(omega.NewAcceptanceMask()))
	assert.False(t, zero.Equal(m))
	assert.False(t, omega.NewAcceptanceMask(0).Equal(omega.NewAcceptanceMask(1)))

	assert.Panics(t, func() { omega.NewAcceptanceMask(-1) })
	assert.Panics(t, func() { zero.AsPriority() })
}

func TestTryAsPriorityWarnsOnNonSingleton(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	omega.SetLogger(zap.New(core))
	defer omega.SetLogger(nil)

	p, ok := omega.NewAcceptanceMask(3).TryAsPriority()
	require.True(t, ok)
	assert.Equal(t, 3, p)
	assert.Equal(t, 0, logs.Len())

	p, ok = omega.NewAcceptanceMask(4, 1).TryAsPriority()
	require.True(t, ok)
	assert.Equal(t, 1, p)
	assert.Equal(t, 1, logs.Len())
}

func TestParitySatisfied(t *testing.T) {
	masks := omega.NewAcceptanceMask
	tests := []struct {
		name   string
		infset []omega.AcceptanceMask
		want   bool
	}{
		{"empty infset", nil, false},
		{"only empty masks", []omega.AcceptanceMask{{}, {}}, false},
		{"single even", []omega.AcceptanceMask{masks(2)}, true},
		{"single odd", []omega.AcceptanceMask{masks(1)}, false},
		{"min odd", []omega.AcceptanceMask{masks(4), masks(3), masks(6)}, false},
		{"min even", []omega.AcceptanceMask{masks(5), masks(2), {}}, true},
		{"zero wins", []omega.AcceptanceMask{masks(0), masks(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := omega.Parity(0, 7).Satisfied(tt.infset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnsupportedConditions(t *testing.T) {
	for _, c := range []omega.AcceptanceCondition{
		omega.Buchi, omega.Rabin, omega.Streett, omega.MaxParity,
		omega.CoBuchi, omega.Reachability, omega.Safety,
	} {
		_, err := c.Satisfied([]omega.AcceptanceMask{omega.NewAcceptanceMask(0)})
		if !errors.Is(err, omega.ErrUnsupported) {
			t.Errorf("%v: expected ErrUnsupported, got %v", c, err)
		}
		var uce *omega.UnsupportedConditionError
		if !errors.As(err, &uce) || uce.Condition != c {
			t.Errorf("%v: expected the condition to be reported, got %v", c, err)
		}
		assert.Panics(t, func() { c.MustSatisfied(nil) })
	}
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "Parity(0, 3)", omega.Parity(0, 3).String())
	assert.Equal(t, "Buchi", omega.Buchi.String())
	assert.Equal(t, "CoBuchi", omega.KindCoBuchi.String())
	assert.Equal(t, "ConditionKind(42)", omega.ConditionKind(42).String())
}
