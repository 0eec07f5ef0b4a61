package omega

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/atlekbai/omega/internal/logging"
)

// AcceptanceMask is the set of acceptance sets an edge belongs to. Masks are
// immutable; the zero value is the empty mask.
type AcceptanceMask struct {
	bits *bitset.BitSet
}

// NewAcceptanceMask returns the mask containing the given sets. It panics on
// negative set numbers.
func NewAcceptanceMask(sets ...int) AcceptanceMask {
	if len(sets) == 0 {
		return AcceptanceMask{}
	}
	b := bitset.New(0)
	for _, s := range sets {
		if s < 0 {
			panic(&ArgumentError{ParamName: "sets", Message: fmt.Sprintf("acceptance set %d is negative", s)})
		}
		b.Set(uint(s))
	}
	return AcceptanceMask{bits: b}
}

// IsEmpty reports whether the mask contains no set.
func (m AcceptanceMask) IsEmpty() bool {
	return m.bits == nil || m.bits.None()
}

// Len returns the number of sets in the mask.
func (m AcceptanceMask) Len() int {
	if m.bits == nil {
		return 0
	}
	return int(m.bits.Count())
}

// Contains reports whether set s is in the mask.
func (m AcceptanceMask) Contains(s int) bool {
	return s >= 0 && m.bits != nil && m.bits.Test(uint(s))
}

// Min returns the smallest set in the mask.
func (m AcceptanceMask) Min() (int, bool) {
	if m.bits == nil {
		return 0, false
	}
	i, ok := m.bits.NextSet(0)
	return int(i), ok
}

// Max returns the largest set in the mask.
func (m AcceptanceMask) Max() (int, bool) {
	sets := m.Sets()
	if len(sets) == 0 {
		return 0, false
	}
	return sets[len(sets)-1], true
}

// Sets returns the sets of the mask in increasing order.
func (m AcceptanceMask) Sets() []int {
	if m.bits == nil {
		return nil
	}
	out := make([]int, 0, m.bits.Count())
	for i, ok := m.bits.NextSet(0); ok; i, ok = m.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// With returns a mask additionally containing set s.
func (m AcceptanceMask) With(s int) AcceptanceMask {
	return m.Union(NewAcceptanceMask(s))
}

// Union returns the sets contained in either mask.
func (m AcceptanceMask) Union(o AcceptanceMask) AcceptanceMask {
	switch {
	case m.bits == nil:
		return o
	case o.bits == nil:
		return m
	}
	return AcceptanceMask{bits: m.bits.Union(o.bits)}
}

// Equal reports whether both masks contain the same sets.
func (m AcceptanceMask) Equal(o AcceptanceMask) bool {
	if m.IsEmpty() || o.IsEmpty() {
		return m.IsEmpty() && o.IsEmpty()
	}
	return m.bits.SymmetricDifferenceCardinality(o.bits) == 0
}

// TryAsPriority reads the mask as a parity priority: the smallest set it
// contains. A mask with several sets is logged, since parity acceptance
// expects at most one set per edge.
func (m AcceptanceMask) TryAsPriority() (int, bool) {
	p, ok := m.Min()
	if !ok {
		return 0, false
	}
	if n := m.Len(); n > 1 {
		logging.Named("omega").Warn("acceptance mask is not a singleton, using its minimum as priority",
			zap.Stringer("mask", m), zap.Int("priority", p))
	}
	return p, true
}

// AsPriority is like TryAsPriority but panics on the empty mask.
func (m AcceptanceMask) AsPriority() int {
	p, ok := m.TryAsPriority()
	if !ok {
		panic(&InvalidOperationError{Message: "the empty acceptance mask has no priority"})
	}
	return p
}

// String renders the mask as "{0}, {2}". The empty mask renders as "".
func (m AcceptanceMask) String() string {
	sets := m.Sets()
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = "{" + strconv.Itoa(s) + "}"
	}
	return strings.Join(parts, ", ")
}

// ConditionKind enumerates the acceptance conditions an automaton may declare.
type ConditionKind int

const (
	KindParity ConditionKind = iota
	KindBuchi
	KindRabin
	KindStreett
	KindMaxParity
	KindCoBuchi
	KindReachability
	KindSafety
)

var kindNames = [...]string{
	KindParity:       "Parity",
	KindBuchi:        "Buchi",
	KindRabin:        "Rabin",
	KindStreett:      "Streett",
	KindMaxParity:    "MaxParity",
	KindCoBuchi:      "CoBuchi",
	KindReachability: "Reachability",
	KindSafety:       "Safety",
}

func (k ConditionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "ConditionKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// AcceptanceCondition decides which infinite runs are accepting. Low and
// High bound the priorities of a parity condition and are zero otherwise.
type AcceptanceCondition struct {
	Kind      ConditionKind
	Low, High int
}

// Parity returns the min-even parity condition over priorities [low, high).
func Parity(low, high int) AcceptanceCondition {
	return AcceptanceCondition{Kind: KindParity, Low: low, High: high}
}

var (
	Buchi        = AcceptanceCondition{Kind: KindBuchi}
	Rabin        = AcceptanceCondition{Kind: KindRabin}
	Streett      = AcceptanceCondition{Kind: KindStreett}
	MaxParity    = AcceptanceCondition{Kind: KindMaxParity}
	CoBuchi      = AcceptanceCondition{Kind: KindCoBuchi}
	Reachability = AcceptanceCondition{Kind: KindReachability}
	Safety       = AcceptanceCondition{Kind: KindSafety}
)

// Satisfied evaluates the condition on the masks seen infinitely often.
//
// A parity condition holds when the least priority among the non-empty masks
// is even; it fails when no mask carries a priority. Every other kind
// returns an *UnsupportedConditionError.
func (c AcceptanceCondition) Satisfied(infset []AcceptanceMask) (bool, error) {
	if c.Kind != KindParity {
		return false, &UnsupportedConditionError{Condition: c}
	}
	least, found := 0, false
	for _, m := range infset {
		p, ok := m.TryAsPriority()
		if !ok {
			continue
		}
		if !found || p < least {
			least, found = p, true
		}
	}
	return found && least%2 == 0, nil
}

// MustSatisfied is like Satisfied but panics on unsupported conditions.
func (c AcceptanceCondition) MustSatisfied(infset []AcceptanceMask) bool {
	ok, err := c.Satisfied(infset)
	if err != nil {
		panic(err)
	}
	return ok
}

func (c AcceptanceCondition) String() string {
	if c.Kind == KindParity {
		return fmt.Sprintf("Parity(%d, %d)", c.Low, c.High)
	}
	return c.Kind.String()
}
