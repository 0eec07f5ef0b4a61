package hoa

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
	"github.com/atlekbai/omega/hoa/syntax"
)

// NTS is a transition system read from HOA: edges are labelled with
// propositional expressions and carry acceptance masks, states are colored
// with their declared id.
type NTS = omega.NTS[alphabet.PropSymbol, alphabet.PropExpression, int, omega.AcceptanceMask]

// Automaton is an omega automaton read from HOA.
type Automaton = omega.OmegaAutomaton[alphabet.PropSymbol, alphabet.PropExpression]

// DeterministicAutomaton is a deterministic omega automaton read from HOA.
type DeterministicAutomaton = omega.DeterministicOmegaAutomaton[alphabet.PropSymbol, alphabet.PropExpression]

type converter struct {
	aut      *syntax.Automaton
	alphabet *alphabet.PropAlphabet
}

func (c *converter) fail(pos syntax.Position, format string, args ...any) error {
	return &ConversionError{Automaton: c.aut.Header.Name, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ConditionFromHeader reads the acceptance condition named by acc-name.
// Buchi maps to omega.Buchi and parity to omega.Parity(0, n) where n is the
// number of acceptance sets. Parity conditions must read "parity min even n"
// with n equal to the number of acceptance sets; other parity variants and
// every other name are rejected.
func ConditionFromHeader(h *syntax.Header) (omega.AcceptanceCondition, error) {
	fail := func(msg string, err error) (omega.AcceptanceCondition, error) {
		return omega.AcceptanceCondition{}, &ConversionError{Automaton: h.Name, Msg: msg, Err: err}
	}
	switch h.AccName {
	case "Buchi":
		return omega.Buchi, nil
	case "parity":
		p := h.AccParams
		if len(p) != 3 || p[0] != "min" || p[1] != "even" {
			return fail(fmt.Sprintf("acc-name parity %s is not supported, only parity min even <n>", strings.Join(p, " ")), omega.ErrUnsupported)
		}
		if n, err := strconv.Atoi(p[2]); err != nil || n != h.NumSets {
			return fail(fmt.Sprintf("acc-name parity min even %s does not match %d acceptance sets", p[2], h.NumSets), nil)
		}
		return omega.Parity(0, h.NumSets), nil
	case "":
		return fail("no acc-name: header, the acceptance condition cannot be identified", nil)
	}
	return fail(fmt.Sprintf("acceptance %q is not supported, only Buchi and parity", h.AccName), omega.ErrUnsupported)
}

// ToNTS builds the transition system of aut and returns it along with its
// start state. State i of the result is the state declared with id i.
func ToNTS(aut *syntax.Automaton) (*NTS, omega.StateIndex, error) {
	h := &aut.Header
	c := &converter{aut: aut}
	if n := len(h.APs); n == 0 || n >= alphabet.MaxAPs {
		return nil, -1, c.fail(syntax.Position{}, "%d atomic propositions given, between 1 and %d are supported", n, alphabet.MaxAPs-1)
	}
	c.alphabet = alphabet.NewPropAlphabet(h.APs)

	switch {
	case len(h.Start) == 0:
		return nil, -1, c.fail(syntax.Position{}, "no start state")
	case len(h.Start) > 1:
		return nil, -1, c.fail(syntax.Position{}, "%d start states, exactly one is supported", len(h.Start))
	case len(h.Start[0]) != 1:
		return nil, -1, c.fail(syntax.Position{}, "start state conjunction %v is not supported", h.Start[0])
	}
	start := h.Start[0][0]

	size, err := c.size(start)
	if err != nil {
		return nil, -1, err
	}

	ts := omega.NewNTSWithCapacity[alphabet.PropSymbol, alphabet.PropExpression, int, omega.AcceptanceMask](c.alphabet, size)
	for id := 0; id < size; id++ {
		if q := ts.AddState(id); q != id {
			panic(&omega.InvalidOperationError{Message: fmt.Sprintf("state %d was added at index %d", id, q)})
		}
	}

	declared := make([]bool, size)
	for _, st := range aut.States {
		if declared[st.ID] {
			return nil, -1, c.fail(st.Pos, "state %d is declared twice", st.ID)
		}
		declared[st.ID] = true
		if err := c.addEdges(ts, st); err != nil {
			return nil, -1, err
		}
	}
	ts.SetInitial(start)
	return ts, start, nil
}

// MaxUnmentionedStates bounds how many states a block may declare without
// mentioning them as start state, body state or edge target.
const MaxUnmentionedStates = 1 << 12

// size returns the number of states to allocate. Ids must lie below the
// States: header when it is given, and the state count may exceed the
// number of distinct ids the block mentions by at most MaxUnmentionedStates.
func (c *converter) size(start int) (int, error) {
	h := &c.aut.Header
	mentioned := map[int]struct{}{start: {}}
	hi := start
	check := func(id int, pos syntax.Position, what string) error {
		if h.States >= 0 && id >= h.States {
			return c.fail(pos, "%s %d is out of range, States: declares %d", what, id, h.States)
		}
		mentioned[id] = struct{}{}
		hi = max(hi, id)
		return nil
	}
	if err := check(start, syntax.Position{}, "start state"); err != nil {
		return 0, err
	}
	for _, st := range c.aut.States {
		if err := check(st.ID, st.Pos, "state"); err != nil {
			return 0, err
		}
		for _, e := range st.Edges {
			for _, t := range e.Targets {
				if err := check(t, e.Pos, "target"); err != nil {
					return 0, err
				}
			}
		}
	}

	size := hi + 1
	if h.States >= 0 {
		size = h.States
	}
	if size-len(mentioned) > MaxUnmentionedStates {
		return 0, c.fail(syntax.Position{}, "%d states for %d mentioned ids, at most %d may be left unmentioned", size, len(mentioned), MaxUnmentionedStates)
	}
	return size, nil
}

// ToOmegaAutomaton converts aut into an omega automaton.
func ToOmegaAutomaton(aut *syntax.Automaton) (*Automaton, error) {
	acc, err := ConditionFromHeader(&aut.Header)
	if err != nil {
		return nil, err
	}
	ts, start, err := ToNTS(aut)
	if err != nil {
		return nil, err
	}
	return omega.NewOmegaAutomaton(ts, start, acc), nil
}

func (c *converter) addEdges(ts *NTS, st syntax.State) error {
	stateMask := omega.NewAcceptanceMask(st.Acc...)

	var stateLabel alphabet.PropExpression
	implicit := false
	if st.Label != nil {
		var err error
		if stateLabel, err = c.compile(st.Label, st.Pos); err != nil {
			return err
		}
	} else if len(st.Edges) > 0 {
		implicit = st.Edges[0].Label == nil
		for _, e := range st.Edges[1:] {
			if (e.Label == nil) != implicit {
				return c.fail(e.Pos, "state %d mixes labelled and implicitly labelled edges", st.ID)
			}
		}
		if implicit && len(st.Edges) > c.alphabet.Size() {
			return c.fail(st.Pos, "state %d has %d implicit edges, the alphabet has %d symbols", st.ID, len(st.Edges), c.alphabet.Size())
		}
	}

	for k, e := range st.Edges {
		if len(e.Targets) != 1 {
			return c.fail(e.Pos, "edge to the conjunction %v is not supported", e.Targets)
		}

		var expr alphabet.PropExpression
		switch {
		case st.Label != nil:
			expr = stateLabel
		case implicit:
			expr = c.alphabet.MakeExpression(alphabet.NewPropSymbol(uint16(k), c.alphabet.APs()))
		default:
			var err error
			if expr, err = c.compile(e.Label, e.Pos); err != nil {
				return err
			}
		}

		mask := stateMask.Union(omega.NewAcceptanceMask(e.Acc...))
		ts.AddEdge(omega.NewEdge(st.ID, expr, mask, e.Targets[0]))
	}
	return nil
}

// compile turns a label into an expression, rejecting labels no valuation
// satisfies.
func (c *converter) compile(l *syntax.Label, pos syntax.Position) (alphabet.PropExpression, error) {
	expr, err := c.expression(l, pos, nil)
	if err != nil {
		return expr, err
	}
	if expr.IsFalse() {
		return expr, c.fail(pos, "label %v is unsatisfiable", l)
	}
	return expr, nil
}

func (c *converter) expression(l *syntax.Label, pos syntax.Position, resolving []string) (alphabet.PropExpression, error) {
	a := c.alphabet
	switch l.Op {
	case syntax.LabelTrue:
		return a.True(), nil
	case syntax.LabelFalse:
		return a.False(), nil
	case syntax.LabelAP:
		if l.AP >= a.APs() {
			return alphabet.PropExpression{}, c.fail(pos, "proposition %d does not exist, %d are declared", l.AP, a.APs())
		}
		return a.Var(l.AP), nil
	case syntax.LabelAlias:
		if slices.Contains(resolving, l.Alias) {
			return alphabet.PropExpression{}, c.fail(pos, "alias @%s is defined in terms of itself", l.Alias)
		}
		def, ok := c.aut.Header.LookupAlias(l.Alias)
		if !ok {
			return alphabet.PropExpression{}, c.fail(pos, "alias @%s is not defined", l.Alias)
		}
		return c.expression(def, pos, append(resolving, l.Alias))
	case syntax.LabelNot:
		inner, err := c.expression(l.Args[0], pos, resolving)
		if err != nil {
			return inner, err
		}
		return inner.Not(), nil
	}

	acc, err := c.expression(l.Args[0], pos, resolving)
	if err != nil {
		return acc, err
	}
	for _, arg := range l.Args[1:] {
		x, err := c.expression(arg, pos, resolving)
		if err != nil {
			return x, err
		}
		if l.Op == syntax.LabelAnd {
			acc = acc.And(x)
		} else {
			acc = acc.Or(x)
		}
	}
	return acc, nil
}
