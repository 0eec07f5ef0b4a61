package syntax

import (
	"strconv"
	"strings"
)

// LabelOp is the operator at the root of a label expression.
type LabelOp int

const (
	LabelTrue LabelOp = iota
	LabelFalse
	LabelAP
	LabelAlias
	LabelNot
	LabelAnd
	LabelOr
)

// Label is a boolean formula over atomic proposition indices and aliases.
type Label struct {
	Op    LabelOp
	AP    int    // LabelAP
	Alias string // LabelAlias
	Args  []*Label
}

func (l *Label) String() string {
	switch l.Op {
	case LabelTrue:
		return "t"
	case LabelFalse:
		return "f"
	case LabelAP:
		return strconv.Itoa(l.AP)
	case LabelAlias:
		return "@" + l.Alias
	case LabelNot:
		return "!" + l.Args[0].group()
	}
	sep := " & "
	if l.Op == LabelOr {
		sep = " | "
	}
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.group()
	}
	return strings.Join(parts, sep)
}

func (l *Label) group() string {
	if l.Op == LabelAnd || l.Op == LabelOr {
		return "(" + l.String() + ")"
	}
	return l.String()
}

// AccOp is the operator at the root of an acceptance condition.
type AccOp int

const (
	AccTrue AccOp = iota
	AccFalse
	AccInf
	AccFin
	AccAnd
	AccOr
)

// Acceptance is the condition declared by the Acceptance header.
type Acceptance struct {
	Op      AccOp
	Set     int  // AccInf, AccFin
	Negated bool // Inf(!n), Fin(!n)
	Args    []*Acceptance
}

func (a *Acceptance) String() string {
	switch a.Op {
	case AccTrue:
		return "t"
	case AccFalse:
		return "f"
	case AccInf, AccFin:
		name := "Inf"
		if a.Op == AccFin {
			name = "Fin"
		}
		neg := ""
		if a.Negated {
			neg = "!"
		}
		return name + "(" + neg + strconv.Itoa(a.Set) + ")"
	}
	sep := " & "
	if a.Op == AccOr {
		sep = " | "
	}
	parts := make([]string, len(a.Args))
	for i, c := range a.Args {
		if c.Op == AccAnd || c.Op == AccOr {
			parts[i] = "(" + c.String() + ")"
		} else {
			parts[i] = c.String()
		}
	}
	return strings.Join(parts, sep)
}

// AliasDef binds a name to a label.
type AliasDef struct {
	Name  string
	Label *Label
}

// HeaderItem is a header line this package does not interpret.
type HeaderItem struct {
	Name   string
	Values []Token
	Pos    Position
}

// Header holds the items preceding --BODY--.
type Header struct {
	Version string

	// States is the declared state count, or -1 if absent.
	States int

	// Start lists the start lines; each is a conjunction of states.
	Start [][]int

	APs     []string
	Aliases []AliasDef

	// NumSets is the number of acceptance sets; Acceptance is nil when
	// the header is absent.
	NumSets    int
	Acceptance *Acceptance

	AccName   string
	AccParams []string

	Tool       []string
	Name       string
	Properties []string

	Extra []HeaderItem
}

// LookupAlias returns the label bound to name.
func (h *Header) LookupAlias(name string) (*Label, bool) {
	for _, a := range h.Aliases {
		if a.Name == name {
			return a.Label, true
		}
	}
	return nil, false
}

// HasProperty reports whether the properties header lists p.
func (h *Header) HasProperty(p string) bool {
	for _, q := range h.Properties {
		if q == p {
			return true
		}
	}
	return false
}

// Edge is a transition line of the body.
type Edge struct {
	// Label is nil for implicitly labelled edges and edges of a labelled state.
	Label   *Label
	Targets []int
	Acc     []int
	Pos     Position
}

// State is a state line of the body with the edges that follow it.
type State struct {
	ID    int
	Name  string
	Label *Label
	Acc   []int
	Edges []Edge
	Pos   Position
}

// Automaton is one parsed HOA automaton.
type Automaton struct {
	Header Header
	States []State
}
