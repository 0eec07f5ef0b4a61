package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atlekbai/omega"
)

// RenderError reports a transition system that cannot be drawn, such as one
// whose naming produces clashing or empty identifiers.
type RenderError struct {
	Message string
}

func (e *RenderError) Error() string {
	return "graph: " + e.Message
}

// StateGraph generates a symbolic representation of the graph structure.
type StateGraph struct {
	// Name is the graph name.
	Name string

	// InitialState is the initial state, or nil.
	InitialState *State

	// States contains all states in the graph, indexed by node name.
	States map[string]*State

	// Transitions contains all transitions in the graph.
	Transitions []*Transition
}

// NewStateGraph creates a new state graph from a transition system.
func NewStateGraph[S comparable, E, Q, C any](ts omega.TransitionSystem[S, E, Q, C], naming Naming[E, Q, C]) (*StateGraph, error) {
	sg := &StateGraph{
		Name:   naming.Name(),
		States: make(map[string]*State),
	}
	byIndex := make(map[omega.StateIndex]*State)

	for q := range ts.StateIndices() {
		color, _ := ts.StateColor(q)
		id := naming.StateID(q, color)
		if id == "" {
			return nil, &RenderError{Message: fmt.Sprintf("state %d has an empty identifier", q)}
		}
		if other, dup := sg.States[id]; dup {
			return nil, &RenderError{Message: fmt.Sprintf("states %d and %d share the identifier %q", other.Index, q, id)}
		}
		st := &State{
			Index:      q,
			NodeName:   id,
			Label:      naming.StateLabel(q, color),
			Attributes: naming.StateAttributes(q, color),
		}
		sg.States[id] = st
		byIndex[q] = st
	}

	for _, from := range byIndex {
		edges, ok := ts.EdgesFrom(from.Index)
		if !ok {
			continue
		}
		for e := range edges {
			to, ok := byIndex[e.Target]
			if !ok {
				return nil, &RenderError{Message: fmt.Sprintf("edge from state %d enters unknown state %d", e.Source, e.Target)}
			}
			t := &Transition{
				SourceState:      from,
				DestinationState: to,
				Label:            naming.EdgeLabel(e),
				Attributes:       naming.EdgeAttributes(e),
			}
			sg.Transitions = append(sg.Transitions, t)
			from.Leaving = append(from.Leaving, t)
			to.Arriving = append(to.Arriving, t)
		}
	}

	if q, ok := ts.MaybeInitialState(); ok {
		sg.InitialState = byIndex[q]
	}
	return sg, nil
}

// ToGraph converts the state graph to a string representation using the specified style.
func (sg *StateGraph) ToGraph(style Style) string {
	var sb strings.Builder

	sb.WriteString(style.GetPrefix(sg))

	for _, state := range sg.sortedStates() {
		sb.WriteString(style.FormatOneState(state))
	}

	lines := style.FormatAllTransitions(sg.sortedTransitions())
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	sb.WriteString(style.GetInitialTransition(sg.InitialState))

	return sb.String()
}

// sortedStates returns the states in index order.
func (sg *StateGraph) sortedStates() []*State {
	states := make([]*State, 0, len(sg.States))
	for _, st := range sg.States {
		states = append(states, st)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Index < states[j].Index
	})
	return states
}

// sortedTransitions orders transitions by source, then target, then label.
func (sg *StateGraph) sortedTransitions() []*Transition {
	sorted := make([]*Transition, len(sg.Transitions))
	copy(sorted, sg.Transitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.SourceState.Index != b.SourceState.Index {
			return a.SourceState.Index < b.SourceState.Index
		}
		if a.DestinationState.Index != b.DestinationState.Index {
			return a.DestinationState.Index < b.DestinationState.Index
		}
		return a.Label < b.Label
	})
	return sorted
}
