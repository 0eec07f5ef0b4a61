// Package graph renders transition systems as DOT or Mermaid diagrams.
//
// A Naming decides how states and edges are presented; DefaultNaming covers
// the common case. Rendering only produces text: no external program is run.
package graph

import (
	"github.com/atlekbai/omega"
)

// State represents a state in the graph.
type State struct {
	// Index is the state index in the transition system.
	Index omega.StateIndex

	// NodeName is the identifier of the node in the graph.
	NodeName string

	// Label is the text shown on the node.
	Label string

	// Attributes are extra DOT attributes of the node, e.g. shape.
	Attributes map[string]string

	// Leaving are the transitions leaving this state.
	Leaving []*Transition

	// Arriving are the transitions arriving at this state.
	Arriving []*Transition
}

// Transition represents an edge in the graph.
type Transition struct {
	// SourceState is the source state of the transition.
	SourceState *State

	// DestinationState is the destination state of the transition.
	DestinationState *State

	// Label is the text shown on the edge.
	Label string

	// Attributes are extra DOT attributes of the edge.
	Attributes map[string]string
}

// IsSelfLoop reports whether the transition leaves and enters the same state.
func (t *Transition) IsSelfLoop() bool {
	return t.SourceState == t.DestinationState
}
