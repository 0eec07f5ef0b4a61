package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/atlekbai/omega"
)

// DotGraphStyle generates DOT graphs with states drawn as circles.
type DotGraphStyle struct {
	// Rankdir is the DOT layout direction; "LR" when empty.
	Rankdir string
}

// NewDotGraphStyle creates a new DOT graph style.
func NewDotGraphStyle() *DotGraphStyle {
	return &DotGraphStyle{}
}

// GetPrefix returns the text that starts a new DOT graph.
func (s *DotGraphStyle) GetPrefix(graph *StateGraph) string {
	rankdir := s.Rankdir
	if rankdir == "" {
		rankdir = "LR"
	}
	var sb strings.Builder
	if graph.Name != "" {
		sb.WriteString(fmt.Sprintf("digraph \"%s\" {\n", EscapeLabel(graph.Name)))
	} else {
		sb.WriteString("digraph {\n")
	}
	sb.WriteString("node [shape=circle]\n")
	sb.WriteString(fmt.Sprintf("rankdir=\"%s\"\n", EscapeLabel(rankdir)))
	return sb.String()
}

// FormatOneState formats a single state.
func (s *DotGraphStyle) FormatOneState(state *State) string {
	return fmt.Sprintf("\"%s\" [label=\"%s\"%s];\n",
		EscapeLabel(state.NodeName), EscapeLabel(state.Label), formatAttributes(state.Attributes))
}

// FormatAllTransitions formats all transitions.
func (s *DotGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *DotGraphStyle) FormatOneTransition(sourceNodeName, label, destinationNodeName string, attributes map[string]string) string {
	return fmt.Sprintf("\"%s\" -> \"%s\" [label=\"%s\"%s];",
		EscapeLabel(sourceNodeName), EscapeLabel(destinationNodeName), EscapeLabel(label), formatAttributes(attributes))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *DotGraphStyle) GetInitialTransition(initial *State) string {
	if initial == nil {
		return "\n}"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"", EscapeLabel(initial.NodeName)))
	sb.WriteString("\n")
	sb.WriteString("}")
	return sb.String()
}

// EscapeLabel escapes special characters in a label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	label = strings.ReplaceAll(label, "\n", "\\n")
	return label
}

// DotGraph renders ts as a DOT graph.
func DotGraph[S comparable, E, Q, C any](ts omega.TransitionSystem[S, E, Q, C], naming Naming[E, Q, C]) (string, error) {
	graph, err := NewStateGraph(ts, naming)
	if err != nil {
		return "", err
	}
	return graph.ToGraph(NewDotGraphStyle()), nil
}

// WriteDot renders ts as a DOT graph with the given style and writes it to w.
func WriteDot[S comparable, E, Q, C any](w io.Writer, ts omega.TransitionSystem[S, E, Q, C], naming Naming[E, Q, C], style *DotGraphStyle) error {
	graph, err := NewStateGraph(ts, naming)
	if err != nil {
		return err
	}
	if style == nil {
		style = NewDotGraphStyle()
	}
	_, err = io.WriteString(w, graph.ToGraph(style)+"\n")
	return err
}
