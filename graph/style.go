package graph

import (
	"sort"
	"strings"
)

// Style defines the interface for formatting state graphs.
type Style interface {
	// GetPrefix returns the text that starts a new graph.
	GetPrefix(graph *StateGraph) string

	// GetInitialTransition returns the text for the initial state marker
	// and closes the graph. initial is nil when there is no initial state.
	GetInitialTransition(initial *State) string

	// FormatOneState formats a single state.
	FormatOneState(state *State) string

	// FormatAllTransitions formats all transitions.
	FormatAllTransitions(transitions []*Transition) []string

	// FormatOneTransition formats a single transition.
	FormatOneTransition(sourceNodeName, label, destinationNodeName string, attributes map[string]string) string
}

// FormatTransitions is a helper that formats all transitions using the given style.
func FormatTransitions(style Style, transitions []*Transition) []string {
	var lines []string
	for _, t := range transitions {
		if t.DestinationState == nil {
			continue
		}
		line := style.FormatOneTransition(t.SourceState.NodeName, t.Label, t.DestinationState.NodeName, t.Attributes)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// formatAttributes renders attributes as `, key="value"` pairs in key order.
func formatAttributes(attributes map[string]string) string {
	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(", ")
		sb.WriteString(k)
		sb.WriteString("=\"")
		sb.WriteString(EscapeLabel(attributes[k]))
		sb.WriteString("\"")
	}
	return sb.String()
}
