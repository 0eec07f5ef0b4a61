package graph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/atlekbai/omega"
)

// MermaidGraphDirection specifies the direction of the Mermaid graph.
type MermaidGraphDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidGraphDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// ParseMermaidDirection reads a direction code such as "LR".
func ParseMermaidDirection(code string) (MermaidGraphDirection, bool) {
	switch strings.ToUpper(code) {
	case "TB", "TD":
		return TopToBottom, true
	case "BT":
		return BottomToTop, true
	case "LR":
		return LeftToRight, true
	case "RL":
		return RightToLeft, true
	}
	return TopToBottom, false
}

// MermaidGraphStyle generates Mermaid state diagrams.
type MermaidGraphStyle struct {
	graph     *StateGraph
	direction *MermaidGraphDirection
	aliases   map[*State]string
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(graph *StateGraph, direction *MermaidGraphDirection) *MermaidGraphStyle {
	return &MermaidGraphStyle{
		graph:     graph,
		direction: direction,
	}
}

// GetPrefix returns the text that starts a new Mermaid graph.
func (s *MermaidGraphStyle) GetPrefix(_ *StateGraph) string {
	s.buildAliases()

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	if s.direction != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\tdirection %s", getDirectionCode(*s.direction)))
	}

	// Describe every node whose alias differs from its label
	for _, state := range s.graph.sortedStates() {
		alias := s.aliases[state]
		if alias != state.Label {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("\t%s : %s", alias, mermaidText(state.Label)))
		}
	}

	return sb.String()
}

// FormatOneState formats a single state (Mermaid doesn't need explicit state definitions).
func (s *MermaidGraphStyle) FormatOneState(_ *State) string {
	return ""
}

// FormatAllTransitions formats all transitions.
func (s *MermaidGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *MermaidGraphStyle) FormatOneTransition(sourceNodeName, label, destinationNodeName string, _ map[string]string) string {
	return fmt.Sprintf("\t%s --> %s : %s",
		s.getSanitizedStateName(sourceNodeName), s.getSanitizedStateName(destinationNodeName), mermaidText(label))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *MermaidGraphStyle) GetInitialTransition(initial *State) string {
	if initial == nil {
		return ""
	}
	return fmt.Sprintf("\n[*] --> %s", s.aliases[initial])
}

// buildAliases assigns every state a unique Mermaid-safe identifier.
func (s *MermaidGraphStyle) buildAliases() {
	if s.aliases != nil {
		return
	}
	s.aliases = make(map[*State]string, len(s.graph.States))
	used := make(map[string]bool)

	names := make([]string, 0, len(s.graph.States))
	for name := range s.graph.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		alias := sanitizeStateName(name)
		if alias == "" {
			alias = "s"
		}
		candidate := alias
		for count := 1; used[candidate]; count++ {
			candidate = fmt.Sprintf("%s_%d", alias, count)
		}
		used[candidate] = true
		s.aliases[s.graph.States[name]] = candidate
	}
}

// getSanitizedStateName returns the alias of the node named nodeName.
func (s *MermaidGraphStyle) getSanitizedStateName(nodeName string) string {
	if state, ok := s.graph.States[nodeName]; ok {
		if alias, ok := s.aliases[state]; ok {
			return alias
		}
	}
	return sanitizeStateName(nodeName)
}

// sanitizeStateName removes characters that would cause invalid Mermaid graphs.
func sanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' && c != '{' && c != '}' && c != '"' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// mermaidText keeps labels on one line and away from the ':' separator.
func mermaidText(label string) string {
	label = strings.ReplaceAll(label, "\n", " ")
	return strings.ReplaceAll(label, ":", "#58;")
}

// getDirectionCode returns the Mermaid direction code.
func getDirectionCode(direction MermaidGraphDirection) string {
	switch direction {
	case TopToBottom:
		return "TB"
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidGraph renders ts as a Mermaid state diagram.
func MermaidGraph[S comparable, E, Q, C any](ts omega.TransitionSystem[S, E, Q, C], naming Naming[E, Q, C], direction *MermaidGraphDirection) (string, error) {
	graph, err := NewStateGraph(ts, naming)
	if err != nil {
		return "", err
	}
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction)), nil
}
