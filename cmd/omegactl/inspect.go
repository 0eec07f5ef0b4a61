package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/hoa"
	"github.com/atlekbai/omega/hoa/syntax"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize every automaton of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return inspect(cmd.OutOrStdout(), text)
		},
	}
}

// inspect writes one paragraph per block of text.
func inspect(w io.Writer, text string) error {
	n := 0
	for {
		block, rest, ok := hoa.Pop(text)
		if !ok {
			break
		}
		text = rest
		n++
		if err := inspectBlock(w, n, block); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) != "" {
		if _, err := fmt.Fprintln(w, "trailing input without --END-- ignored"); err != nil {
			return err
		}
	}
	return nil
}

func inspectBlock(w io.Writer, n int, block string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "automaton %d\n", n)

	parsed, diags, err := syntax.Parse(block)
	for _, d := range diags {
		fmt.Fprintf(&sb, "  note: %s\n", d)
	}
	if err != nil {
		fmt.Fprintf(&sb, "  error: %v\n", err)
		_, werr := io.WriteString(w, sb.String())
		return werr
	}

	h := parsed.Header
	if h.Name != "" {
		fmt.Fprintf(&sb, "  name: %s\n", h.Name)
	}
	if len(h.Tool) > 0 {
		fmt.Fprintf(&sb, "  tool: %s\n", strings.Join(h.Tool, " "))
	}
	fmt.Fprintf(&sb, "  propositions: %s\n", strings.Join(h.APs, ", "))
	if h.Acceptance != nil {
		fmt.Fprintf(&sb, "  acceptance: %d %s\n", h.NumSets, h.Acceptance)
	}

	aut, err := hoa.ToOmegaAutomaton(parsed)
	if err != nil {
		fmt.Fprintf(&sb, "  error: %v\n", err)
		_, werr := io.WriteString(w, sb.String())
		return werr
	}

	var ts hoaTS = aut
	edges := 0
	for q := range ts.StateIndices() {
		if out, ok := ts.EdgesFrom(q); ok {
			for range out {
				edges++
			}
		}
	}
	reachable := omega.Reachable(ts, aut.Initial())

	fmt.Fprintf(&sb, "  condition: %s\n", aut.Condition())
	fmt.Fprintf(&sb, "  states: %d (%d reachable)\n", aut.Size(), len(reachable))
	fmt.Fprintf(&sb, "  edges: %d\n", edges)
	fmt.Fprintf(&sb, "  deterministic: %t\n", aut.IsDeterministic())

	_, err = io.WriteString(w, sb.String())
	return err
}
