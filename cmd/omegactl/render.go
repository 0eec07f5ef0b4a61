package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/alphabet"
	"github.com/atlekbai/omega/graph"
	"github.com/atlekbai/omega/hoa"
)

// hoaTS is any transition system read from HOA.
type hoaTS = omega.TransitionSystem[alphabet.PropSymbol, alphabet.PropExpression, int, omega.AcceptanceMask]

type renderOptions struct {
	format    string
	direction string
	index     int
	name      string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw one automaton of the input as a DOT or Mermaid graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Render.Format
			}
			if !cmd.Flags().Changed("direction") {
				opts.direction = a.cfg.Render.Direction
			}
			if opts.index < 0 {
				return fmt.Errorf("invalid index: %d", opts.index)
			}

			r, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			return a.render(cmd.OutOrStdout(), r, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVar(&opts.direction, "direction", "LR", "Layout direction: LR, RL, TB or BT")
	cmd.Flags().IntVarP(&opts.index, "index", "n", 0, "Zero-based position of the automaton among those read")
	cmd.Flags().StringVar(&opts.name, "name", "automaton", "Graph name")
	return cmd
}

// pick reads automata from r until the one at index.
func (a *app) pick(r io.Reader, index int) (hoaTS, error) {
	if a.cfg.Input.DeterministicOnly {
		s := hoa.NewDeterministicStream(r)
		for i := 0; ; i++ {
			det, ok := s.Next()
			if !ok {
				if err := s.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("input holds %d deterministic automata, index %d requested", i, index)
			}
			if i == index {
				return det, nil
			}
		}
	}

	s := hoa.NewStream(r)
	for i := 0; ; i++ {
		aut, ok := s.Next()
		if !ok {
			if err := s.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("input holds %d automata, index %d requested", i, index)
		}
		if i == index {
			return aut, nil
		}
	}
}

func (a *app) render(w io.Writer, r io.Reader, opts renderOptions) error {
	ts, err := a.pick(r, opts.index)
	if err != nil {
		return err
	}
	a.logger.Debug("rendering automaton",
		zap.Int("index", opts.index),
		zap.Int("states", omega.Size(ts)),
		zap.String("format", opts.format))

	naming := graph.NewDefaultNaming(ts, opts.name)

	switch opts.format {
	case "dot":
		style := graph.NewDotGraphStyle()
		style.Rankdir = opts.direction
		return graph.WriteDot[alphabet.PropSymbol, alphabet.PropExpression, int, omega.AcceptanceMask](w, ts, naming, style)
	case "mermaid":
		dir, ok := graph.ParseMermaidDirection(opts.direction)
		if !ok {
			return fmt.Errorf("invalid direction: %s", opts.direction)
		}
		out, err := graph.MermaidGraph[alphabet.PropSymbol, alphabet.PropExpression, int, omega.AcceptanceMask](ts, naming, &dir)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out+"\n")
		return err
	}
	return fmt.Errorf("invalid format: %s", opts.format)
}
