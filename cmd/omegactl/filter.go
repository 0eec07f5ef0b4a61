package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atlekbai/omega/hoa"
)

func newFilterCmd(a *app) *cobra.Command {
	var deterministic bool

	cmd := &cobra.Command{
		Use:   "filter [file]",
		Short: "Copy the automata that convert, dropping the rest",
		Long: `filter copies every HOA block of the input that parses and converts to an
omega automaton. With --deterministic (or input.deterministic_only in the
configuration) automata that are not deterministic are dropped as well.
Aborted and unterminated blocks never reach the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			detOnly := a.cfg.Input.DeterministicOnly
			if cmd.Flags().Changed("deterministic") {
				detOnly = deterministic
			}
			return a.filter(cmd, text, detOnly)
		},
	}

	cmd.Flags().BoolVarP(&deterministic, "deterministic", "d", false, "Keep only deterministic automata")
	return cmd
}

func (a *app) filter(cmd *cobra.Command, text string, detOnly bool) error {
	out := cmd.OutOrStdout()
	kept, dropped := 0, 0

	for {
		block, rest, ok := hoa.Pop(text)
		if !ok {
			break
		}
		text = rest

		aut, err := hoa.ParseBlock(block)
		switch {
		case err != nil:
			a.logger.Warn("dropping unreadable automaton", zap.Error(err))
			dropped++
			continue
		case detOnly && !aut.IsDeterministic():
			a.logger.Warn("dropping automaton that is not deterministic", zap.Int("states", aut.Size()))
			dropped++
			continue
		}

		if _, err := fmt.Fprintln(out, block); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		kept++
	}

	a.logger.Info("filter finished", zap.Int("kept", kept), zap.Int("dropped", dropped))
	return nil
}
