package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atlekbai/omega"
	"github.com/atlekbai/omega/internal/config"
	"github.com/atlekbai/omega/internal/logging"
)

// app is the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "omegactl",
		Short: "Work with omega automata in HOA format",
		Long: `omegactl reads streams of automata written in the Hanoi Omega-Automata
format. It can drop automata that fail to convert or are not deterministic,
summarize every automaton of a stream, or draw one as a DOT or Mermaid graph.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newFilterCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newRenderCmd(a))
	return root
}

// init loads the configuration and installs the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	omega.SetLogger(logger)
	logging.Set(logger)
	return nil
}

// openInput opens the input named by args, or stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readInput reads the whole input named by args.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	r, err := openInput(cmd, args)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
