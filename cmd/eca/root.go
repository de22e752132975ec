package main

import (
	"github.com/spf13/cobra"

	"eca/internal/app"
	pcore "eca/pkg/core"
	"eca/pkg/eca"

	_ "eca/internal/sims/elementary"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eca",
		Short: "Elementary cellular automata for binary and ternary rule spaces.",
		Long: `eca compiles Wolfram-numbered rules into propagator tables and evolves ` +
			`them on a periodic lattice. Binary rules (0-255) use a (left, self, right) ` +
			`neighborhood; ternary rules (0-19682) use (left, self). Settings default ` +
			`from ECA_* environment variables.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newRunCmd(),
		newTableCmd(),
		newSweepCmd(),
		newPosteriorCmd(),
		newSimsCmd(),
	)
	return root
}

// loadConfig returns defaults overridden by the environment. Flags bound to
// the result override both.
func loadConfig() (*app.Config, error) {
	cfg := app.NewConfig()
	return cfg, cfg.LoadEnv()
}

func simulate(cfg *app.Config) (eca.History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ic, err := cfg.InitialConfiguration(pcore.NewRNG(cfg.Seed).Source())
	if err != nil {
		return nil, err
	}
	n, err := eca.NumNeighborhoods(cfg.States)
	if err != nil {
		return nil, err
	}
	a, err := eca.New(cfg.Rule, ic, n, cfg.States)
	if err != nil {
		return nil, err
	}
	return a.Evolve(cfg.Steps, eca.WithWorkers(cfg.Workers))
}
