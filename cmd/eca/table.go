package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eca/pkg/eca"
)

func newTableCmd() *cobra.Command {
	cfg, envErr := loadConfig()
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the propagator table of a rule.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			n, err := eca.NumNeighborhoods(cfg.States)
			if err != nil {
				return err
			}
			p, err := eca.Compile(cfg.Rule, cfg.States, n)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rule %d (%d states, %d neighborhoods)\n", p.Rule(), p.NumStates(), p.Len())
			fmt.Fprintf(w, "digits %s\n", eca.Configuration(p.Digits()))
			for _, e := range p.Entries() {
				fmt.Fprintf(w, "%s -> %d\n", eca.Configuration(e.Neighborhood), e.Next)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&cfg.Rule, "rule", "r", cfg.Rule, "Wolfram rule index")
	cmd.Flags().IntVarP(&cfg.States, "states", "k", cfg.States, "cell states: 2 or 3")
	return cmd
}
