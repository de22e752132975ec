package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eca/internal/core"
)

func newSimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List the simulations available to the viewer and their defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range core.Names() {
				sim, err := core.NewSim(name, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s (%dx%d)\n", name, sim.Size().W, sim.Size().H)
				p, ok := sim.(core.ParameterProvider)
				if !ok {
					continue
				}
				for _, group := range p.Parameters().Groups {
					for _, param := range group.Params {
						fmt.Fprintf(w, "  %-8s %-10s %s\n", param.Key, param.Value, param.Description)
					}
				}
			}
			return nil
		},
	}
}
