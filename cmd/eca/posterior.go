package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eca/internal/posterior"
	pcore "eca/pkg/core"
)

func newPosteriorCmd() *cobra.Command {
	cfg := posterior.DefaultConfig()
	var (
		seed int64
		bins int
	)
	cmd := &cobra.Command{
		Use:   "posterior",
		Short: "Sample the posterior of a Gaussian width parameter with Metropolis MCMC.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := posterior.Run(pcore.NewRNG(seed).Source(), cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "map=%.4f mean=%.4f std=%.4f links=%d\n", s.MAP, s.Mean, s.StdDev, len(s.Chain))
			hist := posterior.Histogram(s.Chain, cfg.Lo, cfg.Hi, bins)
			peak := 0
			for _, c := range hist {
				peak = max(peak, c)
			}
			width := (cfg.Hi - cfg.Lo) / float64(bins)
			for i, c := range hist {
				bar := 0
				if peak > 0 {
					bar = 50 * c / peak
				}
				fmt.Fprintf(w, "%6.3f %6d %s\n", cfg.Lo+float64(i)*width, c, strings.Repeat("#", bar))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of standard-normal samples")
	fs.Float64Var(&cfg.Lo, "lo", cfg.Lo, "lower end of the parameter grid")
	fs.Float64Var(&cfg.Hi, "hi", cfg.Hi, "upper end of the parameter grid")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "grid points")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Metropolis steps")
	fs.IntVar(&cfg.BurnIn, "burn-in", cfg.BurnIn, "leading links to discard")
	fs.Int64Var(&seed, "seed", 42, "random seed")
	fs.IntVar(&bins, "bins", 20, "histogram bins")
	return cmd
}
