package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"eca/internal/sweep"
	pcore "eca/pkg/core"
	"eca/pkg/eca"
)

func newSweepCmd() *cobra.Command {
	cfg, envErr := loadConfig()
	var from, to int
	var quiet bool
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evolve a range of rules and report cycle and density statistics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if to < 0 {
				to, _ = eca.MaxRule(cfg.States)
			}
			ic, err := cfg.InitialConfiguration(pcore.NewRNG(cfg.Seed).Source())
			if err != nil {
				return err
			}
			if !quiet {
				log.Printf("sweeping rules [%d, %d) with %d workers, %d steps", from, to, cfg.Workers, cfg.Steps)
			}
			start := time.Now()
			results, err := sweep.Run(cmd.Context(), sweep.Config{
				States:  cfg.States,
				From:    from,
				To:      to,
				Steps:   cfg.Steps,
				Workers: cfg.Workers,
				Initial: ic,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(w, r)
			}
			if !quiet {
				log.Printf("swept %d rules in %s", len(results), time.Since(start).Round(time.Millisecond))
			}
			return nil
		},
	}
	if _, ok := os.LookupEnv("ECA_WORKERS"); !ok {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().IntVar(&from, "from", 0, "first rule")
	cmd.Flags().IntVar(&to, "to", -1, "end of the rule range, exclusive (default: whole rule space)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging")
	return cmd
}
