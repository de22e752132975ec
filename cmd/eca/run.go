package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"eca/internal/core"
	"eca/internal/render"
	"eca/pkg/eca"
)

func newRunCmd() *cobra.Command {
	cfg, envErr := loadConfig()
	var (
		format string
		out    string
		scale  int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve a rule and print its space-time diagram.",
		Example: `  eca run --rule 90 --width 31 --steps 15
  eca run -k 3 -r 7625 --init random --format png --out ternary.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			history, err := simulate(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "text":
				if cfg.TPS > 0 {
					return stream(w, history, cfg.TPS)
				}
				grid, err := core.FromRows(history.Grid())
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, render.Text(grid))
				return err
			case "grid":
				for _, row := range history {
					if _, err := fmt.Fprintln(w, joinDigits(row)); err != nil {
						return err
					}
				}
				return nil
			case "png":
				return writePNG(out, history, cfg.States, scale)
			}
			return fmt.Errorf("%w: unknown format %q", eca.ErrInvalidArgument, format)
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, grid or png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file for png")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixels per cell for png")
	cmd.Flags().IntVar(&cfg.TPS, "tps", cfg.TPS, "stream text rows at this many rows per second")
	return cmd
}

func stream(w io.Writer, history eca.History, tps int) error {
	pacer := core.NewFixedStep(tps)
	for _, row := range history {
		pacer.Wait()
		if _, err := fmt.Fprintln(w, render.TextRow(row)); err != nil {
			return err
		}
	}
	return nil
}

func joinDigits(row eca.Configuration) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

func writePNG(path string, history eca.History, numStates, scale int) error {
	if path == "" {
		return fmt.Errorf("%w: --out is required for png", eca.ErrInvalidArgument)
	}
	grid, err := core.FromRows(history.Grid())
	if err != nil {
		return err
	}
	palette := render.Mono()
	if numStates > 2 {
		palette = render.Spring(numStates)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, render.Image(grid, palette, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
