//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"eca/internal/app"
	"eca/internal/core"
	_ "eca/internal/sims/elementary"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("eca-view: ")

	cfg := app.NewConfig()
	cfg.Width, cfg.Steps = 256, 255
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cfg.Bind(fs)
	cfg.BindView(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimParams())
	if err != nil {
		log.Fatalf("build sim %q: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS)
	size := sim.Size()

	ebiten.SetWindowTitle("eca-view: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
