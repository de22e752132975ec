//go:build ebiten

package app

import (
	"fmt"
	"time"

	"eca/internal/core"
	"eca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type stateCounter interface {
	NumStates() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	showHelp bool
	seed     int64
}

// New constructs a Game for the provided simulation. A positive tps throttles
// stepping below the frame rate.
func New(sim core.Sim, scale int, seed int64, tps int) *Game {
	palette := render.Mono()
	if sc, ok := sim.(stateCounter); ok && sc.NumStates() > 2 {
		palette = render.Spring(sc.NumStates())
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H, palette),
		scale:   scale,
		seed:    seed,
	}
	if tps > 0 {
		g.pacer = core.NewFixedStep(tps)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	if g.tickOnce || (!g.paused && (g.pacer == nil || g.pacer.ShouldStep())) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	if !g.showHelp {
		return
	}
	msg := fmt.Sprintf("%s\nspace pause  n step  r reset  s reseed  q quit", g.sim.Name())
	if p, ok := g.sim.(core.ParameterProvider); ok {
		for _, group := range p.Parameters().Groups {
			for _, param := range group.Params {
				msg += fmt.Sprintf("\n%s: %s", param.Label, param.Value)
			}
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
