package elementary

import (
	"fmt"
	"strconv"

	"eca/internal/core"
	pcore "eca/pkg/core"
	"eca/pkg/eca"
)

// Init modes for the top row after Reset.
const (
	InitSingle = "single"
	InitRandom = "random"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   int
	States int
	Init   string
}

// DefaultConfig returns the default binary configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, States: eca.Binary, Init: InitSingle}
}

// DefaultTernaryConfig returns the default ternary configuration.
func DefaultTernaryConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 7625, States: eca.Ternary, Init: InitRandom}
}

// FromMap populates a Config from a string map, starting from base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["states"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.States = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["init"]; ok && (v == InitSingle || v == InitRandom) {
		c.Init = v
	}
	return c
}

// Elementary projects a one-dimensional automaton vertically: row 0 holds the
// newest generation and older generations scroll downwards.
type Elementary struct {
	w, h int
	cfg  Config
	prop *eca.Propagator
	cur  []uint8
	row  eca.Configuration
	tmp  eca.Configuration
}

// New creates an automaton from cfg.
func New(cfg Config) (*Elementary, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", eca.ErrInvalidArgument, cfg.Width, cfg.Height)
	}
	n, err := eca.NumNeighborhoods(cfg.States)
	if err != nil {
		return nil, err
	}
	prop, err := eca.Compile(cfg.Rule, cfg.States, n)
	if err != nil {
		return nil, err
	}
	w, h := cfg.Width, cfg.Height
	return &Elementary{
		w:    w,
		h:    h,
		cfg:  cfg,
		prop: prop,
		cur:  make([]uint8, w*h),
		row:  make(eca.Configuration, w),
		tmp:  make(eca.Configuration, w),
	}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string {
	if e.cfg.States == eca.Ternary {
		return "ternary"
	}
	return "elementary"
}

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// NumStates reports how many cell values the render buffer may contain.
func (e *Elementary) NumStates() int { return e.cfg.States }

// Reset clears the grid and seeds the top row. Random init draws from seed.
func (e *Elementary) Reset(seed int64) {
	clear(e.cur)
	if e.cfg.Init == InitRandom {
		pcore.FillUniform(pcore.NewRNG(seed).Source(), e.row, e.cfg.States)
	} else {
		clear(e.row)
		e.row[e.w/2] = 1
	}
	copy(e.cur[:e.w], e.row)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	copy(e.cur[e.w:], e.cur[:e.w*(e.h-1)])
	if err := e.prop.Step(e.tmp, e.row); err != nil {
		panic(fmt.Sprintf("elementary: %v", err))
	}
	e.row, e.tmp = e.tmp, e.row
	copy(e.cur[:e.w], e.row)
}

// Parameters describes the running configuration.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: strconv.Itoa(e.cfg.Rule), Description: "Wolfram rule index"},
				{Key: "states", Label: "States", Type: core.ParamTypeInt, Value: strconv.Itoa(e.cfg.States), Description: "cell states (2 or 3)"},
			},
		},
		{
			Name: "Lattice",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(e.w)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(e.h), Description: "generations kept on screen"},
				{Key: "init", Label: "Init", Type: core.ParamTypeString, Value: e.cfg.Init},
			},
		},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(DefaultConfig(), cfg))
	})
	core.Register("ternary", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(DefaultTernaryConfig(), cfg))
	})
}
