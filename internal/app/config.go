package app

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"eca/pkg/eca"
)

// Init modes for the initial configuration. Any other value is parsed as an
// explicit digit string.
const (
	InitSingle = "single"
	InitRandom = "random"
)

// Config represents the parameters shared by the command-line tools.
// Precedence is flag, then environment, then NewConfig defaults.
type Config struct {
	Sim     string `env:"ECA_SIM"`
	Rule    int    `env:"ECA_RULE"`
	States  int    `env:"ECA_STATES"`
	Width   int    `env:"ECA_WIDTH"`
	Steps   int    `env:"ECA_STEPS"`
	Init    string `env:"ECA_INIT"`
	Seed    int64  `env:"ECA_SEED"`
	Scale   int    `env:"ECA_SCALE"`
	TPS     int    `env:"ECA_TPS"`
	Workers int    `env:"ECA_WORKERS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "elementary",
		Rule:    90,
		States:  eca.Binary,
		Width:   64,
		Steps:   32,
		Init:    InitSingle,
		Seed:    42,
		Scale:   3,
		TPS:     0,
		Workers: 1,
	}
}

// LoadEnv overrides fields from ECA_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, "Wolfram rule index")
	fs.IntVarP(&c.States, "states", "k", c.States, "cell states: 2 (binary) or 3 (ternary)")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "lattice length")
	fs.IntVarP(&c.Steps, "steps", "n", c.Steps, "evolution steps")
	fs.StringVar(&c.Init, "init", c.Init, `initial row: "single", "random" or a digit string`)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial rows")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per evolution step")
}

// BindView attaches the viewer-only settings.
func (c *Config) BindView(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 = as fast as possible)")
}

// Validate checks the shared settings.
func (c *Config) Validate() error {
	if _, err := eca.Arity(c.States); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width %d", eca.ErrInvalidArgument, c.Width)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", eca.ErrInvalidArgument, c.Steps)
	}
	return nil
}

// SimParams converts the settings into the string map sim factories accept.
func (c *Config) SimParams() map[string]string {
	params := map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Steps + 1),
		"rule":   strconv.Itoa(c.Rule),
		"states": strconv.Itoa(c.States),
	}
	if c.Init == InitSingle || c.Init == InitRandom {
		params["init"] = c.Init
	}
	return params
}

// InitialConfiguration builds the t=0 row. An explicit digit string sets the
// lattice length on its own.
func (c *Config) InitialConfiguration(r *rand.Rand) (eca.Configuration, error) {
	switch c.Init {
	case InitSingle, "":
		return eca.SingleSeed(c.Width, c.States)
	case InitRandom:
		return eca.RandomConfiguration(r, c.Width, c.States)
	}
	return eca.ParseConfiguration(c.Init, c.States)
}
