package app

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"

	"entombed/internal/render"
	"entombed/pkg/entombed"
)

// HUDWidth is the pixel width of the parameter panel.
const HUDWidth = 240

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim           string
	Scale         int
	TPS           int
	RowsPerSecond int
	Seed          int64
	Foreground    render.RGB
	Background    render.RGB
	// Params is forwarded to the sim factory as key=value pairs.
	Params        map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:           "entombed",
		Scale:         12,
		TPS:           60,
		RowsPerSecond: 8,
		Seed:          42,
		Foreground:    render.DefaultForeground,
		Background:    render.DefaultBackground,
		Params:        map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (entombed, entombed-prob)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RowsPerSecond, "rps", c.RowsPerSecond, "maze rows generated per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(colorValue{&c.Foreground}, "fg", "wall colour (hex, #rrggbb or name)")
	fs.Var(colorValue{&c.Background}, "bg", "gap colour (hex, #rrggbb or name)")
	fs.Var(paramsValue(c.Params), "param", "sim parameter key=value (w, h, symmetric, rules); repeatable")
}

// Validate checks the sim parameters strictly so that a bad rule table or
// size is reported instead of silently replaced by a default.
func (c *Config) Validate() error {
	if _, err := entombed.ParseMap(c.Params); err != nil {
		return fmt.Errorf("-param: %w", err)
	}
	return nil
}

type colorValue struct{ c *render.RGB }

func (v colorValue) String() string {
	if v.c == nil {
		return ""
	}
	return v.c.String()
}

func (v colorValue) Set(s string) error {
	c, err := render.ParseColor(s, rand.Uint32)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

type paramsValue map[string]string

func (p paramsValue) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p paramsValue) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	p[k] = v
	return nil
}
