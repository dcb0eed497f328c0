package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"entombed/internal/render"
	"entombed/pkg/entombed"

	"golang.org/x/term"
)

const (
	colorNever  = "never"
	colorAlways = "always"
	colorAuto   = "auto"
)

// Config represents the command-line parameters for the maze tool.
type Config struct {
	Columns    int
	Rows       int
	Rules      string
	Seed       int64
	NoSymmetry bool
	NoMaze     bool

	PrintRules  bool
	RulesBlock  int
	PrintProb   bool
	Colors      bool
	ColorMode   string
	Foreground  string
	Background  string
	Output      string
	OutputScale int
	Verbose     bool
}

// NewConfig returns a Config populated with the tool's defaults.
func NewConfig() *Config {
	def := entombed.DefaultConfig()
	return &Config{
		Columns:     def.Columns,
		Rows:        def.Rows,
		Rules:       def.Table.String(),
		RulesBlock:  8,
		ColorMode:   colorNever,
		Foreground:  render.DefaultForeground.String(),
		Background:  render.DefaultBackground.String(),
		OutputScale: 10,
	}
}

// Bind attaches the configuration to the provided FlagSet. Most options have
// a short and a long spelling.
func (c *Config) Bind(fs *flag.FlagSet) {
	both := func(short, long string, bind func(name string)) {
		bind(short)
		bind(long)
	}
	both("c", "columns", func(n string) { fs.IntVar(&c.Columns, n, c.Columns, "number of columns to generate") })
	both("r", "rows", func(n string) { fs.IntVar(&c.Rows, n, c.Rows, "number of rows to generate after the seed row") })
	both("R", "rules", func(n string) {
		fs.StringVar(&c.Rules, n, c.Rules, "32 comma separated rules: 0 no wall, 1 wall, 2 random; index a+2b+4c+8d+16e")
	})
	both("S", "no-symmetry", func(n string) { fs.BoolVar(&c.NoSymmetry, n, c.NoSymmetry, "disable maze symmetry") })
	both("M", "no-maze", func(n string) { fs.BoolVar(&c.NoMaze, n, c.NoMaze, "do not generate a maze") })
	both("p", "print-rules", func(n string) { fs.BoolVar(&c.PrintRules, n, c.PrintRules, "print rules in pretty format") })
	both("b", "rules-block", func(n string) { fs.IntVar(&c.RulesBlock, n, c.RulesBlock, "how many rules to print on a single line") })
	both("P", "print-prob", func(n string) { fs.BoolVar(&c.PrintProb, n, c.PrintProb, "print calculated wall probabilities") })
	both("t", "colors", func(n string) { fs.BoolVar(&c.Colors, n, c.Colors, "colorize the output using truecolor (same as -color-mode=always)") })
	fs.StringVar(&c.ColorMode, "color-mode", c.ColorMode, "truecolor output: never, always or auto (when stdout is a terminal)")
	both("F", "output-fg", func(n string) {
		fs.StringVar(&c.Foreground, n, c.Foreground, "wall colour: hex, #rrggbb, a colour name or \"random\"")
	})
	both("B", "output-bg", func(n string) {
		fs.StringVar(&c.Background, n, c.Background, "gap colour: hex, #rrggbb, a colour name or \"random\"")
	})
	both("O", "output", func(n string) { fs.StringVar(&c.Output, n, c.Output, "write the maze to a PNG image") })
	both("s", "output-scale", func(n string) { fs.IntVar(&c.OutputScale, n, c.OutputScale, "pixels per maze cell in the image") })
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	both("v", "verbose", func(n string) { fs.BoolVar(&c.Verbose, n, c.Verbose, "log progress to stderr") })
}

// MazeConfig validates the generation options.
func (c *Config) MazeConfig() (entombed.Config, error) {
	table, err := entombed.ParseTable(c.Rules)
	if err != nil {
		return entombed.Config{}, err
	}
	cfg := entombed.Config{
		Columns:   c.Columns,
		Rows:      c.Rows,
		Symmetric: !c.NoSymmetry,
		Table:     table,
		Seed:      c.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return entombed.Config{}, err
	}
	return cfg, nil
}

// Style resolves colours and the colour mode.
func (c *Config) Style(stdout *os.File) (render.MazeStyle, error) {
	rnd := func() uint32 { return rand.Uint32() }
	fg, err := render.ParseColor(c.Foreground, rnd)
	if err != nil {
		return render.MazeStyle{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := render.ParseColor(c.Background, rnd)
	if err != nil {
		return render.MazeStyle{}, fmt.Errorf("background: %w", err)
	}
	style := render.MazeStyle{Mirror: !c.NoSymmetry, Foreground: fg, Background: bg}

	mode := c.ColorMode
	if c.Colors {
		mode = colorAlways
	}
	switch mode {
	case colorNever:
	case colorAlways:
		style.TrueColor = true
	case colorAuto:
		style.TrueColor = stdout != nil && term.IsTerminal(int(stdout.Fd()))
	default:
		return render.MazeStyle{}, fmt.Errorf("unknown color mode %q", mode)
	}
	return style, nil
}
