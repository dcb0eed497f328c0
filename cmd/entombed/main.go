package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"entombed/internal/core"
	"entombed/internal/render"
	"entombed/pkg/entombed"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("entombed: ")

	cfg := NewConfig()
	fs := flag.NewFlagSet("entombed", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Entombed\nGenerate mazes with the Entombed algorithm\n\noptions:")
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	fs.Parse(os.Args[1:])

	style, err := cfg.Style(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, style, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, style render.MazeStyle, out io.Writer) error {
	mc, err := cfg.MazeConfig()
	if err != nil {
		return err
	}
	if mc.Seed == 0 {
		mc.Seed = time.Now().UnixNano()
	}

	if !cfg.NoMaze {
		if cfg.Verbose {
			log.Printf("generating %dx%d maze with seed %d", mc.Columns, mc.Rows+1, mc.Seed)
		}
		maze, err := entombed.Generate(mc, core.NewRNG(mc.Seed))
		if err != nil {
			return err
		}
		if err := render.WriteMaze(out, maze.Rows, style); err != nil {
			return err
		}
		if cfg.Output != "" {
			log.Printf("Saving to %s", cfg.Output)
			if err := render.ExportPNG(cfg.Output, maze.Display(), style.Foreground, style.Background, cfg.OutputScale); err != nil {
				return err
			}
		}
	}

	if cfg.PrintRules {
		fmt.Fprintf(out, "\nRules\n  %s\n", mc.Table)
		if err := render.WriteTable(out, mc.Table, cfg.RulesBlock, style.TrueColor); err != nil {
			return err
		}
	}

	if cfg.PrintProb {
		m, err := entombed.Propagate(&mc.Table, mc.Rows, mc.Columns)
		if err != nil {
			return err
		}
		fmt.Fprint(out, "\nProbabilities\n")
		if err := render.WriteProbabilities(out, m); err != nil {
			return err
		}
	}
	return nil
}
