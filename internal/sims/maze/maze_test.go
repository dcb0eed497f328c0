package maze

import (
	"slices"
	"testing"

	"entombed/internal/core"
	"entombed/pkg/entombed"
)

func TestMazeResetDeterministic(t *testing.T) {
	cfg := entombed.DefaultConfig()
	cfg.Seed = 11
	m := NewMaze(cfg)
	m.Reset(0)
	for i := 0; i < 10; i++ {
		m.Step()
	}
	first := append([]uint8(nil), m.Cells()...)

	m.Reset(0)
	for i := 0; i < 10; i++ {
		m.Step()
	}
	if !slices.Equal(first, m.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if m.Generated() != 10 {
		t.Fatalf("generated = %d, want 10", m.Generated())
	}
}

func TestMazeMatchesGenerate(t *testing.T) {
	cfg := entombed.DefaultConfig()
	cfg.Columns = 9
	cfg.Rows = 6
	cfg.Symmetric = false

	m := NewMaze(cfg)
	m.Reset(21)
	for i := 0; i < cfg.Rows; i++ {
		m.Step()
	}

	want, err := entombed.Generate(cfg, core.NewRNG(21))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grid := m.Cells()
	for y, row := range want.Rows {
		for x, wall := range row {
			if (grid[y*cfg.Columns+x] == 1) != wall {
				t.Fatalf("cell (%d,%d) differs from Generate", x, y)
			}
		}
	}
}

func TestMazeSymmetricAndScrolls(t *testing.T) {
	cfg := entombed.DefaultConfig()
	cfg.Columns = 5
	cfg.Rows = 3
	m := NewMaze(cfg)
	m.Reset(3)
	size := m.Size()
	if size.W != 10 || size.H != 4 {
		t.Fatalf("size = %+v, want 10x4", size)
	}
	for i := 0; i < 8; i++ {
		m.Step()
	}
	cells := m.Cells()
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for x := 0; x < size.W/2; x++ {
			if row[x] != row[size.W-1-x] {
				t.Fatalf("row %d not mirrored: %v", y, row)
			}
		}
	}
}

func TestProbabilityCells(t *testing.T) {
	cfg := entombed.DefaultConfig()
	cfg.Table = entombed.UniformTable(entombed.RandomChoice)
	cfg.Rows = 4
	cfg.Columns = 6
	p := NewProbability(cfg)
	for i, v := range p.Cells() {
		if v != 128 {
			t.Fatalf("cell %d = %d, want 128", i, v)
		}
	}
	if len(p.Palette()) != 256 {
		t.Fatalf("palette has %d entries", len(p.Palette()))
	}
	if got, ok := p.Parameters().Lookup("last_mean"); !ok || got.Value != "0.500" {
		t.Fatalf("last_mean = %+v", got)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"entombed", "entombed-prob"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		sim := factory(map[string]string{"w": "7", "h": "2"})
		if sim.Name() != name {
			t.Fatalf("factory %s built %s", name, sim.Name())
		}
		if size := sim.Size(); size.W != 14 || size.H != 3 {
			t.Fatalf("%s size = %+v", name, size)
		}
	}
}
