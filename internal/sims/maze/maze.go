package maze

import (
	"entombed/internal/core"
	"entombed/pkg/entombed"
)

// Maze streams Entombed rows into a fixed viewport. Rows fill the viewport
// top to bottom and then scroll upwards, one new row per Step.
type Maze struct {
	cfg  entombed.Config
	grid *core.ByteGrid
	rng  *core.RNG

	prev, next entombed.Row
	filled     int
	generated  int
	seed       int64
}

// NewMaze creates a maze sim. cfg must already be valid.
func NewMaze(cfg entombed.Config) *Maze {
	return &Maze{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.DisplayWidth(), cfg.Rows+1),
		prev: make(entombed.Row, cfg.Columns),
		next: make(entombed.Row, cfg.Columns),
	}
}

// Name returns the simulation identifier.
func (m *Maze) Name() string { return "entombed" }

// Size returns the viewport dimensions.
func (m *Maze) Size() core.Size { return core.Size{W: m.grid.W, H: m.grid.H} }

// Cells exposes the render buffer.
func (m *Maze) Cells() []uint8 { return m.grid.Cells() }

// Reset clears the viewport and draws a new seed row. A zero seed uses the
// configured one.
func (m *Maze) Reset(seed int64) {
	if seed == 0 {
		seed = m.cfg.Seed
	}
	m.seed = seed
	m.rng = core.NewRNG(seed)
	m.grid.Clear()
	for i := range m.prev {
		m.prev[i] = m.rng.Bool()
	}
	m.filled = 0
	m.generated = 0
	m.push(m.prev)
}

// Step generates the next row and appends it to the viewport.
func (m *Maze) Step() {
	if m.rng == nil {
		m.Reset(0)
		return
	}
	if err := entombed.NextRowInto(m.next, m.prev, &m.cfg.Table, m.rng); err != nil {
		panic(err)
	}
	m.prev, m.next = m.next, m.prev
	m.generated++
	m.push(m.prev)
}

// Generated returns how many rows followed the seed row since Reset.
func (m *Maze) Generated() int { return m.generated }

func (m *Maze) push(row entombed.Row) {
	y := m.filled
	if m.filled < m.grid.H {
		m.filled++
	} else {
		m.grid.ScrollUp()
		y = m.grid.H - 1
	}
	if m.cfg.Symmetric {
		row = row.Mirrored()
	}
	dst := m.grid.Row(y)
	for x, wall := range row {
		if wall {
			dst[x] = 1
		} else {
			dst[x] = 0
		}
	}
}

// Parameters describes the running configuration for the HUD.
func (m *Maze) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		mazeGroup(m.cfg, m.seed),
		{
			Name:   "Progress",
			Params: []core.Parameter{core.IntParam("generated", "Rows generated", m.generated)},
		},
		rulesGroup(m.cfg.Table),
	}}
}

func mazeGroup(cfg entombed.Config, seed int64) core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Maze",
		Params: []core.Parameter{
			core.IntParam("w", "Columns", cfg.Columns),
			core.IntParam("h", "Rows", cfg.Rows),
			core.BoolParam("symmetric", "Symmetric", cfg.Symmetric),
			core.Int64Param("seed", "Seed", seed),
		},
	}
}

func rulesGroup(t entombed.Table) core.ParameterGroup {
	noWall, wall, random := t.Counts()
	return core.ParameterGroup{
		Name: "Rules",
		Params: []core.Parameter{
			core.IntParam("no_wall", "No wall entries", noWall),
			core.IntParam("wall", "Wall entries", wall),
			core.IntParam("random", "Random entries", random),
			{Key: "rules", Label: "Table", Value: t.String()},
		},
	}
}

func init() {
	core.Register("entombed", func(cfg map[string]string) core.Sim {
		c := entombed.FromMap(cfg)
		return NewMaze(c)
	})
}

