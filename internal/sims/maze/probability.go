package maze

import (
	"image/color"

	"entombed/internal/core"
	"entombed/pkg/entombed"
)

var greyPalette = buildGreyPalette()

// Probability renders the propagated wall probability of every cell as a
// grey level, white meaning a certain wall. It does not evolve over time.
type Probability struct {
	cfg    entombed.Config
	grid   *core.ByteGrid
	matrix *entombed.Matrix
}

// NewProbability creates a probability heat-map sim. cfg must already be
// valid.
func NewProbability(cfg entombed.Config) *Probability {
	p := &Probability{cfg: cfg, grid: core.NewByteGrid(cfg.DisplayWidth(), cfg.Rows+1)}
	p.Reset(0)
	return p
}

// Name returns the simulation identifier.
func (p *Probability) Name() string { return "entombed-prob" }

// Size returns the grid dimensions.
func (p *Probability) Size() core.Size { return core.Size{W: p.grid.W, H: p.grid.H} }

// Cells exposes palette indices, one per cell.
func (p *Probability) Cells() []uint8 { return p.grid.Cells() }

// Palette maps cell values to grey levels.
func (p *Probability) Palette() []color.RGBA { return greyPalette }

// Matrix returns the last computed probability matrix.
func (p *Probability) Matrix() *entombed.Matrix { return p.matrix }

// Reset recomputes the matrix. The seed is ignored because propagation
// consumes no randomness.
func (p *Probability) Reset(int64) {
	m, err := entombed.Propagate(&p.cfg.Table, p.cfg.Rows, p.cfg.Columns)
	if err != nil {
		panic(err)
	}
	p.matrix = m
	for r := 0; r < m.Rows(); r++ {
		dst := p.grid.Row(r)
		for c, prob := range m.Interior(r) {
			level := quantize(prob)
			dst[c] = level
			if p.cfg.Symmetric {
				dst[len(dst)-1-c] = level
			}
		}
	}
}

// Step is a no-op; the matrix is fixed for a given table.
func (p *Probability) Step() {}

// Parameters describes the matrix for the HUD.
func (p *Probability) Parameters() core.ParameterSnapshot {
	last := p.matrix.Rows() - 1
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		mazeGroup(p.cfg, p.cfg.Seed),
		{
			Name: "Probability",
			Params: []core.Parameter{
				core.FloatParam("seed_mean", "Seed row mean", p.matrix.RowMean(0)),
				core.FloatParam("last_mean", "Last row mean", p.matrix.RowMean(last)),
			},
		},
		rulesGroup(p.cfg.Table),
	}}
}

func quantize(prob float64) uint8 {
	return uint8(prob*255 + 0.5)
}

func buildGreyPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		v := uint8(i)
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}

func init() {
	core.Register("entombed-prob", func(cfg map[string]string) core.Sim {
		return NewProbability(entombed.FromMap(cfg))
	})
}
