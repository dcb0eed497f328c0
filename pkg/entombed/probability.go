package entombed

import "fmt"

// margin is the number of always-zero cells padding each side of a row.
const margin = 2

// Matrix holds per-cell wall probabilities. Row 0 is the uniform seed row;
// every row carries two zero cells of padding on each side.
type Matrix struct {
	rows, cols int
	stride     int
	data       []float64
}

// Rows returns the number of rows including the seed row.
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the number of interior columns.
func (m *Matrix) Columns() int { return m.cols }

// Stride returns the padded row width, Columns()+4.
func (m *Matrix) Stride() int { return m.stride }

// Raw returns the value at padded coordinates, where column 0 and 1 are the
// left margin.
func (m *Matrix) Raw(r, c int) float64 { return m.data[r*m.stride+c] }

// At returns the probability that interior cell (r, c) is a wall.
func (m *Matrix) At(r, c int) float64 { return m.Raw(r, c+margin) }

// Interior returns a copy of row r without its margins.
func (m *Matrix) Interior(r int) []float64 {
	base := r*m.stride + margin
	out := make([]float64, m.cols)
	copy(out, m.data[base:base+m.cols])
	return out
}

// RowMean returns the mean wall probability of interior row r.
func (m *Matrix) RowMean(r int) float64 {
	base := r*m.stride + margin
	sum := 0.0
	for _, p := range m.data[base : base+m.cols] {
		sum += p
	}
	return sum / float64(m.cols)
}

// Propagate computes the exact wall probability of every cell for rows
// generated after a uniformly random seed row, treating neighbor cells as
// independent. No randomness is consumed.
func Propagate(t *Table, rows, columns int) (*Matrix, error) {
	if rows < 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidDimensions, rows, columns)
	}

	var outcome [TableSize]float64
	for i, d := range t {
		switch d {
		case Wall:
			outcome[i] = 1
		case RandomChoice:
			outcome[i] = 0.5
		}
	}

	stride := columns + 2*margin
	m := &Matrix{rows: rows + 1, cols: columns, stride: stride, data: make([]float64, (rows+1)*stride)}
	for c := margin; c < columns+margin; c++ {
		m.data[c] = 0.5
	}

	for r := 1; r <= rows; r++ {
		cur := m.data[r*stride : (r+1)*stride]
		above := m.data[(r-1)*stride : r*stride]
		for c := margin; c < columns+margin; c++ {
			neighbors := [5]float64{cur[c-2], cur[c-1], above[c-1], above[c], above[c+1]}
			cur[c] = expectation(&outcome, &neighbors)
		}
	}
	return m, nil
}

// expectation sums outcome over all 32 neighborhood assignments in index
// order, each weighted by the product of its neighbor probabilities.
func expectation(outcome *[TableSize]float64, p *[5]float64) float64 {
	sum := 0.0
	for idx := 0; idx < TableSize; idx++ {
		if outcome[idx] == 0 {
			continue
		}
		w := 1.0
		for k := 0; k < 5; k++ {
			if idx>>k&1 == 1 {
				w *= p[k]
			} else {
				w *= 1 - p[k]
			}
		}
		sum += w * outcome[idx]
	}
	switch {
	case sum < 0:
		return 0
	case sum > 1:
		return 1
	}
	return sum
}
