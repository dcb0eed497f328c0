package entombed

import "fmt"

// BitSource yields fair random bits. *core.RNG satisfies it.
type BitSource interface {
	Bool() bool
}

// Row is one line of the maze; true marks a wall.
type Row []bool

// Mirrored returns the row followed by its own reverse.
func (r Row) Mirrored() Row {
	n := len(r)
	out := make(Row, 2*n)
	copy(out, r)
	for i, v := range r {
		out[2*n-1-i] = v
	}
	return out
}

// Walls counts the wall cells in the row.
func (r Row) Walls() int {
	n := 0
	for _, v := range r {
		if v {
			n++
		}
	}
	return n
}

// RandomRow draws width independent fair bits from src.
func RandomRow(width int, src BitSource) (Row, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	row := make(Row, width)
	for i := range row {
		row[i] = src.Bool()
	}
	return row, nil
}

// NextRow derives the row that follows prev.
func NextRow(prev Row, t *Table, src BitSource) Row {
	out := make(Row, len(prev))
	// Lengths match by construction.
	_ = NextRowInto(out, prev, t, src)
	return out
}

// NextRowInto fills dst with the row that follows prev. Cells are decided
// strictly left to right because each one reads the two cells before it in
// dst. Out of range neighbors read as 0. src is consulted only for entries
// that resolve to RandomChoice.
func NextRowInto(dst, prev Row, t *Table, src BitSource) error {
	if len(dst) != len(prev) {
		return fmt.Errorf("%w: output has %d cells, previous row has %d", ErrLengthMismatch, len(dst), len(prev))
	}
	last := len(prev) - 1
	for i := range dst {
		var a, b, c, e uint8
		if i >= 2 {
			a = bit(dst[i-2])
		}
		if i >= 1 {
			b = bit(dst[i-1])
			c = bit(prev[i-1])
		}
		d := bit(prev[i])
		if i < last {
			e = bit(prev[i+1])
		}
		switch t.Lookup(a, b, c, d, e) {
		case Wall:
			dst[i] = true
		case RandomChoice:
			dst[i] = src.Bool()
		default:
			dst[i] = false
		}
	}
	return nil
}

func bit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
