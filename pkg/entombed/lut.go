package entombed

import (
	"fmt"
	"strconv"
	"strings"
)

// Decision is the outcome a table entry prescribes for a cell.
type Decision uint8

const (
	// NoWall leaves the cell open.
	NoWall Decision = 0
	// Wall fills the cell.
	Wall Decision = 1
	// RandomChoice defers to a fair coin flip.
	RandomChoice Decision = 2
)

// TableSize is the number of distinct 5-bit neighborhoods.
const TableSize = 32

// Valid reports whether d is one of the three known decisions.
func (d Decision) Valid() bool { return d <= RandomChoice }

func (d Decision) String() string {
	switch d {
	case NoWall:
		return "no-wall"
	case Wall:
		return "wall"
	case RandomChoice:
		return "random"
	default:
		return "Decision(" + strconv.Itoa(int(d)) + ")"
	}
}

// Table maps a neighborhood index to a decision. The neighborhood layout is
//
//	    c d e
//	a b X
//
// where a and b are the two cells left of X in the row being built and c, d,
// e are the cells above-left, above and above-right of X.
type Table [TableSize]Decision

var defaultTable = Table{
	Wall, Wall, Wall, RandomChoice,
	NoWall, NoWall, RandomChoice, RandomChoice,
	Wall, Wall, Wall, Wall,
	RandomChoice, NoWall, NoWall, NoWall,
	Wall, Wall, Wall, RandomChoice,
	NoWall, NoWall, NoWall, NoWall,
	RandomChoice, NoWall, Wall, RandomChoice,
	RandomChoice, NoWall, NoWall, NoWall,
}

// DefaultTable returns the canonical Entombed rule table.
func DefaultTable() Table { return defaultTable }

// UniformTable returns a table with every entry set to d.
func UniformTable(d Decision) Table {
	var t Table
	for i := range t {
		t[i] = d
	}
	return t
}

// Index packs the neighborhood bits into a table index. Only the lowest bit
// of each argument is used.
func Index(a, b, c, d, e uint8) int {
	return int(a&1) | int(b&1)<<1 | int(c&1)<<2 | int(d&1)<<3 | int(e&1)<<4
}

// Lookup returns the decision for the given neighborhood.
func (t Table) Lookup(a, b, c, d, e uint8) Decision {
	return t[Index(a, b, c, d, e)]
}

// Counts returns how many entries map to NoWall, Wall and RandomChoice.
func (t Table) Counts() (noWall, wall, random int) {
	for _, d := range t {
		switch d {
		case NoWall:
			noWall++
		case Wall:
			wall++
		case RandomChoice:
			random++
		}
	}
	return noWall, wall, random
}

// String renders the table in its comma separated text form.
func (t Table) String() string {
	var sb strings.Builder
	sb.Grow(2 * TableSize)
	for i, d := range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(d)))
	}
	return sb.String()
}

// NewTable builds a table from raw integer values.
func NewTable(values []int) (Table, error) {
	var t Table
	if len(values) != TableSize {
		return t, fmt.Errorf("%w: got %d entries, want %d", ErrMalformedTable, len(values), TableSize)
	}
	for i, v := range values {
		if v < int(NoWall) || v > int(RandomChoice) {
			return t, fmt.Errorf("%w: entry %d has value %d", ErrMalformedTable, i, v)
		}
		t[i] = Decision(v)
	}
	return t, nil
}

// ParseTable parses a comma separated list of exactly 32 values in {0,1,2}.
// Surrounding whitespace and a single trailing comma are accepted.
func ParseTable(s string) (Table, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")
	if s == "" {
		return Table{}, fmt.Errorf("%w: empty input", ErrMalformedTable)
	}
	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.Atoi(f)
		if err != nil || strings.HasPrefix(f, "+") {
			return Table{}, fmt.Errorf("%w: entry %d: %q is not an integer", ErrMalformedTable, i, f)
		}
		values[i] = v
	}
	return NewTable(values)
}
