package entombed

// Maze is the full sequence of rows produced by one run, starting with the
// random seed row.
type Maze struct {
	Rows      []Row
	Symmetric bool
}

// Generate validates cfg, draws the seed row from src and appends cfg.Rows
// derived rows. src is one continuous stream for the whole maze.
func Generate(cfg Config, src BitSource) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	first, err := RandomRow(cfg.Columns, src)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, cfg.Rows+1)
	rows = append(rows, first)
	prev := first
	for i := 0; i < cfg.Rows; i++ {
		next := NextRow(prev, &cfg.Table, src)
		rows = append(rows, next)
		prev = next
	}
	return &Maze{Rows: rows, Symmetric: cfg.Symmetric}, nil
}

// Display returns the rows as they should be drawn, mirrored when the maze
// is symmetric.
func (m *Maze) Display() []Row {
	if !m.Symmetric {
		return m.Rows
	}
	out := make([]Row, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = r.Mirrored()
	}
	return out
}
