package render

import (
	"bufio"
	"fmt"
	"io"

	"entombed/pkg/entombed"
)

const (
	wallGlyph = "██"
	openGlyph = "  "
	ansiReset = "\x1b[0m"
	// ruleOutcomeColor highlights the decided cell in the rule grid.
	ruleOutcomeColor = "\x1b[0;35;40m"
)

// MazeStyle controls how rows are written to a terminal.
type MazeStyle struct {
	// Mirror appends each row's reverse before writing it.
	Mirror     bool
	// TrueColor wraps walls in the foreground colour and gaps in the
	// background colour using 24-bit escape codes.
	TrueColor  bool
	Foreground RGB
	Background RGB
}

func foregroundEscape(c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func backgroundEscape(c RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (s MazeStyle) glyphs() (wall, open string) {
	if !s.TrueColor {
		return wallGlyph, openGlyph
	}
	return foregroundEscape(s.Foreground) + wallGlyph + ansiReset,
		backgroundEscape(s.Background) + openGlyph + ansiReset
}

// WriteMaze writes one line per row, two characters per cell.
func WriteMaze(w io.Writer, rows []entombed.Row, style MazeStyle) error {
	bw := bufio.NewWriter(w)
	wall, open := style.glyphs()
	for _, row := range rows {
		if style.Mirror {
			row = row.Mirrored()
		}
		for _, cell := range row {
			if cell {
				bw.WriteString(wall)
			} else {
				bw.WriteString(open)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteProbabilities writes the interior of every generated row of m as
// three-decimal values. The seed row is omitted.
func WriteProbabilities(w io.Writer, m *entombed.Matrix) error {
	bw := bufio.NewWriter(w)
	for r := 1; r < m.Rows(); r++ {
		for _, p := range m.Interior(r) {
			fmt.Fprintf(bw, "%.3f ", p)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
