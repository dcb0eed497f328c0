package render

import (
	"bufio"
	"io"
	"strings"

	"entombed/pkg/entombed"
)

// WriteTable draws the rule table as a grid with blocks rules per line.
// Each rule shows its upper neighbors c d e above a b and the outcome:
//
//	│ cde│
//	│abX │
func WriteTable(w io.Writer, t entombed.Table, blocks int, colors bool) error {
	if blocks <= 0 {
		blocks = 8
	}
	bw := bufio.NewWriter(w)
	border := func(left, mid, right string) {
		bw.WriteString(left + "────" + strings.Repeat(mid+"────", blocks-1) + right + "\n")
	}

	open, reset := "", ""
	if colors {
		open, reset = ruleOutcomeColor, ansiReset
	}

	border("┌", "┬", "┐")
	var top, bottom strings.Builder
	flush := func(first bool) {
		if !first {
			border("├", "┼", "┤")
		}
		bw.WriteString("│" + top.String() + "\n")
		bw.WriteString("│" + bottom.String() + "\n")
		top.Reset()
		bottom.Reset()
	}

	for idx, d := range t {
		top.WriteString(" " + cellGlyph(idx, 2) + cellGlyph(idx, 3) + cellGlyph(idx, 4) + "│")
		bottom.WriteString(cellGlyph(idx, 0) + cellGlyph(idx, 1) + open + outcomeGlyph(d) + reset + " │")
		if (idx+1)%blocks == 0 {
			flush(idx+1 == blocks)
		}
	}
	if rem := len(t) % blocks; rem != 0 {
		pad := strings.Repeat("    │", blocks-rem)
		top.WriteString(pad)
		bottom.WriteString(pad)
		flush(len(t) < blocks)
	}
	border("└", "┴", "┘")
	return bw.Flush()
}

func cellGlyph(idx, bit int) string {
	if idx>>bit&1 == 1 {
		return "█"
	}
	return "."
}

func outcomeGlyph(d entombed.Decision) string {
	switch d {
	case entombed.Wall:
		return "█"
	case entombed.RandomChoice:
		return "?"
	default:
		return " "
	}
}
