package ui

import "entombed/internal/core"

// maxValueRunes keeps long values such as the rule table inside the panel.
const maxValueRunes = 30

// Line is one row of HUD text.
type Line struct {
	Text   string
	Header bool
}

// Lines flattens a snapshot into group headers followed by "label: value"
// rows. Long values wrap onto continuation rows.
func Lines(s core.ParameterSnapshot) []Line {
	var out []Line
	for _, g := range s.Groups {
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			text := p.Label + ": " + p.Value
			for len(text) > maxValueRunes {
				out = append(out, Line{Text: text[:maxValueRunes]})
				text = "  " + text[maxValueRunes:]
			}
			out = append(out, Line{Text: text})
		}
	}
	return out
}
