package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/bakelog/pkg/calendar"
	"tableflip.dev/bakelog/pkg/record"
)

// gridStyles controls the styling of the rendered month grid.
type gridStyles struct {
	Header    lipgloss.Style
	Weekdays  lipgloss.Style
	Empty     lipgloss.Style
	Completed lipgloss.Style
	Planned   lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
}

func defaultGridStyles() gridStyles {
	return gridStyles{
		Header:    lipgloss.NewStyle().Bold(true),
		Weekdays:  lipgloss.NewStyle().Faint(true),
		Empty:     lipgloss.NewStyle().Faint(true),
		Completed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Planned:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Today:     lipgloss.NewStyle().Underline(true),
		Selected:  lipgloss.NewStyle().Reverse(true),
	}
}

// renderGrid produces a multi-line calendar for the month containing anchor.
// Cells come pre-classified so the renderer stays a pure formatting step.
func renderGrid(anchor time.Time, cells []calendar.Cell, selected record.DayKey, st gridStyles) string {
	var lines []string

	header := fmt.Sprintf("%s %d", anchor.Month().String(), anchor.Year())
	lines = append(lines,
		st.Header.Render(center(header, gridWidth)),
		st.Weekdays.Render("Su Mo Tu We Th Fr Sa"))

	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.TrimRight(strings.Join(row, " "), " "))
			row = nil
		}
	}

	for _, c := range cells {
		row = append(row, renderCell(c, selected, st))
		if len(row) == 7 {
			flush()
		}
	}
	flush()

	return strings.Join(lines, "\n")
}

const gridWidth = len("Su Mo Tu We Th Fr Sa")

func renderCell(c calendar.Cell, selected record.DayKey, st gridStyles) string {
	if c.Day == 0 {
		return "  "
	}
	glyph := fmt.Sprintf("%2d", c.Day)

	style := st.Empty
	switch {
	case c.Completed:
		style = st.Completed
	case c.Planned:
		style = st.Planned
	}
	if c.Today {
		style = style.Copy().Inherit(st.Today)
	}
	if c.Key == selected {
		style = style.Copy().Inherit(st.Selected)
	}
	return style.Render(glyph)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
