package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles colors console replies, plain when out is not a terminal
type styles struct {
	ding     lipgloss.Style
	rejected lipgloss.Style
	label    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		ding:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#fde68a")),
		rejected: r.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
		label:    r.NewStyle().Bold(true),
	}
}
