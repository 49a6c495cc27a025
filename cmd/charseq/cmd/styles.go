package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the inspect panel
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
)

// styles are bound to the renderer of one output so that color is only
// emitted when that output is a terminal.
type styles struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Label  lipgloss.Style
	Header lipgloss.Style
	Value  lipgloss.Style
	Failed lipgloss.Style
	Note   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1),
		Label: r.NewStyle().
			Width(20),
		Header: r.NewStyle().
			Foreground(ColorMuted).
			Underline(true),
		Value: r.NewStyle().
			Foreground(ColorSuccess),
		Failed: r.NewStyle().
			Foreground(ColorError),
		Note: r.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
