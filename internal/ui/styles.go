package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("6") // Cyan (ANSI 6)
	colorDim    = lipgloss.Color("8") // Bright black/gray (ANSI 8)
	colorText   = lipgloss.Color("7") // White (ANSI 7)
	colorBorder = lipgloss.Color("8") // Bright black/gray (ANSI 8)
	colorDeath  = lipgloss.Color("1") // Red (ANSI 1)
)

// Styles struct holds renderer-aware styles for a session
type Styles struct {
	baseStyle    lipgloss.Style
	titleStyle   lipgloss.Style
	textStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	accentStyle  lipgloss.Style
	deathStyle   lipgloss.Style
	buttonStyle  lipgloss.Style
	buttonActive lipgloss.Style
	formBoxStyle lipgloss.Style
	inputBox     lipgloss.Style
	helpStyle    lipgloss.Style
	headerStyle  lipgloss.Style
}

// NewStyles creates renderer-aware styles for the given renderer
func NewStyles(renderer *lipgloss.Renderer) *Styles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	baseStyle := renderer.NewStyle()

	return &Styles{
		baseStyle: baseStyle,
		titleStyle: baseStyle.
			Foreground(colorAccent).
			Bold(true),
		textStyle: baseStyle.
			Foreground(colorText),
		dimStyle: baseStyle.
			Foreground(colorDim),
		accentStyle: baseStyle.
			Foreground(colorAccent),
		deathStyle: baseStyle.
			Foreground(colorDeath),
		buttonStyle: baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 3),
		buttonActive: baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Foreground(colorAccent).
			Padding(0, 3),
		formBoxStyle: baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3),
		inputBox: baseStyle.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		helpStyle: baseStyle.
			Foreground(colorDim).
			MarginTop(1),
		headerStyle: baseStyle.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorBorder).
			Foreground(colorAccent).
			Bold(true),
	}
}
