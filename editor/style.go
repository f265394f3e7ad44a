package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Prompt    lipgloss.Style
}

// Palette holds the colors DefaultStyle is built from.
type Palette struct {
	Inactive    lipgloss.Color // line numbers of rows without the cursor
	StatusFG    lipgloss.Color
	StatusBG    lipgloss.Color
	SelectionFG lipgloss.Color
	SelectionBG lipgloss.Color
}

func DefaultPalette() Palette {
	return Palette{
		Inactive:    lipgloss.Color("#6f767d"),
		StatusFG:    lipgloss.Color("#8e919a"),
		StatusBG:    lipgloss.Color("#0f1116"),
		SelectionFG: lipgloss.Color("255"),
		SelectionBG: lipgloss.Color("#1f3046"),
	}
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer(), DefaultPalette())
}

// NewStyle builds the editor style for r from p. A nil renderer means the
// default one.
func NewStyle(r *lipgloss.Renderer, p Palette) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Style{
		LineNum:       r.NewStyle().Foreground(p.Inactive),
		LineNumActive: r.NewStyle(),
		Text:          r.NewStyle(),
		Selection:     r.NewStyle().Foreground(p.SelectionFG).Background(p.SelectionBG),
		Cursor:        r.NewStyle().Reverse(true),
		StatusBar:     r.NewStyle().Foreground(p.StatusFG).Background(p.StatusBG),
		Message:       r.NewStyle(),
		Prompt:        r.NewStyle().Bold(true),
	}
}
