package display

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by a Renderer
type Styles struct {
	Header lipgloss.Style
	Black  lipgloss.Style
	White  lipgloss.Style
	Empty  lipgloss.Style
	Hint   lipgloss.Style
	Win    lipgloss.Style
	Draw   lipgloss.Style
	Info   lipgloss.Style
}

// Cell glyphs
const (
	BlackGlyph = "●"
	WhiteGlyph = "○"
	EmptyGlyph = "·"
	HintGlyph  = "*"
)

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Black: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		White: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C")),
		Hint: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
