package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles a menu paints with.
type Styles struct {
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	ArrowedItem   *lipgloss.Style
	DisabledItem  *lipgloss.Style
	SelectedArrow *lipgloss.Style
	Description   *lipgloss.Style
	Help          *lipgloss.Style
}

// New builds the standard style set on the given renderer so the colour
// profile matches the terminal being drawn on. A nil renderer uses the
// default one.
func New(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		Item: ptr(
			r.NewStyle().Foreground(lipgloss.Color("15")),
		),
		SelectedItem: ptr(
			r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		),
		ArrowedItem: ptr(
			r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		),
		DisabledItem: ptr(
			r.NewStyle().Foreground(lipgloss.Color("241")),
		),
		SelectedArrow: ptr(
			r.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		),
		Description: ptr(
			r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		),
		Help: ptr(
			r.NewStyle().Foreground(lipgloss.Color("241")),
		),
	}
}

// Default exposes the standard style set on the default renderer.
func Default() *Styles {
	return New(nil)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
