package ui

import (
	"strings"

	"github.com/atomicstack/termselect/internal/logging/events"
	"github.com/atomicstack/termselect/internal/menu"
	"github.com/atomicstack/termselect/internal/terminal"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	arrowMarker = "> "
	// arrowTail pads unselected rows to the width of a marked row so an
	// in-place re-render overwrites the previous marker.
	arrowTail = "  "
	ellipsis  = "…"
)

// Render paints the menu starting at the current cursor row. With clear set
// the screen is wiped first. Unless output is captured the cursor is moved
// back to where painting began, so repeated renders overwrite each other.
func (m *Menu) Render(clear bool) {
	if clear {
		m.term.Clear()
	}
	row, col := m.term.Cursor()
	for _, h := range m.beforeRender {
		h(m)
	}

	width := terminal.LineWidth(m.term)
	selected := m.items.Selected()
	for item := range m.items.All() {
		m.term.WriteLine(m.itemLine(item, item == selected, width))
	}
	m.term.WriteLine(m.descriptionLine(selected, width))
	if m.opts.ShowHelp {
		m.help.Width = width
		m.term.WriteLine(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	for _, h := range m.afterRender {
		h(m)
	}
	if !m.term.Captured() {
		m.term.SetCursor(row, col)
	}
	events.Menu.Render(m.opts.Name, m.items.Count(), clear)
}

func (m *Menu) itemLine(item *menu.Item, selected bool, width int) string {
	if m.opts.SelectionType == Arrowed {
		label := fit(item.Label, width-len(arrowMarker))
		if selected {
			return m.styles.SelectedArrow.Render(arrowMarker) + m.itemStyle(item, m.styles.ArrowedItem).Render(label)
		}
		return m.itemStyle(item, m.styles.Item).Render(label) + arrowTail
	}
	label := fit(item.Label, width)
	if selected {
		return m.itemStyle(item, m.styles.SelectedItem).Render(label)
	}
	return m.itemStyle(item, m.styles.Item).Render(label)
}

// itemStyle dims disabled items regardless of selection. A disabled item is
// only ever selected when nothing else in the list is enabled.
func (m *Menu) itemStyle(item *menu.Item, style *lipgloss.Style) *lipgloss.Style {
	if !item.Enabled {
		return m.styles.DisabledItem
	}
	return style
}

// descriptionLine always spans the full width so a shorter description
// replaces a longer one without leftovers.
func (m *Menu) descriptionLine(selected *menu.Item, width int) string {
	var text string
	if selected != nil {
		text = fit(selected.Description, width)
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return m.styles.Description.Render(text)
}

func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
