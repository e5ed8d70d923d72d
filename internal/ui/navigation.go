package ui

import (
	"github.com/atomicstack/termselect/internal/logging/events"
	"github.com/atomicstack/termselect/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey notifies key subscribers and then applies the built-in bindings:
// up and down move the selection and re-render in place, enter runs the
// selected item's action. Other keys only reach the subscribers.
func (m *Menu) HandleKey(k tea.KeyMsg) {
	events.Menu.Key(m.opts.Name, k.String())
	for _, h := range m.keyHandlers {
		h(m, k)
	}
	switch {
	case key.Matches(k, m.keys.Down):
		m.move(menu.Next)
	case key.Matches(k, m.keys.Up):
		m.move(menu.Previous)
	case key.Matches(k, m.keys.Select):
		m.activate()
	}
}

func (m *Menu) move(dir menu.Direction) {
	if err := m.items.MoveSelection(dir); err != nil {
		events.Menu.Error(m.opts.Name, err)
		return
	}
	if sel := m.items.Selected(); sel != nil {
		events.Menu.Cursor(m.opts.Name, m.items.IndexOf(sel), sel.Label)
	}
	m.Render(false)
}
