package ui

import (
	"fmt"

	"github.com/atomicstack/termselect/internal/menu"
	"github.com/atomicstack/termselect/internal/ui/command"
)

// activate runs the selected item's action. Nothing is re-rendered
// afterwards; an action that changes what is on screen renders itself or
// switches menus.
func (m *Menu) activate() {
	sel := m.items.Selected()
	if sel == nil {
		return
	}
	m.bus.Execute(command.Request{
		ID:      fmt.Sprintf("%s#%d", m.opts.Name, m.items.IndexOf(sel)),
		Label:   sel.Label,
		Handler: sel.Action,
	})
}

// SwitchTo marks m as finished and hands target to d. The listen loop of m
// returns after the current key has been handled and d starts target on its
// next cycle.
func (m *Menu) SwitchTo(d *Director, target *Menu) error {
	if d == nil || target == nil {
		return fmt.Errorf("switch from menu %q: %w", m.opts.Name, menu.ErrInvalidArgument)
	}
	m.switchRequested.Store(true)
	return d.SwitchMenu(target)
}
