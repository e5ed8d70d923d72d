package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/termselect/internal/logging/events"
	"github.com/atomicstack/termselect/internal/menu"
)

// Director runs the active menu and hands control between menus without
// stopping the input loop. Create one per program and pass it to whatever
// needs to switch menus.
type Director struct {
	active  atomic.Pointer[Menu]
	running atomic.Bool
}

// NewDirector returns a director with no active menu.
func NewDirector() *Director {
	return &Director{}
}

// Active returns the menu the loop runs next, or nil.
func (d *Director) Active() *Menu {
	return d.active.Load()
}

// Running reports whether ProcessMenu is executing.
func (d *Director) Running() bool {
	return d.running.Load()
}

// SwitchMenu makes m the active menu. The previously active menu is asked to
// stop listening; m starts on the loop's next cycle.
func (d *Director) SwitchMenu(m *Menu) error {
	if m == nil {
		return fmt.Errorf("switch menu: nil menu: %w", menu.ErrInvalidArgument)
	}
	prev := d.active.Load()
	if prev != nil {
		prev.switchRequested.Store(true)
	}
	m.switchRequested.Store(false)
	d.active.Store(m)
	events.Director.Switch(menuName(prev), m.Name())
	return nil
}

// ProcessMenu runs the active menu until ctx is cancelled, picking up menu
// switches as they happen. It returns at once when no menu is active or when
// another call is already running the loop. Cancellation yields nil; a
// failing key read ends the loop with that error.
func (d *Director) ProcessMenu(ctx context.Context) (err error) {
	if d.active.Load() == nil {
		events.Director.Skip("no active menu")
		return nil
	}
	if !d.running.CompareAndSwap(false, true) {
		events.Director.Skip("already running")
		return nil
	}
	defer d.running.Store(false)
	defer func() { events.Director.Stop(err) }()

	for ctx.Err() == nil {
		m := d.active.Load()
		events.Director.Start(m.Name())
		if err = m.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

func menuName(m *Menu) string {
	if m == nil {
		return ""
	}
	return m.Name()
}
