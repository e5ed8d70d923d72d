package ui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/atomicstack/termselect/internal/menu"
	"github.com/atomicstack/termselect/internal/terminal"
	"github.com/atomicstack/termselect/internal/theme"
	"github.com/atomicstack/termselect/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler observes every key a menu receives, before built-in handling.
type KeyHandler func(m *Menu, k tea.KeyMsg)

// RenderHook runs before or after a menu paints its rows. Hooks may write
// lines of their own through m.Terminal().
type RenderHook func(m *Menu)

// Menu renders one selection list and reacts to keys.
type Menu struct {
	items  *menu.List
	opts   Options
	term   terminal.Terminal
	styles *theme.Styles
	keys   KeyMap
	help   help.Model
	bus    *command.Bus

	switchRequested atomic.Bool

	keyHandlers  []KeyHandler
	beforeRender []RenderHook
	afterRender  []RenderHook
}

// NewDefaultMenu creates a menu using DefaultOptions.
func NewDefaultMenu(t terminal.Terminal) *Menu {
	return NewMenu(t, DefaultOptions())
}

// NewMenu creates an empty menu drawing on t.
func NewMenu(t terminal.Terminal, opts Options) *Menu {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	items, _ := menu.NewList()
	m := &Menu{
		items:  items,
		opts:   opts,
		term:   t,
		styles: theme.New(t.Renderer()),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		bus:    command.New(),
	}
	m.help.Styles.ShortKey = *m.styles.Help
	m.help.Styles.ShortDesc = *m.styles.Help
	m.help.Styles.ShortSeparator = *m.styles.Help
	return m
}

// Items exposes the menu's list for population.
func (m *Menu) Items() *menu.List {
	return m.items
}

// Name returns the name used for the menu in trace logs.
func (m *Menu) Name() string {
	return m.opts.Name
}

// Options returns the options the menu renders with.
func (m *Menu) Options() Options {
	return m.opts
}

// SetSelectionType changes the selection marker used by later renders.
func (m *Menu) SetSelectionType(st SelectionType) {
	m.opts.SelectionType = st
}

// SetKeyMap replaces the key bindings.
func (m *Menu) SetKeyMap(k KeyMap) {
	m.keys = k
}

// Terminal returns the terminal the menu draws on.
func (m *Menu) Terminal() terminal.Terminal {
	return m.term
}

// OnKeyPressed subscribes to key presses. Handlers run in registration order
// before the menu's own handling.
func (m *Menu) OnKeyPressed(h KeyHandler) {
	if h != nil {
		m.keyHandlers = append(m.keyHandlers, h)
	}
}

// OnBeforeRender subscribes to the start of every render.
func (m *Menu) OnBeforeRender(h RenderHook) {
	if h != nil {
		m.beforeRender = append(m.beforeRender, h)
	}
}

// OnAfterRender subscribes to the end of every render.
func (m *Menu) OnAfterRender(h RenderHook) {
	if h != nil {
		m.afterRender = append(m.afterRender, h)
	}
}

// SwitchRequested reports whether a switch away from this menu is pending.
func (m *Menu) SwitchRequested() bool {
	return m.switchRequested.Load()
}

// Start renders the menu on a cleared screen and then handles keys until ctx
// is cancelled or a switch away from the menu is requested. Cancellation is
// not an error; a failing terminal read is.
func (m *Menu) Start(ctx context.Context) error {
	m.Render(true)
	return m.listen(ctx)
}

// listen polls for keys, yielding between polls so cancellation is noticed
// without waiting for input.
func (m *Menu) listen(ctx context.Context) error {
	ticker := time.NewTicker(m.opts.PollInterval)
	defer ticker.Stop()
	for !m.SwitchRequested() {
		if ctx.Err() != nil {
			return nil
		}
		if m.term.KeyAvailable() {
			k, err := m.term.ReadKey()
			switch {
			case err == nil:
				m.HandleKey(k)
				continue
			case !errors.Is(err, terminal.ErrNoKey):
				return fmt.Errorf("menu %q: read key: %w", m.opts.Name, err)
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
