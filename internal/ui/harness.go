package ui

import (
	"context"
	"errors"

	"github.com/atomicstack/termselect/internal/terminal"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness runs a Director against an in-memory screen so menus can be driven
// programmatically, in tests or headless runs.
type Harness struct {
	Director *Director
	Screen   *terminal.Buffer

	cancel context.CancelFunc
	done   chan error
}

// NewHarness pairs a director with the buffer its menus draw on.
func NewHarness(d *Director, screen *terminal.Buffer) *Harness {
	return &Harness{Director: d, Screen: screen}
}

// Start runs the director's loop in the background.
func (h *Harness) Start(ctx context.Context) {
	ctx, h.cancel = context.WithCancel(ctx)
	h.done = make(chan error, 1)
	go func() {
		h.done <- h.Director.ProcessMenu(ctx)
	}()
}

// Send queues keys for the running menu.
func (h *Harness) Send(keys ...tea.KeyMsg) {
	h.Screen.Feed(keys...)
}

// Stop cancels the loop and returns its result.
func (h *Harness) Stop() error {
	if h.cancel == nil {
		return errors.New("harness not started")
	}
	h.cancel()
	return <-h.done
}

// Key builds the key message for a named key such as "up" or "enter", or for
// literal text.
func Key(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}
