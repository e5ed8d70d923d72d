// Package terminal abstracts the screen and keyboard the menus draw on.
//
// Menus only ever talk to the Terminal interface. Console is the real
// implementation backed by the controlling TTY; Buffer is an in-memory screen
// with scripted keys used by tests and headless runs.
package terminal

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CapturedWidth is the line width used when output is captured rather than
// shown on an interactive screen.
const CapturedWidth = 100

// ErrNoKey is returned by ReadKey when no key is queued.
var ErrNoKey = errors.New("no key available")

// Terminal is the capability menus render into and read keys from.
type Terminal interface {
	// Clear wipes the screen and homes the cursor.
	Clear()
	// Cursor returns the zero-based cursor row and column.
	Cursor() (row, col int)
	// SetCursor moves the cursor to a zero-based row and column.
	SetCursor(row, col int)
	// WriteLine writes text and moves the cursor to the start of the next row.
	WriteLine(text string)
	// Width returns the viewport width in cells.
	Width() int
	// Captured reports whether output is captured instead of displayed.
	Captured() bool
	// KeyAvailable reports, without blocking, whether ReadKey has something
	// to return.
	KeyAvailable() bool
	// ReadKey returns the next queued key.
	ReadKey() (tea.KeyMsg, error)
	// Renderer returns the lipgloss renderer matching the output colour
	// profile; styles for this terminal must be built from it.
	Renderer() *lipgloss.Renderer
}

// LineWidth returns the width lines should be padded to: the viewport width
// on an interactive screen, CapturedWidth otherwise.
func LineWidth(t Terminal) int {
	if t.Captured() {
		return CapturedWidth
	}
	if w := t.Width(); w > 0 {
		return w
	}
	return CapturedWidth
}
