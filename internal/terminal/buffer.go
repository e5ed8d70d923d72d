package terminal

import (
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Buffer is an in-memory screen. Written lines overwrite whatever occupies
// the cursor row, so in-place re-renders can be observed exactly. Keys are
// queued with Feed. All methods are safe for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	row      int
	col      int
	width    int
	captured bool
	keys     []tea.KeyMsg
	closed   bool
	writes   int
	renderer *lipgloss.Renderer
}

// NewBuffer returns an interactive virtual screen of the given width.
// Styles drawn on it render as plain text.
func NewBuffer(width int) *Buffer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return &Buffer{
		width:    width,
		renderer: r,
	}
}

// SetCaptured switches the buffer between interactive and captured mode.
func (b *Buffer) SetCaptured(captured bool) {
	b.mu.Lock()
	b.captured = captured
	b.mu.Unlock()
}

// SetColorProfile changes the profile styles are rendered with, so escape
// sequences show up in the captured lines.
func (b *Buffer) SetColorProfile(p termenv.Profile) {
	b.mu.Lock()
	b.renderer.SetColorProfile(p)
	b.mu.Unlock()
}

// Feed queues keys for ReadKey.
func (b *Buffer) Feed(keys ...tea.KeyMsg) {
	b.mu.Lock()
	b.keys = append(b.keys, keys...)
	b.mu.Unlock()
}

// CloseInput makes ReadKey return io.EOF once the queue drains.
func (b *Buffer) CloseInput() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

// Pending returns the number of queued keys.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

// Lines returns a copy of the screen rows with trailing spaces trimmed.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = strings.TrimRight(line, " ")
	}
	return out
}

// String renders the screen rows joined by newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Writes returns how many lines have been written since creation.
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	b.lines = nil
	b.row, b.col = 0, 0
	b.mu.Unlock()
}

func (b *Buffer) Cursor() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.row, b.col
}

func (b *Buffer) SetCursor(row, col int) {
	b.mu.Lock()
	b.row = max(row, 0)
	b.col = max(col, 0)
	b.mu.Unlock()
}

func (b *Buffer) WriteLine(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.lines) <= b.row {
		b.lines = append(b.lines, "")
	}
	b.lines[b.row] = text
	b.row++
	b.col = 0
	b.writes++
}

func (b *Buffer) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

func (b *Buffer) Captured() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.captured
}

func (b *Buffer) KeyAvailable() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys) > 0 || b.closed
}

func (b *Buffer) ReadKey() (tea.KeyMsg, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.keys) == 0 {
		if b.closed {
			return tea.KeyMsg{}, io.EOF
		}
		return tea.KeyMsg{}, ErrNoKey
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, nil
}

func (b *Buffer) Renderer() *lipgloss.Renderer {
	return b.renderer
}
