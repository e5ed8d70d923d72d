package terminal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPumpForwardsKeys(t *testing.T) {
	keys := make(chan tea.KeyMsg, 2)
	pump := keyPump{keys: keys}

	model, cmd := pump.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
	assert.Equal(t, pump, model)
	_, _ = pump.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	assert.Len(t, keys, 1)
	assert.Equal(t, "up", (<-keys).String())
	assert.Empty(t, pump.View())
	assert.Nil(t, pump.Init())
}

func TestKeyPumpDropsKeysWhenFull(t *testing.T) {
	keys := make(chan tea.KeyMsg, 1)
	pump := keyPump{keys: keys}

	pump.Update(tea.KeyMsg{Type: tea.KeyUp})
	pump.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Len(t, keys, 1)
	assert.Equal(t, "up", (<-keys).String())
}

func TestKeyPumpInterruptsOnCtrlC(t *testing.T) {
	keys := make(chan tea.KeyMsg, 1)
	interrupted := 0
	pump := keyPump{keys: keys, interrupt: func() { interrupted++ }}

	pump.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, 1, interrupted)
	assert.Empty(t, keys)
}

func TestKeyPumpForwardsCtrlCWithoutInterrupt(t *testing.T) {
	keys := make(chan tea.KeyMsg, 1)
	pump := keyPump{keys: keys}

	pump.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Len(t, keys, 1)
}

func TestConsoleReadKeyStates(t *testing.T) {
	c := &Console{keys: make(chan tea.KeyMsg, 1), done: make(chan struct{})}

	assert.False(t, c.KeyAvailable())
	_, err := c.ReadKey()
	assert.ErrorIs(t, err, ErrNoKey)

	c.keys <- tea.KeyMsg{Type: tea.KeyEnter}
	assert.True(t, c.KeyAvailable())
	k, err := c.ReadKey()
	assert.NoError(t, err)
	assert.Equal(t, "enter", k.String())

	close(c.done)
	assert.True(t, c.KeyAvailable())
	_, err = c.ReadKey()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoKey)
}

func TestConsoleWidthOverride(t *testing.T) {
	c := &Console{width: 77, captured: true}

	assert.Equal(t, 77, c.Width())
	assert.Equal(t, CapturedWidth, LineWidth(c))
}

func newFileConsole(t *testing.T) (*Console, *os.File) {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "screen"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return &Console{out: f, output: termenv.NewOutput(f)}, f
}

func written(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return string(data)
}

func TestConsoleSetCursorMovesRelative(t *testing.T) {
	c, f := newFileConsole(t)
	c.WriteLine("earlier output")
	row, col := c.Cursor()
	require.Equal(t, 1, row)

	for _, line := range []string{"A", "B", "C"} {
		c.WriteLine(line)
	}
	c.SetCursor(row, col)

	out := written(t, f)
	assert.True(t, strings.HasSuffix(out, "C\n\x1b[3A\r"), "got %q", out)
	assert.NotContains(t, out, "H", "no absolute positioning")
	row, col = c.Cursor()
	assert.Equal(t, 1, row)
	assert.Zero(t, col)
}

func TestConsoleSetCursorDownAndColumn(t *testing.T) {
	c, f := newFileConsole(t)

	c.SetCursor(2, 4)

	assert.Equal(t, "\x1b[2B\r\x1b[4C", written(t, f))
	row, col := c.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 4, col)
}

func TestConsoleSetCursorCapturedWritesNothing(t *testing.T) {
	c, f := newFileConsole(t)
	c.captured = true
	c.WriteLine("A")

	c.SetCursor(0, 0)

	assert.Equal(t, "A\n", written(t, f))
	row, _ := c.Cursor()
	assert.Zero(t, row)
}
