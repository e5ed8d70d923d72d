package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atomicstack/termselect/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const defaultKeyBuffer = 64

// ConsoleOptions configures OpenConsole.
type ConsoleOptions struct {
	In  *os.File
	Out *os.File
	// Width overrides the detected viewport width when positive.
	Width int
	// Interrupt is invoked on ctrl+c instead of queueing the key.
	Interrupt func()
	// KeyBuffer bounds the number of undelivered keys.
	KeyBuffer int
}

// Console drives the controlling terminal. Keys are decoded by a Bubble Tea
// program running without a renderer and handed over through a buffered
// channel, so KeyAvailable never blocks.
type Console struct {
	in       *os.File
	out      *os.File
	output   *termenv.Output
	renderer *lipgloss.Renderer
	width    int
	captured bool
	rawState *term.State

	keys    chan tea.KeyMsg
	done    chan struct{}
	program *tea.Program
	group   errgroup.Group

	mu  sync.Mutex
	row int
	col int
}

// OpenConsole puts the input into raw mode and starts decoding keys. The
// returned console must be closed to restore the terminal.
func OpenConsole(ctx context.Context, opts ConsoleOptions) (*Console, error) {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	size := opts.KeyBuffer
	if size <= 0 {
		size = defaultKeyBuffer
	}
	c := &Console{
		in:       in,
		out:      out,
		output:   termenv.NewOutput(out),
		renderer: lipgloss.NewRenderer(out),
		width:    opts.Width,
		captured: !isTTY(out.Fd()),
		keys:     make(chan tea.KeyMsg, size),
		done:     make(chan struct{}),
	}
	if isTTY(in.Fd()) {
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		c.rawState = state
	}
	if !c.captured {
		c.output.HideCursor()
	}

	pump := keyPump{keys: c.keys, interrupt: opts.Interrupt}
	c.program = tea.NewProgram(pump,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	c.group.Go(func() error {
		defer close(c.done)
		_, err := c.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return c, nil
}

// Close stops key decoding and restores the terminal state.
func (c *Console) Close() error {
	c.program.Kill()
	err := c.group.Wait()
	if !c.captured {
		c.output.ShowCursor()
	}
	if c.rawState != nil {
		if rerr := term.Restore(int(c.in.Fd()), c.rawState); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}
	return err
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.captured {
		c.output.ClearScreen()
	}
	c.row, c.col = 0, 0
}

func (c *Console) Cursor() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.row, c.col
}

// SetCursor moves relative to the rows written since the last Clear, so a
// position taken from Cursor stays valid after the screen scrolls. Output
// that bypasses WriteLine is not counted.
func (c *Console) SetCursor(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	row, col = max(row, 0), max(col, 0)
	if !c.captured {
		switch delta := c.row - row; {
		case delta > 0:
			c.output.CursorUp(delta)
		case delta < 0:
			c.output.CursorDown(-delta)
		}
		_, _ = c.output.WriteString("\r")
		if col > 0 {
			c.output.CursorForward(col)
		}
	}
	c.row, c.col = row, col
}

func (c *Console) WriteLine(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	eol := "\n"
	if c.rawState != nil {
		eol = "\r\n"
	}
	if _, err := io.WriteString(c.out, text+eol); err != nil {
		events.Terminal.WriteError(err)
	}
	c.row++
	c.col = 0
}

func (c *Console) Width() int {
	if c.width > 0 {
		return c.width
	}
	w, _, err := term.GetSize(int(c.out.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func (c *Console) Captured() bool {
	return c.captured
}

func (c *Console) KeyAvailable() bool {
	if len(c.keys) > 0 {
		return true
	}
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Console) ReadKey() (tea.KeyMsg, error) {
	select {
	case k := <-c.keys:
		return k, nil
	default:
	}
	select {
	case <-c.done:
		return tea.KeyMsg{}, io.EOF
	default:
		return tea.KeyMsg{}, ErrNoKey
	}
}

func (c *Console) Renderer() *lipgloss.Renderer {
	return c.renderer
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// keyPump is the Bubble Tea model behind Console: it never renders and only
// forwards key presses.
type keyPump struct {
	keys      chan<- tea.KeyMsg
	interrupt func()
}

func (p keyPump) Init() tea.Cmd { return nil }

func (p keyPump) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	if k.Type == tea.KeyCtrlC && p.interrupt != nil {
		events.Terminal.Interrupt()
		p.interrupt()
		return p, nil
	}
	select {
	case p.keys <- k:
	default:
		events.Terminal.KeyDropped(k.String())
	}
	return p, nil
}

func (p keyPump) View() string { return "" }
