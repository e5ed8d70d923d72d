package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/termselect/internal/terminal"
	"github.com/atomicstack/termselect/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Selection    string
	ShowHelp     bool
	PollInterval time.Duration
	Width        int
}

// Options converts the configuration into menu options.
func (c Config) Options() (ui.Options, error) {
	selection, err := ui.ParseSelectionType(c.Selection)
	if err != nil {
		return ui.Options{}, err
	}
	return ui.Options{
		SelectionType: selection,
		ShowHelp:      c.ShowHelp,
		PollInterval:  c.PollInterval,
	}, nil
}

// Run opens the controlling terminal and runs the demo menus until the user
// exits or ctx is cancelled. Ctrl+C cancels the run.
func Run(ctx context.Context, cfg Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	console, err := terminal.OpenConsole(ctx, terminal.ConsoleOptions{
		Width:     cfg.Width,
		Interrupt: cancel,
	})
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	runErr := RunOn(ctx, console, opts)
	return errors.Join(runErr, console.Close())
}

// RunOn runs the demo menus on t. It returns nil once the Exit entry is
// chosen or ctx is cancelled.
func RunOn(ctx context.Context, t terminal.Terminal, opts ui.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := ui.NewDirector()
	demo, err := BuildDemo(t, d, opts, cancel)
	if err != nil {
		return err
	}
	if err := d.SwitchMenu(demo.Main); err != nil {
		return err
	}
	return d.ProcessMenu(ctx)
}
