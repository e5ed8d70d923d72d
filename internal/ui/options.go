package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// SelectionType determines how the selected row is marked.
type SelectionType int

const (
	// BackgroundFilled paints the selected row with a filled background.
	BackgroundFilled SelectionType = iota
	// Arrowed prefixes the selected row with "> ".
	Arrowed
)

func (s SelectionType) String() string {
	switch s {
	case BackgroundFilled:
		return "background"
	case Arrowed:
		return "arrowed"
	default:
		return fmt.Sprintf("SelectionType(%d)", int(s))
	}
}

// ParseSelectionType accepts the names used on the command line and in
// configuration files.
func ParseSelectionType(value string) (SelectionType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "background", "background-filled", "filled":
		return BackgroundFilled, nil
	case "arrow", "arrowed":
		return Arrowed, nil
	default:
		return BackgroundFilled, fmt.Errorf("unknown selection type %q (want background or arrowed)", value)
	}
}

// DefaultPollInterval is how long the listen loop yields between key polls.
const DefaultPollInterval = 15 * time.Millisecond

// Options configures a Menu.
type Options struct {
	// Name identifies the menu in trace logs.
	Name          string
	SelectionType SelectionType
	// ShowHelp adds a key hint line below the description line.
	ShowHelp     bool
	PollInterval time.Duration
}

var (
	defaultsMu sync.RWMutex
	defaults   = Options{SelectionType: BackgroundFilled, PollInterval: DefaultPollInterval}
)

// DefaultOptions returns the options applied to menus created without
// explicit options.
func DefaultOptions() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaultOptions replaces the process-wide defaults. Existing menus keep
// the options they were created with.
func SetDefaultOptions(opts Options) {
	defaultsMu.Lock()
	defaults = opts
	defaultsMu.Unlock()
}
