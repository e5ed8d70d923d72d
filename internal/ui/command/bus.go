package command

import "github.com/atomicstack/termselect/internal/logging/events"

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler func()
}

// Bus coordinates the execution of item actions. Actions run synchronously
// on the caller's goroutine.
type Bus struct {
	executed int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request's handler while emitting trace logs. It reports
// whether a handler was present.
func (b *Bus) Execute(req Request) bool {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	req.Handler()
	b.executed++
	events.Command.Done(req.ID, req.Label)
	return true
}

// Executed returns how many handlers the bus has run.
func (b *Bus) Executed() int {
	return b.executed
}
