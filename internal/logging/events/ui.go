package events

import "github.com/atomicstack/termselect/internal/logging"

type MenuTracer struct{}

type DirectorTracer struct{}

type CommandTracer struct{}

type TerminalTracer struct{}

var (
	Menu     = MenuTracer{}
	Director = DirectorTracer{}
	Command  = CommandTracer{}
	Terminal = TerminalTracer{}
)

func (MenuTracer) Render(menuID string, items int, clear bool) {
	logging.Trace("menu.render", map[string]interface{}{"menu": menuID, "items": items, "clear": clear})
}

func (MenuTracer) Key(menuID, key string) {
	logging.Trace("menu.key", map[string]interface{}{"menu": menuID, "key": key})
}

func (MenuTracer) Cursor(menuID string, index int, label string) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": index, "label": label})
}

func (MenuTracer) Jump(menuID, query, label string) {
	logging.Trace("menu.jump", map[string]interface{}{"menu": menuID, "query": query, "label": label})
}

func (MenuTracer) Error(menuID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.error", map[string]interface{}{"menu": menuID, "error": err.Error()})
}

func (DirectorTracer) Switch(from, to string) {
	logging.Trace("director.switch", map[string]interface{}{"from": from, "to": to})
}

func (DirectorTracer) Start(menuID string) {
	logging.Trace("director.start", map[string]interface{}{"menu": menuID})
}

func (DirectorTracer) Skip(reason string) {
	logging.Trace("director.skip", map[string]interface{}{"reason": reason})
}

func (DirectorTracer) Stop(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("director.stop", payload)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Done(id, label string) {
	logging.Trace("command.done", map[string]interface{}{"id": id, "label": label})
}

func (TerminalTracer) Interrupt() {
	logging.Trace("terminal.interrupt", nil)
}

func (TerminalTracer) KeyDropped(key string) {
	logging.Trace("terminal.key-dropped", map[string]interface{}{"key": key})
}

func (TerminalTracer) WriteError(err error) {
	logging.Trace("terminal.write-error", map[string]interface{}{"error": err.Error()})
}
