package app

import (
	"fmt"
	"strings"

	"github.com/atomicstack/termselect/internal/format/table"
	"github.com/atomicstack/termselect/internal/menu"
	"github.com/atomicstack/termselect/internal/terminal"
	"github.com/atomicstack/termselect/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Demo is the pair of menus the binary shows: a main menu and a settings
// menu reached from it.
type Demo struct {
	Main     *ui.Menu
	Settings *ui.Menu

	status string
	// styleItems are the settings entries that pick a selection type, in
	// the order of styleChoices.
	styleItems []*menu.Item
}

var styleChoices = []struct {
	name string
	st   ui.SelectionType
}{
	{"Arrow marker", ui.Arrowed},
	{"Filled background", ui.BackgroundFilled},
}

type entry struct {
	label       string
	description string
	disabled    bool
	action      func()
}

// BuildDemo wires the demo menus to d. quit is called by the Exit entry.
func BuildDemo(t terminal.Terminal, d *ui.Director, opts ui.Options, quit func()) (*Demo, error) {
	demo := &Demo{}

	mainOpts := opts
	mainOpts.Name = "main"
	demo.Main = ui.NewMenu(t, mainOpts)
	settingsOpts := opts
	settingsOpts.Name = "settings"
	demo.Settings = ui.NewMenu(t, settingsOpts)

	err := populate(demo.Main, []entry{
		{label: "Home", description: "Show the welcome message", action: func() {
			demo.report(demo.Main, "Welcome. Use the arrow keys and enter.")
		}},
		{label: "Help", description: "Explain the key bindings", action: func() {
			demo.report(demo.Main, "Up and down move, enter selects, ctrl+c quits.")
		}},
		{label: "Settings", description: "Change how the selection is drawn", action: func() {
			demo.status = ""
			_ = demo.Main.SwitchTo(d, demo.Settings)
		}},
		{label: "Archive", description: "Not available yet", disabled: true},
		{label: "Exit", description: "Leave the program", action: quit},
	})
	if err != nil {
		return nil, fmt.Errorf("build main menu: %w", err)
	}
	err = populate(demo.Settings, []entry{
		{description: "Prefix the selected row with an arrow", action: func() {
			demo.setSelectionType(ui.Arrowed)
		}},
		{description: "Highlight the selected row", action: func() {
			demo.setSelectionType(ui.BackgroundFilled)
		}},
		{label: "Back", description: "Return to the main menu", action: func() {
			demo.status = ""
			_ = demo.Settings.SwitchTo(d, demo.Main)
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("build settings menu: %w", err)
	}
	demo.styleItems = demo.Settings.Items().Items()[:len(styleChoices)]
	demo.refreshStyleLabels(opts.SelectionType)

	demo.Main.OnBeforeRender(demo.title("termselect"))
	demo.Settings.OnBeforeRender(demo.title("termselect › settings"))
	for _, m := range []*ui.Menu{demo.Main, demo.Settings} {
		m.OnAfterRender(demo.statusLine)
		ui.AttachTypeAhead(m, 0)
	}
	return demo, nil
}

// Status returns the message shown below the menus.
func (d *Demo) Status() string {
	return d.status
}

func (d *Demo) report(m *ui.Menu, message string) {
	d.status = message
	m.Render(false)
}

func (d *Demo) setSelectionType(st ui.SelectionType) {
	d.Main.SetSelectionType(st)
	d.Settings.SetSelectionType(st)
	d.refreshStyleLabels(st)
	d.report(d.Settings, "Selection style: "+st.String())
}

// refreshStyleLabels lays the style entries out as two aligned columns: the
// style name and whether it is in use.
func (d *Demo) refreshStyleLabels(current ui.SelectionType) {
	rows := make([][]string, len(styleChoices))
	for i, choice := range styleChoices {
		state := "off"
		if choice.st == current {
			state = "on"
		}
		rows[i] = []string{choice.name, state}
	}
	for i, label := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		d.styleItems[i].Label = label
	}
}

func (d *Demo) title(text string) ui.RenderHook {
	return func(m *ui.Menu) {
		m.Terminal().WriteLine(pad(text, terminal.LineWidth(m.Terminal())))
	}
}

func (d *Demo) statusLine(m *ui.Menu) {
	m.Terminal().WriteLine(pad(d.status, terminal.LineWidth(m.Terminal())))
}

func populate(m *ui.Menu, entries []entry) error {
	for _, e := range entries {
		item := menu.NewItem(e.label)
		item.Description = e.description
		item.Enabled = !e.disabled
		item.Action = e.action
		if err := m.Items().Add(item); err != nil {
			return err
		}
	}
	return nil
}

func pad(text string, width int) string {
	if n := width - lipgloss.Width(text); n > 0 {
		return text + strings.Repeat(" ", n)
	}
	return text
}
