// Package ui draws selection menus on a terminal and runs the input loop that
// drives them.
//
// A Menu owns one menu.List and paints it through a terminal.Terminal: one
// row per item, the selected row marked according to its SelectionType,
// disabled rows dimmed, then a description line for the selected item and an
// optional key help line. Renders after the first happen in place.
//
// Keys reach a menu through its listen loop, which polls the terminal and
// sleeps on a ticker between polls so a cancelled context is noticed without
// waiting for input. Key subscribers registered with OnKeyPressed run first,
// in order, then the built-in bindings move the selection or run the
// selected item's action through the command bus.
//
// A Director holds the active menu and keeps the loop going across menu
// switches: SwitchMenu (or Menu.SwitchTo from inside an action) stops the
// current menu's listen loop after the key being handled, and the director
// starts the new menu on its next cycle.
package ui
