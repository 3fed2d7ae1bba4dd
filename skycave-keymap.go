package skycave

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	menuCheckIn  key.Binding
	menuCheckOut key.Binding
	menuGuests   key.Binding
	menuReport   key.Binding
	back         key.Binding
	confirm      key.Binding
	nextField    key.Binding
	prevField    key.Binding
	navigate     key.Binding
	quit         key.Binding
}

func newKeymap() keymap {
	return keymap{
		menuCheckIn: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Check-in"),
		),
		menuCheckOut: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Check-out"),
		),
		menuGuests: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Guest details"),
		),
		menuReport: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "TM30 report"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "f3"),
			key.WithHelp("esc", "Return"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Prev field"),
		),
		navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑↓", "Navigate"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}
