package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding

	NextPage key.Binding
	PrevPage key.Binding

	Overview    key.Binding
	Config      key.Binding
	Trajectory  key.Binding
	Coverage    key.Binding
	Performance key.Binding

	CopyLink   key.Binding
	OpenDetail key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		Config: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "satellite config"),
		),
		Trajectory: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "trajectory"),
		),
		Coverage: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "coverage"),
		),
		Performance: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "performance"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy share link"),
		),
		OpenDetail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "open detail view"),
		),
	}
}
