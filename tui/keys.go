package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reset   key.Binding
	Loading key.Binding
	Toggle  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Loading: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loading")),
		Toggle:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable/disable")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Loading, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
