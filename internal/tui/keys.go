package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	SwitchView   key.Binding
	Connect      key.Binding
	Disconnect   key.Binding
	Network      key.Binding
	Theme        key.Binding
	ResetTheme   key.Binding
	Refresh      key.Binding
	ClearError   key.Binding
	Up           key.Binding
	Down         key.Binding
	Search       key.Binding
	TypeFilter   key.Binding
	StatusFilter key.Binding
	Open         key.Binding
	Back         key.Binding
	CopySig      key.Binding
	CopySender   key.Binding
	CopyReceiver key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Connect:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
		Disconnect:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
		Network:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "network")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ResetTheme:   key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "reset theme")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		ClearError:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "dismiss error")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		TypeFilter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "type")),
		StatusFilter: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		CopySig:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "copy signature")),
		CopySender:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "copy sender")),
		CopyReceiver: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "copy receiver")),
	}
}

func (k keyMap) overviewHelp() []key.Binding {
	return []key.Binding{k.Connect, k.Disconnect, k.Network, k.Theme, k.ResetTheme, k.Refresh, k.SwitchView, k.Quit}
}

func (k keyMap) recordsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.TypeFilter, k.StatusFilter, k.Refresh, k.SwitchView, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.CopySig, k.CopySender, k.CopyReceiver, k.Back, k.Quit}
}
