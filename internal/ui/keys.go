// Package ui holds key bindings shared by the networks screen.
package ui

import "github.com/charmbracelet/bubbles/key"

// TableKeys holds key bindings for the networks table.
type TableKeys struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Search  key.Binding
	Driver  key.Binding
	Scope   key.Binding
	System  key.Binding
	Sort    key.Binding
	Order   key.Binding
	Create  key.Binding
	Remove  key.Binding
	Prune   key.Binding
	Connect key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// ShortHelp returns the table bindings for the help bar.
func (k TableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Driver, k.Scope, k.System, k.Sort, k.Create, k.Remove, k.Connect, k.Prune, k.Refresh, k.Quit}
}

// FullHelp returns the table bindings grouped for expanded help.
func (k TableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Search, k.Driver, k.Scope, k.System},
		{k.Sort, k.Order},
		{k.Create, k.Remove, k.Connect, k.Prune},
		{k.Refresh, k.Dismiss, k.Quit},
	}
}

// TableKeyMap returns the key bindings for the networks table.
func TableKeyMap() TableKeys {
	return TableKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Driver: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "driver"),
		),
		Scope: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "scope"),
		),
		System: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "system only"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Order: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "reverse"),
		),
		Create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Prune: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prune"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DrawerKeys holds key bindings for the detail drawer.
type DrawerKeys struct {
	Up              key.Binding
	Down            key.Binding
	Refetch         key.Binding
	Connect         key.Binding
	Disconnect      key.Binding
	ForceDisconnect key.Binding
	Close           key.Binding
	Quit            key.Binding
}

// ShortHelp returns the drawer bindings for the help bar.
func (k DrawerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refetch, k.Connect, k.Disconnect, k.ForceDisconnect, k.Close}
}

// FullHelp returns the drawer bindings grouped for expanded help.
func (k DrawerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refetch, k.Connect, k.Disconnect, k.ForceDisconnect},
		{k.Close, k.Quit},
	}
}

// DrawerKeyMap returns the key bindings for the detail drawer.
func DrawerKeyMap() DrawerKeys {
	return DrawerKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Refetch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect"),
		),
		Disconnect: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disconnect"),
		),
		ForceDisconnect: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "force disconnect"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
