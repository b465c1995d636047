package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	prev      key.Binding
	next      key.Binding
	jump      key.Binding
	recommend key.Binding
	like      key.Binding
	share     key.Binding
	open      key.Binding
	playlist  key.Binding
	back      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		jump:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		recommend: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "recommend")),
		like:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "like")),
		share:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		playlist:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "playlist")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prev, k.next, k.jump, k.recommend},
		{k.like, k.share, k.open},
		{k.playlist, k.back, k.quit},
	}
}
