package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	toggle  key.Binding
	quit    key.Binding
	add     key.Binding
	edit    key.Binding
	upload  key.Binding
	delete  key.Binding
	refresh key.Binding
	copy    key.Binding
	send    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	quit:    key.NewBinding(key.WithKeys("q")),
	add:     key.NewBinding(key.WithKeys("a")),
	edit:    key.NewBinding(key.WithKeys("e")),
	upload:  key.NewBinding(key.WithKeys("u")),
	delete:  key.NewBinding(key.WithKeys("d")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	send:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
