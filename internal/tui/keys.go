package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add, Check, Edit, Delete, Filter, Copy, Quit key.Binding
	Submit, Cancel                               key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Check:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide checked")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Check, k.Edit, k.Delete, k.Filter}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Add, k.Check, k.Edit, k.Delete, k.Filter, k.Copy, k.Submit}
}
