package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Open      key.Binding
	Back      key.Binding
	Window    key.Binding
	Idea      key.Binding
	Accept    key.Binding
	AcceptLog key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("h", "pgup"), key.WithHelp("h", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("l", "pgdown"), key.WithHelp("l", "next month")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Window:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "cycle window")),
		Idea:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "suggest idea")),
		Accept:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept idea")),
		AcceptLog: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "accept + log")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Window, k.Idea, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Open, k.Back},
		{k.Window, k.Idea, k.Accept, k.AcceptLog},
		{k.Quit},
	}
}
