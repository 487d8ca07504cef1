package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the game controls.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Number    key.Binding
	Clear     key.Binding
	Check     key.Binding
	Hint      key.Binding
	AutoSolve key.Binding
	Reset     key.Binding
	Menu      key.Binding
	Quit      key.Binding
}

var Keys = KeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
	Number: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "place digit"),
	),
	Clear:     key.NewBinding(key.WithKeys("0", "x", "backspace"), key.WithHelp("0/x", "clear cell")),
	Check:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check board")),
	Hint:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "hint")),
	AutoSolve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "reveal solution")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}
