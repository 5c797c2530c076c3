package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the TUI key bindings.
type KeyMap struct {
	// Any mode
	ForceQuit key.Binding

	// Input mode
	Commit         key.Binding
	ToggleAllInput key.Binding
	Blur           key.Binding

	// List mode
	Quit            key.Binding
	Help            key.Binding
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	Remove          key.Binding
	ToggleAll       key.Binding
	ClearCompleted  key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	NextFilter      key.Binding
	PrevFilter      key.Binding
	Focus           key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Commit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		ToggleAllInput: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle all")),
		Blur:           key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "go to list")),

		Quit:            key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:            key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?/h", "toggle help")),
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Toggle:          key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle task")),
		Remove:          key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d/del", "remove task")),
		ToggleAll:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		ClearCompleted:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "show all")),
		FilterActive:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "show active")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "show completed")),
		NextFilter:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		PrevFilter:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous filter")),
		Focus:           key.NewBinding(key.WithKeys("tab", "i"), key.WithHelp("tab/i", "new task")),
	}
}

// InputHelp lists the bindings active while typing.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Commit, k.ToggleAllInput, k.Blur, k.ForceQuit}
}

// ListHelp lists the bindings active in the list.
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Toggle, k.Remove, k.ToggleAll, k.ClearCompleted,
		k.FilterAll, k.FilterActive, k.FilterCompleted, k.NextFilter, k.PrevFilter,
		k.Focus, k.Help, k.Quit,
	}
}
