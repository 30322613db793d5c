package tui

import "charm.land/bubbles/v2/key"

// keyMap represents key map data used by this package.
type keyMap struct {
	quit       key.Binding
	reload     key.Binding
	toggleHelp key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	openTask   key.Binding
	newTask    key.Binding
	copyTitle  key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		moveUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "task up")),
		moveDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "task down")),
		prevPage:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous page")),
		nextPage:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next page")),
		openTask:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open task")),
		newTask:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		copyTitle:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.newTask, k.openTask, k.prevPage, k.nextPage, k.reload, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.newTask, k.openTask, k.reload, k.copyTitle, k.toggleHelp, k.quit},
		{k.moveUp, k.moveDown, k.prevPage, k.nextPage},
	}
}
