package ui

import tea "charm.land/bubbletea/v2"

// ChildModel is a model owned by the root model. The root routes messages
// to the active child and composes its view.
type ChildModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (ChildModel, tea.Cmd)
	View() string
}

// ModelWithTitle is implemented by children shown as a page tab.
type ModelWithTitle interface {
	Title() string
}

// ModelWithSize is implemented by children that react to resizes.
type ModelWithSize interface {
	// SetSize sets the available width and height in cells.
	SetSize(width, height int)
}

// ModelWithStatus is implemented by children that report a one-line status.
type ModelWithStatus interface {
	Status() string
}

// Closer is implemented by children holding bindings that must be released.
type Closer interface {
	Close()
}
