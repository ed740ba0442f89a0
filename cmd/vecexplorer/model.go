package main

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/rawvec/vec"
)

// maxRenderedSlots bounds how many slots the slot strip draws.
const maxRenderedSlots = 64

// growthEvent records one capacity change observed after an operation.
type growthEvent struct {
	op   string
	from int
	to   int
}

// Model is the main Bubbletea model
type Model struct {
	v *vec.Vec[int]

	// cursor is an insertion point in [0, Len].
	cursor int
	// next is the value given to the next pushed or inserted element.
	next int

	history []growthEvent
	status  string

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int

	// copyFn is swapped in tests to avoid touching the system clipboard.
	copyFn func(string) error
}

// NewModel creates a model over an empty vector.
func NewModel() Model {
	return Model{
		v:      vec.New[int](),
		next:   1,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		status: "empty vector, press p to push",
		copyFn: writeClipboard,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Vec exposes the vector being explored.
func (m Model) Vec() *vec.Vec[int] {
	return m.v
}

// Cursor returns the current insertion point.
func (m Model) Cursor() int {
	return m.cursor
}

// History returns the capacity changes seen so far, oldest first.
func (m Model) History() []growthEvent {
	return m.history
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Close releases the vector.
func (m Model) Close() {
	m.v.Dispose()
}
