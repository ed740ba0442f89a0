package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/rawvec/internal/logger"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay except quit
	if m.showHelp && !key.Matches(msg, m.keys.Quit) {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < m.v.Len() {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		m.cursor = m.v.Len()

	case key.Matches(msg, m.keys.Push):
		m.track("push", func() {
			m.v.Push(m.next)
			m.status = fmt.Sprintf("push(%d)", m.next)
			m.next++
		})

	case key.Matches(msg, m.keys.Pop):
		if elem, ok := m.v.Pop(); ok {
			m.status = fmt.Sprintf("pop() = %d", elem)
		} else {
			m.status = "pop() = none"
		}

	case key.Matches(msg, m.keys.Insert):
		at := m.cursor
		m.track("insert", func() {
			m.v.Insert(at, m.next)
			m.status = fmt.Sprintf("insert(%d, %d)", at, m.next)
			m.next++
		})

	case key.Matches(msg, m.keys.Remove):
		if elem, ok := m.v.Remove(m.cursor); ok {
			m.status = fmt.Sprintf("remove(%d) = %d", m.cursor, elem)
		} else {
			m.status = fmt.Sprintf("remove(%d) = none", m.cursor)
		}

	case key.Matches(msg, m.keys.Dispose):
		oldCap := m.v.Cap()
		m.v.Dispose()
		m.history = nil
		m.status = fmt.Sprintf("disposed, released %d slots", oldCap)

	case key.Matches(msg, m.keys.Copy):
		if err := m.copyFn(m.contents()); err != nil {
			logger.Warn("clipboard write failed", "error", err)
			m.status = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.status = fmt.Sprintf("copied %d elements", m.v.Len())
		}
	}

	m.clampCursor()
	logger.Debug("vecexplorer: key", "key", msg.String(), "len", m.v.Len(), "cap", m.v.Cap(), "cursor", m.cursor)
	return m, nil
}

// track runs op and appends a growth event if the capacity changed.
func (m *Model) track(op string, fn func()) {
	before := m.v.Cap()
	fn()
	if after := m.v.Cap(); after != before {
		m.history = append(m.history, growthEvent{op: op, from: before, to: after})
	}
}

func (m *Model) clampCursor() {
	if m.cursor > m.v.Len() {
		m.cursor = m.v.Len()
	}
}

// contents renders the live elements as a bracketed list.
func (m Model) contents() string {
	parts := make([]string, 0, m.v.Len())
	for _, elem := range m.v.Slice() {
		parts = append(parts, strconv.Itoa(elem))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}
