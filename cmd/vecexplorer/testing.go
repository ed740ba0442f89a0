package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// TestHelper drives a Model with synthetic key and window messages.
type TestHelper struct {
	t     *testing.T
	model Model
}

// NewTestHelper creates a helper around a fresh model whose clipboard
// writes are captured instead of reaching the system clipboard.
func NewTestHelper(t *testing.T) (*TestHelper, *[]string) {
	t.Helper()
	var copied []string
	m := NewModel()
	m.copyFn = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(m.Close)
	return &TestHelper{t: t, model: m}, &copied
}

// SendKey sends a special key
func (h *TestHelper) SendKey(keyType tea.KeyType) tea.Cmd {
	h.t.Helper()
	return h.send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune sends a rune key
func (h *TestHelper) SendKeyRune(r rune) tea.Cmd {
	h.t.Helper()
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// SendKeys sends each rune in s in order.
func (h *TestHelper) SendKeys(s string) {
	h.t.Helper()
	for _, r := range s {
		h.SendKeyRune(r)
	}
}

// SendWindowSize sends a window resize message
func (h *TestHelper) SendWindowSize(width, height int) {
	h.t.Helper()
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

func (h *TestHelper) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	updated, cmd := h.model.Update(msg)
	m, ok := updated.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T, want Model", updated)
	}
	h.model = m
	return cmd
}
