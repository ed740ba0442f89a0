package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// mainView wraps the main UI for use as the overlay background.
type mainView struct {
	model *Model
}

func (v *mainView) Init() tea.Cmd { return nil }

// Update is a no-op; the parent Model handles all messages.
func (v *mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

// View fills the window so the modal has room to be centered.
func (v *mainView) View() string {
	main := v.model.renderMain()
	if v.model.width == 0 || v.model.height == 0 {
		return main
	}
	return lipgloss.Place(v.model.width, v.model.height, lipgloss.Left, lipgloss.Top, main)
}

// helpModal lists every key binding in a bordered box.
type helpModal struct {
	keys KeyMap
}

func (h *helpModal) Init() tea.Cmd { return nil }

func (h *helpModal) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h *helpModal) View() string {
	const keyWidth = 8

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, group := range h.keys.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			hk := binding.Help()
			b.WriteString(lipgloss.NewStyle().Width(keyWidth).Bold(true).Render(hk.Key))
			b.WriteString(hk.Desc)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("press any key to close"))
	return helpBoxStyle.Render(b.String())
}
