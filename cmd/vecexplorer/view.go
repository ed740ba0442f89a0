package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		// Recreated each render so the background sees the latest state
		return overlay.New(
			&helpModal{keys: m.keys},
			&mainView{model: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		).View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderSlots(),
		m.renderHistory(),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	backing := "heap"
	if m.v.OffHeap() {
		backing = "off-heap"
	}
	info := labelStyle.Render(fmt.Sprintf("len %d  cap %d  cursor %d  backing %s",
		m.v.Len(), m.v.Cap(), m.cursor, backing))
	return lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render("Vec Explorer"), "  ", info)
}

// renderSlots draws one box per slot of capacity. Live slots carry their
// value, slots past the length are drawn empty.
func (m Model) renderSlots() string {
	if m.v.Cap() == 0 {
		return labelStyle.Render("(no storage)")
	}

	live := m.v.Slice()
	shown := min(m.v.Cap(), maxRenderedSlots)
	perRow := max(1, m.width/9)
	if m.width == 0 {
		perRow = 8
	}

	var rows []string
	var row []string
	for i := range shown {
		var cell string
		switch {
		case i < len(live) && i == m.cursor:
			cell = cursorSlotStyle.Render(strconv.Itoa(live[i]))
		case i < len(live):
			cell = liveSlotStyle.Render(strconv.Itoa(live[i]))
		case i == m.cursor:
			cell = cursorSlotStyle.Render("·")
		default:
			cell = emptySlotStyle.Render("·")
		}
		row = append(row, cell)
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if hidden := m.v.Cap() - shown; hidden > 0 {
		rows = append(rows, labelStyle.Render(fmt.Sprintf("… %d more slots", hidden)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return labelStyle.Render("growth: none")
	}
	steps := make([]string, 0, len(m.history))
	for _, g := range m.history {
		steps = append(steps, fmt.Sprintf("%d→%d (%s)", g.from, g.to, g.op))
	}
	return growthStyle.Render("growth: " + strings.Join(steps, ", "))
}
