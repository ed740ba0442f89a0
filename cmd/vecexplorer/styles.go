package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	// Slot styles
	liveSlotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(successColor).
			Width(5).
			Align(lipgloss.Center)

	emptySlotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Foreground(mutedColor).
			Width(5).
			Align(lipgloss.Center)

	cursorSlotStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(secondaryColor).
			Bold(true).
			Width(5).
			Align(lipgloss.Center)

	// Info styles
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	growthStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)
)
