package tui

import (
	"github.com/charmbracelet/lipgloss"

	"timewell/activity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#444444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	fieldFocusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4"))
)

// Coverage bar segments: tracked / untracked / not yet elapsed.
var (
	barTrackedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#43A047"))
	barUntrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	barUnelapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var typeColors = map[activity.Type]string{
	activity.TypeValue:      "#43A047",
	activity.TypeIncidental: "#FFA726",
	activity.TypeWaste:      "#E53935",
}

var areaColors = map[activity.Area]string{
	activity.AreaPhysical:     "#E53935",
	activity.AreaMental:       "#8E24AA",
	activity.AreaFinancial:    "#43A047",
	activity.AreaFamily:       "#039BE5",
	activity.AreaProfessional: "#1976D2",
	activity.AreaSocial:       "#F06292",
}

const effortColor = "#FBC02D"

// TypeColor returns the chart color for an activity type.
func TypeColor(t activity.Type) lipgloss.Color {
	if c, ok := typeColors[t]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color("#888888")
}

// AreaColor returns the chart color for a well-being area.
func AreaColor(a activity.Area) lipgloss.Color {
	if c, ok := areaColors[a]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color("#888888")
}
