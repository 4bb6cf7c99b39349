package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"timewell/tracker"
)

// Run launches the interactive terminal UI around the state controller.
func Run(t *tracker.Tracker) error {
	p := tea.NewProgram(NewModel(t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
