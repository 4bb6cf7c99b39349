package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders the tab navigation bar.
func RenderTabs(labels []string, active int, tabActive, tabInactive lipgloss.Style) string {
	var rendered []string
	for i, label := range labels {
		if i == active {
			rendered = append(rendered, tabActive.Render(label))
		} else {
			rendered = append(rendered, tabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, rendered...)
}
