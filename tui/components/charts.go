package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartRow is one date's stacked values for a horizontal bar chart.
type ChartRow struct {
	Label    string
	Segments []ChartSegment
}

// ChartSegment is one category's share of a chart row.
type ChartSegment struct {
	Name  string
	Value int
	Color lipgloss.Color
}

func (r ChartRow) total() int {
	t := 0
	for _, s := range r.Segments {
		t += s.Value
	}
	return t
}

// RenderStackedChart renders one stacked horizontal bar per row, scaled to
// the largest row total. Row order is preserved. unit labels each row's
// total ("min", "pts").
func RenderStackedChart(rows []ChartRow, width int, unit string, labelStyle, valueStyle lipgloss.Style) string {
	labelWidth := 0
	maxTotal := 0
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
		if t := r.total(); t > maxTotal {
			maxTotal = t
		}
	}
	valueWidth := 8
	barWidth := width - labelWidth - valueWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for _, r := range rows {
		total := r.total()
		var bar strings.Builder
		drawn := 0
		if maxTotal > 0 {
			rowCells := int(float64(total) / float64(maxTotal) * float64(barWidth))
			for _, seg := range r.Segments {
				if seg.Value <= 0 || total == 0 {
					continue
				}
				n := seg.Value * rowCells / total
				if drawn+n > rowCells {
					n = rowCells - drawn
				}
				if n <= 0 && seg.Value > 0 && drawn < rowCells {
					n = 1
				}
				bar.WriteString(lipgloss.NewStyle().Foreground(seg.Color).Render(strings.Repeat("█", n)))
				drawn += n
			}
		}
		line := fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, r.Label)),
			bar.String()+strings.Repeat(" ", maxInt(0, barWidth-drawn)),
			valueStyle.Render(fmt.Sprintf("%4d %s", total, unit)),
		)
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderLegend renders category swatches on one line.
func RenderLegend(names []string, colors []lipgloss.Color, labelStyle lipgloss.Style) string {
	var parts []string
	for i, name := range names {
		swatch := lipgloss.NewStyle().Foreground(colors[i]).Render("■")
		parts = append(parts, swatch+" "+labelStyle.Render(name))
	}
	return strings.Join(parts, "  ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
