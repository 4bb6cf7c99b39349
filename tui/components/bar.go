package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one colored slice of a partition bar.
type Segment struct {
	Fraction float64
	Style    lipgloss.Style
}

// RenderPartitionBar renders segments as one contiguous bar of the given
// width. Fractions are expected to sum to 1; the last segment absorbs the
// rounding remainder so the bar always fills the width.
func RenderPartitionBar(segments []Segment, width int) string {
	if width <= 0 || len(segments) == 0 {
		return ""
	}
	cells := make([]int, len(segments))
	used := 0
	for i, seg := range segments {
		n := int(seg.Fraction * float64(width))
		if n < 0 {
			n = 0
		}
		if used+n > width {
			n = width - used
		}
		cells[i] = n
		used += n
	}
	cells[len(cells)-1] += width - used

	var sb strings.Builder
	for i, seg := range segments {
		if cells[i] <= 0 {
			continue
		}
		sb.WriteString(seg.Style.Render(strings.Repeat("█", cells[i])))
	}
	return sb.String()
}
