package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timewell/activity"
	"timewell/analysis"
	"timewell/coverage"
	"timewell/timeutil"
	"timewell/tui/components"
)

func (m Model) dayActivities() []activity.Activity {
	return activity.ForDate(m.tracker.Activities(), m.selectedDate)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	width := m.width
	if width < 80 {
		width = 80
	}

	header := headerStyle.Width(width).Render(
		fmt.Sprintf("Timewell - %s", m.now.Format("Jan 2, 2006 15:04:05")),
	)
	tabs := components.RenderTabs(tabLabels, int(m.tab), tabActiveStyle, tabInactiveStyle)

	var body string
	switch m.tab {
	case TabTracking:
		body = m.renderTracking(width)
	case TabAnalysis:
		body = m.renderAnalysis(width)
	case TabSettings:
		body = m.renderSettings(width)
	}

	var messageLine string
	if m.message != "" {
		style := successStyle
		if m.messageError {
			style = errorStyle
		}
		messageLine = style.Render(m.message)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		tabs,
		body,
		messageLine,
		m.renderFooter(width),
	)
	if m.modal != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			dimStyle.Render(view),
			m.renderModal(width),
		)
	}
	return view
}

func (m Model) renderTracking(width int) string {
	inner := width - 8

	dateLabel := m.selectedDate
	if m.viewingToday() {
		dateLabel = "Today"
	}
	dateLine := labelStyle.Render("Date: ") + runningStyle.Render(dateLabel) +
		dimStyle.Render("  (h/l to change day)")

	var timerLine string
	if active := m.tracker.Active(); active != nil {
		elapsed := activity.DurationMinutes(active.StartTime, m.now)
		title := active.TaskTitle
		if title == "" {
			title = "Untitled"
		}
		timerLine = runningStyle.Render("● "+title) + "  " +
			timerStyle.Render(timeutil.HumanDuration(elapsed))
	} else if m.viewingToday() {
		timerLine = dimStyle.Render("--:--  press s to start an activity")
	}

	controls := lipgloss.JoinVertical(lipgloss.Left, dateLine, timerLine)

	s := m.tracker.Settings()
	cov := coverage.Compute(s.TrackStart, s.TrackEnd, m.tracker.Activities(), m.selectedDate, m.now)
	barWidth := inner
	bar := components.RenderPartitionBar([]components.Segment{
		{Fraction: cov.Tracked, Style: barTrackedStyle},
		{Fraction: cov.Untracked, Style: barUntrackedStyle},
		{Fraction: cov.Unelapsed, Style: barUnelapsedStyle},
	}, barWidth)
	barInfo := fmt.Sprintf("%d min tracked | %d min elapsed | %d min remaining | %d min total",
		cov.TrackedMinutes, cov.ElapsedMinutes, cov.RemainingMinutes, cov.TotalMinutes)
	barBox := boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(fmt.Sprintf("Tracking period %s - %s", s.TrackStart, s.TrackEnd)),
		bar,
		dimStyle.Render(barInfo),
	))

	logBox := boxStyle.Width(width - 2).Render(m.renderDayLog(inner))

	return lipgloss.JoinVertical(lipgloss.Left, controls, barBox, logBox)
}

func (m Model) renderDayLog(width int) string {
	acts := m.dayActivities()
	if len(acts) == 0 {
		return dimStyle.Render("No activities recorded for this date.")
	}
	var lines []string
	for i, a := range acts {
		title := a.TaskTitle
		if title == "" {
			title = "Untitled"
		}
		span := timeutil.FormatClock(a.StartTime) + " - "
		if a.EndTime != nil {
			span += timeutil.FormatClock(*a.EndTime)
			span += fmt.Sprintf(" (%s)", timeutil.HumanDuration(a.Minutes()))
		} else {
			span += runningStyle.Render("In Progress")
		}
		tags := lipgloss.NewStyle().Foreground(TypeColor(a.Type)).Render(string(a.Type)) +
			" " +
			lipgloss.NewStyle().Foreground(AreaColor(a.Area)).Render(string(a.Area))
		line := fmt.Sprintf("%-24s %s  %s", title, span, tags)
		if a.EffortRating != nil {
			line += dimStyle.Render(fmt.Sprintf("  effort %d/10", *a.EffortRating))
		}
		if a.Notes != "" {
			notes := a.Notes
			if len(notes) > 40 {
				notes = notes[:37] + "..."
			}
			line += dimStyle.Render("  " + notes)
		}
		if i == m.selected {
			line = selectedStyle.Width(width).Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderAnalysis(width int) string {
	inner := width - 8
	r := m.chartRange
	buckets := analysis.Aggregate(m.tracker.Activities(), r)

	rangeLine := labelStyle.Render(fmt.Sprintf("Date range: %s to %s (%d days)", r.Start, r.End, r.Days())) +
		dimStyle.Render("  ([ ] shift, -/+ resize)")

	typeRows := make([]components.ChartRow, 0, len(buckets))
	areaRows := make([]components.ChartRow, 0, len(buckets))
	effortRows := make([]components.ChartRow, 0, len(buckets))
	for _, b := range buckets {
		label := timeutil.ChartDate(b.Date)
		var tsegs []components.ChartSegment
		for _, t := range activity.Types() {
			tsegs = append(tsegs, components.ChartSegment{Name: string(t), Value: b.ByType[t], Color: TypeColor(t)})
		}
		typeRows = append(typeRows, components.ChartRow{Label: label, Segments: tsegs})

		var asegs []components.ChartSegment
		for _, a := range activity.Areas() {
			asegs = append(asegs, components.ChartSegment{Name: string(a), Value: b.ByArea[a], Color: AreaColor(a)})
		}
		areaRows = append(areaRows, components.ChartRow{Label: label, Segments: asegs})

		effortRows = append(effortRows, components.ChartRow{Label: label, Segments: []components.ChartSegment{
			{Name: "Effort", Value: b.Effort, Color: lipgloss.Color(effortColor)},
		}})
	}

	var typeNames []string
	var typeSwatches []lipgloss.Color
	for _, t := range activity.Types() {
		typeNames = append(typeNames, string(t))
		typeSwatches = append(typeSwatches, TypeColor(t))
	}
	var areaNames []string
	var areaSwatches []lipgloss.Color
	for _, a := range activity.Areas() {
		areaNames = append(areaNames, string(a))
		areaSwatches = append(areaSwatches, AreaColor(a))
	}

	typeBox := boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Time spent by Activity type"),
		components.RenderStackedChart(typeRows, inner, "min", labelStyle, dimStyle),
		components.RenderLegend(typeNames, typeSwatches, dimStyle),
	))
	areaBox := boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Time spent by Well-being area"),
		components.RenderStackedChart(areaRows, inner, "min", labelStyle, dimStyle),
		components.RenderLegend(areaNames, areaSwatches, dimStyle),
	))
	effortBox := boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Effort rating"),
		components.RenderStackedChart(effortRows, inner, "pts", labelStyle, dimStyle),
	))

	return lipgloss.JoinVertical(lipgloss.Left, rangeLine, typeBox, areaBox, effortBox)
}

func (m Model) renderSettings(width int) string {
	s := m.tracker.Settings()
	lastExport := s.LastExport
	if lastExport == "" {
		lastExport = "Never"
	}
	importState := ""
	if m.importing {
		importState = "  (import in progress...)"
	}
	lines := []string{
		labelStyle.Render(fmt.Sprintf("Activities to export: %d", len(m.tracker.Activities()))),
		labelStyle.Render("Last export: ") + dimStyle.Render(lastExport),
		labelStyle.Render(fmt.Sprintf("Tracking period: %s to %s", s.TrackStart, s.TrackEnd)) +
			dimStyle.Render("  (default 09:00 to 18:00)"),
		"",
		dimStyle.Render("e: export CSV  i: import CSV  w: edit tracking period" + importState),
	}
	return boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderModal(width int) string {
	md := m.modal
	var lines []string
	lines = append(lines, runningStyle.Render(md.title), "")
	for i, f := range md.fields {
		label := labelStyle.Render(f.label + ":")
		var value string
		switch f.kind {
		case fieldEnum:
			value = "< " + f.options[f.idx] + " >"
		case fieldText:
			value = f.value
			if i == md.focus {
				value += "_"
			}
		}
		if i == md.focus {
			value = fieldFocusStyle.Render(value)
		}
		lines = append(lines, label+" "+value)
	}
	if sugs := md.suggestions(); len(sugs) > 0 {
		lines = append(lines, "", dimStyle.Render("Suggestions: "+strings.Join(sugs, ", ")))
	}
	lines = append(lines, "", footerStyle.Render(md.hint))

	modalWidth := 64
	if modalWidth > width-4 {
		modalWidth = width - 4
	}
	box := boxStyle.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, lipgloss.Height(box)+1, lipgloss.Center, lipgloss.Top, box)
}

func (m Model) renderFooter(width int) string {
	var help string
	switch m.tab {
	case TabTracking:
		help = "[1/2/3] tabs  [s] start  [x] stop  [e] edit  [t] set end  [d] delete  [j/k] select  [q] quit"
	case TabAnalysis:
		help = "[1/2/3] tabs  [[/]] shift range  [-/+] resize range  [q] quit"
	case TabSettings:
		help = "[1/2/3] tabs  [e] export  [i] import  [w] tracking period  [q] quit"
	}
	return footerStyle.Width(width).Render(help)
}
