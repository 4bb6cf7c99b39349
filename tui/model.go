// Package tui is the interactive terminal surface: a Tracking tab with the
// day log and coverage bar, an Analysis tab with range charts, and a
// Settings tab for CSV export/import and the tracking window.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timewell/analysis"
	"timewell/timeutil"
	"timewell/tracker"
)

// Tab identifies the active view.
type Tab int

const (
	TabTracking Tab = iota
	TabAnalysis
	TabSettings
)

var tabLabels = []string{"Tracking", "Analysis", "Settings"}

// Model is the bubbletea application state.
type Model struct {
	tracker *tracker.Tracker

	tab          Tab
	now          time.Time
	width        int
	height       int
	selectedDate string
	selected     int
	chartRange   analysis.Range

	message      string
	messageError bool

	modal     *modal
	importing bool
}

// NewModel builds the initial model around the state controller.
func NewModel(t *tracker.Tracker) Model {
	now := time.Now()
	return Model{
		tracker:      t,
		now:          now,
		width:        100,
		height:       32,
		selectedDate: timeutil.Today(now),
		chartRange:   analysis.LastNDays(7, now),
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fileReadMsg delivers the one-shot result of an asynchronous import file
// read. The collection mutation itself happens in Update.
type fileReadMsg struct {
	text string
	err  error
}

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileReadMsg{text: string(data), err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case fileReadMsg:
		m.importing = false
		if msg.err != nil {
			m.setMessage("Import failed: "+msg.err.Error(), true)
			return m, nil
		}
		count, err := m.tracker.Import(msg.text)
		if err != nil {
			m.setMessage("Import failed: "+err.Error(), true)
			return m, nil
		}
		m.setMessage(fmt.Sprintf("%d activities imported successfully.", count), false)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.tab = TabTracking
	case "2":
		m.tab = TabAnalysis
	case "3":
		m.tab = TabSettings
	case "tab":
		m.tab = (m.tab + 1) % 3
	}

	switch m.tab {
	case TabTracking:
		return m.updateTrackingKeys(msg)
	case TabAnalysis:
		return m.updateAnalysisKeys(msg)
	case TabSettings:
		return m.updateSettingsKeys(msg)
	}
	return m, nil
}

func (m Model) updateTrackingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dayActs := m.dayActivities()
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(dayActs)-1 {
			m.selected++
		}
	case "left", "h":
		m.selectedDate = shiftDate(m.selectedDate, -1)
		m.selected = 0
	case "right", "l":
		next := shiftDate(m.selectedDate, 1)
		if next <= timeutil.Today(m.now) {
			m.selectedDate = next
			m.selected = 0
		}
	case "s":
		if !m.viewingToday() {
			m.setMessage("Activities can only be started for today.", true)
			break
		}
		if m.tracker.Active() != nil {
			m.setMessage(tracker.ErrActivityRunning.Error(), true)
			break
		}
		m.modal = newStartModal()
	case "x":
		if m.tracker.Active() == nil {
			m.setMessage(tracker.ErrNoActiveActivity.Error(), true)
			break
		}
		m.modal = newStopModal(m.tracker.Active())
	case "e":
		if m.selected < len(dayActs) {
			a := dayActs[m.selected]
			if a.Running() {
				m.modal = newSetEndModal(&a, m.now)
			} else {
				m.modal = newEditModal(&a)
			}
		}
	case "t":
		if m.selected < len(dayActs) {
			a := dayActs[m.selected]
			m.modal = newSetEndModal(&a, m.now)
		}
	case "d":
		if m.selected < len(dayActs) {
			a := dayActs[m.selected]
			m.modal = newDeleteModal(&a)
		}
	}
	return m, nil
}

func (m Model) updateAnalysisKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	today := timeutil.Today(m.now)
	switch msg.String() {
	case "[":
		m.chartRange.Start = shiftDate(m.chartRange.Start, -1)
		m.chartRange.End = shiftDate(m.chartRange.End, -1)
	case "]":
		if m.chartRange.End < today {
			m.chartRange.Start = shiftDate(m.chartRange.Start, 1)
			m.chartRange.End = shiftDate(m.chartRange.End, 1)
		}
	case "-":
		if m.chartRange.Days() > 1 {
			m.chartRange.Start = shiftDate(m.chartRange.Start, 1)
		}
	case "+", "=":
		if m.chartRange.Days() < analysis.MaxRangeDays {
			m.chartRange.Start = shiftDate(m.chartRange.Start, -1)
		}
	}
	m.chartRange = m.chartRange.Clamp()
	return m, nil
}

func (m Model) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		path, err := m.tracker.ExportFile("")
		if err != nil {
			m.setMessage("Export failed: "+err.Error(), true)
			break
		}
		m.setMessage("Exported to "+path, false)
	case "i":
		if m.importing {
			m.setMessage("An import is already in progress.", true)
			break
		}
		m.modal = newImportModal()
	case "w":
		s := m.tracker.Settings()
		m.modal = newWindowModal(s.TrackStart, s.TrackEnd)
	}
	return m, nil
}

func (m *Model) setMessage(text string, isError bool) {
	m.message = text
	m.messageError = isError
}

func (m Model) viewingToday() bool {
	return m.selectedDate == timeutil.Today(m.now)
}

func shiftDate(date string, days int) string {
	t, err := time.Parse(timeutil.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(timeutil.DateLayout)
}
