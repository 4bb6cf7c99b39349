package tui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timewell/activity"
	"timewell/timeutil"
	"timewell/tracker"
	"timewell/tui/components"
)

// stampLayout is how the edit modals display and accept absolute times.
const stampLayout = "2006-01-02 15:04"

var taskSuggestions = []string{
	"Eating", "Exercising", "Cooking", "Coding", "Email", "Shopping",
	"FB", "Insta", "Twitter", "Whatsapp", "TV", "Reading", "Researching",
	"Planning", "Grooming", "Cleaning", "Meeting",
}

type modalKind int

const (
	modalStart modalKind = iota
	modalStop
	modalEdit
	modalSetEnd
	modalDelete
	modalImport
	modalWindow
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEnum
)

type formField struct {
	label   string
	kind    fieldKind
	value   string
	options []string
	idx     int
	suggest bool
}

type modal struct {
	kind     modalKind
	title    string
	targetID string
	fields   []formField
	focus    int
	hint     string
}

func typeOptions() []string {
	var out []string
	for _, t := range activity.Types() {
		out = append(out, string(t))
	}
	return out
}

func areaOptions() []string {
	var out []string
	for _, a := range activity.Areas() {
		out = append(out, string(a))
	}
	return out
}

func enumIndex(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func newStartModal() *modal {
	return &modal{
		kind:  modalStart,
		title: "Start Activity",
		fields: []formField{
			{label: "Activity Type", kind: fieldEnum, options: typeOptions()},
			{label: "Well-being Area", kind: fieldEnum, options: areaOptions()},
			{label: "Task Title (optional)", kind: fieldText, suggest: true},
		},
		hint: "enter: start timer  esc: cancel",
	}
}

func newStopModal(a *activity.Activity) *modal {
	return &modal{
		kind:     modalStop,
		title:    "Stop Activity",
		targetID: a.ID,
		fields: []formField{
			{label: "Task Title (optional)", kind: fieldText, value: a.TaskTitle, suggest: true},
			{label: "Effort Rating (0-10)", kind: fieldText},
			{label: "Notes (optional)", kind: fieldText},
		},
		hint: "enter: stop timer  esc: cancel",
	}
}

func newEditModal(a *activity.Activity) *modal {
	end := ""
	if a.EndTime != nil {
		end = a.EndTime.Format(stampLayout)
	}
	return &modal{
		kind:     modalEdit,
		title:    "Edit Activity",
		targetID: a.ID,
		fields: []formField{
			{label: "Activity Type", kind: fieldEnum, options: typeOptions(), idx: enumIndex(typeOptions(), string(a.Type))},
			{label: "Well-being Area", kind: fieldEnum, options: areaOptions(), idx: enumIndex(areaOptions(), string(a.Area))},
			{label: "Task Title (optional)", kind: fieldText, value: a.TaskTitle, suggest: true},
			{label: "Start Time", kind: fieldText, value: a.StartTime.Format(stampLayout)},
			{label: "End Time (optional)", kind: fieldText, value: end},
			{label: "Notes (optional)", kind: fieldText, value: a.Notes},
		},
		hint: "enter: save  esc: cancel",
	}
}

func newSetEndModal(a *activity.Activity, now time.Time) *modal {
	def := now
	if def.Before(a.StartTime) {
		def = a.StartTime
	}
	return &modal{
		kind:     modalSetEnd,
		title:    "Set End Time",
		targetID: a.ID,
		fields: []formField{
			{label: "End Time", kind: fieldText, value: def.Format(stampLayout)},
		},
		hint: "enter: save  esc: cancel",
	}
}

func newDeleteModal(a *activity.Activity) *modal {
	title := a.TaskTitle
	if title == "" {
		title = "Untitled"
	}
	return &modal{
		kind:     modalDelete,
		title:    "Delete \"" + title + "\"?",
		targetID: a.ID,
		hint:     "enter: delete  esc: cancel",
	}
}

func newImportModal() *modal {
	return &modal{
		kind:  modalImport,
		title: "Import CSV",
		fields: []formField{
			{label: "File path", kind: fieldText},
		},
		hint: "enter: import  esc: cancel",
	}
}

func newWindowModal(start, end string) *modal {
	return &modal{
		kind:  modalWindow,
		title: "Tracking Period",
		fields: []formField{
			{label: "Start (HH:MM)", kind: fieldText, value: start},
			{label: "End (HH:MM)", kind: fieldText, value: end},
		},
		hint: "enter: save  esc: cancel  (default 09:00 to 18:00)",
	}
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	md := m.modal
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, nil
	case "enter":
		return m.submitModal()
	case "up", "shift+tab":
		if md.focus > 0 {
			md.focus--
		}
		return m, nil
	case "down", "tab":
		if md.focus < len(md.fields)-1 {
			md.focus++
		}
		return m, nil
	}

	if len(md.fields) == 0 {
		return m, nil
	}
	f := &md.fields[md.focus]
	switch f.kind {
	case fieldEnum:
		switch msg.String() {
		case "left":
			f.idx = (f.idx + len(f.options) - 1) % len(f.options)
		case "right", " ":
			f.idx = (f.idx + 1) % len(f.options)
		}
	case fieldText:
		switch msg.Type {
		case tea.KeyRunes:
			f.value += string(msg.Runes)
		case tea.KeySpace:
			f.value += " "
		case tea.KeyBackspace:
			if len(f.value) > 0 {
				f.value = f.value[:len(f.value)-1]
			}
		}
	}
	return m, nil
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	md := m.modal
	switch md.kind {
	case modalStart:
		typ := activity.Type(md.fields[0].options[md.fields[0].idx])
		area := activity.Area(md.fields[1].options[md.fields[1].idx])
		title := strings.TrimSpace(md.fields[2].value)
		a, err := m.tracker.Start(typ, area, title)
		if err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.setMessage("Started at "+timeutil.FormatClock(a.StartTime), false)

	case modalStop:
		effort, ok := parseEffort(md.fields[1].value)
		if !ok {
			m.setMessage("Effort rating must be an integer from 0 to 10.", true)
			return m, nil
		}
		a, err := m.tracker.Stop(tracker.StopInput{
			TaskTitle:    strings.TrimSpace(md.fields[0].value),
			EffortRating: effort,
			Notes:        strings.TrimSpace(md.fields[2].value),
		})
		if err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.setMessage("Stopped after "+timeutil.HumanDuration(a.Minutes()), false)

	case modalEdit:
		start, err := time.ParseInLocation(stampLayout, strings.TrimSpace(md.fields[3].value), time.Local)
		if err != nil {
			m.setMessage("Start time must look like "+stampLayout+".", true)
			return m, nil
		}
		var end *time.Time
		if v := strings.TrimSpace(md.fields[4].value); v != "" {
			e, err := time.ParseInLocation(stampLayout, v, time.Local)
			if err != nil {
				m.setMessage("End time must look like "+stampLayout+".", true)
				return m, nil
			}
			end = &e
		}
		_, err = m.tracker.Edit(md.targetID, tracker.EditInput{
			Type:      activity.Type(md.fields[0].options[md.fields[0].idx]),
			Area:      activity.Area(md.fields[1].options[md.fields[1].idx]),
			TaskTitle: strings.TrimSpace(md.fields[2].value),
			Notes:     strings.TrimSpace(md.fields[5].value),
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.setMessage("Activity updated.", false)

	case modalSetEnd:
		end, err := time.ParseInLocation(stampLayout, strings.TrimSpace(md.fields[0].value), time.Local)
		if err != nil {
			m.setMessage("End time must look like "+stampLayout+".", true)
			return m, nil
		}
		if _, err := m.tracker.SetEndTime(md.targetID, end); err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.setMessage("End time saved.", false)

	case modalDelete:
		if err := m.tracker.Delete(md.targetID); err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.selected = 0
		m.setMessage("Activity deleted.", false)

	case modalImport:
		path := strings.TrimSpace(md.fields[0].value)
		if path == "" {
			m.setMessage("Enter a file path.", true)
			return m, nil
		}
		m.modal = nil
		m.importing = true
		return m, readFileCmd(path)

	case modalWindow:
		start := strings.TrimSpace(md.fields[0].value)
		end := strings.TrimSpace(md.fields[1].value)
		if err := m.tracker.SetTrackingWindow(start, end); err != nil {
			m.setMessage(err.Error(), true)
			return m, nil
		}
		m.modal = nil
		m.setMessage("Tracking period saved.", false)
	}
	return m, nil
}

// parseEffort accepts an empty rating as absent.
func parseEffort(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 10 {
		return nil, false
	}
	return &n, true
}

func (md *modal) suggestions() []string {
	if len(md.fields) == 0 {
		return nil
	}
	f := md.fields[md.focus]
	if !f.suggest {
		return nil
	}
	return components.Suggest(f.value, taskSuggestions, 5)
}
