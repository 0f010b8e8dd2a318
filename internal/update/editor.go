package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/session"
	"github.com/sandeepkv93/tasklog/internal/views"
)

const hoursStep = 0.5

func (m Model) selectDate(start, end string) Model {
	if !m.Controller.SelectDate(session.DateSelection{StartDate: start, EndDate: end}) {
		m.Status = StatusBar{Text: fmt.Sprintf("invalid date: %q", start), IsError: true}
		return m
	}
	return m.openEditor()
}

func (m Model) clickEvent(ev model.CalendarEvent) Model {
	if !m.Controller.ClickEvent(ev) {
		m.Status = StatusBar{Text: "event has no id", IsError: true}
		return m
	}
	return m.openEditor()
}

func (m Model) openEditor() Model {
	s, ok := m.Controller.Session()
	if !ok {
		return m
	}
	m.moveCursor(s.Date)
	m.focus = editorFocus{}
	m.seedFieldInput()
	if s.Mode == session.ModeEdit {
		m.Status = StatusBar{Text: fmt.Sprintf("editing event %s", s.EventID), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("logging work for %s", s.Date), IsError: false}
	}
	return m
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s, ok := m.Controller.Session()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.Controller.Cancel()
		m.fieldInput.Blur()
		m.Status = StatusBar{Text: "editor closed", IsError: false}
		return m, nil
	case "ctrl+s":
		return m.submit(s)
	case "tab", "down":
		m.stepFocus(len(s.Rows), 1)
		return m, nil
	case "shift+tab", "up":
		m.stepFocus(len(s.Rows), -1)
		return m, nil
	case "ctrl+n":
		if _, added := m.Controller.AddRow(); added {
			next, _ := m.Controller.Session()
			m.focus = editorFocus{Row: len(next.Rows) - 1}
			m.seedFieldInput()
		}
		return m, nil
	case "ctrl+up":
		return m.stepHours(s, hoursStep), nil
	case "ctrl+down":
		return m.stepHours(s, -hoursStep), nil
	case "ctrl+d":
		row := s.Rows[m.focus.Row]
		if !m.Controller.RemoveRow(row.LocalID) {
			m.Status = StatusBar{Text: "at least one task row is required", IsError: true}
			return m, nil
		}
		if m.focus.Row >= len(s.Rows)-1 {
			m.focus.Row = len(s.Rows) - 2
		}
		m.seedFieldInput()
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.fieldInput.SetValue(m.fieldInput.Value() + string(msg.Runes))
	case msg.Type == tea.KeyBackspace:
		value := []rune(m.fieldInput.Value())
		if len(value) > 0 {
			m.fieldInput.SetValue(string(value[:len(value)-1]))
		}
	default:
		var cmd tea.Cmd
		m.fieldInput, cmd = m.fieldInput.Update(msg)
		_ = cmd
	}
	row := s.Rows[m.focus.Row]
	m.Controller.UpdateField(row.LocalID, editorFields[m.focus.Field], m.fieldInput.Value())
	return m, nil
}

// stepHours nudges the focused row's hours like a number input's arrows.
// SetHours clamps the result at zero.
func (m Model) stepHours(s session.Session, delta float64) Model {
	id := s.Rows[m.focus.Row].LocalID
	row, ok := m.Controller.Row(id)
	if !ok {
		return m
	}
	m.Controller.SetHours(id, row.Hours+delta)
	if editorFields[m.focus.Field] == model.FieldHours {
		m.seedFieldInput()
	}
	return m
}

// stepFocus walks the input cells row by row, wrapping at either end.
func (m *Model) stepFocus(rows, delta int) {
	cells := rows * len(editorFields)
	if cells == 0 {
		return
	}
	pos := m.focus.Row*len(editorFields) + m.focus.Field
	pos = ((pos+delta)%cells + cells) % cells
	m.focus = editorFocus{Row: pos / len(editorFields), Field: pos % len(editorFields)}
	m.seedFieldInput()
}

func (m *Model) seedFieldInput() {
	s, ok := m.Controller.Session()
	if !ok || len(s.Rows) == 0 {
		return
	}
	if m.focus.Row < 0 || m.focus.Row >= len(s.Rows) {
		m.focus.Row = 0
	}
	row := s.Rows[m.focus.Row]
	field := editorFields[m.focus.Field]
	m.fieldInput.Prompt = fieldPrompt(field)
	m.fieldInput.SetValue(fieldValue(row, field))
	m.fieldInput.CursorEnd()
	m.fieldInput.Focus()
}

func (m Model) submit(s session.Session) (tea.Model, tea.Cmd) {
	out := m.Controller.Submit()
	m.fieldInput.Blur()
	m.moveCursor(s.Date)

	switch {
	case out.MissingTarget:
		m.Status = StatusBar{Text: fmt.Sprintf("event %s no longer exists; logged %d new task(s)", s.EventID, len(out.Created)), IsError: true}
	case out.Mode == session.ModeEdit:
		m.Status = StatusBar{Text: fmt.Sprintf("updated event %s; logged %d new task(s)", s.EventID, len(out.Created)), IsError: false}
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("logged %d task(s) for %s", len(out.Created), s.Date), IsError: false}
	}
	return m, m.recordOutcomeCmd(out, s.Date)
}

func (m Model) renderEditorIfOpen() string {
	s, ok := m.Controller.Session()
	if !ok {
		return ""
	}
	data := views.EditorModalData{
		Heading:     fmt.Sprintf("Add Work Log for %s", s.Date),
		SubmitLabel: "Submit Tasks",
		Dirty:       m.Controller.Dirty(),
		CanRemove:   len(s.Rows) > 1,
	}
	if s.Mode == session.ModeEdit {
		data.Heading = fmt.Sprintf("Edit Work Log for %s", s.Date)
		data.SubmitLabel = "Update Task"
	}
	for i, row := range s.Rows {
		r := views.EditorRowData{
			Number:  i + 1,
			Project: row.ProjectName,
			Task:    row.TaskName,
			Hours:   model.FormatHours(row.Hours),
			Focused: -1,
		}
		if i == m.focus.Row {
			r.Focused = m.focus.Field
			r.InputView = m.fieldInput.View()
		}
		data.Rows = append(data.Rows, r)
	}
	return views.RenderEditorModal(data)
}

func fieldPrompt(f model.Field) string {
	switch f {
	case model.FieldProjectName:
		return "project> "
	case model.FieldTaskName:
		return "task> "
	default:
		return "hours> "
	}
}

func fieldValue(row model.TaskRow, f model.Field) string {
	switch f {
	case model.FieldProjectName:
		return row.ProjectName
	case model.FieldTaskName:
		return row.TaskName
	default:
		if row.Hours == 0 {
			return ""
		}
		return strings.TrimSpace(model.FormatHours(row.Hours))
	}
}
