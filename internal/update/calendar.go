package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(m.Cursor.AddDays(-1))
	case "l", "right":
		m.moveCursor(m.Cursor.AddDays(1))
	case "k", "up":
		m.moveCursor(m.Cursor.AddDays(-7))
	case "j", "down":
		m.moveCursor(m.Cursor.AddDays(7))
	case "[":
		m.moveCursor(shiftMonth(m.Cursor, -1))
	case "]":
		m.moveCursor(shiftMonth(m.Cursor, 1))
	case "t":
		m.moveCursor(m.Today)
	case "tab":
		m.Pane = PaneAgenda
		m.AgendaCursor = 0
	case "enter":
		day := string(m.Cursor)
		return m.selectDate(day, day), nil
	}
	return m, nil
}

func (m Model) handleAgendaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.Controller.EventsOn(m.Cursor)
	switch msg.String() {
	case "tab", "esc":
		m.Pane = PaneCalendar
	case "k", "up":
		if m.AgendaCursor > 0 {
			m.AgendaCursor--
		}
	case "j", "down":
		if m.AgendaCursor < len(items)-1 {
			m.AgendaCursor++
		}
	case "enter":
		if ev, ok := m.currentAgendaEvent(); ok {
			return m.clickEvent(ev), nil
		}
		m.Status = StatusBar{Text: "no event selected", IsError: true}
	case "x":
		if ev, ok := m.currentAgendaEvent(); ok {
			return m.deleteEvent(ev.ID)
		}
		m.Status = StatusBar{Text: "no event selected", IsError: true}
	}
	return m, nil
}

func (m *Model) moveCursor(d model.Date) {
	if !d.IsValid() {
		return
	}
	m.Cursor = d
	m.AgendaCursor = 0
}

func (m Model) currentAgendaEvent() (model.CalendarEvent, bool) {
	items := m.Controller.EventsOn(m.Cursor)
	if m.AgendaCursor < 0 || m.AgendaCursor >= len(items) {
		return model.CalendarEvent{}, false
	}
	return items[m.AgendaCursor], true
}

// shiftMonth moves d by delta months, clamping the day to the target month.
func shiftMonth(d model.Date, delta int) model.Date {
	tm := d.Time()
	if tm.IsZero() {
		return d
	}
	first := time.Date(tm.Year(), tm.Month()+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := tm.Day()
	if day > last {
		day = last
	}
	return model.DateOf(first.AddDate(0, 0, day-1))
}

// monthGrid lays out the cursor's month in Monday-first weeks, padded with
// days from the neighbouring months.
func (m Model) monthGrid() views.CalendarGridData {
	tm := m.Cursor.Time()
	first := time.Date(tm.Year(), tm.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	day := first.AddDate(0, 0, -offset)
	events := m.Controller.Events()

	grid := views.CalendarGridData{
		Title:   first.Format("January 2006"),
		Focused: m.Pane == PaneCalendar,
	}
	for {
		week := make([]views.CalendarDayData, 0, 7)
		for i := 0; i < 7; i++ {
			d := model.DateOf(day)
			cell := views.CalendarDayData{
				Date:     string(d),
				Day:      day.Day(),
				InMonth:  day.Month() == first.Month(),
				IsCursor: d == m.Cursor,
				IsToday:  d == m.Today,
			}
			for _, ev := range events {
				if ev.Covers(d) {
					if cell.Count == 0 {
						cell.Category = string(ev.Category)
					}
					cell.Count++
				}
			}
			week = append(week, cell)
			day = day.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
		if day.Month() != first.Month() {
			break
		}
	}
	return grid
}

func (m Model) renderCalendarView() string {
	return views.RenderCalendarGrid(m.monthGrid())
}

func (m Model) renderAgendaView() string {
	events := m.Controller.EventsOn(m.Cursor)
	data := views.AgendaPanelData{
		Date:      string(m.Cursor),
		TableView: m.agendaTable.View(),
		Focused:   m.Pane == PaneAgenda,
	}
	for _, ev := range events {
		data.Items = append(data.Items, views.AgendaItemData{ID: ev.ID, Title: ev.Title, Category: string(ev.Category)})
	}
	if ev, ok := m.currentAgendaEvent(); ok {
		data.SelectedID = ev.ID
	}
	return views.RenderAgendaPanel(data)
}

func (m *Model) syncBubbleData() {
	events := m.Controller.EventsOn(m.Cursor)
	rows := make([]table.Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, table.Row{ev.ID, string(ev.Category), ev.Title})
	}
	m.agendaTable.SetRows(rows)
	if m.AgendaCursor >= 0 && m.AgendaCursor < len(rows) {
		m.agendaTable.SetCursor(m.AgendaCursor)
	}
	if m.Pane == PaneAgenda {
		m.agendaTable.Focus()
	} else {
		m.agendaTable.Blur()
	}
}

func (m Model) deleteEvent(id string) (tea.Model, tea.Cmd) {
	if !m.Controller.DeleteEvent(id) {
		m.Status = StatusBar{Text: fmt.Sprintf("event not found: %s", id), IsError: true}
		return m, nil
	}
	if n := len(m.Controller.EventsOn(m.Cursor)); m.AgendaCursor >= n && n > 0 {
		m.AgendaCursor = n - 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted event %s", id), IsError: false}
	return m, m.forgetEntryCmd(id)
}
