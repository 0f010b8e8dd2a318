package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if keyStr == "ctrl+p" {
			return m.openPalette(), nil
		}
		if m.Controller.IsOpen() {
			return m.handleEditorKey(typed)
		}

		switch keyStr {
		case m.Keys.Palette:
			return m.openPalette(), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case m.Keys.Export:
			return m, m.exportCmd(m.exportDir)
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Pane == PaneAgenda {
			return m.handleAgendaKey(typed)
		}
		return m.handleCalendarKey(typed)
	case DateSelectedMsg:
		return m.selectDate(typed.StartDate, typed.EndDate), nil
	case EventClickedMsg:
		return m.clickEvent(typed.Event), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case LedgerSyncedMsg:
		m.LedgerTotals[typed.Date] = typed.TotalHours
		log.Debug("ledger synced", "date", typed.Date, "entries", typed.Entries, "total_hours", typed.TotalHours)
		return m, nil
	case ExportedMsg:
		m.Status = StatusBar{Text: fmt.Sprintf("exported calendar to %s", typed.Path), IsError: false}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := strings.TrimSpace(strings.Join([]string{
		m.renderAgendaView(),
		m.renderSummaryView(),
		m.renderHelpIfVisible(),
	}, "\n\n"))

	overlay := m.renderEditorIfOpen()
	if overlay == "" {
		overlay = views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tasklog | day: %s | pane: %s | events: %d", m.Cursor, m.Pane, len(m.Controller.Events())),
		LeftPane:   m.renderCalendarView(),
		RightPane:  rightPane,
		StatusLine: status,
		Overlay:    overlay,
		Footer:     fmt.Sprintf("keys: enter add/edit | tab pane | %s cmd | %s export | %s help | %s quit", m.Keys.Palette, m.Keys.Export, m.Keys.Help, m.Keys.Quit),
	})
}
