package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklog/internal/commands"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette opened", IsError: false}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	_ = cmd
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Open: func(a commands.DateArgs) (commands.Result, error) {
			m = m.selectDate(string(a.Date), string(a.Date))
			return commands.Result{Message: fmt.Sprintf("logging work for %s", a.Date)}, nil
		},
		Edit: func(a commands.EventArgs) (commands.Result, error) {
			ev, ok := m.Controller.Event(a.EventID)
			if !ok {
				return commands.Result{}, unknownEvent(a.EventID)
			}
			m = m.clickEvent(ev)
			return commands.Result{Message: fmt.Sprintf("editing event %s", a.EventID)}, nil
		},
		Delete: func(a commands.EventArgs) (commands.Result, error) {
			if !m.Controller.DeleteEvent(a.EventID) {
				return commands.Result{}, unknownEvent(a.EventID)
			}
			follow = m.forgetEntryCmd(a.EventID)
			return commands.Result{Message: fmt.Sprintf("deleted event %s", a.EventID)}, nil
		},
		Date: func(a commands.DateArgs) (commands.Result, error) {
			if !m.Controller.SetDate(string(a.Date)) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no open work log to move"}
			}
			m.moveCursor(a.Date)
			return commands.Result{Message: fmt.Sprintf("work log moved to %s", a.Date)}, nil
		},
		Goto: func(a commands.DateArgs) (commands.Result, error) {
			m.moveCursor(a.Date)
			return commands.Result{Message: fmt.Sprintf("calendar focus: %s", a.Date)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			dir := a.Dir
			if dir == "" {
				dir = m.exportDir
			}
			follow = m.exportCmd(dir)
			return commands.Result{Message: "exporting calendar"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, follow
}

func unknownEvent(id string) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown event: %s", id)}
}

