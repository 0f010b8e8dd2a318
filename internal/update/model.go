package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/session"
	"github.com/sandeepkv93/tasklog/internal/storage"
)

type Pane string

const (
	PaneCalendar Pane = "Calendar"
	PaneAgenda   Pane = "Agenda"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Export  string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// editorFocus points at one input cell of the open session: a row index and
// a field index into editorFields.
type editorFocus struct {
	Row   int
	Field int
}

var editorFields = []model.Field{model.FieldProjectName, model.FieldTaskName, model.FieldHours}

type Model struct {
	Controller   *session.Controller
	Ledger       storage.Repository
	Cursor       model.Date
	Today        model.Date
	Pane         Pane
	AgendaCursor int
	Palette      CommandPaletteState
	HelpVisible  bool
	Status       StatusBar
	Keys         GlobalKeyMap
	Quitting     bool
	LastError    error
	LedgerTotals map[model.Date]float64
	exportDir    string
	now          func() time.Time
	focus        editorFocus
	fieldInput   textinput.Model
	commandInput textinput.Model
	agendaTable  table.Model
	helpModel    help.Model
}

// DateSelectedMsg is raised when the user picks an empty day.
type DateSelectedMsg struct {
	StartDate string
	EndDate   string
}

// EventClickedMsg is raised when the user activates an existing event.
type EventClickedMsg struct {
	Event model.CalendarEvent
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type LedgerSyncedMsg struct {
	Date       model.Date
	Entries    int
	TotalHours float64
}

type ExportedMsg struct {
	Path string
}

func NewModel() Model {
	today := model.DateOf(time.Now())
	ctrl := session.NewController(session.WithEvents(session.DefaultSeed(today, nil)))
	return newModel(ctrl, nil, DefaultRuntimeConfig(), time.Now)
}

func NewModelWithConfig(ctrl *session.Controller, ledger storage.Repository, cfg RuntimeConfig) Model {
	return newModel(ctrl, ledger, cfg, time.Now)
}

func newModel(ctrl *session.Controller, ledger storage.Repository, cfg RuntimeConfig, now func() time.Time) Model {
	if ctrl == nil {
		ctrl = session.NewController()
	}
	today := model.DateOf(now())
	cursor := today
	if d, err := model.ParseDate(cfg.FocusDate); err == nil {
		cursor = d
	}
	m := Model{
		Controller:   ctrl,
		Ledger:       ledger,
		Cursor:       cursor,
		Today:        today,
		Pane:         PaneCalendar,
		LedgerTotals: make(map[model.Date]float64),
		exportDir:    cfg.ExportDir,
		now:          now,
		Keys: GlobalKeyMap{
			Palette: "/",
			Export:  "E",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Category", Width: 9},
		{Title: "Title", Width: 36},
	}
	m.agendaTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(6))

	m.fieldInput = textinput.New()
	m.fieldInput.CharLimit = 128
	m.fieldInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}
