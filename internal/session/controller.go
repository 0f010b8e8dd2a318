package session

import (
	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/model"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// DateSelection is the host surface's date-selected signal.
type DateSelection struct {
	StartDate string
	EndDate   string
}

// Session is a read-only view of the open editing session.
type Session struct {
	Mode    Mode
	EventID string
	Date    model.Date
	Rows    []model.TaskRow
}

// Outcome describes what a submit did to the store.
type Outcome struct {
	Mode          Mode
	Updated       *model.CalendarEvent
	Created       []model.CalendarEvent
	MissingTarget bool
	Snapshot      []model.CalendarEvent
}

type openSession struct {
	mode    Mode
	eventID string
	date    model.Date
	editor  *Editor
}

// Controller owns the event store and at most one open session. None of its
// operations fail: bad input is ignored or coerced and logged.
type Controller struct {
	store  *Store
	ids    IDGenerator
	active *openSession
}

type Option func(*Controller)

func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) {
		if g != nil {
			c.ids = g
		}
	}
}

// WithEvents installs the initial store content. Events that fail
// validation are logged and left out.
func WithEvents(events []model.CalendarEvent) Option {
	return func(c *Controller) {
		valid := make([]model.CalendarEvent, 0, len(events))
		for _, ev := range events {
			if err := ev.Validate(); err != nil {
				log.Warn("initial event skipped", "event_id", ev.ID, "err", err)
				continue
			}
			valid = append(valid, ev)
		}
		c.store.Replace(valid)
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		store: NewStore(nil),
		ids:   UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultSeed is the single sample event the calendar starts with. Its id
// comes from ids so that seeds of separate runs never share a ledger row.
func DefaultSeed(today model.Date, ids IDGenerator) []model.CalendarEvent {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return []model.CalendarEvent{{
		ID:        ids.NewID(),
		Title:     "Event Conf.",
		StartDate: today,
		EndDate:   today,
		Category:  model.CategoryDanger,
	}}
}

func (c *Controller) Events() []model.CalendarEvent {
	return c.store.Events()
}

func (c *Controller) EventsOn(d model.Date) []model.CalendarEvent {
	return c.store.OnDate(d)
}

func (c *Controller) Event(id string) (model.CalendarEvent, bool) {
	return c.store.Get(id)
}

// DeleteEvent removes an event outside of any session. An open edit session
// targeting it stays open; its submit then only appends.
func (c *Controller) DeleteEvent(id string) bool {
	ok := c.store.Delete(id)
	if ok {
		log.Info("event deleted", "event_id", id)
	}
	return ok
}

func (c *Controller) IsOpen() bool {
	return c.active != nil
}

func (c *Controller) Session() (Session, bool) {
	if c.active == nil {
		return Session{}, false
	}
	return Session{
		Mode:    c.active.mode,
		EventID: c.active.eventID,
		Date:    c.active.date,
		Rows:    c.active.editor.Rows(),
	}, true
}

// SelectDate opens a create session on the selection's start date. Any open
// session is discarded first.
func (c *Controller) SelectDate(sel DateSelection) bool {
	date, err := model.ParseDate(sel.StartDate)
	if err != nil {
		log.Warn("date selection ignored", "start", sel.StartDate, "err", err)
		return false
	}
	c.discardOpen("date selected")
	editor := NewEditor()
	c.active = &openSession{mode: ModeCreate, date: date, editor: editor}
	log.Debug("session opened", "mode", ModeCreate, "date", date)
	return true
}

// ClickEvent opens an edit session for ev on ev's own start date. A start
// date that does not parse leaves the controller unchanged. A title that does
// not decode opens with one blank row.
func (c *Controller) ClickEvent(ev model.CalendarEvent) bool {
	if ev.ID == "" {
		log.Warn("event click ignored: empty id")
		return false
	}
	date, err := model.ParseDate(string(ev.StartDate))
	if err != nil {
		log.Warn("event click ignored", "event_id", ev.ID, "start", ev.StartDate, "err", err)
		return false
	}
	c.discardOpen("event clicked")
	editor := NewEditor()
	if row, err := model.Decode(ev.Title); err == nil {
		editor.Initialize([]model.TaskRow{row})
	} else {
		log.Debug("event title not decodable, starting blank", "event_id", ev.ID, "title", ev.Title)
	}
	c.active = &openSession{mode: ModeEdit, eventID: ev.ID, date: date, editor: editor}
	log.Debug("session opened", "mode", ModeEdit, "event_id", ev.ID, "date", date)
	return true
}

// OpenEdit looks the event up by id and behaves like ClickEvent.
func (c *Controller) OpenEdit(id string) bool {
	ev, ok := c.store.Get(id)
	if !ok {
		log.Warn("edit ignored: unknown event", "event_id", id)
		return false
	}
	return c.ClickEvent(ev)
}

func (c *Controller) discardOpen(reason string) {
	if c.active == nil {
		return
	}
	log.Debug("discarding open session", "reason", reason, "mode", c.active.mode, "dirty", c.active.editor.Dirty())
	c.active = nil
}

func (c *Controller) AddRow() (int, bool) {
	if c.active == nil {
		return 0, false
	}
	return c.active.editor.AddRow(), true
}

func (c *Controller) RemoveRow(localID int) bool {
	if c.active == nil {
		return false
	}
	return c.active.editor.RemoveRow(localID)
}

func (c *Controller) UpdateField(localID int, field model.Field, value string) bool {
	if c.active == nil {
		return false
	}
	return c.active.editor.UpdateField(localID, field, value)
}

func (c *Controller) Row(localID int) (model.TaskRow, bool) {
	if c.active == nil {
		return model.TaskRow{}, false
	}
	return c.active.editor.Row(localID)
}

func (c *Controller) SetHours(localID int, hours float64) bool {
	if c.active == nil {
		return false
	}
	return c.active.editor.SetHours(localID, hours)
}

// SetDate moves the open session to another day.
func (c *Controller) SetDate(raw string) bool {
	if c.active == nil {
		return false
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		log.Warn("session date ignored", "date", raw, "err", err)
		return false
	}
	c.active.date = date
	return true
}

func (c *Controller) Dirty() bool {
	return c.active != nil && c.active.editor.Dirty()
}

// Cancel closes the session without touching the store.
func (c *Controller) Cancel() bool {
	if c.active == nil {
		return false
	}
	c.active = nil
	return true
}

// Submit reconciles the session rows into the store and closes the session.
// With no open session it returns the current snapshot unchanged.
func (c *Controller) Submit() Outcome {
	if c.active == nil {
		return Outcome{Snapshot: c.store.Events()}
	}
	s := c.active
	c.active = nil

	rows := s.editor.Rows()
	out := Outcome{Mode: s.mode}
	current := c.store.Events()
	next := make([]model.CalendarEvent, 0, len(current)+len(rows))

	extra := rows
	if s.mode == ModeEdit {
		extra = rows[1:]
		found := false
		for _, ev := range current {
			if ev.ID == s.eventID {
				ev = rewrite(ev, rows[0], s.date)
				updated := ev
				out.Updated = &updated
				found = true
			}
			next = append(next, ev)
		}
		if !found {
			out.MissingTarget = true
			log.Warn("edit target missing at submit", "event_id", s.eventID)
		}
	} else {
		next = append(next, current...)
	}

	issued := make(map[string]bool, len(extra))
	for _, row := range extra {
		ev := model.CalendarEvent{
			ID:        c.freshID(issued),
			Title:     model.Encode(row),
			StartDate: s.date,
			EndDate:   s.date,
			Category:  model.CategoryPrimary,
		}
		next = append(next, ev)
		out.Created = append(out.Created, ev)
	}

	c.store.Replace(next)
	out.Snapshot = c.store.Events()
	log.Info("session submitted", "mode", s.mode, "date", s.date, "updated", out.Updated != nil, "created", len(out.Created))
	return out
}

// rewrite applies the first row to an existing event, keeping its id,
// category and day span.
func rewrite(ev model.CalendarEvent, row model.TaskRow, date model.Date) model.CalendarEvent {
	span := 0
	if ev.EndDate != "" && ev.StartDate.IsValid() && ev.EndDate.IsValid() {
		span = int(ev.EndDate.Time().Sub(ev.StartDate.Time()).Hours() / 24)
	}
	if span < 0 {
		span = 0
	}
	ev.Title = model.Encode(row)
	ev.StartDate = date
	ev.EndDate = date.AddDays(span)
	return ev
}

func (c *Controller) freshID(issued map[string]bool) string {
	for {
		id := c.ids.NewID()
		if !c.store.Has(id) && !issued[id] {
			issued[id] = true
			return id
		}
		log.Warn("generated event id already in use, retrying", "event_id", id)
	}
}
