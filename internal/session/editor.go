package session

import (
	"slices"

	"github.com/sandeepkv93/tasklog/internal/model"
)

// Editor holds the ordered task rows of the open session. Rows returns a
// copy; every mutation also installs a fresh slice.
type Editor struct {
	rows    []model.TaskRow
	initial []model.TaskRow
	nextID  int
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Initialize(nil)
	return e
}

// Initialize replaces the row list wholesale. Local ids on the input are
// ignored and reassigned. An empty input starts from one blank row.
func (e *Editor) Initialize(rows []model.TaskRow) {
	if len(rows) == 0 {
		rows = []model.TaskRow{{}}
	}
	next := make([]model.TaskRow, 0, len(rows))
	for _, row := range rows {
		row.LocalID = e.allocID()
		row.Hours = model.ClampHours(row.Hours)
		next = append(next, row)
	}
	e.rows = next
	e.initial = next
}

func (e *Editor) allocID() int {
	e.nextID++
	return e.nextID
}

func (e *Editor) Rows() []model.TaskRow {
	return slices.Clone(e.rows)
}

func (e *Editor) Len() int {
	return len(e.rows)
}

func (e *Editor) Row(localID int) (model.TaskRow, bool) {
	if i := e.indexOf(localID); i >= 0 {
		return e.rows[i], true
	}
	return model.TaskRow{}, false
}

// AddRow appends a blank row and returns its local id. Ids are never reused
// within an editor, even after removal.
func (e *Editor) AddRow() int {
	row := model.BlankRow(e.allocID())
	next := make([]model.TaskRow, 0, len(e.rows)+1)
	next = append(next, e.rows...)
	e.rows = append(next, row)
	return row.LocalID
}

// RemoveRow drops the row with localID. Removing the last remaining row, or
// an unknown id, is a no-op; the return value reports whether a row went away.
func (e *Editor) RemoveRow(localID int) bool {
	if len(e.rows) <= 1 {
		return false
	}
	i := e.indexOf(localID)
	if i < 0 {
		return false
	}
	next := make([]model.TaskRow, 0, len(e.rows)-1)
	next = append(next, e.rows[:i]...)
	e.rows = append(next, e.rows[i+1:]...)
	return true
}

// UpdateField sets one field of one row from raw input. Hours are coerced to
// a finite non-negative number.
func (e *Editor) UpdateField(localID int, field model.Field, value string) bool {
	i := e.indexOf(localID)
	if i < 0 || !field.IsValid() {
		return false
	}
	row := e.rows[i]
	switch field {
	case model.FieldProjectName:
		row.ProjectName = value
	case model.FieldTaskName:
		row.TaskName = value
	case model.FieldHours:
		row.Hours = model.CoerceHours(value)
	}
	e.replace(i, row)
	return true
}

func (e *Editor) SetHours(localID int, hours float64) bool {
	i := e.indexOf(localID)
	if i < 0 {
		return false
	}
	row := e.rows[i]
	row.Hours = model.ClampHours(hours)
	e.replace(i, row)
	return true
}

// Dirty reports whether the rows differ from the snapshot taken by the last
// Initialize.
func (e *Editor) Dirty() bool {
	if len(e.rows) != len(e.initial) {
		return true
	}
	for i := range e.rows {
		if e.rows[i].LocalID != e.initial[i].LocalID || !e.rows[i].SameContent(e.initial[i]) {
			return true
		}
	}
	return false
}

func (e *Editor) replace(i int, row model.TaskRow) {
	next := make([]model.TaskRow, len(e.rows))
	copy(next, e.rows)
	next[i] = row
	e.rows = next
}

func (e *Editor) indexOf(localID int) int {
	for i, row := range e.rows {
		if row.LocalID == localID {
			return i
		}
	}
	return -1
}
