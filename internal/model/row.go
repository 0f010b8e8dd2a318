package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNegativeHours = errors.New("model: hours must be >= 0")

// TaskRow is one project/task/hours entry being edited in a session.
// LocalID only identifies the row inside that session and is never encoded.
type TaskRow struct {
	LocalID     int
	ProjectName string
	TaskName    string
	Hours       float64
}

type Field string

const (
	FieldProjectName Field = "projectName"
	FieldTaskName    Field = "taskName"
	FieldHours       Field = "hours"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldProjectName, FieldTaskName, FieldHours:
		return true
	default:
		return false
	}
}

func BlankRow(localID int) TaskRow {
	return TaskRow{LocalID: localID}
}

// SameContent compares the encoded fields, ignoring LocalID.
func (r TaskRow) SameContent(other TaskRow) bool {
	return r.ProjectName == other.ProjectName && r.TaskName == other.TaskName && r.Hours == other.Hours
}

func (r TaskRow) Validate() error {
	if math.IsNaN(r.Hours) || r.Hours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// CoerceHours turns free-form input into a finite, non-negative hour count.
// Anything that does not parse, including NaN and infinities, becomes 0.
func CoerceHours(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return ClampHours(v)
}

func ClampHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// FormatHours prints hours in their shortest decimal form: 3, 2.5, 0.25.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
