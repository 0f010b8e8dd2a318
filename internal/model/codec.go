package model

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrNotDecodable = errors.New("model: event title not decodable")

// "<project>: <task> (<hours>h)". The project stops at the first ": ", the task
// runs up to the trailing hours group.
var titlePattern = regexp.MustCompile(`^(.*?): (.*) \((\d+(?:\.\d+)?)h\)$`)

// Encode renders a row as an event title. Names containing ": " or " (" may
// not survive a Decode round trip.
func Encode(row TaskRow) string {
	return row.ProjectName + ": " + row.TaskName + " (" + FormatHours(row.Hours) + "h)"
}

// Decode recovers a row from an event title. The returned row has LocalID 0;
// callers assign their own.
func Decode(title string) (TaskRow, error) {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return TaskRow{}, ErrNotDecodable
	}
	hours, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return TaskRow{}, ErrNotDecodable
	}
	return TaskRow{ProjectName: m[1], TaskName: m[2], Hours: hours}, nil
}
