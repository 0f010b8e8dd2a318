package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/model"
)

const productID = "-//tasklog//work log//EN"

// BuildCalendar converts an event snapshot into an iCalendar document. Every
// event becomes an all-day VEVENT whose DTEND is the day after its last day.
// Events with unusable dates are skipped and logged.
func BuildCalendar(events []model.CalendarEvent, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		if !ev.StartDate.IsValid() {
			log.Warn("ics export skipped event", "event_id", ev.ID, "start", ev.StartDate)
			continue
		}
		end := ev.EndDate
		if !end.IsValid() || end < ev.StartDate {
			end = ev.StartDate
		}
		vevent := cal.AddEvent(ev.ID)
		vevent.SetDtStampTime(now.UTC())
		vevent.SetSummary(ev.Title)
		vevent.SetAllDayStartAt(ev.StartDate.Time())
		vevent.SetAllDayEndAt(end.AddDays(1).Time())
		if ev.Category != "" {
			vevent.AddProperty(ical.ComponentPropertyCategories, string(ev.Category))
		}
		if row, err := model.Decode(ev.Title); err == nil {
			vevent.SetDescription(fmt.Sprintf("project=%s task=%s hours=%s", row.ProjectName, row.TaskName, model.FormatHours(row.Hours)))
		}
	}
	return cal
}

func WriteICS(w io.Writer, events []model.CalendarEvent, now time.Time) error {
	if w == nil {
		return errors.New("export: nil writer")
	}
	_, err := io.WriteString(w, BuildCalendar(events, now).Serialize())
	return err
}

// ExportFile writes tasklog-<date>.ics into dir and returns the file path.
func ExportFile(dir string, events []model.CalendarEvent, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, "tasklog-"+model.DateOf(now).String()+".ics")
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}
	if err := WriteICS(f, events, now); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("export: write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("export: close: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("export: rename: %w", err)
	}
	log.Info("ics export written", "path", path, "event_count", len(events))
	return path, nil
}
