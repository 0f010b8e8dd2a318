package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklog/internal/export"
	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/session"
	"github.com/sandeepkv93/tasklog/internal/storage"
)

const ledgerTimeout = 5 * time.Second

// recordOutcomeCmd writes every decodable event touched by a submit to the
// ledger and reports the new total for date.
func (m Model) recordOutcomeCmd(out session.Outcome, date model.Date) tea.Cmd {
	if m.Ledger == nil {
		return nil
	}
	touched := make([]model.CalendarEvent, 0, len(out.Created)+1)
	if out.Updated != nil {
		touched = append(touched, *out.Updated)
	}
	touched = append(touched, out.Created...)
	if len(touched) == 0 {
		return nil
	}
	repo := m.Ledger
	now := m.now()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()

		written := 0
		for _, ev := range touched {
			entry, ok := entryFromEvent(ev, now)
			if !ok {
				continue
			}
			if err := repo.UpsertEntry(ctx, entry); err != nil {
				log.Error("ledger upsert failed", err, "event_id", ev.ID)
				return AppErrorMsg{Err: fmt.Errorf("ledger: %w", err)}
			}
			written++
		}
		total, err := repo.TotalHours(ctx, string(date))
		if err != nil {
			log.Error("ledger total failed", err, "date", date)
			return AppErrorMsg{Err: fmt.Errorf("ledger: %w", err)}
		}
		return LedgerSyncedMsg{Date: date, Entries: written, TotalHours: total}
	}
}

// entryFromEvent turns a submitted event into a ledger line. Events whose
// title does not decode to a valid row are not timesheet work.
func entryFromEvent(ev model.CalendarEvent, now time.Time) (storage.Entry, bool) {
	row, err := model.Decode(ev.Title)
	if err != nil {
		log.Debug("ledger skipped undecodable event", "event_id", ev.ID)
		return storage.Entry{}, false
	}
	if err := row.Validate(); err != nil {
		log.Warn("ledger skipped invalid row", "event_id", ev.ID, "err", err)
		return storage.Entry{}, false
	}
	return storage.Entry{
		EventID:   ev.ID,
		Project:   row.ProjectName,
		TaskName:  row.TaskName,
		Hours:     row.Hours,
		Date:      string(ev.StartDate),
		CreatedAt: now,
		UpdatedAt: now,
	}, true
}

// forgetEntryCmd drops the ledger line for a deleted event. Events that never
// reached the ledger are not an error.
func (m Model) forgetEntryCmd(eventID string) tea.Cmd {
	if m.Ledger == nil {
		return nil
	}
	repo := m.Ledger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()
		err := repo.DeleteEntryByEvent(ctx, eventID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Error("ledger delete failed", err, "event_id", eventID)
			return AppErrorMsg{Err: fmt.Errorf("ledger: %w", err)}
		}
		return SetStatusMsg{Text: fmt.Sprintf("deleted event %s", eventID)}
	}
}

func (m Model) exportCmd(dir string) tea.Cmd {
	events := m.Controller.Events()
	now := m.now()
	return func() tea.Msg {
		path, err := export.ExportFile(dir, events, now)
		if err != nil {
			log.Error("calendar export failed", err, "dir", dir)
			return AppErrorMsg{Err: err}
		}
		log.Info("calendar exported", "path", path, "events", len(events))
		return ExportedMsg{Path: path}
	}
}
