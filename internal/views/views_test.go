package views

import (
	"strings"
	"testing"
)

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(SummaryData{
		Date: "2026-01-05",
		Projects: []ProjectTotalData{
			{Project: "Acme", Hours: "5.5", Tasks: 2},
			{Project: "a|b", Hours: "1", Tasks: 1},
		},
		TotalHours:  "6.5",
		Undecodable: 1,
		LedgerHours: "4",
	})
	for _, want := range []string{"## Hours for 2026-01-05", "| Acme | 2 | 5.5 |", `| a\|b | 1 | 1 |`, "**Total:** 6.5h", "1 other event(s)", "Ledger: 4h submitted."} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown: %q", want, md)
		}
	}

	empty := SummaryMarkdown(SummaryData{Date: "2026-01-06"})
	if !strings.Contains(empty, "_No decodable work logs._") {
		t.Fatalf("expected empty summary marker: %q", empty)
	}
}

func TestRenderEditorModal(t *testing.T) {
	out := RenderEditorModal(EditorModalData{
		Heading:     "Edit Work Log for 2026-01-05",
		SubmitLabel: "Update Task",
		Dirty:       true,
		CanRemove:   false,
		Rows: []EditorRowData{
			{Number: 1, Project: "Acme", Task: "Billing", Hours: "4", Focused: 2, InputView: "hours> 4"},
		},
	})
	for _, want := range []string{"Edit Work Log for 2026-01-05 *", "[ctrl+s]update task", "Task Row 1", "project: Acme", "hours:   hours> 4", "at least one task row is required"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in modal: %q", want, out)
		}
	}
}

func TestRenderAgendaPanelEmpty(t *testing.T) {
	out := RenderAgendaPanel(AgendaPanelData{Date: "2026-01-05"})
	if !strings.Contains(out, "agenda: 2026-01-05") || !strings.Contains(out, "(no work logged)") {
		t.Fatalf("unexpected empty agenda: %q", out)
	}
}

func TestRenderCalendarGrid(t *testing.T) {
	out := RenderCalendarGrid(CalendarGridData{
		Title: "January 2026",
		Weeks: [][]CalendarDayData{{
			{Date: "2026-01-05", Day: 5, InMonth: true, Count: 1, Category: "Danger", IsCursor: true},
			{Date: "2026-01-06", Day: 6, InMonth: true},
		}},
	})
	if !strings.Contains(out, "calendar: January 2026") || !strings.Contains(out, " 5") || !strings.Contains(out, " 6") {
		t.Fatalf("unexpected grid: %q", out)
	}
}

func TestCategoryBadgeUnknown(t *testing.T) {
	if got := CategoryBadge("Purple"); got != "[Purple]" {
		t.Fatalf("unexpected badge: %q", got)
	}
}
