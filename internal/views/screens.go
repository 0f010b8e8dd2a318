package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type CalendarDayData struct {
	Date     string
	Day      int
	InMonth  bool
	Count    int
	Category string
	IsCursor bool
	IsToday  bool
}

type CalendarGridData struct {
	Title   string
	Weeks   [][]CalendarDayData
	Focused bool
}

type AgendaItemData struct {
	ID       string
	Title    string
	Category string
}

type AgendaPanelData struct {
	Date       string
	TableView  string
	Items      []AgendaItemData
	SelectedID string
	Focused    bool
}

type EditorRowData struct {
	Number    int
	Project   string
	Task      string
	Hours     string
	Focused   int
	InputView string
}

type EditorModalData struct {
	Heading     string
	SubmitLabel string
	Rows        []EditorRowData
	Dirty       bool
	CanRemove   bool
}

type ProjectTotalData struct {
	Project string
	Hours   string
	Tasks   int
}

type SummaryData struct {
	Date        string
	Projects    []ProjectTotalData
	TotalHours  string
	Undecodable int
	LedgerHours string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	todayStyle  = lipgloss.NewStyle().Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1)

	categoryColors = map[string]lipgloss.Color{
		"Danger":  lipgloss.Color("9"),
		"Primary": lipgloss.Color("12"),
		"Success": lipgloss.Color("10"),
		"Warning": lipgloss.Color("11"),
	}
)

// CategoryBadge renders a colored marker for an event category.
func CategoryBadge(category string) string {
	color, ok := categoryColors[category]
	if !ok {
		return "[" + category + "]"
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

func RenderCalendarGrid(data CalendarGridData) string {
	var b strings.Builder
	b.WriteString("calendar: " + data.Title + "\n")
	b.WriteString("actions: [h/l]day [j/k]week [ [ / ] ]month [t]today [enter]add log [tab]agenda\n")
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")
	for _, week := range data.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, renderDayCell(day))
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderDayCell(day CalendarDayData) string {
	num := fmt.Sprintf("%2d", day.Day)
	marker := " "
	if day.Count > 0 {
		marker = CategoryBadge(day.Category)
	}
	style := lipgloss.NewStyle()
	if !day.InMonth {
		style = dimStyle
	}
	if day.IsToday {
		style = style.Inherit(todayStyle)
	}
	if day.IsCursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(num) + marker
}

func RenderAgendaPanel(data AgendaPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("agenda: %s\n", data.Date))
	if data.Focused {
		b.WriteString("actions: [j/k]move [enter]edit [x]delete [tab]calendar\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no work logged)")
		return b.String()
	}
	b.WriteString(data.TableView + "\n")
	for _, item := range data.Items {
		cursor := " "
		if data.Focused && item.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, CategoryBadge(item.Category), item.Title))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderEditorModal(data EditorModalData) string {
	var b strings.Builder
	heading := data.Heading
	if data.Dirty {
		heading += " *"
	}
	b.WriteString(heading + "\n")
	b.WriteString("keys: [tab]next field [ctrl+n]add row [ctrl+d]remove row [ctrl+up/down]hours [ctrl+s]" + strings.ToLower(data.SubmitLabel) + " [esc]close\n")
	for _, row := range data.Rows {
		b.WriteString(fmt.Sprintf("\nTask Row %d\n", row.Number))
		b.WriteString("  project: " + editorCell(row, 0, row.Project) + "\n")
		b.WriteString("  task:    " + editorCell(row, 1, row.Task) + "\n")
		b.WriteString("  hours:   " + editorCell(row, 2, row.Hours) + "\n")
	}
	if !data.CanRemove {
		b.WriteString(dimStyle.Render("\n(at least one task row is required)"))
	}
	return modalStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func editorCell(row EditorRowData, field int, value string) string {
	if row.Focused == field {
		return row.InputView
	}
	if value == "" {
		return dimStyle.Render("-")
	}
	return value
}

// SummaryMarkdown builds the day summary as markdown for RenderMarkdown.
func SummaryMarkdown(data SummaryData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("## Hours for %s\n\n", data.Date))
	if len(data.Projects) == 0 {
		b.WriteString("_No decodable work logs._\n")
	} else {
		b.WriteString("| Project | Tasks | Hours |\n|---|---|---|\n")
		for _, p := range data.Projects {
			b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", escapeMarkdownCell(p.Project), p.Tasks, p.Hours))
		}
		b.WriteString(fmt.Sprintf("\n**Total:** %sh\n", data.TotalHours))
	}
	if data.Undecodable > 0 {
		b.WriteString(fmt.Sprintf("\n%d other event(s) on this day.\n", data.Undecodable))
	}
	if data.LedgerHours != "" {
		b.WriteString(fmt.Sprintf("\nLedger: %sh submitted.\n", data.LedgerHours))
	}
	return b.String()
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return "(none)"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
