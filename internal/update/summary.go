package update

import (
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/session"
	"github.com/sandeepkv93/tasklog/internal/views"
)

func (m Model) summaryData() views.SummaryData {
	sum := session.Summarize(m.Controller.Events(), m.Cursor)
	data := views.SummaryData{
		Date:        string(sum.Date),
		TotalHours:  model.FormatHours(sum.TotalHours),
		Undecodable: sum.Undecodable,
	}
	for _, p := range sum.Projects {
		data.Projects = append(data.Projects, views.ProjectTotalData{
			Project: p.Project,
			Hours:   model.FormatHours(p.Hours),
			Tasks:   p.Tasks,
		})
	}
	if total, ok := m.LedgerTotals[m.Cursor]; ok {
		data.LedgerHours = model.FormatHours(total)
	}
	return data
}

func (m Model) renderSummaryView() string {
	return views.RenderMarkdown(views.SummaryMarkdown(m.summaryData()))
}
