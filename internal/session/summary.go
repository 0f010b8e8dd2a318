package session

import (
	"sort"

	"github.com/sandeepkv93/tasklog/internal/model"
)

type ProjectTotal struct {
	Project string
	Hours   float64
	Tasks   int
}

// DaySummary totals the decodable events of one day by project.
type DaySummary struct {
	Date        model.Date
	Projects    []ProjectTotal
	TotalHours  float64
	Undecodable int
}

func Summarize(events []model.CalendarEvent, date model.Date) DaySummary {
	out := DaySummary{Date: date}
	byProject := make(map[string]*ProjectTotal)
	for _, ev := range events {
		if !ev.Covers(date) {
			continue
		}
		row, err := model.Decode(ev.Title)
		if err != nil {
			out.Undecodable++
			continue
		}
		total, ok := byProject[row.ProjectName]
		if !ok {
			total = &ProjectTotal{Project: row.ProjectName}
			byProject[row.ProjectName] = total
		}
		total.Hours += row.Hours
		total.Tasks++
		out.TotalHours += row.Hours
	}
	out.Projects = make([]ProjectTotal, 0, len(byProject))
	for _, total := range byProject {
		out.Projects = append(out.Projects, *total)
	}
	sort.Slice(out.Projects, func(i, j int) bool {
		return out.Projects[i].Project < out.Projects[j].Project
	})
	return out
}
