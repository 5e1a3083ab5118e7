// Package overview lists a generated bundle's study plans with their
// completion state.
package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learntrace/internal/generate"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/progress"
	"github.com/abhisek/learntrace/internal/router"
	"github.com/abhisek/learntrace/internal/screen"
	"github.com/abhisek/learntrace/internal/screens/plandetail"
	"github.com/abhisek/learntrace/internal/ui/components"
	"github.com/abhisek/learntrace/internal/ui/layout"
	"github.com/abhisek/learntrace/internal/ui/theme"
)

// planRow is one plan plus its derived completion numbers.
type planRow struct {
	plan       plan.StudyPlan
	activities int
	completed  int
}

func (r planRow) fraction() float64 {
	if r.activities == 0 {
		return 0
	}
	return float64(r.completed) / float64(r.activities)
}

// OverviewScreen displays all plans in a bundle, filterable by subject.
type OverviewScreen struct {
	bundle    *generate.Bundle
	rows      []planRow
	selected  int
	filter    components.TextInput
	filtering bool
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates an OverviewScreen over a generated bundle.
func New(bundle *generate.Bundle) *OverviewScreen {
	return &OverviewScreen{
		bundle: bundle,
		rows:   buildRows(bundle),
		filter: components.NewTextInput("subject...", false, 32),
	}
}

func buildRows(bundle *generate.Bundle) []planRow {
	activitiesByPlan := make(map[string][]plan.Activity)
	for _, a := range bundle.Activities {
		activitiesByPlan[a.PlanID] = append(activitiesByPlan[a.PlanID], a)
	}

	completedActivities := make(map[string]bool)
	for _, rec := range bundle.Records {
		if rec.Status == progress.StatusCompleted {
			completedActivities[rec.ActivityID] = true
		}
	}

	rows := make([]planRow, 0, len(bundle.Plans))
	for _, p := range bundle.Plans {
		row := planRow{plan: p}
		for _, a := range activitiesByPlan[p.ID] {
			row.activities++
			if completedActivities[a.ID] {
				row.completed++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// visible returns rows matching the current filter text.
func (s *OverviewScreen) visible() []planRow {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		return s.rows
	}
	var out []planRow
	for _, r := range s.rows {
		if strings.Contains(strings.ToLower(r.plan.SubjectID), query) ||
			strings.Contains(strings.ToLower(r.plan.Title), query) {
			out = append(out, r)
		}
	}
	return out
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Title() string {
	return "Study Plans"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	if s.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "/", Description: "Filter"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filtering {
		switch kmsg.String() {
		case "enter":
			s.filtering = false
			s.clampSelection()
			return s, nil
		case "esc":
			s.filtering = false
			s.filter.Model.SetValue("")
			s.clampSelection()
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.clampSelection()
		return s, cmd
	}

	switch kmsg.String() {
	case "/":
		s.filtering = true
		return s, s.filter.Init()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.visible())-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		rows := s.visible()
		if s.selected >= 0 && s.selected < len(rows) {
			detail := plandetail.New(s.bundle, rows[s.selected].plan)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
		}
		return s, nil
	}
	return s, nil
}

func (s *OverviewScreen) clampSelection() {
	n := len(s.visible())
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *OverviewScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.filtering || s.filter.Value() != "" {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Filter: ")
		b.WriteString(label + s.filter.View())
		b.WriteString("\n\n")
	}

	rows := s.visible()
	if len(rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No plans match."))
		return b.String()
	}

	barWidth := width / 3
	if barWidth > 40 {
		barWidth = 40
	}

	for i, row := range rows {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected && !s.filtering {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		status := string(row.plan.Status)
		if row.plan.Active {
			status += " (active)"
		}

		line := fmt.Sprintf("%s%-36s %-22s %d/%d",
			prefix, truncate(row.plan.Title, 36), status, row.completed, row.activities)
		bar := components.NewProgressBar("", row.fraction(), true, barWidth)

		b.WriteString("  " + style.Render(line) + "  " + bar.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	counts := s.bundle.Counts()
	summary := fmt.Sprintf("  %d plans  %d activities  %d records  %d achievements",
		counts.Plans, counts.Activities, counts.Records, counts.Achievements)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary))
	b.WriteString("\n")

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
