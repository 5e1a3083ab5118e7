// Package plandetail shows a single study plan's activities and their
// recorded attempts.
package plandetail

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learntrace/internal/generate"
	"github.com/abhisek/learntrace/internal/plan"
	"github.com/abhisek/learntrace/internal/progress"
	"github.com/abhisek/learntrace/internal/router"
	"github.com/abhisek/learntrace/internal/screen"
	"github.com/abhisek/learntrace/internal/ui/layout"
	"github.com/abhisek/learntrace/internal/ui/theme"
)

// activityRow is one activity plus its attempt history.
type activityRow struct {
	activity plan.Activity
	attempts []progress.Record
}

func (r activityRow) status() progress.Status {
	if len(r.attempts) == 0 {
		return progress.StatusNotStarted
	}
	best := progress.StatusNotStarted
	for _, rec := range r.attempts {
		switch rec.Status {
		case progress.StatusCompleted:
			return progress.StatusCompleted
		case progress.StatusInProgress:
			best = progress.StatusInProgress
		}
	}
	return best
}

func (r activityRow) bestScore() float64 {
	best := 0.0
	for _, rec := range r.attempts {
		if rec.Score > best {
			best = rec.Score
		}
	}
	return best
}

// DetailScreen displays one plan's activities with attempt outcomes.
type DetailScreen struct {
	plan     plan.StudyPlan
	rows     []activityRow
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for one plan in a bundle.
func New(bundle *generate.Bundle, p plan.StudyPlan) *DetailScreen {
	recordsByActivity := make(map[string][]progress.Record)
	for _, rec := range bundle.Records {
		recordsByActivity[rec.ActivityID] = append(recordsByActivity[rec.ActivityID], rec)
	}

	var rows []activityRow
	for _, a := range bundle.Activities {
		if a.PlanID != p.ID {
			continue
		}
		attempts := recordsByActivity[a.ID]
		sort.Slice(attempts, func(i, j int) bool { return attempts[i].Attempt < attempts[j].Attempt })
		rows = append(rows, activityRow{activity: a, attempts: attempts})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].activity.Ordinal < rows[j].activity.Ordinal })

	return &DetailScreen{
		plan:     p,
		rows:     rows,
		expanded: make(map[int]bool),
	}
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Title() string {
	return s.plan.Title
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Attempts"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
		return s, nil
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	meta := fmt.Sprintf("  %s  %s  ~%dh  created %s",
		s.plan.SubjectID, s.plan.Difficulty, s.plan.EstimatedHours,
		s.plan.CreatedAt.Format("Jan 02, 2006"))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
	b.WriteString("\n\n")

	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No activities in this plan."))
		return b.String()
	}

	for i, row := range s.rows {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%2d. %-10s %-32s %s",
			prefix, row.activity.Ordinal+1, row.activity.Kind,
			truncate(row.activity.Title, 32), statusGlyph(row.status()))
		if n := len(row.attempts); n > 0 {
			line += fmt.Sprintf("  %.0f%%  (%d attempt", row.bestScore(), n)
			if n > 1 {
				line += "s"
			}
			line += ")"
		}

		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, rec := range row.attempts {
				detail := fmt.Sprintf("      attempt %d  %s  %.0f%%  %dmin  %s",
					rec.Attempt, rec.Status, rec.Score, rec.TimeSpent,
					rec.StartedAt.Format("Jan 02 15:04"))
				b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
				b.WriteString("\n")
			}
			if len(row.attempts) == 0 {
				b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("      never attempted"))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func statusGlyph(st progress.Status) string {
	switch st {
	case progress.StatusCompleted:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case progress.StatusInProgress:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("…")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	}
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
