package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/tracker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(20)

	goalMetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

type Model struct {
	stats tracker.Statistics
	prefs models.Preferences
	width int
}

func New(stats tracker.Statistics, prefs models.Preferences, width, height int) Model {
	return Model{
		stats: stats,
		prefs: prefs,
		width: width,
	}
}

func (m *Model) SetStats(stats tracker.Statistics, prefs models.Preferences) {
	m.stats = stats
	m.prefs = prefs
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

func (m Model) View() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + " " + value
	}

	library := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Library"),
		row("Books", fmt.Sprintf("%d", m.stats.TotalBooks)),
		row("Active", fmt.Sprintf("%d", m.stats.ActiveBooks)),
		row("Completed", fmt.Sprintf("%d", m.stats.CompletedBooks)),
	)

	reading := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Reading"),
		row("Pages read", fmt.Sprintf("%d", m.stats.TotalPagesRead)),
		row("Minutes read", fmt.Sprintf("%d", m.stats.TotalMinutes)),
		row("Pace", fmt.Sprintf("%.1f min/page", m.stats.MinutesPerPage)),
		row("Avg pages/day", fmt.Sprintf("%.1f", m.stats.AverageDailyPages)),
		row("Reading days", fmt.Sprintf("%d", m.stats.UniqueDays)),
	)

	week := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("This week"),
		row("Minutes", goal(m.stats.MinutesThisWeek, m.prefs.WeeklyMinutesGoal)),
		row("Pages", fmt.Sprintf("%d", m.stats.PagesThisWeek)),
		row("Streak", streakLine(m.stats.Streak)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(library),
		boxStyle.Render(reading),
		boxStyle.Render(week),
	)
}

func goal(value, target int) string {
	if target <= 0 {
		return fmt.Sprintf("%d", value)
	}

	pct := value * 100 / target
	filled := pct / 10
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)

	line := fmt.Sprintf("%d/%d %s", value, target, bar)
	if value >= target {
		return goalMetStyle.Render(line)
	}
	return line
}

func streakLine(days int) string {
	if days == 0 {
		return "0 days"
	}
	return fmt.Sprintf("🔥 %d day(s)", days)
}
