package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatsCmd struct{}

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	statsGoalMetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))
)

func (c *StatsCmd) Run(ctx *Context) error {
	stats := ctx.Tracker.Stats()
	prefs := ctx.Tracker.Preferences()

	row := func(label, value string) {
		fmt.Printf("%s %s\n", statsLabelStyle.Render(label), value)
	}

	fmt.Println(statsHeaderStyle.Render("Library"))
	row("Books", fmt.Sprintf("%d (%d active, %d completed)", stats.TotalBooks, stats.ActiveBooks, stats.CompletedBooks))
	fmt.Println()

	fmt.Println(statsHeaderStyle.Render("Reading"))
	row("Pages read", fmt.Sprintf("%d", stats.TotalPagesRead))
	row("Minutes read", fmt.Sprintf("%d", stats.TotalMinutes))
	row("Pace", fmt.Sprintf("%.1f min/page", stats.MinutesPerPage))
	row("Avg pages per day", fmt.Sprintf("%.1f (over %d days)", stats.AverageDailyPages, stats.TotalDays))
	row("Days with reading", fmt.Sprintf("%d", stats.UniqueDays))
	fmt.Println()

	fmt.Println(statsHeaderStyle.Render("This week"))
	row("Minutes", goalLine(stats.MinutesThisWeek, prefs.WeeklyMinutesGoal))
	row("Pages", fmt.Sprintf("%d", stats.PagesThisWeek))
	row("Streak", fmt.Sprintf("%d day(s)", stats.Streak))

	return nil
}

// goalLine renders progress against a goal with a simple bar
func goalLine(value, goal int) string {
	if goal <= 0 {
		return fmt.Sprintf("%d", value)
	}

	pct := value * 100 / goal
	filled := pct / 10
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)

	line := fmt.Sprintf("%d/%d  %s %d%%", value, goal, bar, pct)
	if value >= goal {
		return statsGoalMetStyle.Render(line + "  goal met")
	}
	return line
}
