package tracker

import (
	"math"
	"time"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/utils"
)

// Statistics is the derived read-only statistics bundle. Everything is
// recomputed from the full state on each read; nothing here mutates.
type Statistics struct {
	TotalBooks     int
	CompletedBooks int
	ActiveBooks    int

	TotalPagesRead int
	TotalMinutes   int

	// MinutesPerPage is the overall pace, rounded to one decimal. Zero when
	// no pages have been read.
	MinutesPerPage float64

	// TotalDays is the inclusive whole-day span between the earliest and
	// latest session with a parseable date.
	TotalDays         int
	AverageDailyPages float64
	UniqueDays        int

	// Trailing 7-day window sums, today inclusive
	MinutesThisWeek int
	PagesThisWeek   int

	// Streak counts consecutive days with at least one session, ending today
	// or yesterday (one grace day when today has no session yet).
	Streak int
}

// ComputeStats derives the statistics bundle from a tracker state as of the
// given reference time.
func ComputeStats(state models.TrackerState, now time.Time) Statistics {
	stats := Statistics{
		TotalBooks: len(state.Books),
	}

	for _, b := range state.Books {
		if b.Status == constants.StatusCompleted {
			stats.CompletedBooks++
		} else {
			stats.ActiveBooks++
		}
	}

	today := utils.Midnight(now)
	// YYYY-MM-DD strings order lexicographically, so the week window check is
	// plain string comparison and immune to timezone drift between parsed
	// dates and the local clock.
	todayStr := utils.FormatDate(today)
	weekStartStr := utils.FormatDate(today.AddDate(0, 0, -(constants.WeekWindowDays - 1)))

	var earliest, latest time.Time
	days := make(map[string]bool)

	for _, sess := range state.Sessions {
		stats.TotalPagesRead += sess.PagesRead
		stats.TotalMinutes += sess.Minutes

		date, err := utils.ParseDate(sess.Date)
		if err != nil {
			continue
		}
		days[sess.Date] = true

		if earliest.IsZero() || date.Before(earliest) {
			earliest = date
		}
		if latest.IsZero() || date.After(latest) {
			latest = date
		}

		if sess.Date >= weekStartStr && sess.Date <= todayStr {
			stats.MinutesThisWeek += sess.Minutes
			stats.PagesThisWeek += sess.PagesRead
		}
	}

	stats.UniqueDays = len(days)

	if stats.TotalPagesRead > 0 && stats.TotalMinutes > 0 {
		stats.MinutesPerPage = round1(float64(stats.TotalMinutes) / float64(stats.TotalPagesRead))
	}

	if !earliest.IsZero() {
		stats.TotalDays = utils.DaysBetween(earliest, latest)
	}
	if stats.TotalDays > 0 && stats.TotalPagesRead > 0 {
		stats.AverageDailyPages = round1(float64(stats.TotalPagesRead) / float64(stats.TotalDays))
	}

	stats.Streak = streak(days, today)

	return stats
}

// streak walks backward from today one day at a time, counting days with at
// least one session. A single grace day is allowed on the very first step:
// if today has no session the walk restarts from yesterday. No further gaps
// are forgiven.
func streak(days map[string]bool, today time.Time) int {
	cursor := today
	if !days[utils.FormatDate(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[utils.FormatDate(cursor)] {
			return 0
		}
	}

	count := 0
	for days[utils.FormatDate(cursor)] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
