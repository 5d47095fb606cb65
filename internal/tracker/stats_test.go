package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/utils"
)

var statsNow = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return utils.FormatDate(statsNow.AddDate(0, 0, -n))
}

func sessionOn(date string, pages, minutes int) models.ReadingSession {
	return models.ReadingSession{
		ID:        date + "-id",
		BookID:    "book-1",
		Date:      date,
		PagesRead: pages,
		Minutes:   minutes,
	}
}

func TestComputeStats_EmptyState(t *testing.T) {
	stats := ComputeStats(models.DefaultState(), statsNow)

	if stats.MinutesPerPage != 0 {
		t.Errorf("expected minutesPerPage 0 on empty state, got %v", stats.MinutesPerPage)
	}
	if stats.AverageDailyPages != 0 {
		t.Errorf("expected averageDailyPages 0 on empty state, got %v", stats.AverageDailyPages)
	}
	if stats.TotalDays != 0 {
		t.Errorf("expected totalDays 0, got %d", stats.TotalDays)
	}
	if stats.Streak != 0 {
		t.Errorf("expected streak 0, got %d", stats.Streak)
	}
}

func TestComputeStats_BookPartition(t *testing.T) {
	state := models.DefaultState()
	state.Books = []models.Book{
		{ID: "1", TotalPages: 100, CurrentPage: 100, Status: constants.StatusCompleted},
		{ID: "2", TotalPages: 100, CurrentPage: 40, Status: constants.StatusInProgress},
		{ID: "3", TotalPages: 100, CurrentPage: 0, Status: constants.StatusNotStarted},
	}

	stats := ComputeStats(state, statsNow)
	if stats.TotalBooks != 3 || stats.CompletedBooks != 1 || stats.ActiveBooks != 2 {
		t.Errorf("expected 3/1/2 total/completed/active, got %d/%d/%d",
			stats.TotalBooks, stats.CompletedBooks, stats.ActiveBooks)
	}
}

func TestComputeStats_Totals(t *testing.T) {
	state := models.DefaultState()
	state.Sessions = []models.ReadingSession{
		sessionOn(daysAgo(0), 20, 30),
		sessionOn(daysAgo(1), 10, 45),
		sessionOn(daysAgo(1), 10, 15), // second session same day
	}

	stats := ComputeStats(state, statsNow)

	if stats.TotalPagesRead != 40 {
		t.Errorf("expected 40 total pages, got %d", stats.TotalPagesRead)
	}
	if stats.TotalMinutes != 90 {
		t.Errorf("expected 90 total minutes, got %d", stats.TotalMinutes)
	}
	if stats.MinutesPerPage != 2.3 { // 90/40 = 2.25, rounded to 1 decimal
		t.Errorf("expected minutesPerPage 2.3, got %v", stats.MinutesPerPage)
	}
	if stats.TotalDays != 2 {
		t.Errorf("expected totalDays 2, got %d", stats.TotalDays)
	}
	if stats.AverageDailyPages != 20.0 {
		t.Errorf("expected averageDailyPages 20.0, got %v", stats.AverageDailyPages)
	}
	if stats.UniqueDays != 2 {
		t.Errorf("expected 2 unique days, got %d", stats.UniqueDays)
	}
}

func TestComputeStats_WeekWindow(t *testing.T) {
	state := models.DefaultState()
	state.Sessions = []models.ReadingSession{
		sessionOn(daysAgo(0), 10, 30),  // in window
		sessionOn(daysAgo(6), 10, 30),  // last day inside the window
		sessionOn(daysAgo(7), 99, 999), // just outside
	}

	stats := ComputeStats(state, statsNow)

	if stats.PagesThisWeek != 20 {
		t.Errorf("expected 20 pages this week, got %d", stats.PagesThisWeek)
	}
	if stats.MinutesThisWeek != 60 {
		t.Errorf("expected 60 minutes this week, got %d", stats.MinutesThisWeek)
	}
}

func TestComputeStats_Streak(t *testing.T) {
	tests := []struct {
		name string
		days []int // sessions logged N days ago
		want int
	}{
		{"three consecutive ending today", []int{0, 1, 2}, 3},
		{"grace day for today", []int{1, 2}, 2},
		{"stale session only", []int{3}, 0},
		{"no sessions", nil, 0},
		{"gap breaks streak", []int{0, 1, 3, 4}, 2},
		{"no second grace day", []int{1, 3}, 1},
		{"today only", []int{0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultState()
			for _, n := range tt.days {
				state.Sessions = append(state.Sessions, sessionOn(daysAgo(n), 5, 10))
			}

			stats := ComputeStats(state, statsNow)
			if stats.Streak != tt.want {
				t.Errorf("expected streak %d, got %d", tt.want, stats.Streak)
			}
		})
	}
}

func TestComputeStats_SkipsUnparseableDates(t *testing.T) {
	state := models.DefaultState()
	state.Sessions = []models.ReadingSession{
		sessionOn(daysAgo(0), 10, 30),
		sessionOn("not-a-date", 10, 30),
	}

	stats := ComputeStats(state, statsNow)

	// Totals include every session; day-based stats only parseable ones
	if stats.TotalPagesRead != 20 {
		t.Errorf("expected 20 total pages, got %d", stats.TotalPagesRead)
	}
	if stats.UniqueDays != 1 {
		t.Errorf("expected 1 unique day, got %d", stats.UniqueDays)
	}
	if stats.TotalDays != 1 {
		t.Errorf("expected totalDays 1, got %d", stats.TotalDays)
	}
}
