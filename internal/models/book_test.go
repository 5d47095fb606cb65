package models

import (
	"testing"

	"github.com/julianstephens/readlit/internal/constants"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		current, total int
		want           constants.BookStatus
	}{
		{0, 100, constants.StatusNotStarted},
		{1, 100, constants.StatusInProgress},
		{99, 100, constants.StatusInProgress},
		{100, 100, constants.StatusCompleted},
		{150, 100, constants.StatusCompleted},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.current, tt.total); got != tt.want {
			t.Errorf("StatusFor(%d, %d) = %s, want %s", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestSetProgress_Clamps(t *testing.T) {
	b := Book{TotalPages: 100}

	b.SetProgress(150)
	if b.CurrentPage != 100 || b.Status != constants.StatusCompleted {
		t.Errorf("expected clamped completion, got page %d status %s", b.CurrentPage, b.Status)
	}

	b.SetProgress(-5)
	if b.CurrentPage != 0 || b.Status != constants.StatusNotStarted {
		t.Errorf("expected clamp to zero, got page %d status %s", b.CurrentPage, b.Status)
	}
}

func TestMapToPreferences_Defaults(t *testing.T) {
	prefs := MapToPreferences(map[string]string{
		constants.PrefDailyPagesGoal: "50",
		constants.PrefShowCompleted:  "false",
	})

	if prefs.DailyPagesGoal != 50 {
		t.Errorf("expected daily pages goal 50, got %d", prefs.DailyPagesGoal)
	}
	if prefs.WeeklyMinutesGoal != constants.DefaultWeeklyMinutesGoal {
		t.Errorf("expected default weekly minutes goal, got %d", prefs.WeeklyMinutesGoal)
	}
	if prefs.ShowCompleted {
		t.Error("expected showCompleted false")
	}
}
