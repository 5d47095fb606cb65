package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/readlit/internal/constants"
)

// Preferences represents user-tunable goal and display settings
type Preferences struct {
	WeeklyMinutesGoal int  `json:"weeklyMinutesGoal"`
	DailyPagesGoal    int  `json:"dailyPagesGoal"`
	ShowCompleted     bool `json:"showCompleted"`
}

// TrackerState is the full persisted state: all books, all sessions, and
// preferences. Books are kept newest-first, sessions sorted descending by date.
type TrackerState struct {
	Books       []Book           `json:"books"`
	Sessions    []ReadingSession `json:"sessions"`
	Preferences Preferences      `json:"preferences"`
}

// DefaultPreferences returns the documented preference defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		WeeklyMinutesGoal: constants.DefaultWeeklyMinutesGoal,
		DailyPagesGoal:    constants.DefaultDailyPagesGoal,
		ShowCompleted:     constants.DefaultShowCompleted,
	}
}

// DefaultState returns the state used on first run or after an unreadable load.
func DefaultState() TrackerState {
	return TrackerState{
		Books:       []Book{},
		Sessions:    []ReadingSession{},
		Preferences: DefaultPreferences(),
	}
}

// ApplyDefaultPreferences fills missing numeric preference fields with defaults.
// ShowCompleted cannot be distinguished from an explicit false once decoded, so
// partial blobs are merged before decoding by the storage layer.
func ApplyDefaultPreferences(prefs *Preferences) {
	if prefs.WeeklyMinutesGoal <= 0 {
		prefs.WeeklyMinutesGoal = constants.DefaultWeeklyMinutesGoal
	}
	if prefs.DailyPagesGoal <= 0 {
		prefs.DailyPagesGoal = constants.DefaultDailyPagesGoal
	}
}

// Normalize ensures slices are non-nil and preference fields are defaulted.
func (s *TrackerState) Normalize() {
	if s.Books == nil {
		s.Books = []Book{}
	}
	if s.Sessions == nil {
		s.Sessions = []ReadingSession{}
	}
	ApplyDefaultPreferences(&s.Preferences)
}

// PreferencesToMap converts a Preferences struct to a map of key-value pairs.
func PreferencesToMap(prefs Preferences) map[string]string {
	return map[string]string{
		constants.PrefWeeklyMinutesGoal: fmt.Sprintf("%d", prefs.WeeklyMinutesGoal),
		constants.PrefDailyPagesGoal:    fmt.Sprintf("%d", prefs.DailyPagesGoal),
		constants.PrefShowCompleted:     fmt.Sprintf("%v", prefs.ShowCompleted),
	}
}

// MapToPreferences converts a map of key-value pairs to a Preferences struct,
// falling back to defaults for missing or unparseable fields.
func MapToPreferences(data map[string]string) Preferences {
	prefs := DefaultPreferences()

	for key, value := range data {
		switch key {
		case constants.PrefWeeklyMinutesGoal:
			var v int
			if _, err := fmt.Sscanf(value, "%d", &v); err == nil && v > 0 {
				prefs.WeeklyMinutesGoal = v
			}
		case constants.PrefDailyPagesGoal:
			var v int
			if _, err := fmt.Sscanf(value, "%d", &v); err == nil && v > 0 {
				prefs.DailyPagesGoal = v
			}
		case constants.PrefShowCompleted:
			if v, err := strconv.ParseBool(value); err == nil {
				prefs.ShowCompleted = v
			}
		}
	}

	return prefs
}
