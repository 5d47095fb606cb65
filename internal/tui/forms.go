package tui

import "github.com/charmbracelet/huh"

// NewBookForm builds the add-book form bound to the given form model
func NewBookForm(fm *BookFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewInput().
				Title("Author").
				Value(&fm.Author),
			huh.NewInput().
				Title("Total pages").
				Value(&fm.Pages),
			huh.NewInput().
				Title("Target date (YYYY-MM-DD, optional)").
				Value(&fm.TargetDate),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&fm.Notes),
		),
	)
}

// NewSessionForm builds the log-session form bound to the given form model
func NewSessionForm(fm *SessionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pages read").
				Value(&fm.Pages),
			huh.NewInput().
				Title("Minutes").
				Value(&fm.Minutes),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for today)").
				Value(&fm.Date),
			huh.NewInput().
				Title("Note (optional)").
				Value(&fm.Note),
		),
	)
}
