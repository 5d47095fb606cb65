package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/tui/components/booklist"
	"github.com/julianstephens/readlit/internal/tui/components/sessionlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 4
		m.bookList.SetSize(msg.Width-4, contentHeight)
		m.sessionList.SetSize(msg.Width-4, contentHeight)
		m.statsModel.SetSize(msg.Width-4, contentHeight)
		// An open form needs the resize too so it reflows
		if m.form != nil && (m.state == constants.StateAddBook || m.state == constants.StateLogSession) {
			form, cmd := m.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.form = f
			}
			return m, cmd
		}
		return m, nil

	case booklist.AddBookMsg:
		m.bookForm = &BookFormModel{}
		m.form = NewBookForm(m.bookForm)
		m.previousState = m.state
		m.state = constants.StateAddBook
		return m, m.form.Init()

	case booklist.LogSessionMsg:
		m.sessionForm = &SessionFormModel{BookID: msg.BookID}
		m.form = NewSessionForm(m.sessionForm)
		m.previousState = m.state
		m.state = constants.StateLogSession
		return m, m.form.Init()

	case sessionlist.DeleteSessionMsg:
		m.sessionToDeleteID = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case constants.StateAddBook:
		return m.updateAddBook(msg)
	case constants.StateLogSession:
		return m.updateLogSession(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = nextTab(m.state, 1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = nextTab(m.state, -1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateBooks:
		m.bookList, cmd = m.bookList.Update(msg)
	case constants.StateSessions:
		m.sessionList, cmd = m.sessionList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddBook(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.errMsg = ""
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		pages, err := strconv.Atoi(m.bookForm.Pages)
		if err != nil {
			pages = 0
		}
		if _, err := m.tracker.AddBook(m.bookForm.Title, m.bookForm.Author, pages,
			m.bookForm.TargetDate, m.bookForm.Notes); err != nil {
			// Stay in form state so the user can correct and retry
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.errMsg = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.errMsg = ""
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateLogSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.errMsg = ""
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		pages, err := strconv.Atoi(m.sessionForm.Pages)
		if err != nil {
			pages = 0
		}
		minutes, err := strconv.Atoi(m.sessionForm.Minutes)
		if err != nil {
			minutes = 0
		}
		if _, err := m.tracker.LogSession(m.sessionForm.BookID, m.sessionForm.Date,
			pages, minutes, m.sessionForm.Note); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.errMsg = ""
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.errMsg = ""
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			m.tracker.RemoveSession(m.sessionToDeleteID)
			m.sessionToDeleteID = ""
			m.refresh()
			m.state = m.previousState
		case "n", "esc", "q":
			m.sessionToDeleteID = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

// nextTab cycles through the three main tabs
func nextTab(state constants.SessionState, delta int) constants.SessionState {
	tabs := []constants.SessionState{constants.StateBooks, constants.StateSessions, constants.StateStats}
	for i, s := range tabs {
		if s == state {
			return tabs[(i+delta+len(tabs))%len(tabs)]
		}
	}
	return constants.StateBooks
}
