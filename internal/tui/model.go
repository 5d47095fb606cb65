package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/tracker"
	"github.com/julianstephens/readlit/internal/tui/components/booklist"
	"github.com/julianstephens/readlit/internal/tui/components/sessionlist"
	"github.com/julianstephens/readlit/internal/tui/components/stats"
)

type BookFormModel struct {
	Title      string
	Author     string
	Pages      string
	TargetDate string
	Notes      string
}

type SessionFormModel struct {
	BookID  string
	Pages   string
	Minutes string
	Date    string
	Note    string
}

type Model struct {
	tracker *tracker.Tracker

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	bookList    booklist.Model
	sessionList sessionlist.Model
	statsModel  stats.Model

	form        *huh.Form
	bookForm    *BookFormModel
	sessionForm *SessionFormModel

	sessionToDeleteID string
	errMsg            string

	quitting bool
	width    int
	height   int
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker:     tr,
		state:       constants.StateBooks,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bookList:    booklist.New(tr.Books(), 0, 0),
		sessionList: sessionlist.New(tr.Sessions(), tr.BookTitle, 0, 0),
		statsModel:  stats.New(tr.Stats(), tr.Preferences(), 0, 0),
	}
	return m
}

// refresh re-reads the tracker into all components after a mutation
func (m *Model) refresh() {
	m.bookList.SetBooks(m.tracker.Books())
	m.sessionList.SetSessions(m.tracker.Sessions())
	m.statsModel.SetStats(m.tracker.Stats(), m.tracker.Preferences())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateBooks:
		keys = append(keys, m.keys.Add, m.keys.Log)
	case constants.StateSessions:
		keys = append(keys, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateBooks:
		actions = []key.Binding{m.keys.Add, m.keys.Log}
	case constants.StateSessions:
		actions = []key.Binding{m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
