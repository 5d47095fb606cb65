package sessionlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/readlit/internal/models"
)

type DeleteSessionMsg struct {
	ID string
}

// TitleResolver maps a book ID to a display title
type TitleResolver func(bookID string) string

type Item struct {
	Session models.ReadingSession
	resolve TitleResolver
}

func (i Item) Title() string {
	return fmt.Sprintf("%s - %s", i.Session.Date, i.resolve(i.Session.BookID))
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d pages | %d min", i.Session.PagesRead, i.Session.Minutes)
	if i.Session.Note != "" {
		desc += " | " + i.Session.Note
	}
	return desc
}

func (i Item) FilterValue() string { return i.Session.Date }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete session"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	resolve TitleResolver
}

func New(sessions []models.ReadingSession, resolve TitleResolver, width, height int) Model {
	m := Model{
		keys:    DefaultKeyMap(),
		resolve: resolve,
	}

	l := list.New(m.toItems(sessions), list.NewDefaultDelegate(), width, height)
	l.Title = "Sessions"
	l.SetShowHelp(false)
	m.list = l

	return m
}

func (m *Model) SetSessions(sessions []models.ReadingSession) {
	m.list.SetItems(m.toItems(sessions))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the session under the cursor, if any.
func (m Model) Selected() (models.ReadingSession, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Session, true
	}
	return models.ReadingSession{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		if key.Matches(msg, m.keys.Delete) {
			if sess, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteSessionMsg{ID: sess.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m Model) toItems(sessions []models.ReadingSession) []list.Item {
	items := make([]list.Item, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, Item{Session: sess, resolve: m.resolve})
	}
	return items
}
