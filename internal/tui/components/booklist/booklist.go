package booklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
)

type AddBookMsg struct{}

type LogSessionMsg struct {
	BookID string
}

type Item struct {
	Book models.Book
}

func (i Item) Title() string {
	switch i.Book.Status {
	case constants.StatusCompleted:
		return "✓ " + i.Book.Title
	case constants.StatusInProgress:
		return "▸ " + i.Book.Title
	default:
		return "· " + i.Book.Title
	}
}

func (i Item) Description() string {
	pct := 0
	if i.Book.TotalPages > 0 {
		pct = i.Book.CurrentPage * 100 / i.Book.TotalPages
	}
	desc := fmt.Sprintf("%s | %d/%d pages (%d%%)", i.Book.Author, i.Book.CurrentPage, i.Book.TotalPages, pct)
	if i.Book.TargetDate != "" {
		desc += " | target " + i.Book.TargetDate
	}
	return desc
}

func (i Item) FilterValue() string { return i.Book.Title }

type KeyMap struct {
	Add key.Binding
	Log key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add book"),
		),
		Log: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "log session"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(books []models.Book, width, height int) Model {
	items := toItems(books)

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Books"
	l.SetShowHelp(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func (m *Model) SetBooks(books []models.Book) {
	m.list.SetItems(toItems(books))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the book under the cursor, if any.
func (m Model) Selected() (models.Book, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Book, true
	}
	return models.Book{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddBookMsg{} }
		case key.Matches(msg, m.keys.Log):
			if book, ok := m.Selected(); ok {
				return m, func() tea.Msg { return LogSessionMsg{BookID: book.ID} }
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

func toItems(books []models.Book) []list.Item {
	items := make([]list.Item, 0, len(books))
	for _, b := range books {
		items = append(items, Item{Book: b})
	}
	return items
}
