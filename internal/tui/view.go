package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/readlit/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateBooks:
		content = docStyle.Render(m.bookList.View())
	case constants.StateSessions:
		content = docStyle.Render(m.sessionList.View())
	case constants.StateStats:
		content = docStyle.Render(m.statsModel.View())
	case constants.StateAddBook, constants.StateLogSession:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabStates := []constants.SessionState{constants.StateBooks, constants.StateSessions, constants.StateStats}
	titles := []string{"Books", "Sessions", "Stats"}

	var tabs []string
	for i, title := range titles {
		if m.state == tabStates[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.errMsg != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.errMsg), view)
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this session? The book's progress will be rolled back."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
