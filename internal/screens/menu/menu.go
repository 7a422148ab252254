// Package menu provides a titled list of choices that push other screens.
package menu

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const buttonWidth = 26

// MenuScreen shows a heading and a vertical menu.
type MenuScreen struct {
	title    string
	subtitle string
	menu     components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)

// New creates a MenuScreen. title is shown in the header, subtitle above
// the buttons.
func New(title, subtitle string, items []components.MenuItem) *MenuScreen {
	return &MenuScreen{
		title:    title,
		subtitle: subtitle,
		menu:     components.NewMenu(items),
	}
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	content := lipgloss.JoinVertical(lipgloss.Center,
		components.Banner(m.subtitle, theme.Title, cw),
		"",
		m.menu.View(buttonWidth),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MenuScreen) Title() string {
	return m.title
}

// Selected returns the highlighted item index.
func (m *MenuScreen) Selected() int {
	return m.menu.Selected
}
