package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Icon     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j", "tab":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu as fixed-width buttons.
func (m Menu) View(buttonWidth int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if item.Icon != "" {
			label = item.Icon + "  " + label
		}
		switch {
		case item.Disabled:
			buttons = append(buttons, base.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label))
		case i == m.Selected:
			buttons = append(buttons, base.Bold(true).
				Foreground(theme.BgDark).
				Background(theme.Primary).
				BorderForeground(theme.Primary).
				Render("▸ "+label))
		default:
			buttons = append(buttons, base.Foreground(theme.Text).BorderForeground(theme.Border).Render(label))
		}
	}
	return strings.Join(buttons, "\n")
}
