package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/ui/theme"
)

// Choices is a row of numeric answer buttons. Arrow keys move the cursor,
// enter picks the highlighted option and digits 1-9 pick by position.
type Choices struct {
	Options  []int
	Selected int
}

// NewChoices creates a choice row with the first option highlighted.
func NewChoices(options []int) Choices {
	return Choices{Options: options}
}

// Update returns the picked index, or -1 when nothing was picked.
func (c Choices) Update(msg tea.Msg) (Choices, int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, -1
	}

	key := kmsg.String()
	switch key {
	case "left", "h", "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l", "down", "j", "tab":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter", "space":
		return c, c.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			return c, c.Selected
		}
	}
	return c, -1
}

// Value returns the option at i.
func (c Choices) Value(i int) int {
	return c.Options[i]
}

// View renders the options side by side.
func (c Choices) View() string {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	cells := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		label := strconv.Itoa(opt)
		if i == c.Selected {
			cells = append(cells, base.Bold(true).
				Foreground(theme.BgDark).
				Background(theme.Primary).
				BorderForeground(theme.Primary).
				Render(label))
		} else {
			cells = append(cells, base.Foreground(theme.Text).BorderForeground(theme.Border).Render(label))
		}
	}

	hints := make([]string, len(c.Options))
	for i := range c.Options {
		hints[i] = strconv.Itoa(i + 1)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n" +
		theme.Hint.Render(strings.Join(hints, " · "))
}
