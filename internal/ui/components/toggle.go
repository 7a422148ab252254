package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/ui/theme"
)

// Toggle is a labelled on/off row.
type Toggle struct {
	Label    string
	On       bool
	OnLabel  string
	OffLabel string
}

// View renders the row padded to width with the state on the right.
func (t Toggle) View(selected bool, width int) string {
	state := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ " + t.OffLabel)
	if t.On {
		state = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("● " + t.OnLabel)
	}

	label := lipgloss.NewStyle().Foreground(theme.Text)
	prefix := "  "
	if selected {
		label = theme.Selected
		prefix = "▸ "
	}
	left := label.Render(prefix + t.Label)

	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(state))
	return left + lipgloss.NewStyle().Width(gap).Render("") + state
}
