package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections so
// their boxes line up.
func ContentWidth(frameWidth int) int {
	return max(20, min(64, frameWidth-6))
}

// Frame wraps content in a double border centred in width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card of content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(0, cw-2)).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Banner renders a bold one-line message in c, centred in cw.
func Banner(text string, c lipgloss.Style, cw int) string {
	return c.Width(cw).Align(lipgloss.Center).Render(text)
}
