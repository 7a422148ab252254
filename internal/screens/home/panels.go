package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderTitle returns the app name and the day's question.
func renderTitle(name, question string, cw int) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		components.Banner("🌳 "+name+" 🌳", theme.Title, cw),
		components.Banner(question, theme.Subtitle, cw),
	)
}

// renderTreeBox renders the tree centred at content width.
func renderTreeBox(stage rewards.Stage, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderTree(stage))
}

// renderStatsBar renders the reward counters in a bordered box matching
// content width.
func renderStatsBar(st rewards.State, stageName string, cw int, compact bool) string {
	leafStyle := lipgloss.NewStyle().Foreground(theme.Leaf).Bold(true)
	sparkStyle := lipgloss.NewStyle().Foreground(theme.Spark).Bold(true)
	flowerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			leafStyle.Render(fmt.Sprintf("🍃%d", st.Leaves)),
			sparkStyle.Render(fmt.Sprintf("✨%d", st.Sparks)),
			flowerStyle.Render(fmt.Sprintf("🌸%d", st.Flowers)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Render(st.Stage.Icon()+" "+stageName),
			leafStyle.Render(fmt.Sprintf("🍃 %d", st.Leaves)),
			sparkStyle.Render(fmt.Sprintf("✨ %d", st.Sparks)),
			flowerStyle.Render(fmt.Sprintf("🌸 %d", st.Flowers)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Leaf).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderNarrationNote renders a dim line when story retelling is enabled.
func renderNarrationNote(model string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("📖 " + model)
}
