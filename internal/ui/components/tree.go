package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const saplingArt = `
   ,
  \|/
   |
 ~~~~~`

const youngTreeArt = `
   .-"-.
  ( ' ' )
   '-|-'
     |
  ~~~~~~~`

const floweringArt = `
   .*@*.
  (*@ *@)
 (@* *@*)
   '-|-'
     |
  ~~~~~~~`

// RenderTree draws the tree for stage. Leaves and blossoms take the leaf
// and spark colours, the trunk the dim text colour.
func RenderTree(stage rewards.Stage) string {
	art := saplingArt
	switch stage {
	case rewards.StageYoungTree:
		art = youngTreeArt
	case rewards.StageFlowering:
		art = floweringArt
	}

	leaf := lipgloss.NewStyle().Foreground(theme.Leaf)
	bloom := lipgloss.NewStyle().Foreground(theme.Spark).Bold(true)
	trunk := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for _, r := range strings.Trim(art, "\n") {
		s := string(r)
		switch r {
		case '*', '@':
			b.WriteString(bloom.Render(s))
		case '|', '~':
			b.WriteString(trunk.Render(s))
		case ' ', '\n':
			b.WriteString(s)
		default:
			b.WriteString(leaf.Render(s))
		}
	}
	return b.String()
}
