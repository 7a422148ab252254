package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/ui/theme"
)

const bannerArt = `
 ╔╦╗╦═╗╔═╗╔═╗  ╔═╗╔═╗  ╦═╗╔═╗╔═╗╔═╗╔═╗╔╗╔
  ║ ╠╦╝║╣ ║╣   ║ ║╠╣   ╠╦╝║╣ ╠═╣╚═╗║ ║║║║
  ╩ ╩╚═╚═╝╚═╝  ╚═╝╚    ╩╚═╚═╝╩ ╩╚═╝╚═╝╝╚╝`

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 46

// RenderBanner returns the app banner in the primary colour. Narrow
// terminals and non-English locales get the translated name instead.
func RenderBanner(name string, english bool, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if !english || width < bannerMinWidth {
		return style.Render(name)
	}
	return style.Render(bannerArt)
}
