// Package difficulty lets the child pick a tier before an activity starts.
package difficulty

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const buttonWidth = 20

var tierIcons = map[problemgen.Tier]string{
	problemgen.TierEasy:   "🌱",
	problemgen.TierMedium: "🌿",
	problemgen.TierHard:   "🌳",
}

// Start builds the activity screen for the chosen tier.
type Start func(tier problemgen.Tier) screen.Screen

// DifficultyScreen offers the three tiers and replaces itself with the
// activity once one is picked, so leaving the activity returns to the
// screen before this one.
type DifficultyScreen struct {
	actx  *app.AppContext
	title string
	menu  components.Menu
}

var _ screen.Screen = (*DifficultyScreen)(nil)

// New creates the picker for an activity named title.
func New(actx *app.AppContext, title string, start Start) *DifficultyScreen {
	tiers := problemgen.AllTiers()
	items := make([]components.MenuItem, 0, len(tiers))
	for _, tier := range tiers {
		items = append(items, components.MenuItem{
			Label: actx.T.T("difficulty." + string(tier)),
			Icon:  tierIcons[tier],
			Action: func() tea.Cmd {
				return router.Replace(start(tier))
			},
		})
	}

	return &DifficultyScreen{
		actx:  actx,
		title: title,
		menu:  components.NewMenu(items),
	}
}

func (d *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (d *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DifficultyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	content := lipgloss.JoinVertical(lipgloss.Center,
		components.Banner(d.actx.T.T("difficulty.choose_level"), theme.Title, cw),
		"",
		d.menu.View(buttonWidth),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DifficultyScreen) Title() string {
	return d.title
}
