// Package settings lets the learner change language, sound and
// accessibility preferences.
package settings

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/screen"
	prefs "github.com/abhisek/reasontree/internal/settings"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// SettingsScreen lists the language row followed by every toggle. Changes
// are persisted immediately.
type SettingsScreen struct {
	actx   *app.AppContext
	cursor int // 0 is the language row, i > 0 is prefs.Names()[i-1]
}

var (
	_ screen.Screen          = (*SettingsScreen)(nil)
	_ screen.KeyHintProvider = (*SettingsScreen)(nil)
)

// New creates the settings screen.
func New(actx *app.AppContext) *SettingsScreen {
	return &SettingsScreen{actx: actx}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return s.actx.T.T("settings.title")
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	t := s.actx.T
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.T("common.navigate")},
		{Key: "Enter", Description: t.T("common.select")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (s *SettingsScreen) rows() int {
	return len(prefs.Names()) + 1
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j", "tab":
		if s.cursor < s.rows()-1 {
			s.cursor++
		}
	case "left", "h":
		if s.cursor == 0 {
			s.cycleLanguage(-1)
		}
	case "right", "l":
		if s.cursor == 0 {
			s.cycleLanguage(1)
		}
	case "enter", "space":
		if s.cursor == 0 {
			s.cycleLanguage(1)
			break
		}
		s.toggle(prefs.Names()[s.cursor-1])
	}
	return s, nil
}

func (s *SettingsScreen) cycleLanguage(step int) {
	langs := i18n.Languages()
	i := lo.IndexOf(langs, s.actx.Settings.Language())
	next := langs[(i+step+len(langs))%len(langs)]
	s.actx.Settings.ChangeLanguage(s.actx.Ctx, next)
	s.actx.Logger.WithField("language", next).Info("language changed")
}

func (s *SettingsScreen) toggle(n prefs.Name) {
	on, err := s.actx.Settings.Toggle(s.actx.Ctx, n)
	if err != nil {
		s.actx.Logger.WithError(err).Warn("toggle setting")
		return
	}
	if n == prefs.HighContrast {
		s.actx.ApplyTheme()
	}
	s.actx.Logger.WithField("setting", n).WithField("on", on).Debug("setting toggled")
}

func (s *SettingsScreen) View(width, height int) string {
	t := s.actx.T
	cw := components.ContentWidth(width)
	rowWidth := cw - 6
	current := s.actx.Settings.Settings()

	lang := components.Toggle{
		Label:   t.T("settings.language"),
		On:      true,
		OnLabel: "◂ " + s.actx.Settings.Language().DisplayName() + " ▸",
	}
	lines := []string{lang.View(s.cursor == 0, rowWidth)}

	heading := func(key string) string {
		return "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(t.T(key))
	}
	lines = append(lines, heading("settings.sound"))
	grouped := false
	for i, n := range prefs.Names() {
		if n.Accessibility() && !grouped {
			lines = append(lines, heading("settings.accessibility"))
			grouped = true
		}
		row := components.Toggle{
			Label:    t.T("settings." + string(n)),
			On:       current.Get(n),
			OnLabel:  t.T("settings.on"),
			OffLabel: t.T("settings.off"),
		}
		lines = append(lines, row.View(s.cursor == i+1, rowWidth))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.Banner(t.T("settings.title"), theme.Title, cw),
		"",
		components.Card(strings.Join(lines, "\n"), cw),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
