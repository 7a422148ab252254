// Package stats shows the learner's progress, skills and reward tree.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// skillGoal is the count at which a skill bar is full.
const skillGoal = 20

var skills = []struct {
	skill progress.Skill
	key   string
}{
	{progress.SkillAddition, "progress.understanding_addition"},
	{progress.SkillSubtraction, "progress.understanding_subtraction"},
	{progress.SkillPatternRecognition, "progress.pattern_recognition"},
	{progress.SkillLogicalThinking, "progress.logical_thinking"},
}

// StatsScreen is a read-only progress overview. It reads the tracker and
// engine on every render so it is current after activities finish.
type StatsScreen struct {
	actx   *app.AppContext
	scroll int
}

var (
	_ screen.Screen          = (*StatsScreen)(nil)
	_ screen.KeyHintProvider = (*StatsScreen)(nil)
)

// New creates the overview.
func New(actx *app.AppContext) *StatsScreen {
	return &StatsScreen{actx: actx}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return s.actx.T.T("progress.title")
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	t := s.actx.T
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.T("common.navigate")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.scroll = max(0, s.scroll-1)
		case "down", "j":
			s.scroll++
		}
	}
	return s, nil
}

// Summary returns the label/value rows of the numbers panel.
func (s *StatsScreen) Summary() [][2]string {
	t := s.actx.T
	st := s.actx.Tracker.Stats()
	tree := s.actx.Engine.State()

	return [][2]string{
		{t.T("progress.lessons_completed"), fmt.Sprint(st.TotalLessons)},
		{t.T("progress.games_played"), fmt.Sprint(st.TotalGames)},
		{t.T("progress.accuracy"), fmt.Sprintf("%d%%", st.Accuracy)},
		{t.T("progress.best_streak"), fmt.Sprint(st.BestStreak)},
		{t.T("progress.sessions"), fmt.Sprint(st.SessionCount)},
		{t.T("progress.time_spent"), fmt.Sprint(st.TotalTimeSpent)},
		{"🍃 " + t.T("progress.leaves_earned"), fmt.Sprint(tree.Leaves)},
		{"✨ " + t.T("progress.sparks_earned"), fmt.Sprint(tree.Sparks)},
		{"🌸 " + t.T("progress.flowers"), fmt.Sprint(tree.Flowers)},
	}
}

func (s *StatsScreen) renderTree(cw int) string {
	t := s.actx.T
	tree := s.actx.Engine.State()
	growth := s.actx.Engine.GrowthProgress()

	caption := t.T("progress.fully_grown")
	if growth.Next != nil {
		caption = t.T("progress.leaves_until_next",
			"count", growth.LeavesUntilNext,
			"stage", t.T("tree."+string(growth.Next.Stage)))
	}

	bar := components.NewProgressBar(tree.Stage.Icon(), growth.Percent, true, cw-6)
	bar.Fill = theme.Leaf

	return lipgloss.JoinVertical(lipgloss.Center,
		components.RenderTree(tree.Stage),
		theme.Title.Render(t.T("tree."+string(tree.Stage))),
		"",
		bar.View(),
		theme.Hint.Render(caption),
	)
}

func (s *StatsScreen) renderSummary(cw int) string {
	rows := s.Summary()
	labelWidth := lo.Max(lo.Map(rows, func(r [2]string, _ int) int { return lipgloss.Width(r[0]) }))

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(labelWidth + 2).Render(r[0])
		lines = append(lines, label+lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r[1]))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *StatsScreen) renderSkills(cw int) string {
	t := s.actx.T
	counts := s.actx.Tracker.Stats().Skills

	lines := []string{theme.Subtitle.Render(t.T("progress.skills_developing")), ""}
	for _, sk := range skills {
		n := counts.Get(sk.skill)
		bar := components.NewProgressBar(t.T(sk.key), min(100, n*100/skillGoal), false, cw-6)
		lines = append(lines, bar.View())
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *StatsScreen) renderUnlocks(cw int) string {
	t := s.actx.T

	zones := lo.Map(s.actx.Engine.State().UnlockedZones, func(z string, _ int) string {
		return "📍 " + t.T("zones."+z)
	})

	achieved := s.actx.Tracker.Record().CompletedAchievements
	badges := lo.Map(progress.Achievements, func(a progress.Achievement, _ int) string {
		name := t.T("achievements." + a.ID)
		if lo.Contains(achieved, a.ID) {
			return lipgloss.NewStyle().Foreground(theme.Spark).Render("🏆 " + name)
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("🔒 " + name)
	})

	lines := []string{theme.Subtitle.Render(t.T("progress.zones"))}
	lines = append(lines, zones...)
	lines = append(lines, "", theme.Subtitle.Render(t.T("progress.achievements")))
	lines = append(lines, badges...)
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		s.renderTree(cw),
		s.renderSummary(cw),
		s.renderSkills(cw),
		s.renderUnlocks(cw),
	}

	lines := strings.Split(lipgloss.JoinVertical(lipgloss.Center, sections...), "\n")
	s.scroll = min(s.scroll, max(0, len(lines)-height))
	visible := lines[s.scroll:min(len(lines), s.scroll+height)]

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(visible, "\n"))
}
