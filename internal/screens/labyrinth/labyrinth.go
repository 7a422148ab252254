// Package labyrinth implements the maze game where each correct answer
// opens the next door on the robot's path.
package labyrinth

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/results"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const levelDelay = 500 * time.Millisecond

type nextLevelMsg struct{ level int }

// LabyrinthScreen runs the tier's MinigameLevels levels. The robot stands
// on the path; answering the question on the next path cell moves it
// there, and reaching the exit clears the level.
type LabyrinthScreen struct {
	actx  *app.AppContext
	tier  problemgen.Tier
	scope *schedule.Scope

	level   int
	levels  int
	maze    *problemgen.LabyrinthLevel
	pos     int // index into maze.Path
	choices components.Choices

	feedback string
	correct  bool
	busy     bool

	score    int
	started  time.Time
	unlocked []string
}

var (
	_ screen.Screen          = (*LabyrinthScreen)(nil)
	_ screen.Closer          = (*LabyrinthScreen)(nil)
	_ screen.KeyHintProvider = (*LabyrinthScreen)(nil)
)

// New starts a game at tier.
func New(actx *app.AppContext, tier problemgen.Tier) *LabyrinthScreen {
	l := &LabyrinthScreen{
		actx:    actx,
		tier:    tier,
		scope:   schedule.NewScope(),
		levels:  tier.Config().MinigameLevels,
		started: actx.Now(),
	}
	l.nextMaze()
	return l
}

func (l *LabyrinthScreen) nextMaze() {
	l.maze = l.actx.Gen.Labyrinth(l.tier, problemgen.DefaultLabyrinthSize)
	l.pos = 0
	l.busy = false
	l.feedback = ""
	l.setChoices()
}

// door returns the cell the robot is trying to enter.
func (l *LabyrinthScreen) door() *problemgen.Cell {
	return l.maze.CellAt(l.maze.Path[l.pos+1])
}

func (l *LabyrinthScreen) setChoices() {
	l.choices = components.NewChoices(l.door().Options)
}

func (l *LabyrinthScreen) Init() tea.Cmd {
	return nil
}

func (l *LabyrinthScreen) Close() {
	l.scope.Cancel()
}

func (l *LabyrinthScreen) Title() string {
	return l.actx.T.T("games.number_labyrinth")
}

func (l *LabyrinthScreen) KeyHints() []layout.KeyHint {
	t := l.actx.T
	return []layout.KeyHint{
		{Key: "←→", Description: t.T("common.navigate")},
		{Key: "Enter", Description: t.T("common.select")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (l *LabyrinthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextLevelMsg:
		if msg.level != l.level {
			return l, nil
		}
		return l, l.advance()

	case tea.KeyPressMsg:
		if l.busy {
			return l, nil
		}
		var picked int
		l.choices, picked = l.choices.Update(msg)
		if picked >= 0 {
			return l, l.answer(l.choices.Value(picked))
		}
	}
	return l, nil
}

func (l *LabyrinthScreen) answer(n int) tea.Cmd {
	t := l.actx.T
	door := l.door()
	l.correct = n == door.Answer
	l.unlocked = append(l.unlocked, l.actx.Attempt(progress.TypeLabyrinth, l.correct, l.tier)...)

	if !l.correct {
		l.feedback = t.T("common.incorrect")
		return nil
	}

	l.score++
	l.pos++
	l.feedback = t.T("common.correct")
	if l.pos < len(l.maze.Path)-1 {
		l.setChoices()
		return nil
	}

	l.busy = true
	l.feedback = t.T("feedback.excellent")
	return l.scope.After(levelDelay, nextLevelMsg{level: l.level})
}

func (l *LabyrinthScreen) advance() tea.Cmd {
	l.level++
	if l.level >= l.levels {
		out := l.actx.FinishGame(rewards.GameLabyrinth, l.score, l.started, l.unlocked)
		return router.Replace(results.New(l.actx, l.Title(), out))
	}
	l.nextMaze()
	return nil
}

// renderMaze draws the grid: the robot, cleared cells, the next door, the
// rest of the path and walls.
func (l *LabyrinthScreen) renderMaze() string {
	visited := make(map[problemgen.Point]bool, l.pos+1)
	for _, p := range l.maze.Path[:l.pos+1] {
		visited[p] = true
	}
	robot := l.maze.Path[l.pos]
	var next problemgen.Point
	hasNext := l.pos+1 < len(l.maze.Path)
	if hasNext {
		next = l.maze.Path[l.pos+1]
	}

	cellStyle := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	wall := cellStyle.Foreground(theme.Border)
	path := cellStyle.Foreground(theme.TextDim)

	var rows []string
	for y := range l.maze.Size {
		var row strings.Builder
		for x := range l.maze.Size {
			p := problemgen.Point{X: x, Y: y}
			cell := l.maze.CellAt(p)
			switch {
			case p == robot:
				row.WriteString(cellStyle.Render("🤖"))
			case hasNext && p == next:
				row.WriteString(cellStyle.Foreground(theme.Accent).Bold(true).Render("🚪"))
			case p == l.maze.End:
				row.WriteString(cellStyle.Render("🏁"))
			case visited[p]:
				row.WriteString(cellStyle.Foreground(theme.Success).Render("✓"))
			case cell.OnPath:
				row.WriteString(path.Render("·"))
			default:
				row.WriteString(wall.Render("██"))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (l *LabyrinthScreen) View(width, height int) string {
	t := l.actx.T
	cw := components.ContentWidth(width)

	top := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.T("games.level", "current", l.level+1, "total", l.levels)) +
		"   " + lipgloss.NewStyle().Foreground(theme.Spark).Render(t.T("game_ui.score", "score", l.score))

	sections := []string{theme.Body.Render(t.T("games.help_robot")), "", l.renderMaze(), ""}
	if !l.busy {
		question := l.door().Question + " = ?"
		if l.actx.LargeText() {
			question = components.BigText(question)
		}
		sections = append(sections,
			theme.Hint.Render(t.T("games.choose_door")),
			theme.Title.Render(question),
			"",
			l.choices.View(),
		)
	}

	feedback := " "
	if l.feedback != "" {
		style := theme.Incorrect
		if l.correct {
			style = theme.Correct
		}
		feedback = style.Render(l.feedback)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		components.Card(lipgloss.JoinVertical(lipgloss.Center, sections...), cw),
		"",
		feedback,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
