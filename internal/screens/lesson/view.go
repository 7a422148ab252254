package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// objectsPerRow wraps long object rows on the harder tiers.
const objectsPerRow = 10

type lessonView struct {
	width, height int

	counter  string
	score    string
	prompt   string
	picture  string
	question string
	input    string
	hint     string
	feedback string
	correct  bool
	percent  int
}

func renderLesson(lv lessonView) string {
	cw := components.ContentWidth(lv.width)

	top := lipgloss.NewStyle().Foreground(theme.TextDim).Render(lv.counter) +
		"   " + lipgloss.NewStyle().Foreground(theme.Spark).Render(lv.score)

	card := []string{theme.Body.Render(lv.prompt)}
	if lv.picture != "" && !layout.IsCompact(lv.width, lv.height) {
		card = append(card, "", lv.picture)
	}
	card = append(card, "", theme.Title.Render(lv.question), "", lv.input)
	if lv.hint != "" {
		card = append(card, "", theme.Hint.Render("💡 "+lv.hint))
	}

	feedback := " "
	if lv.feedback != "" {
		style := theme.Incorrect
		if lv.correct {
			style = theme.Correct
		}
		feedback = style.Render(lv.feedback)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		top,
		components.NewProgressBar("", lv.percent, false, cw).View(),
		"",
		components.Card(strings.Join(card, "\n"), cw),
		"",
		feedback,
	)
	return lipgloss.Place(lv.width, lv.height, lipgloss.Center, lipgloss.Center, content)
}

// renderObjects draws both operands as rows of the question's object.
func renderObjects(q problemgen.VisualQuestion) string {
	glyph := q.Object.Emoji()
	op := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(string(q.Op))
	return objectRows(glyph, q.First) + "\n" + op + "\n" + objectRows(glyph, q.Second)
}

func objectRows(glyph string, n int) string {
	if n == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("∅")
	}
	var rows []string
	for n > 0 {
		k := min(n, objectsPerRow)
		rows = append(rows, strings.Repeat(glyph, k))
		n -= k
	}
	return strings.Join(rows, "\n")
}
