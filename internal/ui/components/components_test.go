package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/rewards"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg string

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("a") } }},
		{Label: "off2", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("b") } }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, cmd := m.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("b"), cmd())

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
	assert.Contains(t, m.View(20), "▸ a")
}

func TestChoices(t *testing.T) {
	c := NewChoices([]int{3, 5, 8})

	c, picked := c.Update(specialKey(tea.KeyRight))
	assert.Equal(t, -1, picked)
	assert.Equal(t, 1, c.Selected)

	_, picked = c.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, picked)

	c, picked = c.Update(keyPress('3'))
	assert.Equal(t, 2, picked)
	assert.Equal(t, 8, c.Value(picked))

	_, picked = c.Update(keyPress('9'))
	assert.Equal(t, -1, picked)
}

func TestAnswerInput_DigitsOnly(t *testing.T) {
	in := NewAnswerInput("?")
	for _, r := range "1x2" {
		in, _ = in.Update(keyPress(r))
	}
	assert.Equal(t, "12", in.Value())
	assert.True(t, in.Check(12))
	assert.False(t, in.Check(21))

	in.Submit(true)
	assert.Contains(t, in.View(), "✓")

	in.Reset()
	assert.Equal(t, "", in.Value())
	assert.NotContains(t, in.View(), "✓")
}

func TestProgressBar_Clamps(t *testing.T) {
	bar := NewProgressBar("", 150, true, 30)
	assert.Contains(t, bar.View(), "100%")

	bar.Percent = -5
	assert.Contains(t, bar.View(), "0%")
}

func TestToggle(t *testing.T) {
	tg := Toggle{Label: "Sound", On: true, OnLabel: "On", OffLabel: "Off"}
	assert.Contains(t, tg.View(true, 40), "▸ Sound")
	assert.Contains(t, tg.View(false, 40), "On")

	tg.On = false
	assert.Contains(t, tg.View(false, 40), "Off")
}

func TestBigText(t *testing.T) {
	out := BigText("7 + 1")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "███"))
	assert.Empty(t, BigText("abc"))
}

func TestRenderTree_ByStage(t *testing.T) {
	assert.NotEqual(t, RenderTree(rewards.StageSapling), RenderTree(rewards.StageFlowering))
	assert.Contains(t, RenderTree(rewards.StageSapling), "|")
}
