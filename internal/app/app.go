// Package app holds the session context shared by screens and the root
// Bubble Tea model that frames them.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	actx   *AppContext
	router *router.Router
	width  int
	height int
}

// NewAppModel creates the root model showing root first.
func NewAppModel(actx *AppContext, root screen.Screen) AppModel {
	return AppModel{
		actx:   actx,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	t := m.actx.T
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(t.T("common.too_small"), m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(t.T("app.name"), title, m.actx.Wallet(), m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	t := m.actx.T
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: t.T("common.back")},
			{Key: "Ctrl+C", Description: t.T("common.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.T("common.navigate")},
		{Key: "Enter", Description: t.T("common.select")},
		{Key: "Ctrl+C", Description: t.T("common.quit")},
	}
}

// Run starts the Bubble Tea program with root as the first screen.
func Run(actx *AppContext, root screen.Screen) error {
	p := tea.NewProgram(NewAppModel(actx, root))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
