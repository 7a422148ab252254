package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// answerLimit is the widest answer a child needs to type.
const answerLimit = 4

// AnswerInput wraps bubbles/textinput for typing whole-number answers.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused answer field.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = answerLimit
	ti.Focus()

	return AnswerInput{Model: ti}
}

// Init returns the cursor blink command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update accepts digits and editing keys and drops any other printable key.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if text := kmsg.Text; text != "" {
			for _, r := range text {
				if r < '0' || r > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a mark once submitted.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the raw input.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Check grades the input against expected. Non-numeric input is wrong.
func (t AnswerInput) Check(expected int) bool {
	return problemgen.CheckAnswer(t.Model.Value(), expected)
}

// Submit marks the input as graded.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the grade mark.
func (t *AnswerInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
