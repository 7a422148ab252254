package narrator

import (
	"fmt"
	"strings"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/problemgen"
)

const systemPrompt = `You write tiny arithmetic word problems for children aged 4 to 7. Use short sentences, friendly objects and no names of real people.`

func buildUserMessage(sp problemgen.StoryProblem, lang i18n.Lang) string {
	var b strings.Builder

	verb := "addition"
	if sp.Op == problemgen.OpSub {
		verb = "subtraction"
	}
	b.WriteString(fmt.Sprintf("Language: %s (%s)\n", lang.DisplayName(), lang))
	b.WriteString(fmt.Sprintf("Problem: %s (%s)\n", sp.Text, verb))
	if sp.StoryText != "" {
		b.WriteString(fmt.Sprintf("Current wording: %s\n", sp.StoryText))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
1. Retell the problem in the language above in at most two sentences, ending with a question.
2. Use exactly the numbers %d and %d, written as digits, in that order.
3. Do not state the answer.
4. Echo the two numbers you used in "first" and "second".`, sp.First, sp.Second))

	return b.String()
}
