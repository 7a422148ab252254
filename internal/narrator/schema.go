package narrator

import "github.com/abhisek/reasontree/internal/llm"

// StorySchema is the structured output expected from a retelling.
var StorySchema = &llm.Schema{
	Name:        "story-retelling",
	Description: "A short word problem retold for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"story": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One or two sentences ending with a question",
			},
			"first": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "The first number used in the story",
			},
			"second": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "The second number used in the story",
			},
		},
		"required":             []any{"story", "first", "second"},
		"additionalProperties": false,
	},
}
