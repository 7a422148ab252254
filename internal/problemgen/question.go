package problemgen

import "fmt"

// Operation is an arithmetic operation.
type Operation string

const (
	// OpAny lets the generator pick an operation uniformly.
	OpAny Operation = ""
	OpAdd Operation = "+"
	OpSub Operation = "-"
)

// Question is a single arithmetic question. It is created per question and
// discarded after grading.
type Question struct {
	First  int
	Second int
	Op     Operation
	Answer int

	// Text is the display form, e.g. "7 - 3".
	Text string
}

// ObjectType tags a visual question with the object drawn for each unit.
type ObjectType string

const (
	ObjectApple  ObjectType = "apple"
	ObjectCube   ObjectType = "cube"
	ObjectBear   ObjectType = "bear"
	ObjectBird   ObjectType = "bird"
	ObjectFlower ObjectType = "flower"
	ObjectStar   ObjectType = "star"
)

// AllObjectTypes returns the object types a visual question can use.
func AllObjectTypes() []ObjectType {
	return []ObjectType{ObjectApple, ObjectCube, ObjectBear, ObjectBird, ObjectFlower, ObjectStar}
}

// Emoji returns the glyph used to draw one object.
func (o ObjectType) Emoji() string {
	switch o {
	case ObjectApple:
		return "🍎"
	case ObjectCube:
		return "🧊"
	case ObjectBear:
		return "🧸"
	case ObjectBird:
		return "🐦"
	case ObjectFlower:
		return "🌸"
	default:
		return "⭐"
	}
}

// VisualQuestion is a question drawn with countable objects.
type VisualQuestion struct {
	Question
	Object ObjectType
}

// StoryProblem is a question wrapped in a short narrative.
type StoryProblem struct {
	Question

	// StoryKey is the localization key of the narrative template.
	StoryKey string

	// StoryText is the rendered narrative.
	StoryText string
}

// TextLookup renders a localized template with interpolation values.
type TextLookup func(key string, values map[string]any) string

var (
	additionStories = []string{
		"story_problems.birds_tree",
		"story_problems.apples_basket",
		"story_problems.books",
	}
	subtractionStories = []string{
		"story_problems.candies",
		"story_problems.toys",
		"story_problems.flowers",
	}
)

// StoryKeys returns the template keys used for op.
func StoryKeys(op Operation) []string {
	if op == OpAdd {
		return append([]string(nil), additionStories...)
	}
	return append([]string(nil), subtractionStories...)
}

// Question draws two operands uniformly from [0, MaxNumber] for the tier.
// When op is OpAny the operation is chosen uniformly. For subtraction the
// operands are swapped if needed so the answer is never negative.
func (g *Generator) Question(tier Tier, op Operation) Question {
	maxNum := tier.MaxNumber()
	a := g.rnd.IntN(maxNum + 1)
	b := g.rnd.IntN(maxNum + 1)

	if op == OpAny {
		op = OpSub
		if g.coin() {
			op = OpAdd
		}
	}

	first, second := a, b
	if op == OpSub && b > a {
		first, second = b, a
	}

	answer := first + second
	if op == OpSub {
		answer = first - second
	}

	return Question{
		First:  first,
		Second: second,
		Op:     op,
		Answer: answer,
		Text:   fmt.Sprintf("%d %s %d", first, op, second),
	}
}

// Visual generates a question tagged with a random object type.
func (g *Generator) Visual(tier Tier, op Operation) VisualQuestion {
	q := g.Question(tier, op)
	objects := AllObjectTypes()
	return VisualQuestion{
		Question: q,
		Object:   objects[g.rnd.IntN(len(objects))],
	}
}

// Story generates a question and selects one of three operation-specific
// narrative templates, rendered through lookup with the operands as
// "first" and "second".
func (g *Generator) Story(tier Tier, op Operation, lookup TextLookup) StoryProblem {
	q := g.Question(tier, op)
	stories := subtractionStories
	if q.Op == OpAdd {
		stories = additionStories
	}
	key := stories[g.rnd.IntN(len(stories))]

	var text string
	if lookup != nil {
		text = lookup(key, map[string]any{"first": q.First, "second": q.Second})
	}

	return StoryProblem{
		Question:  q,
		StoryKey:  key,
		StoryText: text,
	}
}
