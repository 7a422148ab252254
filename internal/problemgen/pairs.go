package problemgen

// maxPairDraws bounds the rejection sampling for each pair.
const maxPairDraws = 20

// Pair is an equation and its answer for the matching game.
type Pair struct {
	ID       int
	Equation string
	Answer   int
}

// Pairs generates count equation/answer pairs whose answers are distinct.
// Each pair is redrawn up to 20 times while its answer collides with an
// earlier one; if the tier's answer space is too small the last draw is
// kept even when it duplicates.
func (g *Generator) Pairs(tier Tier, count int) []Pair {
	pairs := make([]Pair, 0, count)
	used := make(map[int]bool, count)

	for i := range count {
		var q Question
		for attempt := 0; attempt < maxPairDraws; attempt++ {
			q = g.Question(tier, OpAny)
			if !used[q.Answer] {
				break
			}
		}
		used[q.Answer] = true
		pairs = append(pairs, Pair{
			ID:       i,
			Equation: q.Text,
			Answer:   q.Answer,
		})
	}
	return pairs
}
