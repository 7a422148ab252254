package problemgen

const (
	// maxOptionOffset bounds how far a distractor may sit from the answer.
	maxOptionOffset = 5

	// maxOptionDraws caps random distractor draws before falling back to a
	// deterministic fill.
	maxOptionDraws = 100
)

// Options returns the correct answer plus count distinct, non-negative
// distractors in shuffled order.
//
// Distractors are drawn at random offsets in [-5, +5] around the answer.
// Small answers have few non-negative neighbours (0 has five), so after
// maxOptionDraws draws any remaining slots are filled with the next unused
// values above the answer.
func (g *Generator) Options(answer, count int) []int {
	options := make([]int, 0, count+1)
	options = append(options, answer)
	used := map[int]bool{answer: true}

	for draws := 0; len(options) < count+1 && draws < maxOptionDraws; draws++ {
		offset := g.rnd.IntN(2*maxOptionOffset+1) - maxOptionOffset
		opt := answer + offset
		if opt < 0 || used[opt] {
			continue
		}
		used[opt] = true
		options = append(options, opt)
	}

	for next := answer + 1; len(options) < count+1; next++ {
		if next < 0 || used[next] {
			continue
		}
		used[next] = true
		options = append(options, next)
	}

	shuffle(g.rnd, options)
	return options
}
