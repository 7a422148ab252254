package problemgen

// SequenceLength is the number of terms in a generated sequence.
const SequenceLength = 5

// SequenceKind selects the progression used to build a sequence.
type SequenceKind string

const (
	// SequenceAny lets the generator pick a kind uniformly.
	SequenceAny  SequenceKind = ""
	SequenceAdd  SequenceKind = "add"
	SequenceSub  SequenceKind = "sub"
	SequenceEven SequenceKind = "even"
	SequenceOdd  SequenceKind = "odd"
)

// AllSequenceKinds returns every concrete sequence kind.
func AllSequenceKinds() []SequenceKind {
	return []SequenceKind{SequenceAdd, SequenceSub, SequenceEven, SequenceOdd}
}

// Sequence is a run of numbers with two hidden positions.
type Sequence struct {
	Kind   SequenceKind
	Values [SequenceLength]int

	// Missing holds the hidden indices. Missing[0] is 1 or 2 and
	// Missing[1] is 3 or 4, so the gaps are distinct and never at the ends.
	Missing [2]int

	// Answers holds the hidden values, aligned with Missing.
	Answers [2]int
}

// IsMissing reports whether index i is hidden.
func (s Sequence) IsMissing(i int) bool {
	return s.Missing[0] == i || s.Missing[1] == i
}

// Sequence generates a number sequence for the tier. When kind is
// SequenceAny the kind is chosen uniformly.
//
// Decreasing sequences start in [max/2, max) with a step of 1-3, so on the
// easy tier the last terms can go negative.
func (g *Generator) Sequence(tier Tier, kind SequenceKind) Sequence {
	maxNum := tier.MaxNumber()
	if kind == SequenceAny {
		kinds := AllSequenceKinds()
		kind = kinds[g.rnd.IntN(len(kinds))]
	}

	var start, step int
	switch kind {
	case SequenceAdd:
		start = g.rnd.IntN(maxNum / 2)
		step = g.rnd.IntN(3) + 1
	case SequenceSub:
		start = g.rnd.IntN(maxNum/2) + maxNum/2
		step = -(g.rnd.IntN(3) + 1)
	case SequenceEven:
		start = int(g.rnd.Float64()*float64(maxNum)/4) * 2
		step = 2
	case SequenceOdd:
		start = int(g.rnd.Float64()*float64(maxNum)/4)*2 + 1
		step = 2
	}

	seq := Sequence{Kind: kind}
	for i := range SequenceLength {
		seq.Values[i] = start + i*step
	}

	seq.Missing = [2]int{
		g.rnd.IntN(2) + 1,
		g.rnd.IntN(2) + 3,
	}
	seq.Answers = [2]int{
		seq.Values[seq.Missing[0]],
		seq.Values[seq.Missing[1]],
	}
	return seq
}
