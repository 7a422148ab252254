package problemgen

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// scriptedSource replays fixed draws, then falls back to a seeded source.
type scriptedSource struct {
	ints     []int
	floats   []float64
	fallback *rand.Rand
}

func newScripted(ints []int, floats []float64) *scriptedSource {
	return &scriptedSource{
		ints:     ints,
		floats:   floats,
		fallback: rand.New(rand.NewPCG(7, 11)),
	}
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return s.fallback.IntN(n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallback.Float64()
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func seeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestQuestion_SubtractionSwapsOperands(t *testing.T) {
	g := New(newScripted([]int{3, 7}, nil))

	q := g.Question(TierEasy, OpSub)

	if q.First != 7 || q.Second != 3 {
		t.Errorf("operands = (%d, %d), want (7, 3)", q.First, q.Second)
	}
	if q.Answer != 4 {
		t.Errorf("Answer = %d, want 4", q.Answer)
	}
	if q.Text != "7 - 3" {
		t.Errorf("Text = %q, want %q", q.Text, "7 - 3")
	}
}

func TestQuestion_AdditionKeepsOrder(t *testing.T) {
	g := New(newScripted([]int{3, 7}, nil))

	q := g.Question(TierEasy, OpAdd)

	if q.First != 3 || q.Second != 7 || q.Answer != 10 {
		t.Errorf("got %+v, want 3 + 7 = 10", q)
	}
}

func TestQuestion_RandomOperation(t *testing.T) {
	tests := []struct {
		coin float64
		want Operation
	}{
		{0.1, OpAdd},
		{0.7, OpSub},
	}
	for _, tt := range tests {
		g := New(newScripted([]int{5, 2}, []float64{tt.coin}))
		q := g.Question(TierEasy, OpAny)
		if q.Op != tt.want {
			t.Errorf("coin %.1f: Op = %q, want %q", tt.coin, q.Op, tt.want)
		}
	}
}

func TestQuestion_Invariants(t *testing.T) {
	g := seeded(42)
	for _, tier := range AllTiers() {
		maxNum := tier.MaxNumber()
		for i := 0; i < 500; i++ {
			q := g.Question(tier, OpAny)
			if q.First < 0 || q.First > maxNum || q.Second < 0 || q.Second > maxNum {
				t.Fatalf("%s: operands out of range: %+v", tier, q)
			}
			switch q.Op {
			case OpAdd:
				if q.Answer != q.First+q.Second {
					t.Fatalf("%s: bad sum: %+v", tier, q)
				}
			case OpSub:
				if q.First < q.Second || q.Answer < 0 || q.Answer != q.First-q.Second {
					t.Fatalf("%s: bad difference: %+v", tier, q)
				}
			default:
				t.Fatalf("unexpected op %q", q.Op)
			}
		}
	}
}

func TestVisual_PicksKnownObject(t *testing.T) {
	g := seeded(3)
	known := make(map[ObjectType]bool)
	for _, o := range AllObjectTypes() {
		known[o] = true
	}
	for i := 0; i < 50; i++ {
		v := g.Visual(TierMedium, OpAdd)
		if !known[v.Object] {
			t.Fatalf("unknown object type %q", v.Object)
		}
		if v.Op != OpAdd || v.Answer != v.First+v.Second {
			t.Fatalf("visual arithmetic broken: %+v", v.Question)
		}
	}
}

func TestStory_TemplateMatchesOperation(t *testing.T) {
	g := seeded(5)
	var gotValues map[string]any
	lookup := func(key string, values map[string]any) string {
		gotValues = values
		return "story:" + key
	}

	for i := 0; i < 30; i++ {
		for _, op := range []Operation{OpAdd, OpSub} {
			sp := g.Story(TierEasy, op, lookup)
			if !containsString(StoryKeys(op), sp.StoryKey) {
				t.Fatalf("key %q not in %s pool", sp.StoryKey, op)
			}
			if sp.StoryText != "story:"+sp.StoryKey {
				t.Errorf("StoryText = %q", sp.StoryText)
			}
			if gotValues["first"] != sp.First || gotValues["second"] != sp.Second {
				t.Errorf("interpolation values = %v, want first=%d second=%d", gotValues, sp.First, sp.Second)
			}
		}
	}
}

func TestStory_NilLookup(t *testing.T) {
	sp := seeded(1).Story(TierEasy, OpAdd, nil)
	if sp.StoryText != "" {
		t.Errorf("expected empty text without lookup, got %q", sp.StoryText)
	}
	if !strings.HasPrefix(sp.StoryKey, "story_problems.") {
		t.Errorf("unexpected key %q", sp.StoryKey)
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range AllTiers() {
		got, err := ParseTier(string(tier))
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %q, %v", tier, got, err)
		}
	}
	if _, err := ParseTier("extreme"); err == nil {
		t.Error("expected error for unknown tier")
	}
	if TierHard.Config().PairCount != 8 || TierEasy.Config().MinigameLevels != 3 {
		t.Error("unexpected tier configuration")
	}
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
