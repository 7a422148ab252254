package rewards

// Stage is a tree growth stage. Stages only move forward.
type Stage string

const (
	StageSapling   Stage = "sapling"
	StageYoungTree Stage = "young_tree"
	StageFlowering Stage = "flowering"
)

// StageInfo describes the leaf range of a stage.
type StageInfo struct {
	Stage Stage

	// Min is the first leaf count in the stage; Max is exclusive.
	Min int
	Max int
}

var stages = []StageInfo{
	{Stage: StageSapling, Min: 0, Max: 10},
	{Stage: StageYoungTree, Min: 10, Max: 20},
	{Stage: StageFlowering, Min: 20, Max: 1000},
}

// Stages returns the growth stages in order.
func Stages() []StageInfo {
	return append([]StageInfo(nil), stages...)
}

// StageFor derives the stage for a leaf count.
func StageFor(leaves int) Stage {
	s := StageSapling
	for _, info := range stages {
		if leaves >= info.Min {
			s = info.Stage
		}
	}
	return s
}

// Info returns the leaf range of s. Unknown stages report the sapling range.
func (s Stage) Info() StageInfo {
	for _, info := range stages {
		if info.Stage == s {
			return info
		}
	}
	return stages[0]
}

func (s Stage) index() int {
	for i, info := range stages {
		if info.Stage == s {
			return i
		}
	}
	return 0
}

// Next returns the following stage, or nil at the last stage.
func (s Stage) Next() *StageInfo {
	i := s.index()
	if i+1 >= len(stages) {
		return nil
	}
	next := stages[i+1]
	return &next
}

// DisplayName returns a human-friendly name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageYoungTree:
		return "Young Tree"
	case StageFlowering:
		return "Flowering Tree"
	default:
		return "Sapling"
	}
}

// Icon returns the glyph drawn for the stage.
func (s Stage) Icon() string {
	switch s {
	case StageYoungTree:
		return "🌳"
	case StageFlowering:
		return "🌸"
	default:
		return "🌱"
	}
}
