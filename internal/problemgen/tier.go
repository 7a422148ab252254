package problemgen

import (
	"errors"
	"fmt"
)

// ErrUnknownTier is returned when a tier name does not match any known tier.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Tier is a difficulty level bounding the numeric range of generated questions.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// TierConfig holds the per-tier generation parameters.
type TierConfig struct {
	// MaxNumber is the inclusive upper bound for operands.
	MaxNumber int

	// MinigameLevels is how many levels a mini-game runs at this tier.
	MinigameLevels int

	// PairCount is the number of equation/answer pairs in a matching game.
	PairCount int
}

var tierConfigs = map[Tier]TierConfig{
	TierEasy:   {MaxNumber: 10, MinigameLevels: 3, PairCount: 4},
	TierMedium: {MaxNumber: 20, MinigameLevels: 5, PairCount: 6},
	TierHard:   {MaxNumber: 50, MinigameLevels: 8, PairCount: 8},
}

// AllTiers returns all tiers in ascending difficulty.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// ParseTier converts a tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierConfigs[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Config returns the generation parameters for the tier.
// Unknown tiers fall back to the easy configuration.
func (t Tier) Config() TierConfig {
	if cfg, ok := tierConfigs[t]; ok {
		return cfg
	}
	return tierConfigs[TierEasy]
}

// MaxNumber is shorthand for t.Config().MaxNumber.
func (t Tier) MaxNumber() int {
	return t.Config().MaxNumber
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierConfigs[t]
	return ok
}
