package rewards

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/reasontree/internal/store"
)

const (
	// LeafPerLesson is the default number of leaves granted for a lesson.
	LeafPerLesson = 1

	// SparksPerGame caps the sparks a single game can grant.
	SparksPerGame = 3

	// FlowerAtLeaves is how many leaves make one flower.
	FlowerAtLeaves = 10

	// MaxRecentRewards bounds the recent reward list.
	MaxRecentRewards = 10

	ZoneNumberCity = "number_city"
	ZoneLogicPark  = "logic_park"
)

// EventType is the kind of reward event.
type EventType string

const (
	EventLeaves EventType = "leaves"
	EventSparks EventType = "sparks"
	EventZone   EventType = "zone"
)

// RewardEvent is one entry in the recent rewards list.
type RewardEvent struct {
	ID    string    `json:"id"`
	Type  EventType `json:"type"`
	Count int       `json:"count,omitempty"`
	Zone  string    `json:"zone,omitempty"`
	At    time.Time `json:"timestamp"`
}

// State is the persisted reward tree. Flowers and Stage are derived from
// Leaves and are recomputed on every change and on load.
type State struct {
	Leaves        int           `json:"leaves"`
	Sparks        int           `json:"sparks"`
	Flowers       int           `json:"flowers"`
	Stage         Stage         `json:"stage"`
	UnlockedZones []string      `json:"unlocked_zones"`
	RecentRewards []RewardEvent `json:"recent_rewards"`
}

// DefaultState returns the tree of a new learner.
func DefaultState() State {
	return State{
		Stage:         StageSapling,
		UnlockedZones: []string{ZoneNumberCity},
		RecentRewards: []RewardEvent{},
	}
}

func (s State) clone() State {
	c := s
	c.UnlockedZones = append([]string{}, s.UnlockedZones...)
	c.RecentRewards = append([]RewardEvent{}, s.RecentRewards...)
	return c
}

// LeafResult reports the outcome of AddLeaves.
type LeafResult struct {
	Leaves   int
	NewStage bool
}

// Growth describes progress toward the next stage.
type Growth struct {
	Percent         int
	Current         StageInfo
	Next            *StageInfo
	LeavesUntilNext int
}

// Engine converts completed lessons and games into reward currency and
// grows the tree.
//
// An Engine is owned by the UI loop and is not safe for concurrent use.
type Engine struct {
	state     State
	persister store.Persister
	logger    logrus.FieldLogger
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger used for reward events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine holding the default state.
func NewEngine(p store.Persister, opts ...Option) *Engine {
	e := &Engine{
		state:     DefaultState(),
		persister: p,
		logger:    logrus.StandardLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load merges persisted state over the defaults and re-derives the stage
// and flowers from the stored leaves.
func (e *Engine) Load(ctx context.Context) {
	st := DefaultState()
	if !e.persister.Load(ctx, store.KeyTreeState, &st) {
		return
	}
	if st.UnlockedZones == nil {
		st.UnlockedZones = []string{ZoneNumberCity}
	}
	if st.RecentRewards == nil {
		st.RecentRewards = []RewardEvent{}
	}
	st.derive()
	e.state = st
}

func (s *State) derive() {
	s.Flowers = s.Leaves / FlowerAtLeaves
	s.Stage = StageFor(s.Leaves)
}

// AddLeaves adds count leaves (LeafPerLesson when count <= 0), recomputes
// flowers and stage, and unlocks the logic park the first time the tree
// flowers.
func (e *Engine) AddLeaves(ctx context.Context, count int) LeafResult {
	if count <= 0 {
		count = LeafPerLesson
	}

	prev := e.state.Stage
	e.state.Leaves += count
	e.state.derive()
	e.push(RewardEvent{Type: EventLeaves, Count: count})

	newStage := e.state.Stage != prev
	if newStage {
		e.logger.WithFields(logrus.Fields{
			"from":   prev,
			"to":     e.state.Stage,
			"leaves": e.state.Leaves,
		}).Info("tree grew")
	}

	if e.state.Stage == StageFlowering {
		e.unlock(ZoneLogicPark)
	}

	e.save(ctx)
	return LeafResult{Leaves: count, NewStage: newStage}
}

// AddSparks adds count sparks. Sparks never affect the stage. A count of
// zero or less is ignored and records no event, so sparks never decrease.
func (e *Engine) AddSparks(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	e.state.Sparks += count
	e.push(RewardEvent{Type: EventSparks, Count: count})
	e.save(ctx)
}

// UnlockZone adds name to the unlocked zones. It reports false and does
// nothing if the zone was already unlocked.
func (e *Engine) UnlockZone(ctx context.Context, name string) bool {
	if !e.unlock(name) {
		return false
	}
	e.save(ctx)
	return true
}

func (e *Engine) unlock(name string) bool {
	if lo.Contains(e.state.UnlockedZones, name) {
		return false
	}
	e.state.UnlockedZones = append(e.state.UnlockedZones, name)
	e.push(RewardEvent{Type: EventZone, Zone: name})
	e.logger.WithField("zone", name).Info("zone unlocked")
	return true
}

func (e *Engine) push(ev RewardEvent) {
	ev.ID = uuid.NewString()
	ev.At = e.now()
	recent := append([]RewardEvent{ev}, e.state.RecentRewards...)
	e.state.RecentRewards = lo.Subset(recent, 0, MaxRecentRewards)
}

// GrowthProgress reports how far the tree is toward its next stage.
func (e *Engine) GrowthProgress() Growth {
	cur := e.state.Stage.Info()
	next := e.state.Stage.Next()
	if next == nil {
		return Growth{Percent: 100, Current: cur}
	}

	span := next.Min - cur.Min
	done := e.state.Leaves - cur.Min
	pct := min(100, int(math.Round(float64(done)/float64(span)*100)))

	return Growth{
		Percent:         pct,
		Current:         cur,
		Next:            next,
		LeavesUntilNext: next.Min - e.state.Leaves,
	}
}

// RecentRewards returns up to n of the newest reward events.
func (e *Engine) RecentRewards(n int) []RewardEvent {
	if n <= 0 {
		return nil
	}
	return append([]RewardEvent(nil), lo.Subset(e.state.RecentRewards, 0, uint(n))...)
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

func (e *Engine) save(ctx context.Context) {
	e.persister.Save(ctx, store.KeyTreeState, e.state)
}
