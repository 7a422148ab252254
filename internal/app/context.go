package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/settings"
	"github.com/abhisek/reasontree/internal/store"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// Options configures NewAppContext. Only Repo is required.
type Options struct {
	Repo      store.Repo
	Logger    logrus.FieldLogger
	Generator *problemgen.Generator
	Narrator  *narrator.Narrator
	Clock     func() time.Time
}

// AppContext is the session-scoped state shared by every screen. It is
// owned by the update loop and must not be used from commands.
type AppContext struct {
	Ctx      context.Context
	Logger   logrus.FieldLogger
	Tracker  *progress.Tracker
	Engine   *rewards.Engine
	Settings *settings.Service
	T        *i18n.Translator
	Gen      *problemgen.Generator
	Narrator *narrator.Narrator

	// SessionID is set by StartSession.
	SessionID string

	now func() time.Time
}

// NewAppContext wires the services over opts.Repo. Call Load before use.
func NewAppContext(ctx context.Context, opts Options) *AppContext {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	gen := opts.Generator
	if gen == nil {
		gen = problemgen.NewDefault()
	}

	p := store.Quiet(opts.Repo, logger.WithField("component", "store"))
	t := i18n.MustNew(i18n.Default)

	return &AppContext{
		Ctx:    ctx,
		Logger: logger,
		Tracker: progress.NewTracker(p,
			progress.WithClock(now),
			progress.WithLogger(logger.WithField("component", "progress"))),
		Engine: rewards.NewEngine(p,
			rewards.WithClock(now),
			rewards.WithLogger(logger.WithField("component", "rewards"))),
		Settings: settings.NewService(p, t),
		T:        t,
		Gen:      gen,
		Narrator: opts.Narrator,
		now:      now,
	}
}

// Load restores settings, progress and the reward tree, then applies the
// stored palette.
func (a *AppContext) Load() {
	a.Settings.Load(a.Ctx)
	a.Tracker.Load(a.Ctx)
	a.Engine.Load(a.Ctx)
	a.ApplyTheme()
}

// ApplyTheme switches the palette to match the high-contrast setting.
func (a *AppContext) ApplyTheme() {
	theme.UsePalette(theme.For(a.Settings.Settings().HighContrast))
}

// StartSession counts a new play session.
func (a *AppContext) StartSession() {
	a.SessionID = a.Tracker.StartSession(a.Ctx)
}

// Now returns the current time from the context's clock.
func (a *AppContext) Now() time.Time {
	return a.now()
}

// Wallet returns the header reward summary.
func (a *AppContext) Wallet() layout.Wallet {
	st := a.Engine.State()
	return layout.Wallet{Leaves: st.Leaves, Sparks: st.Sparks}
}

// LargeText reports whether questions should be drawn in big digits.
func (a *AppContext) LargeText() bool {
	return a.Settings.Settings().LargeText
}

// ReducedMotion reports whether animations should be skipped.
func (a *AppContext) ReducedMotion() bool {
	return a.Settings.Settings().ReducedMotion
}
