// Package apptest builds application contexts for screen tests.
package apptest

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/store"
)

// Option adjusts the options passed to app.NewAppContext.
type Option func(*app.Options)

// WithNarrator attaches n.
func WithNarrator(n *narrator.Narrator) Option {
	return func(o *app.Options) { o.Narrator = n }
}

// WithClock fixes the clock.
func WithClock(now func() time.Time) Option {
	return func(o *app.Options) { o.Clock = now }
}

// WithRepo uses repo instead of a fresh in-memory store.
func WithRepo(repo store.Repo) Option {
	return func(o *app.Options) { o.Repo = repo }
}

// New returns a loaded context over an in-memory store with a seeded
// generator, a silent logger and English text regardless of the host
// locale.
func New(t testing.TB, opts ...Option) *app.AppContext {
	t.Helper()

	logger, _ := test.NewNullLogger()
	o := app.Options{
		Repo:      store.NewMemory(),
		Logger:    logger,
		Generator: problemgen.New(rand.New(rand.NewPCG(7, 11))),
	}
	for _, opt := range opts {
		opt(&o)
	}

	actx := app.NewAppContext(context.Background(), o)
	actx.Load()
	actx.Settings.ChangeLanguage(actx.Ctx, i18n.English)
	return actx
}

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

// NewClock starts a clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// Now returns the current instant.
func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }
