// Package schedule provides delayed messages tied to a screen's lifetime.
package schedule

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Scope is a cancellation domain for delayed messages. Each screen owns one
// and cancels it when it is closed; messages scheduled on a cancelled scope
// are never delivered.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   <-chan struct{}
}

// Fired wraps a delayed message on its way back to the update loop.
type Fired struct {
	Scope *Scope
	Msg   tea.Msg
}

// NewScope creates an active scope.
func NewScope() *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{ctx: ctx, cancel: cancel, done: ctx.Done()}
}

// Context returns a context that is cancelled together with the scope.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Do returns a command that runs fn with the scope's context and delivers
// its result wrapped in Fired. A nil result, or a scope cancelled while fn
// ran, delivers nothing.
func (s *Scope) Do(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg := fn(s.ctx)
		if msg == nil || s.Cancelled() {
			return nil
		}
		return Fired{Scope: s, Msg: msg}
	}
}

// After returns a command that delivers msg, wrapped in Fired, once d has
// elapsed. If the scope is cancelled first the command delivers nothing.
func (s *Scope) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-s.done:
			return nil
		}
		if s.Cancelled() {
			return nil
		}
		return Fired{Scope: s, Msg: msg}
	}
}

// Cancel stops delivery of every pending message. It is safe to call more
// than once.
func (s *Scope) Cancel() {
	s.cancel()
}

// Cancelled reports whether Cancel has been called.
func (s *Scope) Cancelled() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Unwrap returns the payload of a Fired message whose scope is still
// active. Any other message is returned unchanged with ok=true; a Fired
// message from a cancelled scope yields ok=false and must be dropped.
func Unwrap(msg tea.Msg) (tea.Msg, bool) {
	f, ok := msg.(Fired)
	if !ok {
		return msg, true
	}
	if f.Scope == nil || f.Scope.Cancelled() {
		return nil, false
	}
	return f.Msg, true
}
