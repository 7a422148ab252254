package store

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Persister is the persistence contract used by the progress tracker,
// reward engine and settings. Failures never reach the caller: Save
// reports whether the write landed and Load reports whether a value was
// found, so "not yet saved" and "load failed" look the same.
type Persister interface {
	Save(ctx context.Context, key Key, v any) bool
	Load(ctx context.Context, key Key, dst any) bool
}

// QuietPersister adapts a Repo to Persister, logging and swallowing errors.
type QuietPersister struct {
	repo   Repo
	logger logrus.FieldLogger
}

var _ Persister = (*QuietPersister)(nil)

// Quiet wraps repo so that failures are logged instead of returned.
// A nil logger discards log output.
func Quiet(repo Repo, logger logrus.FieldLogger) *QuietPersister {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &QuietPersister{repo: repo, logger: logger}
}

func (p *QuietPersister) Save(ctx context.Context, key Key, v any) bool {
	if err := p.repo.Save(ctx, key, v); err != nil {
		p.logger.WithError(err).WithField("key", string(key)).Error("error saving data")
		return false
	}
	return true
}

func (p *QuietPersister) Load(ctx context.Context, key Key, dst any) bool {
	err := p.repo.Load(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrNotFound) {
		p.logger.WithError(err).WithField("key", string(key)).Error("error loading data")
	}
	return false
}
