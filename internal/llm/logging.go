package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx, e.g. "story-narration".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner  Provider
	logger logrus.FieldLogger
}

// WithLogging wraps p so each call is logged to logger.
func WithLogging(p Provider, logger logrus.FieldLogger) Provider {
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := l.logger.WithFields(logrus.Fields{
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if req.Schema != nil {
		entry = entry.WithField("schema", req.Schema.Name)
	}
	if err != nil {
		entry.WithError(err).Warn("llm request failed")
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
	}).Debug("llm request")
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
