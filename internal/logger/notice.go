package logger

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// NoticeInfo identifies the rollup notice a log line belongs to
type NoticeInfo struct {
	Kind        string
	Subject     string
	InputIndex  uint64
	NoticeIndex uint64
}

// Fields returns the notice identity as zap fields
func (n NoticeInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("notice_kind", n.Kind),
		zap.String("subject", n.Subject),
		zap.Uint64("input_index", n.InputIndex),
		zap.Uint64("notice_index", n.NoticeIndex),
	}
}

// WithNotice returns a context carrying a sentry hub tagged with the notice, so
// errors reported through FromContext can be traced back to the input that
// produced them. The context is returned unchanged when sentry is disabled.
func WithNotice(ctx context.Context, info NoticeInfo) context.Context {
	if sentryClient == nil {
		return ctx
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.NewHub(sentryClient, sentry.NewScope())
	} else {
		hub = hub.Clone()
	}
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("notice_kind", info.Kind)
		scope.SetTag("subject", info.Subject)
		scope.SetContext("notice", sentry.Context{
			"input_index":  info.InputIndex,
			"notice_index": info.NoticeIndex,
		})
	})

	return sentry.SetHubOnContext(ctx, hub)
}

// FromNotice returns a context-scoped logger with the notice fields attached
func FromNotice(ctx context.Context, info NoticeInfo) *zap.Logger {
	return FromContext(ctx).With(info.Fields()...)
}
