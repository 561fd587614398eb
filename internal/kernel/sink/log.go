package sink

import (
	"context"
	"log/slog"

	"actionkernel/internal/audit"
	"actionkernel/internal/routing"
)

// LogSink writes audit events as structured log lines. It never fails, which
// makes it the default for hosts that ship logs elsewhere.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) RecordPrivacy(ctx context.Context, event audit.Event) error {
	s.logger.InfoContext(ctx, "privacy audit",
		"audit_id", event.ID,
		"decision", event.Decision,
		"purpose", event.Purpose,
		"scope", event.Scope,
		"context_id", event.ContextID,
		"reason", event.Reason,
	)
	return nil
}

func (s *LogSink) RecordRoute(ctx context.Context, event routing.ContextAuditEvent) error {
	attrs := []any{
		"audit_id", event.ID,
		"event", event.Event,
		"context_id", event.ContextID,
	}
	if len(event.Details) > 0 {
		attrs = append(attrs, "details", event.Details)
	}
	s.logger.InfoContext(ctx, "route audit", attrs...)
	return nil
}
