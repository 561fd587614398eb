package kernel

import (
	"context"

	"actionkernel/internal/audit"
	"actionkernel/internal/routing"
)

// AuditSink receives both audit trails a routing attempt produces. The two
// trails are kept apart: privacy events describe only the consent and scope
// computation, route events describe the full gate chain.
//
// Sinks are fail-closed from the service's point of view: an error aborts the
// call and no decision is returned. Implementations signal a temporarily
// unreachable backend with sentinel.ErrUnavailable.
type AuditSink interface {
	RecordPrivacy(ctx context.Context, event audit.Event) error
	RecordRoute(ctx context.Context, event routing.ContextAuditEvent) error
}
