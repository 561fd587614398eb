package routing

import (
	"time"

	"actionkernel/internal/consent"
	"actionkernel/internal/intent"
	"actionkernel/internal/privacy"
	"actionkernel/pkg/domain"
)

// Mode describes how a route is executed. Routing here is always symbolic: it
// decides whether dispatch would be permitted and never dispatches.
type Mode string

const ModeSymbolic Mode = "symbolic"

// Route audit event names, one per gate plus the accept path.
const (
	EventDenyNoConsent       = "deny_no_consent"
	EventDenyContextMismatch = "deny_context_mismatch"
	EventDenyPrivacy         = "deny_privacy"
	EventDenyRestricted      = "deny_restricted"
	EventDenyUnsupported     = "deny_unsupported"
	EventAllowSymbolicRoute  = "allow_symbolic_route"
)

// Static advisory hints attached to accepted routes.
const (
	ServiceHintFutureServices = "compatible_with_future_services"
	APIHintNoHardDependencies = "no_hard_dependencies"
)

// Options narrows a routing attempt. The zero value routes ephemeral to
// ephemeral in the context implied by the command, without a token.
type Options struct {
	FromScope       domain.DataScope
	TargetScope     domain.DataScope
	ContextID       domain.ExecutionContextID
	ConsentToken    *consent.Token
	PersistentOptIn bool
}

// ContextAuditEvent is the router's own audit record. It covers every gate,
// including those the privacy kernel knows nothing about.
type ContextAuditEvent struct {
	ID        string                    `json:"id"`
	Timestamp time.Time                 `json:"timestamp"`
	Event     string                    `json:"event"`
	ContextID domain.ExecutionContextID `json:"context_id"`
	Details   map[string]any            `json:"details,omitempty"`
}

// RouteResult is the execution-context view of a routing decision.
type RouteResult struct {
	Accepted  bool                      `json:"accepted"`
	Reason    domain.DenyReason         `json:"reason,omitempty"`
	ContextID domain.ExecutionContextID `json:"context_id"`
	Mode      Mode                      `json:"mode"`
	Audit     ContextAuditEvent         `json:"audit"`
}

// Suggestion is the full outcome of routing one command. Privacy is always
// populated, whichever gate decided.
type Suggestion struct {
	Accepted    bool              `json:"accepted"`
	Reason      domain.DenyReason `json:"reason,omitempty"`
	Route       RouteResult       `json:"route"`
	Command     intent.Command    `json:"command"`
	Privacy     privacy.Decision  `json:"privacy"`
	ServiceHint string            `json:"service_hint,omitempty"`
	APIHint     string            `json:"api_hint,omitempty"`
}
