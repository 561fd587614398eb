package audit

import (
	"time"

	"actionkernel/pkg/domain"
)

// Decision is the binary outcome recorded on an audit event.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionDeny  Decision = "deny"
)

// Event is the privacy kernel's record of a single evaluation. It carries only
// the consent and scope computation; routing gates are recorded separately.
// Events are values and are never mutated after creation.
type Event struct {
	ID        string                    `json:"id"`
	Timestamp time.Time                 `json:"timestamp"`
	Decision  Decision                  `json:"decision"`
	Purpose   domain.ConsentPurpose     `json:"purpose"`
	Scope     domain.DataScope          `json:"scope"`
	ContextID domain.ExecutionContextID `json:"context_id,omitempty"`
	Reason    domain.DenyReason         `json:"reason,omitempty"`
}

// Summary partitions a report's events by decision.
type Summary struct {
	Allowed int `json:"allowed"`
	Denied  int `json:"denied"`
}

// Report is a point-in-time snapshot of events with a decision summary.
type Report struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Events    []Event   `json:"events"`
	Summary   Summary   `json:"summary"`
}
