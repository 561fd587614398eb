package privacy

import (
	"actionkernel/internal/audit"
	"actionkernel/pkg/domain"
)

// Request asks whether data may move from one scope into another for a
// purpose. Empty scopes normalize to ephemeral; an empty ContextID is not
// checked against the token.
type Request struct {
	Purpose         domain.ConsentPurpose     `json:"purpose"`
	FromScope       domain.DataScope          `json:"from_scope,omitempty"`
	TargetScope     domain.DataScope          `json:"target_scope,omitempty"`
	ContextID       domain.ExecutionContextID `json:"context_id,omitempty"`
	PersistentOptIn bool                      `json:"persistent_opt_in,omitempty"`
}

// Decision is the outcome of one evaluation. It is computed fresh on every
// call and always carries exactly one audit event.
type Decision struct {
	Allowed bool              `json:"allowed"`
	Reason  domain.DenyReason `json:"reason,omitempty"`
	Audit   audit.Event       `json:"audit"`
}
