package privacy

import (
	"actionkernel/internal/consent"
	"actionkernel/pkg/domain"
)

// evaluation is the normalized input every rule sees.
type evaluation struct {
	req    Request
	token  *consent.Token
	from   domain.DataScope
	target domain.DataScope
}

type rule struct {
	reason domain.DenyReason
	denies func(e evaluation) bool
}

// rules is the privacy gate chain.
// Rule priority (fail-fast):
//  1. Consent - token must be explicit and grant the purpose for the target
//  2. Cross-scope read - any scope change is rejected, even with consent
//  3. Persistent opt-in - persistent targets need an explicit opt-in
//
// Order is observable through the reported reason and must not change.
var rules = []rule{
	{
		reason: domain.ReasonConsentRequired,
		denies: func(e evaluation) bool {
			return !consent.HasConsent(e.token, e.req.Purpose, consent.Constraint{
				Scope:     e.target,
				ContextID: e.req.ContextID,
			})
		},
	},
	{
		reason: domain.ReasonCrossScopeRead,
		denies: func(e evaluation) bool {
			return domain.IsCrossScopeRead(e.from, e.target)
		},
	},
	{
		reason: domain.ReasonPersistentOptInRequired,
		denies: func(e evaluation) bool {
			return domain.RequiresPersistentOptIn(e.target, e.req.PersistentOptIn)
		},
	},
}

// firstDenial runs the chain and returns the first failing rule's reason.
// This is pure domain logic - no I/O, no side effects.
func firstDenial(e evaluation) (domain.DenyReason, bool) {
	for _, r := range rules {
		if r.denies(e) {
			return r.reason, true
		}
	}
	return "", false
}
