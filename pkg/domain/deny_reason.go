package domain

// DenyReason is the closed set of reasons a privacy evaluation or a routing
// attempt can be denied with. Audit dashboards and UI messaging switch on the
// exact string values, so they must never change.
type DenyReason string

const (
	// Privacy kernel reasons.
	ReasonConsentRequired         DenyReason = "consent_required"
	ReasonCrossScopeRead          DenyReason = "cross_scope_read"
	ReasonPersistentOptInRequired DenyReason = "persistent_opt_in_required"

	// Router reasons.
	ReasonExplicitConsentRequired DenyReason = "explicit_consent_required"
	ReasonContextMismatch         DenyReason = "context_mismatch"
	ReasonPrivacyDenied           DenyReason = "privacy_denied" // fallback only
	ReasonActionRestricted        DenyReason = "action_restricted"
	ReasonUnsupportedAction       DenyReason = "unsupported_action_or_unknown_device"
)

func (r DenyReason) String() string {
	return string(r)
}
