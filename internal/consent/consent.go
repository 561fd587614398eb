package consent

import "actionkernel/pkg/domain"

// HasConsent reports whether token grants purpose under the given constraint.
// It fails closed: a nil token, a non-explicit token, or a missing purpose all
// deny. Scope and context are checked only when the constraint supplies them.
func HasConsent(token *Token, purpose domain.ConsentPurpose, c Constraint) bool {
	if token == nil || !token.Explicit {
		return false
	}
	if !token.GrantsPurpose(purpose) {
		return false
	}
	if c.Scope != "" && !token.allowsScope(c.Scope) {
		return false
	}
	if c.ContextID != "" && !token.allowsContext(c.ContextID) {
		return false
	}
	return true
}
