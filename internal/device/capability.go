package device

import (
	"slices"

	"actionkernel/pkg/domain"
)

// IsActionSupported reports whether p may perform action. A nil profile, an
// unknown device, or a restricted action all report false.
func IsActionSupported(p *Profile, action domain.VoiceActionType) bool {
	if p == nil || p.Type == TypeUnknown {
		return false
	}
	if slices.Contains(p.RestrictedActions, action) {
		return false
	}
	return slices.Contains(p.SupportedActions, action)
}

// IsActionRestricted reports whether action is restricted on p. A nil profile
// restricts everything.
func IsActionRestricted(p *Profile, action domain.VoiceActionType) bool {
	if p == nil {
		return true
	}
	return slices.Contains(p.RestrictedActions, action)
}
