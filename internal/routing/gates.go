package routing

import (
	"actionkernel/internal/consent"
	"actionkernel/internal/device"
	"actionkernel/internal/intent"
	"actionkernel/internal/privacy"
	"actionkernel/pkg/domain"
)

// routeInput is everything a gate may look at, resolved once per attempt.
type routeInput struct {
	cmd       intent.Command
	device    *device.Profile
	token     *consent.Token
	contextID domain.ExecutionContextID
	intended  domain.ExecutionContextID
	privacy   privacy.Decision
}

type gate struct {
	event   string
	denies  func(in routeInput) bool
	reason  func(in routeInput) domain.DenyReason
	details func(in routeInput) map[string]any
}

func fixedReason(r domain.DenyReason) func(routeInput) domain.DenyReason {
	return func(routeInput) domain.DenyReason { return r }
}

// gates is the router's decision chain.
// Gate priority (fail-fast):
//  1. Explicit consent - the router's own hard requirement, checked even
//     though the privacy kernel also looks at the token
//  2. Context mismatch - the supplied context must match the command's scope
//  3. Privacy - the kernel's decision for the resolved scopes
//  4. Device restriction
//  5. Device support - unknown devices support nothing
var gates = []gate{
	{
		event: EventDenyNoConsent,
		denies: func(in routeInput) bool {
			return in.token == nil || !in.token.Explicit
		},
		reason: fixedReason(domain.ReasonExplicitConsentRequired),
		details: func(routeInput) map[string]any {
			return map[string]any{"reason": domain.ReasonExplicitConsentRequired.String()}
		},
	},
	{
		event: EventDenyContextMismatch,
		denies: func(in routeInput) bool {
			return in.contextID != in.intended
		},
		reason: fixedReason(domain.ReasonContextMismatch),
		details: func(in routeInput) map[string]any {
			return map[string]any{
				"intended_context": in.intended.String(),
				"provided_context": in.contextID.String(),
			}
		},
	},
	{
		event: EventDenyPrivacy,
		denies: func(in routeInput) bool {
			return !in.privacy.Allowed
		},
		// May be empty; Route falls back to privacy_denied on the suggestion.
		reason: func(in routeInput) domain.DenyReason {
			return in.privacy.Reason
		},
		details: func(in routeInput) map[string]any {
			return map[string]any{"privacy_reason": in.privacy.Reason.String()}
		},
	},
	{
		event: EventDenyRestricted,
		denies: func(in routeInput) bool {
			return device.IsActionRestricted(in.device, in.cmd.ActionType)
		},
		reason: fixedReason(domain.ReasonActionRestricted),
		details: func(in routeInput) map[string]any {
			return map[string]any{"action": in.cmd.ActionType.String()}
		},
	},
	{
		event: EventDenyUnsupported,
		denies: func(in routeInput) bool {
			return !device.IsActionSupported(in.device, in.cmd.ActionType)
		},
		reason: fixedReason(domain.ReasonUnsupportedAction),
		details: func(in routeInput) map[string]any {
			return map[string]any{
				"action":      in.cmd.ActionType.String(),
				"device_type": in.device.Type.String(),
			}
		},
	},
}

func acceptDetails(in routeInput) map[string]any {
	return map[string]any{
		"action":     in.cmd.ActionType.String(),
		"target":     string(in.cmd.Target),
		"scope":      string(in.cmd.Scope),
		"confidence": in.cmd.Confidence,
	}
}

// intendedContext maps a command's scope onto the execution context it
// would run in.
func intendedContext(scope domain.VoiceScope) domain.ExecutionContextID {
	switch scope {
	case domain.VoiceScopeWeb:
		return domain.ContextWeb
	case domain.VoiceScopeLocal:
		return domain.ContextLocal
	default:
		return domain.ContextEmulator
	}
}
