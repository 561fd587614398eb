//go:build property
// +build property

package privacy_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"actionkernel/internal/consent"
	"actionkernel/internal/privacy"
	"actionkernel/pkg/domain"
)

func genScope() gopter.Gen {
	return gen.OneConstOf(
		domain.DataScope(""),
		domain.ScopeEphemeral,
		domain.ScopeSession,
		domain.ScopeWorkspace,
		domain.ScopePersistent,
	)
}

// TestConsentGateRunsFirst verifies denial priority.
// Property: without consent the reason is always consent_required,
// whatever the scopes and opt-in.
func TestConsentGateRunsFirst(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("missing consent always reports consent_required", prop.ForAll(
		func(from, target domain.DataScope, optIn, explicit bool) bool {
			var token *consent.Token
			if explicit {
				// explicit but for the wrong purpose
				token = &consent.Token{ID: "t", Explicit: true, Purposes: []domain.ConsentPurpose{domain.ConsentPurposeMemory}}
			}
			d := privacy.Evaluate(privacy.Request{
				Purpose:         domain.ConsentPurposeExecution,
				FromScope:       from,
				TargetScope:     target,
				PersistentOptIn: optIn,
			}, token)
			return !d.Allowed && d.Reason == domain.ReasonConsentRequired
		},
		genScope(), genScope(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestAllowImpliesSameScope verifies an allow never crosses scopes.
// Property: Allowed => Normalize(from) == Normalize(target)
func TestAllowImpliesSameScope(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	token := &consent.Token{ID: "t", Explicit: true, Purposes: []domain.ConsentPurpose{domain.ConsentPurposeExecution}}

	properties.Property("allowed decisions stay in scope", prop.ForAll(
		func(from, target domain.DataScope, optIn bool) bool {
			d := privacy.Evaluate(privacy.Request{
				Purpose:         domain.ConsentPurposeExecution,
				FromScope:       from,
				TargetScope:     target,
				PersistentOptIn: optIn,
			}, token)
			if !d.Allowed {
				return d.Reason != ""
			}
			return domain.NormalizeScope(from) == domain.NormalizeScope(target) && d.Reason == ""
		},
		genScope(), genScope(), gen.Bool(),
	))

	properties.TestingRun(t)
}
