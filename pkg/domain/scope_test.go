package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "actionkernel/pkg/domain-errors"
)

func TestNormalizeScope(t *testing.T) {
	assert.Equal(t, ScopeEphemeral, NormalizeScope(""))
	for _, s := range AllDataScopes() {
		assert.Equal(t, s, NormalizeScope(s))
	}
}

func TestIsCrossScopeRead(t *testing.T) {
	for _, from := range AllDataScopes() {
		for _, to := range AllDataScopes() {
			assert.Equal(t, from != to, IsCrossScopeRead(from, to), "%s -> %s", from, to)
		}
	}

	t.Run("workspace does not subsume session", func(t *testing.T) {
		assert.True(t, IsCrossScopeRead(ScopeWorkspace, ScopeSession))
		assert.True(t, IsCrossScopeRead(ScopeSession, ScopeWorkspace))
	})
}

func TestRequiresPersistentOptIn(t *testing.T) {
	tests := []struct {
		name  string
		scope DataScope
		optIn bool
		want  bool
	}{
		{name: "persistent without opt-in", scope: ScopePersistent, optIn: false, want: true},
		{name: "persistent with opt-in", scope: ScopePersistent, optIn: true, want: false},
		{name: "ephemeral without opt-in", scope: ScopeEphemeral, optIn: false, want: false},
		{name: "session with opt-in", scope: ScopeSession, optIn: true, want: false},
		{name: "workspace without opt-in", scope: ScopeWorkspace, optIn: false, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresPersistentOptIn(tt.scope, tt.optIn))
		})
	}
}

func TestParseDataScope(t *testing.T) {
	t.Run("empty is unspecified", func(t *testing.T) {
		s, err := ParseDataScope("")
		require.NoError(t, err)
		assert.Equal(t, DataScope(""), s)
	})

	t.Run("known scope", func(t *testing.T) {
		s, err := ParseDataScope("workspace")
		require.NoError(t, err)
		assert.Equal(t, ScopeWorkspace, s)
	})

	t.Run("unknown scope", func(t *testing.T) {
		_, err := ParseDataScope("forever")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseEnums(t *testing.T) {
	t.Run("consent purpose", func(t *testing.T) {
		p, err := ParseConsentPurpose("memory")
		require.NoError(t, err)
		assert.Equal(t, ConsentPurposeMemory, p)

		_, err = ParseConsentPurpose("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		_, err = ParseConsentPurpose("marketing")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("execution context", func(t *testing.T) {
		c, err := ParseExecutionContextID("proxy")
		require.NoError(t, err)
		assert.Equal(t, ContextProxy, c)

		c, err = ParseExecutionContextID("")
		require.NoError(t, err)
		assert.Empty(t, c)

		_, err = ParseExecutionContextID("cloud")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("voice action", func(t *testing.T) {
		a, err := ParseVoiceActionType("control")
		require.NoError(t, err)
		assert.Equal(t, ActionControl, a)

		_, err = ParseVoiceActionType("dance")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestDenyReasonValues(t *testing.T) {
	// Downstream consumers match on these exact strings.
	want := map[DenyReason]string{
		ReasonConsentRequired:         "consent_required",
		ReasonCrossScopeRead:          "cross_scope_read",
		ReasonPersistentOptInRequired: "persistent_opt_in_required",
		ReasonExplicitConsentRequired: "explicit_consent_required",
		ReasonContextMismatch:         "context_mismatch",
		ReasonPrivacyDenied:           "privacy_denied",
		ReasonActionRestricted:        "action_restricted",
		ReasonUnsupportedAction:       "unsupported_action_or_unknown_device",
	}
	for reason, s := range want {
		assert.Equal(t, s, reason.String())
	}
}
