package consent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"actionkernel/pkg/domain"
	dErrors "actionkernel/pkg/domain-errors"
)

// =============================================================================
// HasConsent Test Suite
// =============================================================================
// HasConsent is the only consent predicate the privacy kernel relies on, so
// every fail-closed branch is pinned down here.

type HasConsentSuite struct {
	suite.Suite
	token *Token
}

func TestHasConsentSuite(t *testing.T) {
	suite.Run(t, new(HasConsentSuite))
}

func (s *HasConsentSuite) SetupTest() {
	s.token = &Token{
		ID:        "tok-1",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Explicit:  true,
		Purposes:  []domain.ConsentPurpose{domain.ConsentPurposeExecution},
	}
}

func (s *HasConsentSuite) TestFailClosed() {
	s.Run("nil token", func() {
		s.False(HasConsent(nil, domain.ConsentPurposeExecution, Constraint{}))
	})

	s.Run("implicit token", func() {
		s.token.Explicit = false
		s.False(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{}))
	})

	s.Run("purpose not granted", func() {
		s.token.Explicit = true
		s.False(HasConsent(s.token, domain.ConsentPurposeMemory, Constraint{}))
	})
}

func (s *HasConsentSuite) TestGranted() {
	s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{}))
}

func (s *HasConsentSuite) TestScopeRestriction() {
	s.Run("unrestricted token admits any scope", func() {
		s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopePersistent}))
	})

	s.Run("restricted token admits listed scope", func() {
		s.token.Scopes = []domain.DataScope{domain.ScopeSession}
		s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopeSession}))
	})

	s.Run("restricted token rejects unlisted scope", func() {
		s.token.Scopes = []domain.DataScope{domain.ScopeSession}
		s.False(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopeWorkspace}))
	})

	s.Run("empty restriction list admits nothing", func() {
		s.token.Scopes = []domain.DataScope{}
		s.False(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopeEphemeral}))
	})

	s.Run("restriction ignored when no scope supplied", func() {
		s.token.Scopes = []domain.DataScope{domain.ScopeSession}
		s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{}))
	})
}

func (s *HasConsentSuite) TestContextRestriction() {
	s.Run("unrestricted token admits any context", func() {
		s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{ContextID: domain.ContextEmulator}))
	})

	s.Run("restricted token rejects unlisted context", func() {
		s.token.Contexts = []domain.ExecutionContextID{domain.ContextWeb}
		s.False(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{ContextID: domain.ContextLocal}))
	})

	s.Run("both dimensions must pass", func() {
		s.token.Scopes = []domain.DataScope{domain.ScopeSession}
		s.token.Contexts = []domain.ExecutionContextID{domain.ContextWeb}
		s.True(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopeSession, ContextID: domain.ContextWeb}))
		s.False(HasConsent(s.token, domain.ConsentPurposeExecution, Constraint{Scope: domain.ScopeSession, ContextID: domain.ContextLocal}))
	})
}

func TestDecodeToken(t *testing.T) {
	t.Run("valid fixture", func(t *testing.T) {
		tok, err := DecodeToken(strings.NewReader(`{
			"id": "tok-7",
			"timestamp": "2026-03-01T10:00:00.000Z",
			"explicit": true,
			"purposes": ["execution", "context"],
			"scopes": ["session"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, "tok-7", tok.ID)
		assert.True(t, tok.Explicit)
		assert.Equal(t, []domain.ConsentPurpose{domain.ConsentPurposeExecution, domain.ConsentPurposeContext}, tok.Purposes)
		assert.Equal(t, []domain.DataScope{domain.ScopeSession}, tok.Scopes)
		assert.Nil(t, tok.Contexts, "absent contexts stay unrestricted")
	})

	t.Run("empty scopes list is kept as a restriction", func(t *testing.T) {
		tok, err := DecodeToken(strings.NewReader(`{"id":"t","explicit":true,"purposes":["execution"],"scopes":[]}`))
		require.NoError(t, err)
		assert.NotNil(t, tok.Scopes)
		assert.Empty(t, tok.Scopes)
	})

	tests := []struct {
		name string
		body string
		code dErrors.Code
	}{
		{name: "malformed json", body: `{"id":`, code: dErrors.CodeInvalidInput},
		{name: "unknown field", body: `{"id":"t","owner":"me"}`, code: dErrors.CodeInvalidInput},
		{name: "missing id", body: `{"explicit":true}`, code: dErrors.CodeValidation},
		{name: "bad purpose", body: `{"id":"t","purposes":["ads"]}`, code: dErrors.CodeValidation},
		{name: "bad scope", body: `{"id":"t","scopes":["forever"]}`, code: dErrors.CodeValidation},
		{name: "bad context", body: `{"id":"t","contexts":["cloud"]}`, code: dErrors.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(strings.NewReader(tt.body))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}
