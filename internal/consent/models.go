package consent

import (
	"slices"
	"time"

	"actionkernel/pkg/domain"
)

// Token is a sovereign consent token: a caller-supplied assertion that the
// user explicitly authorized one or more purposes. Tokens are issued by an
// external consent service and are read-only here.
//
// A nil Scopes or Contexts slice leaves that dimension unrestricted. A non-nil
// empty slice restricts it to nothing.
type Token struct {
	ID        string                      `json:"id"`
	Timestamp time.Time                   `json:"timestamp"`
	Explicit  bool                        `json:"explicit"`
	Purposes  []domain.ConsentPurpose     `json:"purposes"`
	Scopes    []domain.DataScope          `json:"scopes,omitempty"`
	Contexts  []domain.ExecutionContextID `json:"contexts,omitempty"`
}

// Constraint narrows a consent check to a scope and/or execution context.
// Zero fields are not checked.
type Constraint struct {
	Scope     domain.DataScope
	ContextID domain.ExecutionContextID
}

// GrantsPurpose reports whether purpose is listed on the token.
func (t *Token) GrantsPurpose(purpose domain.ConsentPurpose) bool {
	return slices.Contains(t.Purposes, purpose)
}

// allowsScope reports whether the token's scope restriction admits scope.
func (t *Token) allowsScope(scope domain.DataScope) bool {
	return t.Scopes == nil || slices.Contains(t.Scopes, scope)
}

// allowsContext reports whether the token's context restriction admits id.
func (t *Token) allowsContext(id domain.ExecutionContextID) bool {
	return t.Contexts == nil || slices.Contains(t.Contexts, id)
}
