package domain

import dErrors "actionkernel/pkg/domain-errors"

// DataScope is the visibility lifetime bucket a piece of data lives in.
//
// Scopes form a flat categorical set: there is no ordering and no scope
// subsumes another. The empty value means "unspecified" and normalizes to
// ScopeEphemeral.
type DataScope string

const (
	ScopeEphemeral  DataScope = "ephemeral"
	ScopeSession    DataScope = "session"
	ScopeWorkspace  DataScope = "workspace"
	ScopePersistent DataScope = "persistent"
)

var validDataScopes = map[DataScope]bool{
	ScopeEphemeral:  true,
	ScopeSession:    true,
	ScopeWorkspace:  true,
	ScopePersistent: true,
}

// AllDataScopes returns every scope in declaration order.
func AllDataScopes() []DataScope {
	return []DataScope{ScopeEphemeral, ScopeSession, ScopeWorkspace, ScopePersistent}
}

// ParseDataScope constructs a DataScope from external input. An empty string
// is accepted and yields the unspecified scope.
//
// Errors: returns CodeInvalidInput for values outside the scope set.
func ParseDataScope(s string) (DataScope, error) {
	if s == "" {
		return "", nil
	}
	scope := DataScope(s)
	if !scope.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid data scope: "+s)
	}
	return scope, nil
}

// IsValid checks if the scope is one of the supported enum values.
func (s DataScope) IsValid() bool {
	return validDataScopes[s]
}

func (s DataScope) String() string {
	return string(s)
}

// NormalizeScope returns s, or ScopeEphemeral when s is unspecified.
func NormalizeScope(s DataScope) DataScope {
	if s == "" {
		return ScopeEphemeral
	}
	return s
}

// IsCrossScopeRead reports whether reading from one scope into another
// crosses a scope boundary. Any two distinct scopes cross.
func IsCrossScopeRead(from, to DataScope) bool {
	return from != to
}

// RequiresPersistentOptIn reports whether scope demands an explicit opt-in
// that has not been given.
func RequiresPersistentOptIn(scope DataScope, optIn bool) bool {
	return scope == ScopePersistent && !optIn
}
