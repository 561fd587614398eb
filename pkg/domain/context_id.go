package domain

import dErrors "actionkernel/pkg/domain-errors"

// ExecutionContextID identifies where an action would run. The empty value
// means no context was supplied.
type ExecutionContextID string

const (
	ContextWeb      ExecutionContextID = "web"
	ContextProxy    ExecutionContextID = "proxy"
	ContextLocal    ExecutionContextID = "local"
	ContextEmulator ExecutionContextID = "emulator"
)

var validContextIDs = map[ExecutionContextID]bool{
	ContextWeb:      true,
	ContextProxy:    true,
	ContextLocal:    true,
	ContextEmulator: true,
}

// ParseExecutionContextID constructs an ExecutionContextID from external
// input. An empty string yields the unsupplied value.
//
// Errors: returns CodeInvalidInput for unknown contexts.
func ParseExecutionContextID(s string) (ExecutionContextID, error) {
	if s == "" {
		return "", nil
	}
	id := ExecutionContextID(s)
	if !id.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid execution context: "+s)
	}
	return id, nil
}

func (c ExecutionContextID) IsValid() bool {
	return validContextIDs[c]
}

func (c ExecutionContextID) String() string {
	return string(c)
}
