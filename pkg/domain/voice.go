package domain

import dErrors "actionkernel/pkg/domain-errors"

// VoiceActionType is the verb a voice command asks for.
type VoiceActionType string

const (
	ActionCall    VoiceActionType = "call"
	ActionSearch  VoiceActionType = "search"
	ActionOpen    VoiceActionType = "open"
	ActionPlay    VoiceActionType = "play"
	ActionControl VoiceActionType = "control"
)

var validVoiceActions = map[VoiceActionType]bool{
	ActionCall:    true,
	ActionSearch:  true,
	ActionOpen:    true,
	ActionPlay:    true,
	ActionControl: true,
}

// ParseVoiceActionType constructs a VoiceActionType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseVoiceActionType(s string) (VoiceActionType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "action cannot be empty")
	}
	a := VoiceActionType(s)
	if !a.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid action: "+s)
	}
	return a, nil
}

func (a VoiceActionType) IsValid() bool {
	return validVoiceActions[a]
}

func (a VoiceActionType) String() string {
	return string(a)
}

// VoiceTargetType is the kind of thing a voice command acts on.
type VoiceTargetType string

const (
	TargetApp     VoiceTargetType = "app"
	TargetSystem  VoiceTargetType = "system"
	TargetWeb     VoiceTargetType = "web"
	TargetContact VoiceTargetType = "contact"
	TargetService VoiceTargetType = "service"
)

// VoiceScope is where a voice command's effect lands.
type VoiceScope string

const (
	VoiceScopeLocal  VoiceScope = "local"
	VoiceScopeWeb    VoiceScope = "web"
	VoiceScopeDevice VoiceScope = "device"
)
