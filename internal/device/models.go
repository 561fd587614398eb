package device

import (
	"actionkernel/pkg/domain"
	dErrors "actionkernel/pkg/domain-errors"
)

// Type is the device class a profile describes.
type Type string

const (
	TypePhone   Type = "phone"
	TypeDesktop Type = "desktop"
	TypeTablet  Type = "tablet"
	TypeUnknown Type = "unknown"
)

var validTypes = map[Type]bool{
	TypePhone:   true,
	TypeDesktop: true,
	TypeTablet:  true,
	TypeUnknown: true,
}

// ParseType constructs a Type from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseType(s string) (Type, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "device type cannot be empty")
	}
	t := Type(s)
	if !validTypes[t] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid device type: "+s)
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

// Profile declares what a device can and may not do. Restriction always wins
// over support.
type Profile struct {
	Type              Type                     `json:"type" yaml:"type"`
	SupportedActions  []domain.VoiceActionType `json:"supported_actions" yaml:"supported"`
	RestrictedActions []domain.VoiceActionType `json:"restricted_actions" yaml:"restricted"`
}

// DefaultProfile is the fail-closed profile used when none is supplied. It
// supports nothing.
func DefaultProfile() *Profile {
	return &Profile{Type: TypeUnknown}
}
