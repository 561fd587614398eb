package domain

import dErrors "actionkernel/pkg/domain-errors"

// ConsentPurpose names what a consent token authorizes data to be used for.
// Invariant: the value must be one of the supported consent purposes.
//
// Usage: construct via ParseConsentPurpose when reading token fixtures or
// flags; direct casting bypasses validation.
type ConsentPurpose string

const (
	ConsentPurposeExecution ConsentPurpose = "execution"
	ConsentPurposeMemory    ConsentPurpose = "memory"
	ConsentPurposeContext   ConsentPurpose = "context"
)

var validConsentPurposes = map[ConsentPurpose]bool{
	ConsentPurposeExecution: true,
	ConsentPurposeMemory:    true,
	ConsentPurposeContext:   true,
}

// ParseConsentPurpose constructs a ConsentPurpose from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseConsentPurpose(s string) (ConsentPurpose, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "purpose cannot be empty")
	}
	p := ConsentPurpose(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid purpose: "+s)
	}
	return p, nil
}

// IsValid checks if the consent purpose is one of the supported enum values.
func (p ConsentPurpose) IsValid() bool {
	return validConsentPurposes[p]
}

func (p ConsentPurpose) String() string {
	return string(p)
}
