package consent

import (
	"encoding/json"
	"io"

	dErrors "actionkernel/pkg/domain-errors"
)

// DecodeToken reads a JSON token fixture supplied by the host and validates the
// enum fields. Tokens are never constructed by the kernel itself; this exists
// for hosts that receive a token as a file or blob.
//
// Errors: CodeInvalidInput for malformed JSON, CodeValidation for unknown
// purposes, scopes, or contexts.
func DecodeToken(r io.Reader) (*Token, error) {
	var t Token
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode consent token")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Token) validate() error {
	if t.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "consent token id is required")
	}
	for _, p := range t.Purposes {
		if !p.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "consent token has invalid purpose: "+p.String())
		}
	}
	for _, s := range t.Scopes {
		if !s.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "consent token has invalid scope: "+s.String())
		}
	}
	for _, c := range t.Contexts {
		if !c.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "consent token has invalid context: "+c.String())
		}
	}
	return nil
}
