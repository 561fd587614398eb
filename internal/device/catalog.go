package device

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	dErrors "actionkernel/pkg/domain-errors"
	"actionkernel/pkg/platform/sentinel"
)

//go:embed profiles.yaml
var defaultCatalogYAML []byte

// Catalog maps device types to capability profiles. It is populated once and
// read-only afterwards.
type Catalog struct {
	profiles map[Type]Profile
}

type catalogFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

// LoadCatalog reads a YAML catalog.
//
// Errors: CodeInvalidInput for malformed YAML, CodeValidation for unknown
// device types or actions, duplicate entries, or an entry for the unknown type
// (which must always support nothing).
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode device catalog")
	}

	c := &Catalog{profiles: make(map[Type]Profile, len(file.Profiles))}
	for _, p := range file.Profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		if _, dup := c.profiles[p.Type]; dup {
			return nil, dErrors.New(dErrors.CodeValidation, "duplicate device profile: "+p.Type.String())
		}
		c.profiles[p.Type] = p
	}
	return c, nil
}

func validateProfile(p Profile) error {
	if p.Type == TypeUnknown {
		return dErrors.New(dErrors.CodeValidation, "unknown device type cannot carry a profile")
	}
	if !validTypes[p.Type] {
		return dErrors.New(dErrors.CodeValidation, "invalid device type: "+p.Type.String())
	}
	for _, a := range slices.Concat(p.SupportedActions, p.RestrictedActions) {
		if !a.IsValid() {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("device %s has invalid action: %s", p.Type, a))
		}
	}
	return nil
}

// Lookup returns a copy of the profile for t.
//
// Errors: wraps sentinel.ErrNotFound when the catalog has no entry.
func (c *Catalog) Lookup(t Type) (*Profile, error) {
	p, ok := c.profiles[t]
	if !ok {
		return nil, fmt.Errorf("device profile %q: %w", t, sentinel.ErrNotFound)
	}
	return &Profile{
		Type:              p.Type,
		SupportedActions:  slices.Clone(p.SupportedActions),
		RestrictedActions: slices.Clone(p.RestrictedActions),
	}, nil
}

// ProfileFor detects the device behind userAgent and returns its profile,
// falling back to the fail-closed default when detection or lookup fails.
func (c *Catalog) ProfileFor(userAgent string) *Profile {
	p, err := c.Lookup(DetectType(userAgent))
	if err != nil {
		return DefaultProfile()
	}
	return p
}

// Types lists the catalogued device types in a stable order.
func (c *Catalog) Types() []Type {
	out := make([]Type, 0, len(c.profiles))
	for t := range c.profiles {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
