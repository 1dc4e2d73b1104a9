package npm

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Document is a package document as served by the registry at
// <registry>/<name>. Only the fields the recipe generator reads are decoded.
type Document struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DistTags    map[string]string  `json:"dist-tags,omitempty"`
	Versions    map[string]Release `json:"versions"`
}

// VersionStrings returns the raw version strings of every release, sorted
// lexicographically.
func (d *Document) VersionStrings() []string {
	return slices.Sorted(maps.Keys(d.Versions))
}

// Release is the registry record for one published version.
type Release struct {
	Version      string       `json:"version,omitempty"`
	Description  string       `json:"description,omitempty"`
	Dependencies Dependencies `json:"dependencies"`
}

// Dependencies is the optional "dependencies" field of a release: a mapping
// from package name to a loose constraint string such as "~1.2.3" or "*".
//
// A release that omits the field, or sets it to null, has no dependency
// declaration at all ([Dependencies.Present] is false). Some early documents
// carry an empty JSON array instead of an object; that decodes as a present
// but empty declaration.
type Dependencies struct {
	present bool
	entries map[string]string
}

// NewDependencies returns a present declaration holding a copy of m.
func NewDependencies(m map[string]string) Dependencies {
	return Dependencies{present: true, entries: maps.Clone(m)}
}

// Present reports whether the release declared dependencies.
func (d Dependencies) Present() bool { return d.present }

// Len returns the number of declared dependencies.
func (d Dependencies) Len() int { return len(d.entries) }

// Names returns the dependency names in lexicographic order.
func (d Dependencies) Names() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

// Constraint returns the raw constraint declared for name.
func (d Dependencies) Constraint(name string) (string, bool) {
	c, ok := d.entries[name]
	return c, ok
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dependencies) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*d = Dependencies{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*d = Dependencies{present: true, entries: map[string]string{}}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*d = Dependencies{present: true, entries: m}
	return nil
}

// MarshalJSON implements json.Marshaler. An absent declaration encodes as
// null so that a round trip preserves [Dependencies.Present].
func (d Dependencies) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	if d.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}
