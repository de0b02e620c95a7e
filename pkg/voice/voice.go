// Package voice maps symbolic voice names onto provider voice identifiers.
package voice

import (
	"maps"
	"slices"
)

// DefaultName is the voice used when no name, or an unknown name, is requested.
const DefaultName = "default"

var builtin = map[string]string{
	DefaultName: "pNInz6obpgDQGcFmaJgB", // Adam
	"alloy":     "pNInz6obpgDQGcFmaJgB", // Adam
	"warm":      "EXAVITQu4vr4xnSDxMaL", // Bella
	"energetic": "21m00Tcm4TlvDq8ikWAM", // Rachel
}

// Map is immutable once built and safe for concurrent use.
type Map struct {
	voices map[string]string
}

// New returns the built-in voices merged with the given overrides.
// Empty names or ids in overrides are ignored.
func New(overrides map[string]string) *Map {
	voices := maps.Clone(builtin)

	for name, id := range overrides {
		if name == "" || id == "" {
			continue
		}

		voices[name] = id
	}

	return &Map{
		voices: voices,
	}
}

// Resolve returns the provider voice id for name, or the default voice id.
func (m *Map) Resolve(name string) string {
	if id, ok := m.voices[name]; ok {
		return id
	}

	return m.voices[DefaultName]
}

func (m *Map) Has(name string) bool {
	_, ok := m.voices[name]
	return ok
}

// Names returns the sorted voice names.
func (m *Map) Names() []string {
	return slices.Sorted(maps.Keys(m.voices))
}

func (m *Map) Default() string {
	return DefaultName
}
