package dossier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Persona declares one dossier: an identifier, a slug used in the output
// filename, and the source documents to extract, as paths relative to
// the runner's source root.
type Persona struct {
	ID      string   `yaml:"id"`
	Slug    string   `yaml:"slug"`
	Sources []string `yaml:"sources"`
}

// Registry is an immutable set of persona declarations in declared
// order. Build one with NewRegistry or LoadRegistry.
type Registry struct {
	personas []Persona
}

// registryFile is the on-disk YAML layout.
type registryFile struct {
	Personas []Persona `yaml:"personas"`
}

// NewRegistry builds a Registry from persona declarations, validating
// that every persona has an ID, a slug, at least one source, and that
// IDs are unique.
func NewRegistry(personas ...Persona) (Registry, error) {
	seen := make(map[string]bool, len(personas))

	for _, p := range personas {
		if p.ID == "" {
			return Registry{}, fmt.Errorf("persona with empty id")
		}
		if p.Slug == "" {
			return Registry{}, fmt.Errorf("persona %s: empty slug", p.ID)
		}
		if len(p.Sources) == 0 {
			return Registry{}, fmt.Errorf("persona %s: no sources declared", p.ID)
		}
		if seen[p.ID] {
			return Registry{}, fmt.Errorf("duplicate persona id %s", p.ID)
		}
		seen[p.ID] = true
	}

	cloned := make([]Persona, len(personas))
	copy(cloned, personas)
	return Registry{personas: cloned}, nil
}

// LoadRegistry reads persona declarations from a YAML file:
//
//	personas:
//	  - id: pa01
//	    slug: council_tax_payer
//	    sources:
//	      - Council-tax-payer/insight.pdf
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Registry{}, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	if len(file.Personas) == 0 {
		return Registry{}, fmt.Errorf("registry %s declares no personas", path)
	}

	return NewRegistry(file.Personas...)
}

// Personas returns the persona declarations in declared order. The
// returned slice is a copy; the Registry itself never changes.
func (r Registry) Personas() []Persona {
	out := make([]Persona, len(r.personas))
	copy(out, r.personas)
	return out
}

// Len returns the number of declared personas.
func (r Registry) Len() int {
	return len(r.personas)
}
