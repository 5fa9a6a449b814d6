package institution

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the read-only institution seed list. The engine deep-copies it
// at game start; the catalog itself is never mutated.
type Catalog []Institution

// Clone returns a deep copy safe to hand to the engine as mutable state.
func (c Catalog) Clone() []Institution {
	out := make([]Institution, len(c))
	copy(out, c)
	return out
}

// Validate checks id uniqueness and dependency bounds.
func (c Catalog) Validate() error {
	seen := make(map[int]bool, len(c))
	for _, inst := range c {
		if seen[inst.ID] {
			return fmt.Errorf("duplicate institution id: %d", inst.ID)
		}
		seen[inst.ID] = true
		if inst.Dependency < 0 || inst.Dependency > 100 {
			return fmt.Errorf("institution %d: dependency %v out of [0,100]", inst.ID, inst.Dependency)
		}
		if inst.Liberated {
			return fmt.Errorf("institution %d: seed entries must not be liberated", inst.ID)
		}
	}
	return nil
}

type catalogFile struct {
	Institutions []Institution `yaml:"institutions"`
}

// LoadFile reads an institution catalog from a YAML file, for running the
// game with a different map than the built-in seed.
func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse institution catalog: %w", err)
	}

	c := Catalog(f.Institutions)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
