// Package upgrade holds the permanent upgrade catalog. Entries are immutable;
// ownership lives in the game state as an append-only id set.
package upgrade

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Known upgrade ids. The engines key their standing modifiers off these.
const (
	AutomationScripts      = "script-install"
	BuildServers           = "build-servers"
	CommunityBuilding      = "community-building"
	HardwareCertification  = "hardware-certification"
	LegalAid               = "legal-aid"
	OpenSourceContribution = "open-source-contribution"
	PolicyLobbying         = "policy-lobbying"
	TrainingMaterials      = "training-materials"
	AwarenessCampaign      = "awareness-campaign"
)

type Upgrade struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Effect      string  `json:"effect" yaml:"effect"`
	Cost        float64 `json:"cost" yaml:"cost"`
}

// Catalog is the read-only upgrade list, in shop display order.
type Catalog []Upgrade

// ByID returns a lookup map over the catalog entries.
func (c Catalog) ByID() map[string]Upgrade {
	m := make(map[string]Upgrade, len(c))
	for _, u := range c {
		m[u.ID] = u
	}
	return m
}

// Validate checks id uniqueness and non-negative costs.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, u := range c {
		if u.ID == "" {
			return fmt.Errorf("upgrade with empty id: %q", u.Name)
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate upgrade id: %s", u.ID)
		}
		seen[u.ID] = true
		if u.Cost < 0 {
			return fmt.Errorf("upgrade %s: negative cost", u.ID)
		}
	}
	return nil
}

type catalogFile struct {
	Upgrades []Upgrade `yaml:"upgrades"`
}

// LoadFile reads an upgrade catalog from a YAML file.
func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse upgrade catalog: %w", err)
	}

	c := Catalog(f.Upgrades)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
