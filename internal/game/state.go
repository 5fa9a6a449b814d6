package game

import (
	"time"

	"github.com/dev-du-bled/the-free-transitionner/internal/event"
	"github.com/dev-du-bled/the-free-transitionner/internal/institution"
)

// Mission is the in-flight liberation attempt. It exists only while
// MissionActive is true and is zeroed on completion, failure or cancel.
type Mission struct {
	InstitutionID int     `json:"institution_id"`
	Progress      float64 `json:"progress"`
}

// State is the full game snapshot. The engine owns one mutable copy behind
// its lock; everything handed out is a deep copy, so readers never observe
// a half-applied update.
type State struct {
	Institutions []institution.Institution `json:"institutions"`

	// InitialTotalDependency is the sum of seed dependency scores, fixed at
	// game start. Coverage uses it as its denominator.
	InitialTotalDependency float64 `json:"initial_total_dependency"`

	GafamMarketShare float64  `json:"gafam_market_share"`
	LiberatedCount   int      `json:"liberated_count"`
	OwnedUpgrades    []string `json:"owned_upgrades"`
	PlayerMoney      float64  `json:"player_money"`

	MissionActive bool         `json:"mission_active"`
	ActiveMission Mission      `json:"active_mission"`
	ActiveEvent   *event.Event `json:"active_event,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func newState(catalog institution.Catalog, startingMoney, startingShare float64, now time.Time) State {
	insts := catalog.Clone()

	total := 0.0
	for _, inst := range insts {
		total += inst.Dependency
	}

	return State{
		Institutions:           insts,
		InitialTotalDependency: total,
		GafamMarketShare:       startingShare,
		LiberatedCount:         0,
		OwnedUpgrades:          []string{},
		PlayerMoney:            startingMoney,
		UpdatedAt:              now,
	}
}

// clone returns a deep copy safe to publish outside the engine lock.
func (s State) clone() State {
	out := s

	out.Institutions = make([]institution.Institution, len(s.Institutions))
	copy(out.Institutions, s.Institutions)

	out.OwnedUpgrades = make([]string, len(s.OwnedUpgrades))
	copy(out.OwnedUpgrades, s.OwnedUpgrades)

	if s.ActiveEvent != nil {
		ev := *s.ActiveEvent
		ev.Choices = make([]event.Choice, len(s.ActiveEvent.Choices))
		copy(ev.Choices, s.ActiveEvent.Choices)
		out.ActiveEvent = &ev
	}

	return out
}

// institutionByID returns a pointer into the engine-owned slice, or nil.
func (s *State) institutionByID(id int) *institution.Institution {
	for i := range s.Institutions {
		if s.Institutions[i].ID == id {
			return &s.Institutions[i]
		}
	}
	return nil
}

// Owns reports whether an upgrade id is in the owned set.
func (s *State) Owns(upgradeID string) bool {
	for _, id := range s.OwnedUpgrades {
		if id == upgradeID {
			return true
		}
	}
	return false
}
