package game

import (
	"github.com/dev-du-bled/the-free-transitionner/internal/geo"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

// TickSpread advances the geographic contagion one step: every liberated
// institution's influence radius grows first, then every non-liberated
// institution covered by one or more radii loses dependency. Growth runs
// strictly before application, so a tick's own growth counts toward that
// same tick's reductions.
func (e *Engine) TickSpread() State {
	return e.apply(func() bool {
		growth := e.balance.SpreadRadiusGrowth
		contribution := e.balance.SpreadContribution
		if e.state.Owns(upgrade.CommunityBuilding) {
			growth *= e.balance.CommunitySpreadMult
			contribution *= e.balance.CommunitySpreadMult
		}

		sources := make([]int, 0, e.state.LiberatedCount)
		for i := range e.state.Institutions {
			if e.state.Institutions[i].Liberated {
				e.state.Institutions[i].InfluenceRadius += growth
				sources = append(sources, i)
			}
		}
		if len(sources) == 0 {
			return false
		}

		reduced := 0
		for i := range e.state.Institutions {
			target := &e.state.Institutions[i]
			if target.Liberated {
				continue
			}

			// Flat per-source contribution: coverage density matters, not
			// distance within the radius.
			total := 0.0
			for _, j := range sources {
				src := &e.state.Institutions[j]
				d := geo.Distance(src.Lat, src.Lng, target.Lat, target.Lng)
				if d < src.InfluenceRadius {
					total += contribution
				}
			}
			if e.balance.SpreadMaxPerTick > 0 && total > e.balance.SpreadMaxPerTick {
				total = e.balance.SpreadMaxPerTick
			}
			if total > 0 {
				target.ReduceDependency(total)
				reduced++
			}
		}

		e.record(telemetry.EventSpreadTick, telemetry.EventMetadata{
			"sources": len(sources),
			"reduced": reduced,
		})
		return true
	})
}
