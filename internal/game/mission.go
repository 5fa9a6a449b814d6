package game

import (
	"math"

	"github.com/dev-du-bled/the-free-transitionner/internal/event"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

// StartMission begins a liberation mission against an institution. Absorbed
// silently if a mission is already active, the id is unknown, or the target
// is already liberated.
func (e *Engine) StartMission(institutionID int) State {
	return e.apply(func() bool {
		if e.state.MissionActive {
			return false
		}
		inst := e.state.institutionByID(institutionID)
		if inst == nil || inst.Liberated {
			return false
		}

		e.state.MissionActive = true
		e.state.ActiveMission = Mission{InstitutionID: institutionID}
		e.state.ActiveEvent = nil

		e.record(telemetry.EventMissionStarted, telemetry.EventMetadata{
			"institution_id": institutionID,
			"institution":    inst.Name,
			"dependency":     inst.Dependency,
		})
		return true
	})
}

// AdvanceMission runs one mission tick: first the event draw, then the
// progress step. Progress is frozen while an event is pending.
func (e *Engine) AdvanceMission() State {
	return e.apply(e.advance)
}

func (e *Engine) advance() bool {
	if !e.state.MissionActive || e.state.ActiveEvent != nil {
		return false
	}
	inst := e.state.institutionByID(e.state.ActiveMission.InstitutionID)
	if inst == nil {
		return false
	}

	// Event draw. Chance scales with how entrenched the target still is.
	chance := e.balance.EventBaseChance + (inst.Dependency/100)*e.balance.EventDependencyChance
	if e.rng.Float64()*100 < chance*100 {
		if pool := e.eventPool(); len(pool) > 0 {
			picked := pool[e.rng.Intn(len(pool))]
			e.state.ActiveEvent = &picked

			e.record(telemetry.EventTriggered, telemetry.EventMetadata{
				"event_id":       picked.ID,
				"institution_id": inst.ID,
			})
			return true
		}
	}

	// Progress step. Entrenched institutions migrate slower, decaying
	// exponentially with dependency down to a floor.
	speed := e.balance.MissionBaseSpeed * math.Exp(-inst.Dependency/e.balance.MissionSpeedDecay)
	if speed < e.balance.MissionMinSpeed {
		speed = e.balance.MissionMinSpeed
	}
	if e.state.Owns(upgrade.AutomationScripts) {
		speed *= e.balance.AutomationSpeedMult
	}
	if e.state.Owns(upgrade.BuildServers) {
		speed *= e.balance.BuildServerSpeedMult
	}

	progress := e.state.ActiveMission.Progress + speed
	if progress >= 100 {
		e.completeMission(inst.ID)
		return true
	}

	e.state.ActiveMission.Progress = progress
	return true
}

// eventPool returns the drawable events, honoring mitigation upgrades.
func (e *Engine) eventPool() []event.Event {
	pool := make([]event.Event, 0, len(e.events))
	for _, ev := range e.events {
		if ev.ID == event.HardwareIssue && e.state.Owns(upgrade.HardwareCertification) {
			continue
		}
		pool = append(pool, ev)
	}
	return pool
}

func (e *Engine) completeMission(institutionID int) {
	inst := e.state.institutionByID(institutionID)

	// Reward scales with how entrenched the target was at the moment it fell.
	dependency := inst.Dependency
	reward := e.balance.RewardBase + math.Round(dependency*e.balance.RewardPerDependency)

	inst.Liberate(e.balance.SpreadBaseRadius)
	e.state.LiberatedCount++
	e.state.GafamMarketShare -= dependency / 10
	e.state.PlayerMoney += reward
	e.state.MissionActive = false
	e.state.ActiveMission = Mission{}
	e.state.ActiveEvent = nil

	e.record(telemetry.EventMissionCompleted, telemetry.EventMetadata{
		"institution_id": inst.ID,
		"institution":    inst.Name,
		"reward":         reward,
	})
}

// ResolveEvent applies a choice's money/progress deltas to the pending
// event, or fails the whole mission if the risk roll comes up. Absorbed
// silently when no event is pending.
func (e *Engine) ResolveEvent(moneyDelta, progressDelta, riskPercent float64) State {
	return e.apply(func() bool {
		return e.resolveEvent(moneyDelta, progressDelta, riskPercent)
	})
}

// ResolveEventChoice resolves the pending event by choice index, the shape
// the UI speaks. Out-of-range indices are absorbed silently.
func (e *Engine) ResolveEventChoice(index int) State {
	return e.apply(func() bool {
		if e.state.ActiveEvent == nil || index < 0 || index >= len(e.state.ActiveEvent.Choices) {
			return false
		}
		c := e.state.ActiveEvent.Choices[index]
		return e.resolveEvent(c.MoneyDelta, c.ProgressDelta, c.RiskPercent)
	})
}

func (e *Engine) resolveEvent(moneyDelta, progressDelta, riskPercent float64) bool {
	if e.state.ActiveEvent == nil {
		return false
	}
	eventID := e.state.ActiveEvent.ID

	// Legal aid halves money penalties before anything is applied.
	if moneyDelta < 0 && e.state.Owns(upgrade.LegalAid) {
		moneyDelta *= e.balance.LegalAidFactor
	}

	if e.rng.Float64()*100 < riskPercent {
		// Mission failed: all progress is lost on top of the penalty.
		e.state.MissionActive = false
		e.state.ActiveMission = Mission{}
		e.state.ActiveEvent = nil
		e.debit(e.balance.FailurePenalty)

		e.record(telemetry.EventMissionFailed, telemetry.EventMetadata{
			"event_id": eventID,
			"penalty":  e.balance.FailurePenalty,
		})
		return true
	}

	e.state.PlayerMoney += moneyDelta
	if e.state.PlayerMoney < 0 {
		e.state.PlayerMoney = 0
	}

	progress := e.state.ActiveMission.Progress + progressDelta
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	e.state.ActiveMission.Progress = progress
	e.state.ActiveEvent = nil

	e.record(telemetry.EventResolved, telemetry.EventMetadata{
		"event_id":       eventID,
		"money_delta":    moneyDelta,
		"progress_delta": progressDelta,
	})
	return true
}

// CancelMission abandons the active mission for a flat fee, discarding all
// progress. Absorbed silently when no mission is active.
func (e *Engine) CancelMission() State {
	return e.apply(func() bool {
		if !e.state.MissionActive {
			return false
		}

		e.state.MissionActive = false
		e.state.ActiveMission = Mission{}
		e.state.ActiveEvent = nil
		e.debit(e.balance.CancelFee)

		e.record(telemetry.EventMissionCancelled, telemetry.EventMetadata{
			"fee": e.balance.CancelFee,
		})
		return true
	})
}

// debit subtracts from player money, floor-clamped at 0.
func (e *Engine) debit(amount float64) {
	e.state.PlayerMoney -= amount
	if e.state.PlayerMoney < 0 {
		e.state.PlayerMoney = 0
	}
}
