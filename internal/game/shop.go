package game

import (
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

// PurchaseUpgrade buys a permanent upgrade. Absorbed silently for unknown
// ids, already-owned ids, or insufficient funds. Some ids carry a one-time
// effect applied immediately to all non-liberated institutions; the rest
// are standing modifiers the mission and spread engines read.
func (e *Engine) PurchaseUpgrade(upgradeID string) State {
	return e.apply(func() bool {
		u, ok := e.upgrades[upgradeID]
		if !ok {
			return false
		}
		if e.state.Owns(upgradeID) || e.state.PlayerMoney < u.Cost {
			return false
		}

		e.state.PlayerMoney -= u.Cost
		e.state.OwnedUpgrades = append(e.state.OwnedUpgrades, upgradeID)

		switch upgradeID {
		case upgrade.TrainingMaterials:
			e.reduceAllDependencies(e.balance.TrainingMaterialsReduction)
		case upgrade.AwarenessCampaign:
			e.reduceAllDependencies(e.balance.AwarenessCampaignReduction)
		}

		e.record(telemetry.EventUpgradePurchased, telemetry.EventMetadata{
			"upgrade_id": upgradeID,
			"cost":       u.Cost,
		})
		return true
	})
}

// CollectPassiveIncome credits the flat per-tick income of every owned
// income upgrade. Harmless no-op when none are owned.
func (e *Engine) CollectPassiveIncome() State {
	return e.apply(func() bool {
		income := 0.0
		if e.state.Owns(upgrade.OpenSourceContribution) {
			income += e.balance.ContributorIncome
		}
		if e.state.Owns(upgrade.PolicyLobbying) {
			income += e.balance.LobbyingIncome
		}
		if income == 0 {
			return false
		}

		e.state.PlayerMoney += income

		e.record(telemetry.EventIncomeCollected, telemetry.EventMetadata{
			"amount": income,
		})
		return true
	})
}

func (e *Engine) reduceAllDependencies(amount float64) {
	for i := range e.state.Institutions {
		e.state.Institutions[i].ReduceDependency(amount)
	}
}
