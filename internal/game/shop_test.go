package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-du-bled/the-free-transitionner/internal/config"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

func TestPurchaseUpgrade_DebitsAndRecordsOwnership(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 200
	e := newTestEngine(t, bal, &scriptedRand{})

	s := e.PurchaseUpgrade(upgrade.AutomationScripts) // cost 150
	assert.Equal(t, 50.0, s.PlayerMoney)
	assert.Equal(t, []string{upgrade.AutomationScripts}, s.OwnedUpgrades)
}

func TestPurchaseUpgrade_UnknownIDIsNoOp(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.Snapshot()
	after := e.PurchaseUpgrade("gold-plated-keyboards")
	assert.Equal(t, before, after)
}

func TestPurchaseUpgrade_UnaffordableIsNoOp(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 10
	e := newTestEngine(t, bal, &scriptedRand{})

	before := e.Snapshot()
	after := e.PurchaseUpgrade(upgrade.AutomationScripts)
	assert.Equal(t, before, after)
}

func TestPurchaseUpgrade_RepurchaseIsNoOp(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	e := newTestEngine(t, bal, &scriptedRand{})

	e.PurchaseUpgrade(upgrade.BuildServers)
	before := e.Snapshot()
	after := e.PurchaseUpgrade(upgrade.BuildServers)
	assert.Equal(t, before, after)
	assert.Len(t, after.OwnedUpgrades, 1)
}

func TestPurchaseUpgrade_TrainingMaterialsReducesAllDependencies(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	e := newTestEngine(t, bal, &scriptedRand{})

	before := e.Snapshot()
	s := e.PurchaseUpgrade(upgrade.TrainingMaterials)

	for i, inst := range s.Institutions {
		want := before.Institutions[i].Dependency - bal.TrainingMaterialsReduction
		if want < 0 {
			want = 0
		}
		assert.InDelta(t, want, inst.Dependency, 1e-9, "institution %d", inst.ID)
	}
}

func TestPurchaseUpgrade_AwarenessCampaignSkipsLiberated(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	bal.MissionBaseSpeed = 1000
	e := NewEngine(Params{
		Institutions: spreadCatalog(),
		Balance:      &bal,
		Rand:         &scriptedRand{},
	})
	liberate(t, e, 1)

	depAtLiberation := findInst(t, e.Snapshot(), 1).Dependency
	s := e.PurchaseUpgrade(upgrade.AwarenessCampaign)

	assert.Equal(t, depAtLiberation, findInst(t, s, 1).Dependency, "liberated institutions are frozen")
	assert.InDelta(t, 60-bal.AwarenessCampaignReduction, findInst(t, s, 2).Dependency, 1e-9)
}

func TestCollectPassiveIncome_NoUpgradesIsNoOp(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.Snapshot()
	after := e.CollectPassiveIncome()
	assert.Equal(t, before, after)
}

func TestCollectPassiveIncome_IncomeUpgradesAreAdditive(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 2000
	e := newTestEngine(t, bal, &scriptedRand{})

	e.PurchaseUpgrade(upgrade.OpenSourceContribution) // 500
	s := e.CollectPassiveIncome()
	require.Equal(t, 2000-500+bal.ContributorIncome, s.PlayerMoney)

	e.PurchaseUpgrade(upgrade.PolicyLobbying) // 600
	s = e.CollectPassiveIncome()
	want := 2000 - 500 + bal.ContributorIncome - 600 + bal.ContributorIncome + bal.LobbyingIncome
	assert.Equal(t, want, s.PlayerMoney)
}
