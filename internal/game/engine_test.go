package game

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-du-bled/the-free-transitionner/internal/config"
	"github.com/dev-du-bled/the-free-transitionner/internal/event"
	"github.com/dev-du-bled/the-free-transitionner/internal/institution"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

// scriptedRand pops queued values, which makes event draws and risk rolls
// deterministic per call site. When exhausted it returns a value high
// enough that no event triggers and no risk roll below 100 fails.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.9999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func newTestEngine(t *testing.T, bal config.Balance, rng Rand) *Engine {
	t.Helper()
	return NewEngine(Params{
		Balance: &bal,
		Rand:    rng,
		Clock:   NewFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
	})
}

func TestStartMission_SetsActiveMission(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	s := e.StartMission(1)
	assert.True(t, s.MissionActive)
	assert.Equal(t, 1, s.ActiveMission.InstitutionID)
	assert.Equal(t, 0.0, s.ActiveMission.Progress)
	assert.Nil(t, s.ActiveEvent)
}

func TestStartMission_NoOpWhileMissionActive(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.StartMission(1)
	after := e.StartMission(2)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, after.ActiveMission.InstitutionID)
}

func TestStartMission_NoOpForUnknownInstitution(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.Snapshot()
	after := e.StartMission(999)
	assert.Equal(t, before, after)
	assert.False(t, after.MissionActive)
}

func TestAdvanceMission_NoOpWithoutMission(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.Snapshot()
	after := e.AdvanceMission()
	assert.Equal(t, before, after)
}

func TestAdvanceMission_ProgressSpeedDecaysWithDependency(t *testing.T) {
	bal := config.Default()
	e := newTestEngine(t, bal, &scriptedRand{})

	// Institution 1 has seed dependency 80.
	e.StartMission(1)
	s := e.AdvanceMission()

	want := bal.MissionBaseSpeed * math.Exp(-80.0/bal.MissionSpeedDecay)
	assert.InDelta(t, want, s.ActiveMission.Progress, 1e-9)

	s = e.AdvanceMission()
	assert.InDelta(t, 2*want, s.ActiveMission.Progress, 1e-9)
}

func TestAdvanceMission_SpeedFloor(t *testing.T) {
	bal := config.Default()
	bal.MissionBaseSpeed = 0.001
	e := newTestEngine(t, bal, &scriptedRand{})

	e.StartMission(1)
	s := e.AdvanceMission()
	assert.InDelta(t, bal.MissionMinSpeed, s.ActiveMission.Progress, 1e-9)
}

func TestAdvanceMission_SpeedUpgradesStack(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	e := newTestEngine(t, bal, &scriptedRand{})

	e.PurchaseUpgrade(upgrade.AutomationScripts)
	e.PurchaseUpgrade(upgrade.BuildServers)
	e.StartMission(1)
	s := e.AdvanceMission()

	base := bal.MissionBaseSpeed * math.Exp(-80.0/bal.MissionSpeedDecay)
	assert.InDelta(t, base*bal.AutomationSpeedMult*bal.BuildServerSpeedMult, s.ActiveMission.Progress, 1e-9)
}

func TestAdvanceMission_CompletionLiberatesAndRewards(t *testing.T) {
	bal := config.Default()
	e := newTestEngine(t, bal, &scriptedRand{})

	e.StartMission(1) // dependency 80
	var s State
	for i := 0; i < 200; i++ {
		s = e.AdvanceMission()
		if !s.MissionActive {
			break
		}
	}

	require.False(t, s.MissionActive, "mission should complete within 200 ticks")
	inst := findInst(t, s, 1)
	assert.True(t, inst.Liberated)
	assert.Equal(t, 80.0, inst.Dependency, "dependency frozen at liberation")
	assert.Equal(t, bal.SpreadBaseRadius, inst.InfluenceRadius)

	// Reward 100 + round(80*2) = 260 on top of starting money.
	assert.Equal(t, bal.StartingMoney+260, s.PlayerMoney)
	assert.Equal(t, 1, s.LiberatedCount)
	assert.InDelta(t, bal.StartingMarketShare-8, s.GafamMarketShare, 1e-9)
	assert.Equal(t, Mission{}, s.ActiveMission)
}

func TestAdvanceMission_EventFreezesProgress(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.StartMission(1)
	s := e.AdvanceMission()
	require.NotNil(t, s.ActiveEvent)
	assert.Equal(t, 0.0, s.ActiveMission.Progress, "event tick must not advance progress")

	// A pending event blocks further advancement entirely.
	again := e.AdvanceMission()
	assert.Equal(t, s, again)
}

func TestAdvanceMission_HardwareCertificationShrinksEventPool(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	e := newTestEngine(t, bal, &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.PurchaseUpgrade(upgrade.HardwareCertification)
	e.StartMission(1)
	s := e.AdvanceMission()

	require.NotNil(t, s.ActiveEvent)
	assert.NotEqual(t, event.HardwareIssue, s.ActiveEvent.ID)
}

func TestResolveEvent_NoOpWithoutPendingEvent(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	e.StartMission(1)
	before := e.Snapshot()
	after := e.ResolveEvent(-100, 30, 0)
	assert.Equal(t, before, after)
}

func TestResolveEvent_AppliesDeltasAndClearsEvent(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 200
	e := newTestEngine(t, bal, &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.StartMission(1)
	s := e.AdvanceMission()
	require.NotNil(t, s.ActiveEvent)

	s = e.ResolveEvent(-150, 30, 20) // risk roll draws 0.9999 -> 99.99, no failure
	assert.Nil(t, s.ActiveEvent)
	assert.True(t, s.MissionActive)
	assert.Equal(t, 50.0, s.PlayerMoney)
	assert.Equal(t, 30.0, s.ActiveMission.Progress)
}

func TestResolveEvent_LegalAidHalvesPenalty(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 500
	e := newTestEngine(t, bal, &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.PurchaseUpgrade(upgrade.LegalAid) // 500 - 350 = 150 left
	e.StartMission(1)
	s := e.AdvanceMission()
	require.NotNil(t, s.ActiveEvent)

	s = e.ResolveEvent(-150, 30, 20)
	assert.Equal(t, 75.0, s.PlayerMoney, "negative delta halved to -75")
	assert.Equal(t, 30.0, s.ActiveMission.Progress)
}

func TestResolveEvent_RiskRollFailsMission(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 30
	e := newTestEngine(t, bal, &scriptedRand{floats: []float64{0, 0.1}, ints: []int{0}})

	e.StartMission(1)
	s := e.AdvanceMission()
	require.NotNil(t, s.ActiveEvent)

	instBefore := findInst(t, s, 1)

	s = e.ResolveEvent(0, 10, 50) // roll 0.1*100 = 10 < 50 -> failure
	assert.False(t, s.MissionActive)
	assert.Nil(t, s.ActiveEvent)
	assert.Equal(t, Mission{}, s.ActiveMission)
	assert.Equal(t, 0.0, s.PlayerMoney, "penalty 50 floor-clamped at 0")
	assert.Equal(t, instBefore, findInst(t, s, 1), "institution untouched by failure")
}

func TestResolveEventChoice_LooksUpActiveEventChoice(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 300
	e := newTestEngine(t, bal, &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.StartMission(1)
	s := e.AdvanceMission()
	require.NotNil(t, s.ActiveEvent)
	require.NotEmpty(t, s.ActiveEvent.Choices)
	choice := s.ActiveEvent.Choices[0]

	s = e.ResolveEventChoice(0)
	assert.Nil(t, s.ActiveEvent)
	assert.Equal(t, 300+choice.MoneyDelta, s.PlayerMoney)
	assert.Equal(t, choice.ProgressDelta, s.ActiveMission.Progress)
}

func TestResolveEventChoice_OutOfRangeIsNoOp(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{floats: []float64{0}, ints: []int{0}})

	e.StartMission(1)
	before := e.AdvanceMission()
	require.NotNil(t, before.ActiveEvent)

	after := e.ResolveEventChoice(5)
	assert.Equal(t, before, after)
}

func TestCancelMission_ChargesFeeAndClearsMission(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 100
	e := newTestEngine(t, bal, &scriptedRand{})

	e.StartMission(1)
	e.AdvanceMission()
	instsBefore := e.Snapshot().Institutions

	s := e.CancelMission()
	assert.False(t, s.MissionActive)
	assert.Equal(t, Mission{}, s.ActiveMission)
	assert.Equal(t, 80.0, s.PlayerMoney)
	assert.Equal(t, instsBefore, s.Institutions, "cancel must not touch institutions")
}

func TestCancelMission_NoOpWhenIdle(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	before := e.Snapshot()
	after := e.CancelMission()
	assert.Equal(t, before, after)
}

func TestSubscribe_PublishesOnChangeOnly(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	var got []State
	e.Subscribe(func(s State) { got = append(got, s) })

	e.StartMission(1)      // change
	e.StartMission(2)      // absorbed, no publish
	e.CancelMission()      // change
	e.CancelMission()      // absorbed
	e.CollectPassiveIncome() // no income upgrades owned, absorbed

	require.Len(t, got, 2)
	assert.True(t, got[0].MissionActive)
	assert.False(t, got[1].MissionActive)
}

func TestSubscribe_ConcurrentCommandsPublishInStateOrder(t *testing.T) {
	bal := config.Default()
	bal.StartingMoney = 1000
	e := newTestEngine(t, bal, &scriptedRand{})
	e.PurchaseUpgrade(upgrade.OpenSourceContribution)

	var mu sync.Mutex
	var seen []float64
	e.Subscribe(func(s State) {
		mu.Lock()
		seen = append(seen, s.PlayerMoney)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.CollectPassiveIncome()
		}()
	}
	wg.Wait()

	// Each collect raises money, so snapshots delivered in state order are
	// strictly increasing. An older snapshot arriving late would break this.
	require.Len(t, seen, 16)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	e := newTestEngine(t, config.Default(), &scriptedRand{})

	snap := e.Snapshot()
	snap.Institutions[0].Dependency = -99
	snap.OwnedUpgrades = append(snap.OwnedUpgrades, "tampered")

	fresh := e.Snapshot()
	assert.Equal(t, 80.0, fresh.Institutions[0].Dependency)
	assert.Empty(t, fresh.OwnedUpgrades)
}

func findInst(t *testing.T, s State, id int) institution.Institution {
	t.Helper()
	for _, inst := range s.Institutions {
		if inst.ID == id {
			return inst
		}
	}
	t.Fatalf("institution %d not found", id)
	return institution.Institution{}
}
