// Package game is the simulation core: the mission state machine, the
// geographic spread model and the upgrade effect system, all mutating a
// single game-state snapshot through serialized update calls.
//
// Invalid commands are absorbed silently: the state is simply left
// unchanged, and callers that care compare snapshots before and after.
package game

import (
	"sync"
	"time"

	"github.com/dev-du-bled/the-free-transitionner/internal/config"
	"github.com/dev-du-bled/the-free-transitionner/internal/event"
	"github.com/dev-du-bled/the-free-transitionner/internal/institution"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

// Engine owns the game state and applies every command atomically. It is
// safe for concurrent use, though the intended driver is a single clock loop.
type Engine struct {
	mu       sync.Mutex
	balance  config.Balance
	events   event.Catalog
	upgrades map[string]upgrade.Upgrade
	shop     upgrade.Catalog
	rng      Rand
	clock    Clock
	tel      telemetry.Recorder

	state State

	// pubMu serializes publishes: it is acquired before the state lock is
	// released, so subscribers see snapshots in state order even when
	// commands arrive concurrently.
	pubMu sync.Mutex

	subMu sync.Mutex
	subs  []func(State)
}

// Params assembles an Engine. Zero-value fields fall back to the built-in
// seed catalogs, default balance, a wall-clock seeded RNG and no telemetry.
type Params struct {
	Institutions institution.Catalog
	Upgrades     upgrade.Catalog
	Events       event.Catalog
	Balance      *config.Balance
	Rand         Rand
	Clock        Clock
	Telemetry    telemetry.Recorder
}

func NewEngine(p Params) *Engine {
	if p.Institutions == nil {
		p.Institutions = institution.Seed()
	}
	if p.Upgrades == nil {
		p.Upgrades = upgrade.Seed()
	}
	if p.Events == nil {
		p.Events = event.Seed()
	}
	bal := config.Default()
	if p.Balance != nil {
		bal = *p.Balance
	}
	if p.Rand == nil {
		p.Rand = NewSeededRand(time.Now().UnixNano())
	}
	if p.Clock == nil {
		p.Clock = RealClock{}
	}
	if p.Telemetry == nil {
		p.Telemetry = telemetry.Nop{}
	}

	return &Engine{
		balance:  bal,
		events:   p.Events,
		upgrades: p.Upgrades.ByID(),
		shop:     p.Upgrades,
		rng:      p.Rand,
		clock:    p.Clock,
		tel:      p.Telemetry,
		state:    newState(p.Institutions, bal.StartingMoney, bal.StartingMarketShare, p.Clock.Now()),
	}
}

// Balance returns the tuning constants the engine was built with.
func (e *Engine) Balance() config.Balance { return e.balance }

// Shop returns the upgrade catalog in display order.
func (e *Engine) Shop() upgrade.Catalog { return e.shop }

// Events returns the mission event catalog.
func (e *Engine) Events() event.Catalog { return e.events }

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Callbacks run synchronously on the mutating goroutine, outside the state
// lock, in registration order.
func (e *Engine) Subscribe(fn func(State)) {
	e.subMu.Lock()
	e.subs = append(e.subs, fn)
	e.subMu.Unlock()
}

// apply runs a command under the lock. If the command reports a change, the
// snapshot is stamped and published to subscribers.
func (e *Engine) apply(cmd func() bool) State {
	e.mu.Lock()
	changed := cmd()
	if changed {
		e.state.UpdatedAt = e.clock.Now()
	}
	snap := e.state.clone()
	if changed {
		e.pubMu.Lock()
	}
	e.mu.Unlock()

	if changed {
		e.publish(snap)
		e.pubMu.Unlock()
	}
	return snap
}

func (e *Engine) publish(snap State) {
	e.subMu.Lock()
	subs := make([]func(State), len(e.subs))
	copy(subs, e.subs)
	e.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (e *Engine) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	_ = e.tel.RecordEvent(t, meta)
}
