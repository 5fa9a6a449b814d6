// Command sim runs the liberation game headless for a fixed number of ticks
// with a greedy autoplayer, then prints the end-of-run summary. Useful for
// balance tuning: same seed, same run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dev-du-bled/the-free-transitionner/internal/config"
	"github.com/dev-du-bled/the-free-transitionner/internal/game"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
)

func main() {
	ticks := flag.Int("ticks", 1000, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "RNG seed")
	difficulty := flag.String("difficulty", "default", "balance preset: default, casual, hard")
	verbose := flag.Bool("v", false, "log each liberation as it happens")
	flag.Parse()

	bal, err := config.BalanceFor(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	repo := telemetry.NewMemoryRepository()
	clock := game.NewFakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	engine := game.NewEngine(game.Params{
		Balance:   &bal,
		Rand:      game.NewSeededRand(*seed),
		Clock:     clock,
		Telemetry: repo,
	})

	if *verbose {
		prev := 0
		engine.Subscribe(func(s game.State) {
			if s.LiberatedCount > prev {
				prev = s.LiberatedCount
				fmt.Printf("tick state: %d liberated, coverage %.1f%%, money %.0f\n",
					s.LiberatedCount, s.Coverage(), s.PlayerMoney)
			}
		})
	}

	for i := 0; i < *ticks; i++ {
		clock.Advance(time.Second)
		autoplay(engine)
	}

	printSummary(engine, repo, *ticks)
}

// autoplay is the greedy policy: keep a mission running against the easiest
// target, always pick the first event choice, buy the cheapest upgrade the
// budget allows, and let spread and passive income run every tick.
func autoplay(engine *game.Engine) {
	s := engine.Snapshot()

	if s.ActiveEvent != nil {
		s = engine.ResolveEventChoice(0)
	}

	if !s.MissionActive {
		if target, ok := s.NextTarget(); ok {
			s = engine.StartMission(target.ID)
		}
	}

	s = engine.AdvanceMission()
	engine.TickSpread()
	s = engine.CollectPassiveIncome()

	cheapest := ""
	cheapestCost := 0.0
	for _, u := range engine.Shop() {
		if s.Owns(u.ID) || u.Cost > s.PlayerMoney {
			continue
		}
		if cheapest == "" || u.Cost < cheapestCost {
			cheapest = u.ID
			cheapestCost = u.Cost
		}
	}
	if cheapest != "" {
		engine.PurchaseUpgrade(cheapest)
	}
}

func printSummary(engine *game.Engine, repo *telemetry.MemoryRepository, ticks int) {
	s := engine.Snapshot()

	events, err := repo.GetEvents(time.Time{}, nil)
	if err != nil {
		log.Fatal(err)
	}
	stats, err := telemetry.CalculateStats(events, time.Time{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("simulated %d ticks\n", ticks)
	fmt.Printf("  coverage:        %.1f%%\n", s.Coverage())
	fmt.Printf("  liberated:       %d/%d\n", s.LiberatedCount, len(s.Institutions))
	fmt.Printf("  gafam share:     %.1f%%\n", s.GafamMarketShare)
	fmt.Printf("  money:           %.0f\n", s.PlayerMoney)
	fmt.Printf("  upgrades owned:  %d\n", len(s.OwnedUpgrades))
	fmt.Printf("  missions failed: %d, cancelled: %d\n", stats.MissionsFailed, stats.MissionsCancelled)
	fmt.Printf("  events seen:     %d\n", stats.EventsTriggered)
	fmt.Printf("  money earned:    %.0f, spent: %.0f\n", stats.MoneyEarned, stats.MoneySpent)
}
