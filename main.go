package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dev-du-bled/the-free-transitionner/internal/config"
	"github.com/dev-du-bled/the-free-transitionner/internal/event"
	"github.com/dev-du-bled/the-free-transitionner/internal/game"
	"github.com/dev-du-bled/the-free-transitionner/internal/httpmw"
	"github.com/dev-du-bled/the-free-transitionner/internal/institution"
	"github.com/dev-du-bled/the-free-transitionner/internal/server"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
	"github.com/dev-du-bled/the-free-transitionner/internal/upgrade"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	repo := telemetry.NewMemoryRepository()
	engine, err := buildEngine(cfg, repo)
	if err != nil {
		log.Fatal(err)
	}

	hub := server.NewHub()
	engine.Subscribe(hub.BroadcastState)

	app := &server.App{Engine: engine, Telemetry: repo, Hub: hub}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(nil),
		httpmw.WithAccessLog(nil),
	)

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	g.Go(func() error {
		return runTicker(ctx, engine, cfg.TickInterval())
	})

	g.Go(func() error {
		fmt.Printf("the-free-transitionner listening on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// runTicker drives the idle loop: each tick advances the active mission,
// runs one spread pass and collects passive income.
func runTicker(ctx context.Context, engine *game.Engine, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			engine.AdvanceMission()
			engine.TickSpread()
			engine.CollectPassiveIncome()
		}
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg := config.DefaultConfig()
	cfg.Balance = config.FromEnv()
	return cfg, nil
}

func buildEngine(cfg config.Config, tel telemetry.Recorder) (*game.Engine, error) {
	params := game.Params{
		Balance:   &cfg.Balance,
		Clock:     game.RealClock{},
		Telemetry: tel,
	}

	if cfg.Seed != 0 {
		params.Rand = game.NewSeededRand(cfg.Seed)
	}

	if cfg.InstitutionsFile != "" {
		catalog, err := institution.LoadFile(cfg.InstitutionsFile)
		if err != nil {
			return nil, fmt.Errorf("load institutions: %w", err)
		}
		params.Institutions = catalog
	}
	if cfg.UpgradesFile != "" {
		catalog, err := upgrade.LoadFile(cfg.UpgradesFile)
		if err != nil {
			return nil, fmt.Errorf("load upgrades: %w", err)
		}
		params.Upgrades = catalog
	}
	params.Events = event.Seed()

	return game.NewEngine(params), nil
}
