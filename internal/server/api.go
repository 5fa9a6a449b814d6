// Package server exposes the engine's command set over HTTP and publishes
// state snapshots to websocket subscribers.
//
// Command endpoints always answer 200 with the post-command snapshot: the
// engine absorbs invalid commands silently, so callers infer rejection by
// comparing state. Only malformed request bodies get a 400.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dev-du-bled/the-free-transitionner/internal/game"
	"github.com/dev-du-bled/the-free-transitionner/internal/telemetry"
)

// App holds the in-memory state for the server.
// This makes it obvious what the handlers depend on.
type App struct {
	Engine    *game.Engine
	Telemetry telemetry.Repository
	Hub       *Hub
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// progressView is the /api/state/progress payload.
type progressView struct {
	Coverage         float64 `json:"coverage"`
	LiberatedCount   int     `json:"liberated_count"`
	GafamMarketShare float64 `json:"gafam_market_share"`
	NextTargetID     *int    `json:"next_target_id,omitempty"`
	NextTargetName   string  `json:"next_target_name,omitempty"`
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine

	Handle(mux, rr, "GET /healthz", "Liveness check", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "the-free-transitionner",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	Handle(mux, rr, "GET /api/routes", "List registered routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	// --- Read views ---

	Handle(mux, rr, "GET /api/state", "Full game snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Snapshot())
	})

	Handle(mux, rr, "GET /api/state/progress", "Coverage and next-target hint", "", func(w http.ResponseWriter, r *http.Request) {
		s := engine.Snapshot()
		view := progressView{
			Coverage:         s.Coverage(),
			LiberatedCount:   s.LiberatedCount,
			GafamMarketShare: s.GafamMarketShare,
		}
		if next, ok := s.NextTarget(); ok {
			id := next.ID
			view.NextTargetID = &id
			view.NextTargetName = next.Name
		}
		writeJSON(w, view)
	})

	Handle(mux, rr, "GET /api/institutions", "Institutions with live dependency scores", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Snapshot().Institutions)
	})

	Handle(mux, rr, "GET /api/upgrades", "Upgrade shop and owned set", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"catalog": engine.Shop(),
			"owned":   engine.Snapshot().OwnedUpgrades,
		})
	})

	Handle(mux, rr, "GET /api/events", "Mission event catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Events())
	})

	// --- Commands ---

	Handle(mux, rr, "POST /api/mission/start", "Start a liberation mission", `{"institution_id":1}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			InstitutionID int `json:"institution_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		writeJSON(w, engine.StartMission(body.InstitutionID))
	})

	Handle(mux, rr, "POST /api/mission/advance", "Advance the active mission one tick", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.AdvanceMission())
	})

	Handle(mux, rr, "POST /api/mission/resolve", "Resolve the pending event by choice index", `{"choice_index":0}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ChoiceIndex int `json:"choice_index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		writeJSON(w, engine.ResolveEventChoice(body.ChoiceIndex))
	})

	Handle(mux, rr, "POST /api/mission/cancel", "Cancel the active mission", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.CancelMission())
	})

	Handle(mux, rr, "POST /api/upgrades/purchase", "Purchase a permanent upgrade", `{"upgrade_id":"script-install"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UpgradeID string `json:"upgrade_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		writeJSON(w, engine.PurchaseUpgrade(body.UpgradeID))
	})

	Handle(mux, rr, "POST /api/income/collect", "Collect passive income", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.CollectPassiveIncome())
	})

	Handle(mux, rr, "POST /api/spread/tick", "Run one spread tick", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.TickSpread())
	})

	// --- Telemetry ---

	Handle(mux, rr, "GET /api/telemetry/stats", "Session balance stats", "", func(w http.ResponseWriter, r *http.Request) {
		events, err := app.Telemetry.GetEvents(time.Time{}, nil)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		stats, err := telemetry.CalculateStats(events, time.Now().AddDate(0, 0, -1))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, stats)
	})

	// --- Subscription ---

	if app.Hub != nil {
		Handle(mux, rr, "GET /ws", "Subscribe to state snapshots", "", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(app.Hub, w, r)
		})
	}
}
