package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	Liberations       int               `json:"liberations"`
	MissionsFailed    int               `json:"missions_failed"`
	MissionsCancelled int               `json:"missions_cancelled"`
	EventsTriggered   int               `json:"events_triggered"`
	SpreadTicks       int               `json:"spread_ticks"`
	MoneyEarned       float64           `json:"money_earned"`
	MoneySpent        float64           `json:"money_spent"`
	UpgradesByID      map[string]int    `json:"upgrades_by_id"`
	LiberationsByID   map[string]int    `json:"liberations_by_id"`
}

// CalculateStats computes balance stats from events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:          since.Format("2006-01-02"),
		EventCounts:     make(map[EventType]int),
		UpgradesByID:    make(map[string]int),
		LiberationsByID: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventMissionCompleted:
			stats.Liberations++
			if name, ok := metadata["institution"].(string); ok {
				stats.LiberationsByID[name]++
			}
			if reward, ok := metadata["reward"].(float64); ok {
				stats.MoneyEarned += reward
			}
		case EventMissionFailed:
			stats.MissionsFailed++
			if penalty, ok := metadata["penalty"].(float64); ok {
				stats.MoneySpent += penalty
			}
		case EventMissionCancelled:
			stats.MissionsCancelled++
			if fee, ok := metadata["fee"].(float64); ok {
				stats.MoneySpent += fee
			}
		case EventTriggered:
			stats.EventsTriggered++
		case EventSpreadTick:
			stats.SpreadTicks++
		case EventUpgradePurchased:
			if id, ok := metadata["upgrade_id"].(string); ok {
				stats.UpgradesByID[id]++
			}
			if cost, ok := metadata["cost"].(float64); ok {
				stats.MoneySpent += cost
			}
		case EventIncomeCollected:
			if amount, ok := metadata["amount"].(float64); ok {
				stats.MoneyEarned += amount
			}
		}
	}

	return stats, nil
}
