package telemetry

import "time"

type EventType string

const (
	EventMissionStarted   EventType = "mission_started"
	EventMissionCompleted EventType = "mission_completed"
	EventMissionFailed    EventType = "mission_failed"
	EventMissionCancelled EventType = "mission_cancelled"
	EventTriggered        EventType = "event_triggered"
	EventResolved         EventType = "event_resolved"
	EventUpgradePurchased EventType = "upgrade_purchased"
	EventIncomeCollected  EventType = "income_collected"
	EventSpreadTick       EventType = "spread_tick"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}

// Recorder is the write side the engine reports to.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}

// Nop discards all events.
type Nop struct{}

func (Nop) RecordEvent(EventType, EventMetadata) error { return nil }
