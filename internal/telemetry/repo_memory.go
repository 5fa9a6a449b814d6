package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores telemetry events.
type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the session's events in an append-only slice.
// Good for a single game session; nothing survives the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	seq    int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	meta, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.events = append(r.events, Event{
		ID:        r.seq,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(meta),
	})
	return nil
}

// GetEvents returns events at or after since, oldest first. A non-empty
// eventTypes slice restricts the result to those types.
func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	wanted := make(map[EventType]struct{}, len(eventTypes))
	for _, t := range eventTypes {
		wanted[t] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Timestamp.Before(since) {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[ev.Type]; !ok {
				continue
			}
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
	r.seq = 0
	return nil
}
