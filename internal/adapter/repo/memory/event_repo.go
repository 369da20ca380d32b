package memory

import (
	"context"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, tick uint64, events []sim.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, e := range events {
		r.store.events = append(r.store.events, ports.TickEvent{Tick: tick, Seq: i, Event: e})
	}
	return nil
}

func (r EventRepo) ListRecent(_ context.Context, agentID sim.AgentID, limit int) ([]ports.TickEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []ports.TickEvent{}
	for i := len(r.store.events) - 1; i >= 0; i-- {
		e := r.store.events[i]
		if agentID != 0 && !eventConcernsAgent(e.Event, agentID) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}

func eventConcernsAgent(e sim.Event, agentID sim.AgentID) bool {
	return e.AgentID == agentID || e.ParentA == agentID || e.ParentB == agentID || e.ChildID == agentID
}
