package memory

import (
	"context"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

type SnapshotRepo struct {
	store *Store
}

func NewSnapshotRepo(store *Store) SnapshotRepo {
	return SnapshotRepo{store: store}
}

func (r SnapshotRepo) Save(_ context.Context, snapshot sim.WorldSnapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.latest = snapshot
	r.store.hasLatest = true
	return nil
}

func (r SnapshotRepo) Latest(_ context.Context) (sim.WorldSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if !r.store.hasLatest {
		return sim.WorldSnapshot{}, ports.ErrNotFound
	}
	return r.store.latest, nil
}
