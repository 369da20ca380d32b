package memory

import (
	"context"

	"harimu/internal/app/ports"
)

type RunStateRepo struct {
	store *Store
}

func NewRunStateRepo(store *Store) RunStateRepo {
	return RunStateRepo{store: store}
}

func (r RunStateRepo) Get(_ context.Context) (ports.RunStateRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.runState == nil {
		return ports.RunStateRecord{}, ports.ErrNotFound
	}
	return *r.store.runState, nil
}

func (r RunStateRepo) Save(_ context.Context, state ports.RunStateRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runState = &state
	return nil
}
