package memory

import (
	"context"
	"sort"

	"harimu/internal/domain/sim"
)

type StructureRepo struct {
	store *Store
}

func NewStructureRepo(store *Store) StructureRepo {
	return StructureRepo{store: store}
}

func (r StructureRepo) SaveAll(_ context.Context, structures []sim.Structure) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range structures {
		r.store.structures[s.ID] = s
	}
	return nil
}

func (r StructureRepo) List(_ context.Context) ([]sim.Structure, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]sim.Structure, 0, len(r.store.structures))
	for _, s := range r.store.structures {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
