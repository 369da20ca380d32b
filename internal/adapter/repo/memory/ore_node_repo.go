package memory

import (
	"context"
	"sort"

	"harimu/internal/domain/sim"
)

type OreNodeRepo struct {
	store *Store
}

func NewOreNodeRepo(store *Store) OreNodeRepo {
	return OreNodeRepo{store: store}
}

func (r OreNodeRepo) SaveAll(_ context.Context, nodes []sim.OreSource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range nodes {
		if n.ID == 0 {
			n.ID = r.store.nextNodeID
			r.store.nextNodeID++
			r.store.oreNodes = append(r.store.oreNodes, n)
			continue
		}
		replaced := false
		for i := range r.store.oreNodes {
			if r.store.oreNodes[i].ID == n.ID {
				r.store.oreNodes[i] = n
				replaced = true
				break
			}
		}
		if !replaced {
			r.store.oreNodes = append(r.store.oreNodes, n)
			if n.ID >= r.store.nextNodeID {
				r.store.nextNodeID = n.ID + 1
			}
		}
	}
	return nil
}

func (r OreNodeRepo) List(_ context.Context) ([]sim.OreSource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]sim.OreSource, len(r.store.oreNodes))
	copy(out, r.store.oreNodes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
