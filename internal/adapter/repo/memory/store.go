package memory

import (
	"sync"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"
)

// Store backs every repository port with mutex-guarded maps. It is
// used by tests and DSN-less runs.
type Store struct {
	mu         sync.RWMutex
	oreNodes   []sim.OreSource
	nextNodeID uint64
	structures map[uint64]sim.Structure
	events     []ports.TickEvent
	latest     sim.WorldSnapshot
	hasLatest  bool
	wallets    map[string]wallet.Wallet
	runState   *ports.RunStateRecord
}

func NewStore() *Store {
	return &Store{
		nextNodeID: 1,
		structures: make(map[uint64]sim.Structure),
		wallets:    make(map[string]wallet.Wallet),
	}
}
