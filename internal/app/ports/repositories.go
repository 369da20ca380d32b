package ports

import (
	"context"
	"time"

	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"
)

// TickEvent is one persisted world-log entry with the tick it belongs
// to. Seq preserves in-tick ordering.
type TickEvent struct {
	Tick  uint64    `json:"tick"`
	Seq   int       `json:"seq"`
	Event sim.Event `json:"event"`
}

// RunStateRecord is the durable run header: where the world left off
// and how much Qi has ever been infused (the supply cap on resume).
type RunStateRecord struct {
	Status    string
	LastTick  uint64
	InfusedQi uint64
	UpdatedAt time.Time
}

type OreNodeRepository interface {
	SaveAll(ctx context.Context, nodes []sim.OreSource) error
	List(ctx context.Context) ([]sim.OreSource, error)
}

type StructureRepository interface {
	SaveAll(ctx context.Context, structures []sim.Structure) error
	List(ctx context.Context) ([]sim.Structure, error)
}

type EventRepository interface {
	Append(ctx context.Context, tick uint64, events []sim.Event) error
	// ListRecent returns the newest events first. agentID 0 means all
	// agents.
	ListRecent(ctx context.Context, agentID sim.AgentID, limit int) ([]TickEvent, error)
}

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot sim.WorldSnapshot) error
	Latest(ctx context.Context) (sim.WorldSnapshot, error)
}

type WalletRepository interface {
	Create(ctx context.Context, w wallet.Wallet) error
	Get(ctx context.Context, address string) (wallet.Wallet, error)
	Save(ctx context.Context, w wallet.Wallet) error
}

type RunStateRepository interface {
	Get(ctx context.Context) (RunStateRecord, error)
	Save(ctx context.Context, state RunStateRecord) error
}
