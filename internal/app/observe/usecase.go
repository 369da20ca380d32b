package observe

import (
	"context"

	"harimu/internal/domain/sim"
)

// Snapshotter is the live world view. The runner implements it.
type Snapshotter interface {
	Snapshot() sim.WorldSnapshot
}

// UseCase is the sole boundary through which viewers see the world.
type UseCase struct {
	World Snapshotter
}

func (u UseCase) Execute(_ context.Context) (Response, error) {
	return Response{Snapshot: u.World.Snapshot()}, nil
}
