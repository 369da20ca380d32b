package ports

import "harimu/internal/domain/sim"

// TickBroadcast is the read-only per-tick payload pushed to viewers
// and archives. Nothing sent here ever feeds back into the engine.
type TickBroadcast struct {
	Tick       uint64            `json:"tick"`
	Snapshot   sim.WorldSnapshot `json:"snapshot"`
	Events     []sim.Event       `json:"events"`
	Rejections []sim.Rejection   `json:"rejections"`
}

type TickPublisher interface {
	PublishTick(broadcast TickBroadcast)
}
