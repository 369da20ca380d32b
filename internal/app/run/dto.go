package run

import "harimu/internal/domain/sim"

// AgentSeed describes one agent to spawn when a run starts. MaxAge 0
// means the default lifespan.
type AgentSeed struct {
	Name     string       `json:"name" yaml:"name"`
	Qi       sim.Qi       `json:"qi" yaml:"qi"`
	Position sim.Position `json:"position" yaml:"position"`
	MaxAge   uint64       `json:"max_age,omitempty" yaml:"max_age"`
}

type StepResponse struct {
	Tick       uint64          `json:"tick"`
	Events     []sim.Event     `json:"events"`
	Rejections []sim.Rejection `json:"rejections"`
}

const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusStopped = "stopped"
)
