package ports

import (
	"context"

	"harimu/internal/domain/sim"
)

// PlannerView is everything a planner may see when choosing one
// agent's next action: the agent itself plus its scan-range
// surroundings. Planners never get write access to the world.
type PlannerView struct {
	Tick          uint64                  `json:"tick"`
	Agent         sim.AgentSnapshot       `json:"agent"`
	OreSources    []sim.OreSourceSnapshot `json:"ore_sources"`
	Structures    []sim.StructureSnapshot `json:"structures"`
	Neighbors     []sim.AgentSnapshot     `json:"neighbors"`
	LastRejection string                  `json:"last_rejection,omitempty"`
}

type Planner interface {
	PlanAction(ctx context.Context, view PlannerView) (sim.Action, error)
}
