package replay

import (
	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

type Request struct {
	AgentID sim.AgentID `json:"agent_id,omitempty"`
	Limit   int         `json:"limit,omitempty"`
}

type Response struct {
	Events []ports.TickEvent `json:"events"`
}
