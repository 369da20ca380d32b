package sim

import "fmt"

type RejectionCode string

const (
	RejectAgentNotFound          RejectionCode = "agent_not_found"
	RejectAgentDead              RejectionCode = "agent_dead"
	RejectInsufficientQi         RejectionCode = "insufficient_qi"
	RejectInsufficientOre        RejectionCode = "insufficient_ore"
	RejectPositionOccupied       RejectionCode = "position_occupied"
	RejectReproductionDeclined   RejectionCode = "reproduction_declined"
	RejectPartnerNotFound        RejectionCode = "partner_not_found"
	RejectPartnerOutOfZone       RejectionCode = "partner_out_of_zone"
	RejectStructureSpaceOccupied RejectionCode = "structure_space_occupied"
	RejectOreSourceUnavailable   RejectionCode = "ore_source_unavailable"
	RejectOreSourceDepleted      RejectionCode = "ore_source_depleted"
	RejectMoveOutOfRange         RejectionCode = "move_out_of_range"
)

// ActionError carries enough context to reconstruct why a request was
// rejected without consulting world state. All rejections are
// per-request and non-fatal.
type ActionError struct {
	Code       RejectionCode `json:"code"`
	AgentID    AgentID       `json:"agent_id"`
	Partner    AgentID       `json:"partner,omitempty"`
	Ore        OreKind       `json:"ore,omitempty"`
	Required   Qi            `json:"required,omitempty"`
	Available  Qi            `json:"available,omitempty"`
	Target     *Position     `json:"target,omitempty"`
	OccupiedBy AgentID       `json:"occupied_by,omitempty"`
	SourceID   uint64        `json:"source_id,omitempty"`
	DX         int32         `json:"dx,omitempty"`
	DY         int32         `json:"dy,omitempty"`
	DZ         int32         `json:"dz,omitempty"`
}

func (e *ActionError) Error() string {
	switch e.Code {
	case RejectAgentNotFound:
		return fmt.Sprintf("agent %d not found", e.AgentID)
	case RejectAgentDead:
		return fmt.Sprintf("agent %d is dead", e.AgentID)
	case RejectInsufficientQi:
		return fmt.Sprintf("agent %d has insufficient qi: required %d, available %d", e.AgentID, e.Required, e.Available)
	case RejectInsufficientOre:
		return fmt.Sprintf("agent %d has insufficient %s: required %d, available %d", e.AgentID, e.Ore, e.Required, e.Available)
	case RejectPositionOccupied:
		return fmt.Sprintf("agent %d cannot move to occupied position (%d, %d, %d) held by %d", e.AgentID, e.Target.X, e.Target.Y, e.Target.Z, e.OccupiedBy)
	case RejectReproductionDeclined:
		return fmt.Sprintf("agent %d reproduction not mutually agreed with %d", e.AgentID, e.Partner)
	case RejectPartnerNotFound:
		return fmt.Sprintf("agent %d reproduction partner %d not found", e.AgentID, e.Partner)
	case RejectPartnerOutOfZone:
		return fmt.Sprintf("agent %d reproduction partner %d not in same zone", e.AgentID, e.Partner)
	case RejectStructureSpaceOccupied:
		return fmt.Sprintf("agent %d cannot build structure at (%d, %d, %d): occupied", e.AgentID, e.Target.X, e.Target.Y, e.Target.Z)
	case RejectOreSourceUnavailable:
		if e.SourceID != 0 {
			return fmt.Sprintf("agent %d cannot harvest %s source %d: unavailable or out of range", e.AgentID, e.Ore, e.SourceID)
		}
		return fmt.Sprintf("agent %d has no %s source in range to harvest", e.AgentID, e.Ore)
	case RejectOreSourceDepleted:
		return fmt.Sprintf("agent %d cannot harvest depleted %s source %d: available %d, need >= %d", e.AgentID, e.Ore, e.SourceID, e.Available, HarvestPerAction)
	case RejectMoveOutOfRange:
		return fmt.Sprintf("agent %d move exceeds max radius %d (requested %d,%d,%d)", e.AgentID, MaxMoveRadius, e.DX, e.DY, e.DZ)
	default:
		return fmt.Sprintf("agent %d action rejected: %s", e.AgentID, e.Code)
	}
}

// Rejection pairs a failed request with its reason. One agent's
// rejection never blocks the rest of the batch.
type Rejection struct {
	Request ActionRequest `json:"request"`
	Err     *ActionError  `json:"error"`
}
