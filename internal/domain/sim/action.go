package sim

type ActionType string

const (
	ActionScan      ActionType = "scan"
	ActionIdle      ActionType = "idle"
	ActionMove      ActionType = "move"
	ActionReproduce ActionType = "reproduce"
	ActionBuild     ActionType = "build_structure"
	ActionHarvest   ActionType = "harvest"
)

// Action carries the type plus whatever parameters that type needs;
// unused fields stay zero.
type Action struct {
	Type      ActionType    `json:"type"`
	DX        int32         `json:"dx,omitempty"`
	DY        int32         `json:"dy,omitempty"`
	DZ        int32         `json:"dz,omitempty"`
	Partner   AgentID       `json:"partner,omitempty"`
	Structure StructureKind `json:"structure,omitempty"`
	Ore       OreKind       `json:"ore,omitempty"`
	SourceID  uint64        `json:"source_id,omitempty"`
}

func ScanAction() Action {
	return Action{Type: ActionScan}
}

func IdleAction() Action {
	return Action{Type: ActionIdle}
}

func MoveAction(dx, dy, dz int32) Action {
	return Action{Type: ActionMove, DX: dx, DY: dy, DZ: dz}
}

func ReproduceAction(partner AgentID) Action {
	return Action{Type: ActionReproduce, Partner: partner}
}

func BuildAction(kind StructureKind) Action {
	return Action{Type: ActionBuild, Structure: kind}
}

func HarvestAction(ore OreKind, sourceID uint64) Action {
	return Action{Type: ActionHarvest, Ore: ore, SourceID: sourceID}
}

// QiCost is the upfront charge for the action. Harvest and build also
// have their own resource rules on top of this.
func (a Action) QiCost() Qi {
	switch a.Type {
	case ActionBuild, ActionHarvest:
		return 1
	default:
		return 0
	}
}

type ActionRequest struct {
	AgentID AgentID `json:"agent_id"`
	Action  Action  `json:"action"`
}

func NewRequest(agentID AgentID, action Action) ActionRequest {
	return ActionRequest{AgentID: agentID, Action: action}
}
