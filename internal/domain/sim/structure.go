package sim

import "strings"

type StructureKind string

const (
	StructureBasic        StructureKind = "basic"
	StructureProgrammable StructureKind = "programmable"
	StructureQi           StructureKind = "qi"
)

func (k StructureKind) Valid() bool {
	return k == StructureBasic || k == StructureProgrammable || k == StructureQi
}

func ParseStructureKind(raw string) (StructureKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "basic":
		return StructureBasic, true
	case "programmable":
		return StructureProgrammable, true
	case "qi", "qi-node", "qinode", "qi_node":
		return StructureQi, true
	default:
		return "", false
	}
}

// Structure is immutable once placed; at most one per position.
type Structure struct {
	ID       uint64        `json:"id"`
	Kind     StructureKind `json:"kind"`
	Position Position      `json:"position"`
	Zone     Zone          `json:"zone"`
	Owner    AgentID       `json:"owner"`
}
