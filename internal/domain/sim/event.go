package sim

type EventKind string

const (
	EventTickStarted      EventKind = "tick_started"
	EventTickCompleted    EventKind = "tick_completed"
	EventAgentSpawned     EventKind = "agent_spawned"
	EventQiSpent          EventKind = "qi_spent"
	EventOreGained        EventKind = "ore_gained"
	EventAgentMoved       EventKind = "agent_moved"
	EventAgentDied        EventKind = "agent_died"
	EventActionObserved   EventKind = "action_observed"
	EventAgentReproduced  EventKind = "agent_reproduced"
	EventStructureBuilt   EventKind = "structure_built"
	EventOreNodeHarvested EventKind = "ore_node_harvested"
	EventOreNodeDrained   EventKind = "ore_node_drained"
	EventScanReport       EventKind = "scan_report"
)

type DeathReason string

const (
	DeathAge        DeathReason = "age"
	DeathHazard     DeathReason = "hazard"
	DeathCorruption DeathReason = "corruption"
)

// Event is one entry of the append-only world log. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind        EventKind     `json:"kind"`
	Tick        uint64        `json:"tick,omitempty"`
	AgentID     AgentID       `json:"agent_id,omitempty"`
	Name        string        `json:"name,omitempty"`
	Qi          Qi            `json:"qi,omitempty"`
	Amount      Qi            `json:"amount,omitempty"`
	Action      ActionType    `json:"action,omitempty"`
	Ore         OreKind       `json:"ore,omitempty"`
	Source      string        `json:"source,omitempty"`
	From        *Position     `json:"from,omitempty"`
	To          *Position     `json:"to,omitempty"`
	Position    *Position     `json:"position,omitempty"`
	Reason      DeathReason   `json:"reason,omitempty"`
	ParentA     AgentID       `json:"parent_a,omitempty"`
	ParentB     AgentID       `json:"parent_b,omitempty"`
	ChildID     AgentID       `json:"child_id,omitempty"`
	Structure   StructureKind `json:"structure,omitempty"`
	StructureID uint64        `json:"structure_id,omitempty"`
	SourceID    uint64        `json:"source_id,omitempty"`
	Remaining   Qi            `json:"remaining,omitempty"`
	Scan        *ScanReport   `json:"scan,omitempty"`
}

// ScanReport lists everything within ScanRange of the scanning agent.
type ScanReport struct {
	Position   Position            `json:"position"`
	Qi         Qi                  `json:"qi"`
	OreSources []OreSourceSnapshot `json:"ore_sources"`
	Structures []StructureSnapshot `json:"structures"`
}
