package sim

type AgentSnapshot struct {
	ID          AgentID  `json:"id"`
	Name        string   `json:"name"`
	Qi          Qi       `json:"qi"`
	Transistors Qi       `json:"transistors"`
	Position    Position `json:"position"`
	Alive       bool     `json:"alive"`
	Age         uint64   `json:"age"`
	MaxAge      uint64   `json:"max_age"`
}

type OreNodeSnapshot struct {
	ID              uint64   `json:"id"`
	Ore             OreKind  `json:"ore"`
	Position        Position `json:"position"`
	Available       Qi       `json:"available"`
	Capacity        Qi       `json:"capacity"`
	RechargePerTick Qi       `json:"recharge_per_tick"`
}

type StructureView struct {
	ID       uint64        `json:"id"`
	Kind     StructureKind `json:"kind"`
	Position Position      `json:"position"`
	Owner    AgentID       `json:"owner"`
}

// WorldSnapshot is the read-only view handed to persistence and
// viewers. Collections are sorted by id.
type WorldSnapshot struct {
	Tick       uint64            `json:"tick"`
	Agents     []AgentSnapshot   `json:"agents"`
	OreNodes   []OreNodeSnapshot `json:"ore_nodes"`
	Structures []StructureView   `json:"structures"`
}
