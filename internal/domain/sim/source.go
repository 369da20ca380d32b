package sim

// OreSource is a rechargeable resource node. Drained sources persist
// at Current == 0 and are never removed.
type OreSource struct {
	ID              uint64   `json:"id"`
	Ore             OreKind  `json:"ore"`
	Position        Position `json:"position"`
	Capacity        Qi       `json:"capacity"`
	Current         Qi       `json:"current"`
	RechargePerTick Qi       `json:"recharge_per_tick"`
}

// OreSourceSnapshot is the scan-visible view of a source.
type OreSourceSnapshot struct {
	ID        uint64   `json:"id"`
	Ore       OreKind  `json:"ore"`
	Position  Position `json:"position"`
	Available Qi       `json:"available"`
	Capacity  Qi       `json:"capacity"`
}

// StructureSnapshot is the scan-visible view of a structure.
type StructureSnapshot struct {
	ID       uint64        `json:"id"`
	Kind     StructureKind `json:"kind"`
	Position Position      `json:"position"`
}
