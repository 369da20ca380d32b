package sim

import (
	"math"
	"sort"
)

// World owns all entity state and enforces the structural invariants:
// one live agent per cell, monotonic ids, an append-only event log and
// the closed Qi economy. It has no action-resolution logic of its own.
type World struct {
	tick            uint64
	nextAgentID     AgentID
	nextStructureID uint64
	nextSourceID    uint64
	maxQiSupply     uint64
	supplyCapped    bool
	recycledQi      uint64
	agents          map[AgentID]*Agent
	events          []Event
	occupied        map[Position]AgentID
	structures      []Structure
	sources         []OreSource
}

func NewWorld() *World {
	return &World{
		nextAgentID:     1,
		nextStructureID: 1,
		nextSourceID:    1,
		agents:          map[AgentID]*Agent{},
		occupied:        map[Position]AgentID{},
	}
}

func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) SpawnAgent(name string, qi Qi, position Position) AgentID {
	return w.SpawnAgentWithAge(name, qi, position, DefaultMaxAgentAge)
}

// SpawnAgentWithAge never fails: an occupied cell shifts the spawn +1
// on the x axis until a free cell is found.
func (w *World) SpawnAgentWithAge(name string, qi Qi, position Position, maxAge uint64) AgentID {
	pos := position
	for {
		if _, taken := w.occupied[pos]; !taken {
			break
		}
		pos = pos.Offset(1, 0, 0)
	}

	if maxAge < 1 {
		maxAge = 1
	}

	agentID := w.nextAgentID
	w.nextAgentID++

	agent := &Agent{
		ID:       agentID,
		Name:     name,
		Qi:       qi,
		Position: pos,
		Alive:    true,
		MaxAge:   maxAge,
	}
	agent.discoverZone(pos.Zone())

	w.events = append(w.events, Event{
		Kind:     EventAgentSpawned,
		AgentID:  agentID,
		Name:     name,
		Qi:       qi,
		Position: &pos,
	})

	w.agents[agentID] = agent
	w.occupied[pos] = agentID
	return agentID
}

// Agent returns the live or dead agent, or nil. Callers must treat the
// result as read-only; all mutation goes through the Vm.
func (w *World) Agent(id AgentID) *Agent {
	return w.agents[id]
}

// AgentIDs returns every agent id ever spawned, sorted.
func (w *World) AgentIDs() []AgentID {
	ids := make([]AgentID, 0, len(w.agents))
	for id := range w.agents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LiveAgentIDs returns the ids of alive agents, sorted.
func (w *World) LiveAgentIDs() []AgentID {
	ids := make([]AgentID, 0, len(w.agents))
	for id, a := range w.agents {
		if a.Alive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Events returns the permanent log. Nothing is ever removed from it.
func (w *World) Events() []Event {
	return w.events
}

func (w *World) OreSources() []OreSource {
	out := make([]OreSource, len(w.sources))
	copy(out, w.sources)
	return out
}

func (w *World) Structures() []Structure {
	out := make([]Structure, len(w.structures))
	copy(out, w.structures)
	return out
}

func (w *World) SetMaxQiSupply(max uint64) {
	w.maxQiSupply = max
	w.supplyCapped = true
}

func (w *World) MaxQiSupply() (uint64, bool) {
	return w.maxQiSupply, w.supplyCapped
}

func (w *World) RecycledQi() uint64 {
	return w.recycledQi
}

func (w *World) recycleQi(amount Qi) {
	w.recycledQi += uint64(amount)
}

// TotalQiSupply is all Qi in circulation: agent balances (dead agents
// keep theirs), Qi-kind source levels and the recycled pool.
func (w *World) TotalQiSupply() uint64 {
	var total uint64
	for _, a := range w.agents {
		total += uint64(a.Qi)
	}
	for _, s := range w.sources {
		if s.Ore == OreQi {
			total += uint64(s.Current)
		}
	}
	return total + w.recycledQi
}

func (w *World) AddOreSource(ore OreKind, position Position, capacity, rechargePerTick Qi) uint64 {
	id := w.nextSourceID
	w.nextSourceID++
	w.sources = append(w.sources, OreSource{
		ID:              id,
		Ore:             ore,
		Position:        position,
		Capacity:        capacity,
		Current:         capacity,
		RechargePerTick: rechargePerTick,
	})
	return id
}

// rechargeOreSources runs once per tick before any action applies.
// Non-Qi ore recharges freely up to capacity. Qi ore refills from the
// recycled pool first; only the remaining allowance may mint fresh Qi,
// and only while the global supply budget holds.
func (w *World) rechargeOreSources() {
	budget := uint64(math.MaxUint64)
	if w.supplyCapped {
		total := w.TotalQiSupply()
		if w.maxQiSupply > total {
			budget = w.maxQiSupply - total
		} else {
			budget = 0
		}
	}
	pool := w.recycledQi

	for i := range w.sources {
		src := &w.sources[i]
		if src.Ore != OreQi {
			level := satAddQi(src.Current, src.RechargePerTick)
			if level > src.Capacity {
				level = src.Capacity
			}
			src.Current = level
			continue
		}

		headroom := uint64(src.Capacity - src.Current)
		if headroom == 0 {
			continue
		}

		allowance := uint64(src.RechargePerTick)
		fromPool := minU64(pool, headroom, allowance)
		if fromPool > 0 {
			src.Current += Qi(fromPool)
			pool -= fromPool
		}

		remainingAllowance := allowance - fromPool
		remainingHeadroom := uint64(src.Capacity - src.Current)
		if remainingAllowance > 0 && remainingHeadroom > 0 && budget > 0 {
			mint := minU64(remainingAllowance, remainingHeadroom, budget)
			src.Current += Qi(mint)
			budget -= mint
		}
	}

	w.recycledQi = pool
}

// NearbyOreSources returns snapshots of sources within Chebyshev range.
func (w *World) NearbyOreSources(position Position, rng int32) []OreSourceSnapshot {
	out := []OreSourceSnapshot{}
	for _, s := range w.sources {
		if !s.Position.WithinRange(position, rng) {
			continue
		}
		out = append(out, OreSourceSnapshot{
			ID:        s.ID,
			Ore:       s.Ore,
			Position:  s.Position,
			Available: s.Current,
			Capacity:  s.Capacity,
		})
	}
	return out
}

// NearbyStructures returns snapshots of structures within Chebyshev range.
func (w *World) NearbyStructures(position Position, rng int32) []StructureSnapshot {
	out := []StructureSnapshot{}
	for _, s := range w.structures {
		if !s.Position.WithinRange(position, rng) {
			continue
		}
		out = append(out, StructureSnapshot{ID: s.ID, Kind: s.Kind, Position: s.Position})
	}
	return out
}

// NearbyAgents returns snapshots of other agents within Chebyshev
// range of the position, excluding the given id.
func (w *World) NearbyAgents(position Position, rng int32, excluding AgentID) []AgentSnapshot {
	out := []AgentSnapshot{}
	for _, id := range w.AgentIDs() {
		a := w.agents[id]
		if id == excluding || !a.Position.WithinRange(position, rng) {
			continue
		}
		out = append(out, agentSnapshot(a))
	}
	return out
}

// nearestOreSource picks the closest non-empty source of the kind
// within ScanRange by Manhattan distance, first found winning ties.
func (w *World) nearestOreSource(ore OreKind, position Position) (OreSource, bool) {
	var best OreSource
	bestDist := int32(-1)
	for _, src := range w.sources {
		if src.Ore != ore || src.Current == 0 {
			continue
		}
		if !position.WithinRange(src.Position, ScanRange) {
			continue
		}
		dist := position.ManhattanDistance(src.Position)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = src
		}
	}
	return best, bestDist >= 0
}

// Snapshot produces the sorted read-only view used by persistence and
// viewers. It is a pure function of current state.
func (w *World) Snapshot() WorldSnapshot {
	agents := make([]AgentSnapshot, 0, len(w.agents))
	for _, a := range w.agents {
		agents = append(agents, agentSnapshot(a))
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].ID < agents[j].ID })

	oreNodes := make([]OreNodeSnapshot, 0, len(w.sources))
	for _, s := range w.sources {
		oreNodes = append(oreNodes, OreNodeSnapshot{
			ID:              s.ID,
			Ore:             s.Ore,
			Position:        s.Position,
			Available:       s.Current,
			Capacity:        s.Capacity,
			RechargePerTick: s.RechargePerTick,
		})
	}
	sort.Slice(oreNodes, func(i, j int) bool { return oreNodes[i].ID < oreNodes[j].ID })

	structures := make([]StructureView, 0, len(w.structures))
	for _, s := range w.structures {
		structures = append(structures, StructureView{
			ID:       s.ID,
			Kind:     s.Kind,
			Position: s.Position,
			Owner:    s.Owner,
		})
	}
	sort.Slice(structures, func(i, j int) bool { return structures[i].ID < structures[j].ID })

	return WorldSnapshot{
		Tick:       w.tick,
		Agents:     agents,
		OreNodes:   oreNodes,
		Structures: structures,
	}
}

func agentSnapshot(a *Agent) AgentSnapshot {
	return AgentSnapshot{
		ID:          a.ID,
		Name:        a.Name,
		Qi:          a.Qi,
		Transistors: a.Transistors,
		Position:    a.Position,
		Alive:       a.Alive,
		Age:         a.Age,
		MaxAge:      a.MaxAge,
	}
}

func minU64(values ...uint64) uint64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
