package sim

import "fmt"

const (
	// ScanRange is how far a scan sees, in Chebyshev distance.
	ScanRange int32 = 8
	// HarvestRange is how close an agent must be to harvest a source.
	HarvestRange int32 = 1
	// HarvestPerAction caps the ore drained from a node per action.
	HarvestPerAction Qi = 3
	// DefaultMaxAgentAge is the lifespan in ticks unless extended at spawn.
	DefaultMaxAgentAge uint64 = 112
	// MaxMoveRadius is the maximum Chebyshev move per action.
	MaxMoveRadius int32 = 3
)

// TickResult is the outcome of one Step call: the tick's ordered
// events plus every per-request rejection.
type TickResult struct {
	Tick       uint64      `json:"tick"`
	Events     []Event     `json:"events"`
	Rejections []Rejection `json:"rejections"`
}

// Vm is the tick engine. It is single-threaded: callers must serialize
// Step externally; there is no suspension within a tick.
type Vm struct {
	world *World
}

func NewVm() *Vm {
	return &Vm{world: NewWorld()}
}

func (vm *Vm) World() *World {
	return vm.world
}

func (vm *Vm) Snapshot() WorldSnapshot {
	return vm.world.Snapshot()
}

func (vm *Vm) Agent(agentID AgentID) *Agent {
	return vm.world.Agent(agentID)
}

// SetTick sets the tick counter, used when resuming persisted state.
func (vm *Vm) SetTick(tick uint64) {
	vm.world.tick = tick
}

func (vm *Vm) SetMaxQiSupply(max uint64) {
	vm.world.SetMaxQiSupply(max)
}

func (vm *Vm) SpawnAgent(name string, qi Qi, position Position) AgentID {
	return vm.world.SpawnAgent(name, qi, position)
}

func (vm *Vm) SpawnAgentWithAge(name string, qi Qi, position Position, maxAge uint64) AgentID {
	return vm.world.SpawnAgentWithAge(name, qi, position, maxAge)
}

// KillAgent marks an agent dead outside the normal age enforcement,
// e.g. for hazards. Killing a dead agent is a no-op.
func (vm *Vm) KillAgent(agentID AgentID, reason DeathReason) error {
	agent := vm.world.agents[agentID]
	if agent == nil {
		return &ActionError{Code: RejectAgentNotFound, AgentID: agentID}
	}
	if !agent.Alive {
		return nil
	}
	agent.Alive = false
	delete(vm.world.occupied, agent.Position)
	vm.world.events = append(vm.world.events, Event{
		Kind:    EventAgentDied,
		AgentID: agentID,
		Reason:  reason,
	})
	return nil
}

func (vm *Vm) SeedQiSource(position Position, capacity, rechargePerTick Qi) uint64 {
	return vm.SeedOreSource(OreQi, position, capacity, rechargePerTick)
}

func (vm *Vm) SeedOreSource(ore OreKind, position Position, capacity, rechargePerTick Qi) uint64 {
	return vm.world.AddOreSource(ore, position, capacity, rechargePerTick)
}

type pairKey struct {
	a AgentID
	b AgentID
}

func orderedPair(a, b AgentID) pairKey {
	if a < b {
		return pairKey{a: a, b: b}
	}
	return pairKey{a: b, b: a}
}

type agentStanding struct {
	position Position
	alive    bool
}

// Step advances the world by exactly one tick. Requests resolve in
// list order; each is all-or-nothing and independent of the others'
// failures. The tick always completes and returns a result.
func (vm *Vm) Step(requests []ActionRequest) TickResult {
	tick := vm.world.tick + 1
	tickEvents := []Event{{Kind: EventTickStarted, Tick: tick}}
	rejections := []Rejection{}

	// World progression before any agent acts.
	vm.world.rechargeOreSources()

	// Mutual reproduction consent for this tick only; no carry-over.
	intents := map[AgentID]AgentID{}
	for _, req := range requests {
		if req.Action.Type == ActionReproduce {
			intents[req.AgentID] = req.Action.Partner
		}
	}
	mutualPairs := map[pairKey]struct{}{}
	for a, b := range intents {
		if back, ok := intents[b]; ok && back == a {
			mutualPairs[orderedPair(a, b)] = struct{}{}
		}
	}

	// Freeze positions and aliveness so partner checks cannot be dodged
	// by earlier actions in the same batch.
	standing := make(map[AgentID]agentStanding, len(vm.world.agents))
	for id, agent := range vm.world.agents {
		standing[id] = agentStanding{position: agent.Position, alive: agent.Alive}
	}

	reproduced := map[pairKey]struct{}{}
	for _, request := range requests {
		events, err := vm.applyAction(request, mutualPairs, reproduced, standing)
		if err != nil {
			rejections = append(rejections, Rejection{Request: request, Err: err})
			continue
		}
		tickEvents = append(tickEvents, events...)
	}

	tickEvents = append(tickEvents, vm.enforceAgeLimits()...)
	tickEvents = append(tickEvents, Event{Kind: EventTickCompleted, Tick: tick})

	vm.world.tick = tick
	vm.world.events = append(vm.world.events, tickEvents...)

	return TickResult{Tick: tick, Events: tickEvents, Rejections: rejections}
}

func (vm *Vm) applyAction(
	request ActionRequest,
	mutualPairs map[pairKey]struct{},
	reproduced map[pairKey]struct{},
	standing map[AgentID]agentStanding,
) ([]Event, *ActionError) {
	agent := vm.world.agents[request.AgentID]
	if agent == nil {
		return nil, &ActionError{Code: RejectAgentNotFound, AgentID: request.AgentID}
	}
	if !agent.Alive {
		return nil, &ActionError{Code: RejectAgentDead, AgentID: request.AgentID}
	}

	events := []Event{}
	var reclaimed Qi

	switch request.Action.Type {
	case ActionMove:
		dx, dy, dz := request.Action.DX, request.Action.DY, request.Action.DZ
		maxDelta := abs32(dx)
		if d := abs32(dy); d > maxDelta {
			maxDelta = d
		}
		if d := abs32(dz); d > maxDelta {
			maxDelta = d
		}
		if maxDelta > MaxMoveRadius {
			return nil, &ActionError{Code: RejectMoveOutOfRange, AgentID: agent.ID, DX: dx, DY: dy, DZ: dz}
		}
		from := agent.Position
		to := agent.Position.Offset(dx, dy, dz)
		if other, taken := vm.world.occupied[to]; taken && other != agent.ID {
			target := to
			return nil, &ActionError{Code: RejectPositionOccupied, AgentID: agent.ID, Target: &target, OccupiedBy: other}
		}

		if err := agent.spendQi(1); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventQiSpent, AgentID: agent.ID, Amount: 1, Action: ActionMove})
		reclaimed++

		// Zone discovery is recorded on crossing; it carries no charge.
		agent.discoverZone(to.Zone())

		delete(vm.world.occupied, from)
		agent.Position = to
		vm.world.occupied[to] = agent.ID
		fromPos, toPos := from, to
		events = append(events, Event{Kind: EventAgentMoved, AgentID: agent.ID, From: &fromPos, To: &toPos})

	case ActionScan:
		events = append(events, Event{Kind: EventActionObserved, AgentID: agent.ID, Action: ActionScan})
		events = append(events, Event{
			Kind:    EventScanReport,
			AgentID: agent.ID,
			Scan: &ScanReport{
				Position:   agent.Position,
				Qi:         agent.Qi,
				OreSources: vm.world.NearbyOreSources(agent.Position, ScanRange),
				Structures: vm.world.NearbyStructures(agent.Position, ScanRange),
			},
		})

	case ActionReproduce:
		partner := request.Action.Partner
		st, known := standing[partner]
		if !known || !st.alive {
			return nil, &ActionError{Code: RejectPartnerNotFound, AgentID: agent.ID, Partner: partner}
		}
		if agent.Position.Zone() != st.position.Zone() {
			return nil, &ActionError{Code: RejectPartnerOutOfZone, AgentID: agent.ID, Partner: partner}
		}
		pair := orderedPair(agent.ID, partner)
		if _, mutual := mutualPairs[pair]; !mutual {
			return nil, &ActionError{Code: RejectReproductionDeclined, AgentID: agent.ID, Partner: partner}
		}
		if _, done := reproduced[pair]; done {
			// The pair already produced a child this tick; the second
			// declarer succeeds without charge or offspring.
			break
		}

		if err := agent.spendQi(1); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventQiSpent, AgentID: agent.ID, Amount: 1, Action: ActionReproduce})
		reclaimed++
		reproduced[pair] = struct{}{}

		childName := fmt.Sprintf("Child-%d-%d", agent.ID, partner)
		childID := vm.world.SpawnAgent(childName, 1, agent.Position)
		events = append(events, Event{
			Kind:    EventAgentReproduced,
			ParentA: agent.ID,
			ParentB: partner,
			ChildID: childID,
		})

	case ActionBuild:
		for _, s := range vm.world.structures {
			if s.Position == agent.Position {
				target := agent.Position
				return nil, &ActionError{Code: RejectStructureSpaceOccupied, AgentID: agent.ID, Target: &target}
			}
		}

		// Programmable structures consume transistor ore before any Qi
		// is touched.
		if request.Action.Structure == StructureProgrammable {
			if err := agent.spendOre(OreTransistor, 1); err != nil {
				return nil, err
			}
		}

		if cost := request.Action.QiCost(); cost > 0 {
			if err := agent.spendQi(cost); err != nil {
				return nil, err
			}
			events = append(events, Event{Kind: EventQiSpent, AgentID: agent.ID, Amount: cost, Action: ActionBuild})
			reclaimed += cost
		}

		structureID := vm.world.nextStructureID
		vm.world.nextStructureID++
		pos := agent.Position
		vm.world.structures = append(vm.world.structures, Structure{
			ID:       structureID,
			Kind:     request.Action.Structure,
			Position: pos,
			Zone:     pos.Zone(),
			Owner:    agent.ID,
		})
		events = append(events, Event{
			Kind:        EventStructureBuilt,
			AgentID:     agent.ID,
			Structure:   request.Action.Structure,
			Position:    &pos,
			StructureID: structureID,
		})

	case ActionHarvest:
		ore, sourceID := request.Action.Ore, request.Action.SourceID
		var src OreSource
		found := false
		if sourceID == 0 {
			src, found = vm.world.nearestOreSource(ore, agent.Position)
		} else {
			for _, s := range vm.world.sources {
				if s.ID == sourceID && s.Ore == ore {
					src, found = s, true
					break
				}
			}
		}
		if !found {
			return nil, &ActionError{Code: RejectOreSourceUnavailable, AgentID: agent.ID, Ore: ore, SourceID: sourceID}
		}
		if !agent.Position.WithinRange(src.Position, HarvestRange) {
			return nil, &ActionError{Code: RejectOreSourceUnavailable, AgentID: agent.ID, Ore: ore, SourceID: sourceID}
		}
		if src.Current < HarvestPerAction {
			return nil, &ActionError{Code: RejectOreSourceDepleted, AgentID: agent.ID, Ore: ore, SourceID: src.ID, Available: src.Current}
		}

		if err := agent.spendQi(1); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventQiSpent, AgentID: agent.ID, Amount: 1, Action: ActionHarvest})
		reclaimed++

		events = append(events, vm.drainSource(agent, ore, src.ID)...)

	case ActionIdle:
		// Free, but still ages the agent below.

	default:
		// Unknown types behave as idle; the planner layer validates.
	}

	agent.Age++

	if reclaimed > 0 {
		vm.world.recycleQi(reclaimed)
	}

	return events, nil
}

func (vm *Vm) drainSource(agent *Agent, ore OreKind, sourceID uint64) []Event {
	for i := range vm.world.sources {
		src := &vm.world.sources[i]
		if src.ID != sourceID || src.Ore != ore {
			continue
		}
		amount := src.Current
		if amount > HarvestPerAction {
			amount = HarvestPerAction
		}
		src.Current -= amount
		agent.gainOre(ore, amount)

		events := []Event{
			{Kind: EventOreGained, AgentID: agent.ID, Ore: ore, Amount: amount, Source: "ore_node"},
			{Kind: EventOreNodeHarvested, AgentID: agent.ID, Ore: ore, SourceID: sourceID, Amount: amount, Remaining: src.Current},
		}
		if src.Current == 0 {
			pos := src.Position
			events = append(events, Event{Kind: EventOreNodeDrained, Ore: ore, SourceID: sourceID, Position: &pos})
		}
		return events
	}
	return nil
}

// enforceAgeLimits culls every alive agent at or past its lifespan,
// in id order so the event log stays deterministic.
func (vm *Vm) enforceAgeLimits() []Event {
	doomed := []AgentID{}
	for _, id := range vm.world.AgentIDs() {
		agent := vm.world.agents[id]
		if agent.Alive && agent.Age >= agent.MaxAge {
			doomed = append(doomed, id)
		}
	}

	events := []Event{}
	for _, id := range doomed {
		agent := vm.world.agents[id]
		if agent == nil || !agent.Alive {
			continue
		}
		agent.Alive = false
		delete(vm.world.occupied, agent.Position)
		events = append(events, Event{Kind: EventAgentDied, AgentID: id, Reason: DeathAge})
	}
	return events
}
