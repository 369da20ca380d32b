package sim

import "testing"

func findEvents(events []Event, kind EventKind) []Event {
	out := []Event{}
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestSpawnAgentShiftsOnCollision(t *testing.T) {
	vm := NewVm()
	a := vm.SpawnAgent("first", 10, Origin())
	b := vm.SpawnAgent("second", 10, Origin())

	if got := vm.Agent(a).Position; got != Origin() {
		t.Fatalf("first agent at %v, want origin", got)
	}
	want := Position{X: 1}
	if got := vm.Agent(b).Position; got != want {
		t.Fatalf("second agent at %v, want %v", got, want)
	}
}

func TestSpawnAgentMinimumLifespan(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgentWithAge("brief", 5, Origin(), 0)
	if got := vm.Agent(id).MaxAge; got != 1 {
		t.Fatalf("max age = %d, want 1", got)
	}
}

func TestSpawnAgentEmitsEvent(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("alpha", 7, Position{X: 2, Y: 3})

	spawned := findEvents(vm.World().Events(), EventAgentSpawned)
	if len(spawned) != 1 {
		t.Fatalf("spawn events = %d, want 1", len(spawned))
	}
	e := spawned[0]
	if e.AgentID != id || e.Name != "alpha" || e.Qi != 7 {
		t.Fatalf("unexpected spawn event: %+v", e)
	}
	if e.Position == nil || *e.Position != (Position{X: 2, Y: 3}) {
		t.Fatalf("spawn event position = %v", e.Position)
	}
}

func TestMoveChargesOneQi(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("mover", 10, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, MoveAction(1, 0, 0))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	agent := vm.Agent(id)
	if agent.Qi != 9 {
		t.Fatalf("qi = %d, want 9", agent.Qi)
	}
	if agent.Position != (Position{X: 1}) {
		t.Fatalf("position = %v, want (1,0,0)", agent.Position)
	}
	if moved := findEvents(result.Events, EventAgentMoved); len(moved) != 1 {
		t.Fatalf("move events = %d, want 1", len(moved))
	}
	if spent := findEvents(result.Events, EventQiSpent); len(spent) != 1 || spent[0].Action != ActionMove {
		t.Fatalf("qi spent events = %+v", spent)
	}
}

func TestMoveRejectedWhenOccupied(t *testing.T) {
	vm := NewVm()
	mover := vm.SpawnAgent("mover", 10, Origin())
	blocker := vm.SpawnAgent("blocker", 10, Position{X: 1})

	result := vm.Step([]ActionRequest{NewRequest(mover, MoveAction(1, 0, 0))})

	if len(result.Rejections) != 1 {
		t.Fatalf("rejections = %d, want 1", len(result.Rejections))
	}
	rej := result.Rejections[0].Err
	if rej.Code != RejectPositionOccupied {
		t.Fatalf("code = %s, want %s", rej.Code, RejectPositionOccupied)
	}
	if rej.OccupiedBy != blocker {
		t.Fatalf("occupied by = %d, want %d", rej.OccupiedBy, blocker)
	}
	if rej.Target == nil || *rej.Target != (Position{X: 1}) {
		t.Fatalf("target = %v, want (1,0,0)", rej.Target)
	}
	agent := vm.Agent(mover)
	if agent.Qi != 10 {
		t.Fatalf("rejected move must not charge qi, got %d", agent.Qi)
	}
	if agent.Position != Origin() {
		t.Fatalf("rejected move must not displace agent, got %v", agent.Position)
	}
}

func TestMoveRejectedBeyondMaxRadius(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("sprinter", 10, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, MoveAction(MaxMoveRadius+1, 0, 0))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectMoveOutOfRange {
		t.Fatalf("want move_out_of_range rejection, got %+v", result.Rejections)
	}
	if got := vm.Agent(id).Qi; got != 10 {
		t.Fatalf("qi = %d, want 10", got)
	}
}

func TestMoveRejectedWithoutQi(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("broke", 0, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, MoveAction(1, 0, 0))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectInsufficientQi {
		t.Fatalf("want insufficient_qi rejection, got %+v", result.Rejections)
	}
	if got := vm.Agent(id).Position; got != Origin() {
		t.Fatalf("position = %v, want origin", got)
	}
}

func TestMoveDiscoversZone(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("walker", 10, Position{X: ZoneSize - 1})

	vm.Step([]ActionRequest{NewRequest(id, MoveAction(1, 0, 0))})

	agent := vm.Agent(id)
	if _, ok := agent.DiscoveredZones[Zone{X: 1}]; !ok {
		t.Fatalf("zone (1,0,0) not discovered: %v", agent.DiscoveredZones)
	}
	if _, ok := agent.DiscoveredZones[Zone{}]; !ok {
		t.Fatalf("spawn zone missing: %v", agent.DiscoveredZones)
	}
}

func TestScanReportsSurroundings(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("scout", 10, Origin())
	near := vm.SeedQiSource(Position{X: 2}, 20, 0)
	vm.SeedQiSource(Position{X: ScanRange + 1}, 20, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, ScanAction())})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	reports := findEvents(result.Events, EventScanReport)
	if len(reports) != 1 {
		t.Fatalf("scan reports = %d, want 1", len(reports))
	}
	scan := reports[0].Scan
	if scan == nil {
		t.Fatal("scan payload missing")
	}
	if scan.Position != Origin() || scan.Qi != 10 {
		t.Fatalf("scan self view = %+v", scan)
	}
	if len(scan.OreSources) != 1 || scan.OreSources[0].ID != near {
		t.Fatalf("scan sources = %+v, want only source %d", scan.OreSources, near)
	}
	if got := vm.Agent(id).Qi; got != 10 {
		t.Fatalf("scan must be free, qi = %d", got)
	}
}

func TestHarvestNamedSource(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	src := vm.SeedQiSource(Position{X: 1}, 5, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreQi, src))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	// Spend 1, gain HarvestPerAction: net +2.
	if got := vm.Agent(id).Qi; got != 12 {
		t.Fatalf("qi = %d, want 12", got)
	}
	harvested := findEvents(result.Events, EventOreNodeHarvested)
	if len(harvested) != 1 {
		t.Fatalf("harvest events = %d, want 1", len(harvested))
	}
	if harvested[0].Amount != HarvestPerAction || harvested[0].Remaining != 2 {
		t.Fatalf("harvest event = %+v, want amount 3 remaining 2", harvested[0])
	}
	gained := findEvents(result.Events, EventOreGained)
	if len(gained) != 1 || gained[0].Source != "ore_node" {
		t.Fatalf("ore gained events = %+v", gained)
	}
}

func TestHarvestAutoSelectsNearestSource(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	near := vm.SeedQiSource(Position{X: 1}, 9, 0)
	vm.SeedQiSource(Position{X: 0, Y: 1, Z: 1}, 9, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreQi, 0))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	harvested := findEvents(result.Events, EventOreNodeHarvested)
	if len(harvested) != 1 || harvested[0].SourceID != near {
		t.Fatalf("harvested source = %+v, want id %d", harvested, near)
	}
}

func TestHarvestRejectedOutOfRange(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	src := vm.SeedQiSource(Position{X: HarvestRange + 1}, 9, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreQi, src))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectOreSourceUnavailable {
		t.Fatalf("want ore_source_unavailable, got %+v", result.Rejections)
	}
	if got := vm.Agent(id).Qi; got != 10 {
		t.Fatalf("qi = %d, want 10", got)
	}
}

func TestHarvestRejectedWhenDepleted(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	src := vm.SeedQiSource(Position{X: 1}, HarvestPerAction-1, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreQi, src))})

	if len(result.Rejections) != 1 {
		t.Fatalf("rejections = %d, want 1", len(result.Rejections))
	}
	rej := result.Rejections[0].Err
	if rej.Code != RejectOreSourceDepleted || rej.Available != HarvestPerAction-1 {
		t.Fatalf("rejection = %+v", rej)
	}
	if got := vm.Agent(id).Qi; got != 10 {
		t.Fatalf("depleted harvest must not charge, qi = %d", got)
	}
}

func TestHarvestDrainsNode(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	src := vm.SeedQiSource(Position{X: 1}, HarvestPerAction, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreQi, src))})

	drained := findEvents(result.Events, EventOreNodeDrained)
	if len(drained) != 1 || drained[0].SourceID != src {
		t.Fatalf("drained events = %+v", drained)
	}
	sources := vm.World().OreSources()
	if sources[0].Current != 0 {
		t.Fatalf("source level = %d, want 0", sources[0].Current)
	}
}

func TestHarvestTransistorOre(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("miner", 10, Origin())
	src := vm.SeedOreSource(OreTransistor, Position{X: 1}, 9, 0)

	result := vm.Step([]ActionRequest{NewRequest(id, HarvestAction(OreTransistor, src))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	agent := vm.Agent(id)
	if agent.Transistors != HarvestPerAction {
		t.Fatalf("transistors = %d, want %d", agent.Transistors, HarvestPerAction)
	}
	if agent.Qi != 9 {
		t.Fatalf("qi = %d, want 9 (charged for the harvest)", agent.Qi)
	}
}

func TestReproduceMutualSpawnsExactlyOneChild(t *testing.T) {
	vm := NewVm()
	a := vm.SpawnAgent("parent-a", 10, Origin())
	b := vm.SpawnAgent("parent-b", 10, Position{X: 1})

	result := vm.Step([]ActionRequest{
		NewRequest(a, ReproduceAction(b)),
		NewRequest(b, ReproduceAction(a)),
	})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	births := findEvents(result.Events, EventAgentReproduced)
	if len(births) != 1 {
		t.Fatalf("reproduction events = %d, want exactly 1", len(births))
	}
	child := vm.Agent(births[0].ChildID)
	if child == nil {
		t.Fatal("child agent missing")
	}
	if child.Name != "Child-1-2" {
		t.Fatalf("child name = %q", child.Name)
	}
	if child.Qi != 1 {
		t.Fatalf("child qi = %d, want 1", child.Qi)
	}
	// The first declarer pays; the second succeeds without a charge.
	if vm.Agent(a).Qi != 9 {
		t.Fatalf("initiator qi = %d, want 9", vm.Agent(a).Qi)
	}
	if vm.Agent(b).Qi != 10 {
		t.Fatalf("partner qi = %d, want 10", vm.Agent(b).Qi)
	}
}

func TestReproduceOneSidedRejected(t *testing.T) {
	vm := NewVm()
	a := vm.SpawnAgent("hopeful", 10, Origin())
	b := vm.SpawnAgent("uninterested", 10, Position{X: 1})

	result := vm.Step([]ActionRequest{
		NewRequest(a, ReproduceAction(b)),
		NewRequest(b, IdleAction()),
	})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectReproductionDeclined {
		t.Fatalf("want reproduction_declined, got %+v", result.Rejections)
	}
	if births := findEvents(result.Events, EventAgentReproduced); len(births) != 0 {
		t.Fatalf("unexpected reproduction: %+v", births)
	}
	if got := vm.Agent(a).Qi; got != 10 {
		t.Fatalf("declined reproduction must not charge, qi = %d", got)
	}
}

func TestReproduceRejectedAcrossZones(t *testing.T) {
	vm := NewVm()
	a := vm.SpawnAgent("near", 10, Origin())
	b := vm.SpawnAgent("far", 10, Position{X: ZoneSize})

	result := vm.Step([]ActionRequest{
		NewRequest(a, ReproduceAction(b)),
		NewRequest(b, ReproduceAction(a)),
	})

	if len(result.Rejections) != 2 {
		t.Fatalf("rejections = %d, want 2", len(result.Rejections))
	}
	for _, r := range result.Rejections {
		if r.Err.Code != RejectPartnerOutOfZone {
			t.Fatalf("code = %s, want %s", r.Err.Code, RejectPartnerOutOfZone)
		}
	}
}

func TestReproduceRejectedWithDeadPartner(t *testing.T) {
	vm := NewVm()
	a := vm.SpawnAgent("alive", 10, Origin())
	b := vm.SpawnAgent("doomed", 10, Position{X: 1})
	if err := vm.KillAgent(b, DeathHazard); err != nil {
		t.Fatalf("kill: %v", err)
	}

	result := vm.Step([]ActionRequest{NewRequest(a, ReproduceAction(b))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectPartnerNotFound {
		t.Fatalf("want partner_not_found, got %+v", result.Rejections)
	}
}

func TestBuildStructure(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("builder", 10, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, BuildAction(StructureBasic))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	if got := vm.Agent(id).Qi; got != 9 {
		t.Fatalf("qi = %d, want 9", got)
	}
	structures := vm.World().Structures()
	if len(structures) != 1 {
		t.Fatalf("structures = %d, want 1", len(structures))
	}
	s := structures[0]
	if s.Kind != StructureBasic || s.Owner != id || s.Position != Origin() {
		t.Fatalf("structure = %+v", s)
	}
	if s.Zone != (Zone{}) {
		t.Fatalf("structure zone = %v, want origin zone", s.Zone)
	}
}

func TestBuildRejectedOnOccupiedSpace(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("builder", 10, Origin())

	vm.Step([]ActionRequest{NewRequest(id, BuildAction(StructureBasic))})
	result := vm.Step([]ActionRequest{NewRequest(id, BuildAction(StructureBasic))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectStructureSpaceOccupied {
		t.Fatalf("want structure_space_occupied, got %+v", result.Rejections)
	}
	if got := vm.Agent(id).Qi; got != 9 {
		t.Fatalf("rejected build must not charge, qi = %d", got)
	}
}

func TestBuildProgrammableConsumesTransistor(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("builder", 10, Origin())
	vm.Agent(id).Transistors = 1

	result := vm.Step([]ActionRequest{NewRequest(id, BuildAction(StructureProgrammable))})

	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	agent := vm.Agent(id)
	if agent.Transistors != 0 {
		t.Fatalf("transistors = %d, want 0", agent.Transistors)
	}
	if agent.Qi != 9 {
		t.Fatalf("qi = %d, want 9", agent.Qi)
	}
}

func TestBuildProgrammableRejectedWithoutTransistor(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("builder", 10, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, BuildAction(StructureProgrammable))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectInsufficientOre {
		t.Fatalf("want insufficient_ore, got %+v", result.Rejections)
	}
	if got := vm.Agent(id).Qi; got != 10 {
		t.Fatalf("qi = %d, want 10", got)
	}
}

func TestAgeLimitKillsAgent(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgentWithAge("fleeting", 10, Origin(), 1)

	result := vm.Step([]ActionRequest{NewRequest(id, IdleAction())})

	deaths := findEvents(result.Events, EventAgentDied)
	if len(deaths) != 1 || deaths[0].AgentID != id || deaths[0].Reason != DeathAge {
		t.Fatalf("death events = %+v", deaths)
	}
	if vm.Agent(id).Alive {
		t.Fatal("agent should be dead")
	}

	// The freed cell is immediately reusable.
	other := vm.SpawnAgent("heir", 5, Origin())
	if got := vm.Agent(other).Position; got != Origin() {
		t.Fatalf("heir spawned at %v, want origin", got)
	}
}

func TestDeadAgentRequestsRejected(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("ghost", 10, Origin())
	if err := vm.KillAgent(id, DeathCorruption); err != nil {
		t.Fatalf("kill: %v", err)
	}

	result := vm.Step([]ActionRequest{NewRequest(id, MoveAction(1, 0, 0))})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectAgentDead {
		t.Fatalf("want agent_dead, got %+v", result.Rejections)
	}
}

func TestUnknownAgentRejected(t *testing.T) {
	vm := NewVm()

	result := vm.Step([]ActionRequest{NewRequest(99, IdleAction())})

	if len(result.Rejections) != 1 || result.Rejections[0].Err.Code != RejectAgentNotFound {
		t.Fatalf("want agent_not_found, got %+v", result.Rejections)
	}
}

func TestTickEventsBracketed(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("lonely", 10, Origin())

	result := vm.Step([]ActionRequest{NewRequest(id, IdleAction())})

	if result.Tick != 1 {
		t.Fatalf("tick = %d, want 1", result.Tick)
	}
	first, last := result.Events[0], result.Events[len(result.Events)-1]
	if first.Kind != EventTickStarted || first.Tick != 1 {
		t.Fatalf("first event = %+v", first)
	}
	if last.Kind != EventTickCompleted || last.Tick != 1 {
		t.Fatalf("last event = %+v", last)
	}
	if got := vm.World().Tick(); got != 1 {
		t.Fatalf("world tick = %d, want 1", got)
	}
}

func TestRejectionDoesNotBlockBatch(t *testing.T) {
	vm := NewVm()
	broke := vm.SpawnAgent("broke", 0, Origin())
	mover := vm.SpawnAgent("mover", 10, Position{X: 5})

	result := vm.Step([]ActionRequest{
		NewRequest(broke, MoveAction(1, 0, 0)),
		NewRequest(mover, MoveAction(0, 1, 0)),
	})

	if len(result.Rejections) != 1 {
		t.Fatalf("rejections = %d, want 1", len(result.Rejections))
	}
	if got := vm.Agent(mover).Position; got != (Position{X: 5, Y: 1}) {
		t.Fatalf("second request should still apply, position = %v", got)
	}
}

func TestQiConservedWithCappedSupply(t *testing.T) {
	vm := NewVm()
	vm.SetMaxQiSupply(100)
	a := vm.SpawnAgent("a", 20, Origin())
	b := vm.SpawnAgent("b", 20, Position{X: 5})
	vm.SeedQiSource(Position{X: 1}, 30, 5)

	before := vm.World().TotalQiSupply()
	for i := 0; i < 10; i++ {
		vm.Step([]ActionRequest{
			NewRequest(a, HarvestAction(OreQi, 0)),
			NewRequest(b, MoveAction(0, 1, 0)),
		})
		total := vm.World().TotalQiSupply()
		if total > 100 {
			t.Fatalf("tick %d: total supply %d exceeds cap", i+1, total)
		}
		if total < before {
			t.Fatalf("tick %d: supply shrank from %d to %d with no sink", i+1, before, total)
		}
	}
}

func TestRechargeRefillsFromRecycledPoolFirst(t *testing.T) {
	vm := NewVm()
	id := vm.SpawnAgent("mover", 10, Origin())
	src := vm.SeedQiSource(Position{X: 10}, 30, 5)
	vm.World().sources[0].Current = 20

	// Cap at the current total: no headroom to mint fresh Qi.
	vm.SetMaxQiSupply(vm.World().TotalQiSupply())

	// Spend 1 Qi; it lands in the recycled pool.
	vm.Step([]ActionRequest{NewRequest(id, MoveAction(1, 0, 0))})
	if got := vm.World().RecycledQi(); got != 1 {
		t.Fatalf("recycled pool = %d, want 1", got)
	}

	// Next tick the source refills exactly 1 from the pool, minting none.
	vm.Step(nil)
	if got := vm.World().RecycledQi(); got != 0 {
		t.Fatalf("recycled pool = %d, want 0 after refill", got)
	}
	var level Qi
	for _, s := range vm.World().OreSources() {
		if s.ID == src {
			level = s.Current
		}
	}
	if level != 21 {
		t.Fatalf("source level = %d, want 21", level)
	}
	if cap, _ := vm.World().MaxQiSupply(); vm.World().TotalQiSupply() > cap {
		t.Fatalf("supply %d exceeds cap %d", vm.World().TotalQiSupply(), cap)
	}
}

func TestRechargeMintsOnlyWithinBudget(t *testing.T) {
	vm := NewVm()
	vm.SeedQiSource(Position{X: 1}, 30, 10)
	vm.World().sources[0].Current = 10

	vm.SetMaxQiSupply(vm.World().TotalQiSupply() + 4)

	vm.Step(nil)

	if got := vm.World().OreSources()[0].Current; got != 14 {
		t.Fatalf("source level = %d, want 14 (mint capped at budget)", got)
	}

	// A second tick has no budget left.
	vm.Step(nil)
	if got := vm.World().OreSources()[0].Current; got != 14 {
		t.Fatalf("source level = %d, want still 14", got)
	}
}

func TestUncappedSupplyRechargesToCapacity(t *testing.T) {
	vm := NewVm()
	vm.SeedQiSource(Position{X: 1}, 8, 5)
	vm.World().sources[0].Current = 0

	vm.Step(nil)
	vm.Step(nil)

	if got := vm.World().OreSources()[0].Current; got != 8 {
		t.Fatalf("source level = %d, want capped at capacity 8", got)
	}
}

func TestSnapshotSortedAndComplete(t *testing.T) {
	vm := NewVm()
	vm.SpawnAgent("b", 5, Position{X: 3})
	vm.SpawnAgent("a", 5, Origin())
	vm.SeedQiSource(Position{X: 1}, 10, 1)
	vm.SeedOreSource(OreTransistor, Position{Y: 2}, 6, 0)

	snap := vm.Snapshot()

	if len(snap.Agents) != 2 || snap.Agents[0].ID >= snap.Agents[1].ID {
		t.Fatalf("agents not sorted: %+v", snap.Agents)
	}
	if len(snap.OreNodes) != 2 || snap.OreNodes[0].ID >= snap.OreNodes[1].ID {
		t.Fatalf("ore nodes not sorted: %+v", snap.OreNodes)
	}
	if snap.OreNodes[1].Ore != OreTransistor {
		t.Fatalf("second node ore = %s", snap.OreNodes[1].Ore)
	}
}
