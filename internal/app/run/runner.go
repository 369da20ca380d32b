package run

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

// Deps are the collaborators a Runner persists and plans through. Only
// TxManager and the repositories are required; Metrics, Planner and
// Publisher may be nil.
type Deps struct {
	TxManager  ports.TxManager
	OreNodes   ports.OreNodeRepository
	Structures ports.StructureRepository
	Events     ports.EventRepository
	Snapshots  ports.SnapshotRepository
	RunState   ports.RunStateRepository
	Metrics    ports.TickMetrics
	Planner    ports.Planner
	Publisher  ports.TickPublisher
}

// Runner owns the single Vm of a run and serializes every access to
// it. Each tick is resolved in memory first and then persisted in one
// transaction; a persistence failure leaves the repositories one tick
// behind the in-memory world.
type Runner struct {
	mu   sync.Mutex
	vm   *sim.Vm
	deps Deps

	status        string
	lastRejection map[sim.AgentID]string
}

func NewRunner(deps Deps) *Runner {
	return &Runner{
		vm:            sim.NewVm(),
		deps:          deps,
		status:        StatusIdle,
		lastRejection: map[sim.AgentID]string{},
	}
}

// Seed prepares the world: restores the tick counter and supply cap
// from the persisted run state, loads infused ore nodes, and spawns
// the configured agents.
func (r *Runner) Seed(ctx context.Context, seeds []AgentSeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.deps.RunState.Get(ctx)
	switch {
	case err == nil:
		r.vm.SetTick(state.LastTick)
		if state.InfusedQi > 0 {
			r.vm.SetMaxQiSupply(state.InfusedQi)
		}
	case errors.Is(err, ports.ErrNotFound):
		// Fresh run.
	default:
		return fmt.Errorf("load run state: %w", err)
	}

	nodes, err := r.deps.OreNodes.List(ctx)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("load ore nodes: %w", err)
	}
	for _, n := range nodes {
		r.vm.SeedOreSource(n.Ore, n.Position, n.Capacity, n.RechargePerTick)
	}

	for _, seed := range seeds {
		maxAge := seed.MaxAge
		if maxAge == 0 {
			maxAge = sim.DefaultMaxAgentAge
		}
		r.vm.SpawnAgentWithAge(seed.Name, seed.Qi, seed.Position, maxAge)
	}

	r.status = StatusRunning
	return nil
}

// StepOnce asks the planner for one action per live agent, in id
// order, and advances the world one tick.
func (r *Runner) StepOnce(ctx context.Context) (sim.TickResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step(ctx, r.planRequests(ctx))
}

// StepWith advances the world one tick with an externally supplied
// request batch, preserving its order.
func (r *Runner) StepWith(ctx context.Context, requests []sim.ActionRequest) (sim.TickResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step(ctx, requests)
}

// Run paces StepOnce at the tick rate until the context ends or
// maxTicks ticks have run (0 means unbounded).
func (r *Runner) Run(ctx context.Context, tickRate time.Duration, maxTicks uint64) error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	var done uint64
	for {
		select {
		case <-ctx.Done():
			r.setStatus(StatusStopped)
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.StepOnce(ctx); err != nil {
				r.setStatus(StatusStopped)
				return err
			}
			done++
			if maxTicks > 0 && done >= maxTicks {
				r.setStatus(StatusStopped)
				return nil
			}
		}
	}
}

// Snapshot returns the live world view.
func (r *Runner) Snapshot() sim.WorldSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vm.Snapshot()
}

func (r *Runner) Status() (string, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status, r.vm.World().Tick()
}

func (r *Runner) setStatus(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *Runner) planRequests(ctx context.Context) []sim.ActionRequest {
	if r.deps.Planner == nil {
		return nil
	}
	world := r.vm.World()
	requests := []sim.ActionRequest{}
	for _, id := range world.LiveAgentIDs() {
		agent := world.Agent(id)
		view := ports.PlannerView{
			Tick:          world.Tick(),
			Agent:         r.agentView(agent),
			OreSources:    world.NearbyOreSources(agent.Position, sim.ScanRange),
			Structures:    world.NearbyStructures(agent.Position, sim.ScanRange),
			Neighbors:     world.NearbyAgents(agent.Position, sim.ScanRange, id),
			LastRejection: r.lastRejection[id],
		}
		action, err := r.deps.Planner.PlanAction(ctx, view)
		if err != nil {
			action = sim.IdleAction()
		}
		requests = append(requests, sim.NewRequest(id, action))
	}
	return requests
}

func (r *Runner) agentView(a *sim.Agent) sim.AgentSnapshot {
	return sim.AgentSnapshot{
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

func (r *Runner) step(ctx context.Context, requests []sim.ActionRequest) (sim.TickResult, error) {
	result := r.vm.Step(requests)

	for id := range r.lastRejection {
		delete(r.lastRejection, id)
	}
	for _, rej := range result.Rejections {
		r.lastRejection[rej.Request.AgentID] = rej.Err.Error()
	}

	if err := r.persist(ctx, result); err != nil {
		return result, fmt.Errorf("persist tick %d: %w", result.Tick, err)
	}

	r.record(requests, result)

	if r.deps.Publisher != nil {
		r.deps.Publisher.PublishTick(ports.TickBroadcast{
			Tick:       result.Tick,
			Snapshot:   r.vm.Snapshot(),
			Events:     result.Events,
			Rejections: result.Rejections,
		})
	}
	return result, nil
}

func (r *Runner) persist(ctx context.Context, result sim.TickResult) error {
	return r.deps.TxManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.deps.Events.Append(ctx, result.Tick, result.Events); err != nil {
			return err
		}
		if err := r.deps.Structures.SaveAll(ctx, r.vm.World().Structures()); err != nil {
			return err
		}
		if err := r.deps.Snapshots.Save(ctx, r.vm.Snapshot()); err != nil {
			return err
		}

		state, err := r.deps.RunState.Get(ctx)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		state.Status = r.status
		state.LastTick = result.Tick
		state.UpdatedAt = time.Now().UTC()
		return r.deps.RunState.Save(ctx, state)
	})
}

func (r *Runner) record(requests []sim.ActionRequest, result sim.TickResult) {
	if r.deps.Metrics == nil {
		return
	}
	r.deps.Metrics.RecordTick()
	rejected := map[sim.AgentID]bool{}
	for _, rej := range result.Rejections {
		rejected[rej.Request.AgentID] = true
		r.deps.Metrics.RecordRejection(rej.Err.Code)
	}
	for _, req := range requests {
		if !rejected[req.AgentID] {
			r.deps.Metrics.RecordAction(req.Action.Type)
		}
	}
}
