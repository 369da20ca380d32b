package llmplanner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

const (
	systemPrompt = "You control one agent in a tick-based world. " +
		"Every action except scan and idle costs 1 qi; an agent with 0 qi can only idle. " +
		"Harvesting an adjacent node yields 3 ore. " +
		"Reply with exactly one action token, e.g. `action: harvest_qi(3)`."

	memoryLimit = 8
)

// Planner proposes one action per agent by asking a chat model, with
// a heuristic fallback when the call fails or the reply is
// unparseable. Notes about recent ticks are kept per agent, bounded.
type Planner struct {
	Client *Client

	mu    sync.Mutex
	notes map[sim.AgentID][]string
}

func NewPlanner(client *Client) *Planner {
	return &Planner{
		Client: client,
		notes:  map[sim.AgentID][]string{},
	}
}

func (p *Planner) PlanAction(ctx context.Context, view ports.PlannerView) (sim.Action, error) {
	prompt := p.buildPrompt(view)

	reply, err := p.Client.Chat(ctx, systemPrompt, prompt)
	if err != nil {
		action := fallbackAction(view)
		p.remember(view, action, "chat failed: "+err.Error())
		return action, nil
	}

	action, ok := ParseReply(reply)
	if !ok || !affordable(view.Agent, action) {
		action = fallbackAction(view)
		p.remember(view, action, "unusable reply: "+truncate(reply, 80))
		return action, nil
	}

	p.remember(view, action, "")
	return action, nil
}

func (p *Planner) buildPrompt(view ports.PlannerView) string {
	var b strings.Builder
	agent := view.Agent
	fmt.Fprintf(&b, "tick %d\n", view.Tick)
	fmt.Fprintf(&b, "you: %s at (%d,%d,%d), qi %d, transistors %d, age %d/%d\n",
		agent.Name, agent.Position.X, agent.Position.Y, agent.Position.Z,
		agent.Qi, agent.Transistors, agent.Age, agent.MaxAge)

	if len(view.OreSources) > 0 {
		b.WriteString("ore nodes in range:\n")
		for _, src := range view.OreSources {
			fmt.Fprintf(&b, "  %s node %d at (%d,%d,%d): %d/%d\n",
				src.Ore, src.ID, src.Position.X, src.Position.Y, src.Position.Z,
				src.Available, src.Capacity)
		}
	}
	if len(view.Neighbors) > 0 {
		b.WriteString("agents in range:\n")
		for _, n := range view.Neighbors {
			fmt.Fprintf(&b, "  agent %d (%s) at (%d,%d,%d)\n",
				n.ID, n.Name, n.Position.X, n.Position.Y, n.Position.Z)
		}
	}
	if len(view.Structures) > 0 {
		fmt.Fprintf(&b, "structures in range: %d\n", len(view.Structures))
	}
	if view.LastRejection != "" {
		fmt.Fprintf(&b, "last action rejected: %s\n", view.LastRejection)
	}

	p.mu.Lock()
	notes := p.notes[agent.ID]
	p.mu.Unlock()
	if len(notes) > 0 {
		b.WriteString("recent notes:\n")
		for _, note := range notes {
			b.WriteString("  " + note + "\n")
		}
	}

	b.WriteString("choices: scan, idle, move(dx,dy,dz), harvest_qi(id), harvest_transistor(id), " +
		"build_basic, build_programmable, build_qi, reproduce(partner_id)\n")
	return b.String()
}

func (p *Planner) remember(view ports.PlannerView, action sim.Action, detail string) {
	note := fmt.Sprintf("tick %d: %s", view.Tick, action.Type)
	if detail != "" {
		note += " (" + detail + ")"
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	notes := append(p.notes[view.Agent.ID], note)
	if len(notes) > memoryLimit {
		notes = notes[len(notes)-memoryLimit:]
	}
	p.notes[view.Agent.ID] = notes
}

// fallbackAction mirrors the static planner's harvest-or-approach
// heuristic so a flaky model never stalls the run.
func fallbackAction(view ports.PlannerView) sim.Action {
	agent := view.Agent
	if agent.Qi == 0 {
		return sim.IdleAction()
	}
	for _, src := range view.OreSources {
		if src.Available >= sim.HarvestPerAction && agent.Position.WithinRange(src.Position, sim.HarvestRange) {
			return sim.HarvestAction(src.Ore, src.ID)
		}
	}
	for _, src := range view.OreSources {
		if src.Available >= sim.HarvestPerAction {
			return sim.MoveAction(
				clampDelta(src.Position.X-agent.Position.X),
				clampDelta(src.Position.Y-agent.Position.Y),
				clampDelta(src.Position.Z-agent.Position.Z),
			)
		}
	}
	return sim.ScanAction()
}

func affordable(agent sim.AgentSnapshot, action sim.Action) bool {
	switch action.Type {
	case sim.ActionScan, sim.ActionIdle:
		return true
	case sim.ActionBuild:
		if action.Structure == sim.StructureProgrammable && agent.Transistors == 0 {
			return false
		}
		return agent.Qi >= 1
	default:
		return agent.Qi >= 1
	}
}

func clampDelta(d int32) int32 {
	if d > sim.MaxMoveRadius {
		return sim.MaxMoveRadius
	}
	if d < -sim.MaxMoveRadius {
		return -sim.MaxMoveRadius
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
