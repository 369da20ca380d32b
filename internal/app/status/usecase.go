package status

import (
	"context"
	"errors"

	"harimu/internal/app/ports"
	"harimu/internal/app/run"
)

type UseCase struct {
	Runner   *run.Runner
	RunState ports.RunStateRepository
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	st, tick := u.Runner.Status()
	snap := u.Runner.Snapshot()

	live, dead := 0, 0
	for _, a := range snap.Agents {
		if a.Alive {
			live++
		} else {
			dead++
		}
	}

	resp := Response{
		Status:     st,
		Tick:       tick,
		AgentsLive: live,
		AgentsDead: dead,
		OreNodes:   len(snap.OreNodes),
		Structures: len(snap.Structures),
	}

	record, err := u.RunState.Get(ctx)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return Response{}, err
	}
	resp.InfusedQi = record.InfusedQi
	return resp, nil
}
