package replay

import (
	"context"
	"errors"

	"harimu/internal/app/ports"
)

const defaultLimit = 200

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListRecent(ctx, req.AgentID, limit)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{Events: []ports.TickEvent{}}, nil
		}
		return Response{}, err
	}
	return Response{Events: events}, nil
}
