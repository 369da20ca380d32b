package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"harimu/internal/app/observe"
	"harimu/internal/app/ports"
	"harimu/internal/app/replay"
	"harimu/internal/app/run"
	"harimu/internal/app/status"
	"harimu/internal/app/walletops"
	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	Runner    *run.Runner
	ObserveUC observe.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	WalletUC  walletops.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	world := s.Group("/api/world")
	world.POST("/step", h.step)
	world.GET("/snapshot", h.snapshot)
	world.GET("/status", h.status)
	world.POST("/infuse", h.infuse)

	s.GET("/api/replay", h.replay)

	w := s.Group("/api/wallet")
	w.POST("", h.createWallet)
	w.POST("/mine", h.mine)
	w.POST("/transfer", h.transfer)

	s.GET("/ops/kpi", h.kpi)
}

type stepRequest struct {
	Requests []sim.ActionRequest `json:"requests,omitempty"`
}

// step advances the world one tick. With a request batch in the body
// the batch is applied verbatim; without one the planner drives every
// live agent.
func (h Handler) step(c context.Context, ctx *app.RequestContext) {
	var body stepRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	var result sim.TickResult
	var err error
	if len(body.Requests) > 0 {
		result, err = h.Runner.StepWith(c, body.Requests)
	} else {
		result, err = h.Runner.StepOnce(c)
	}
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, run.StepResponse{
		Tick:       result.Tick,
		Events:     result.Events,
		Rejections: result.Rejections,
	})
}

func (h Handler) snapshot(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	agentID, _ := strconv.ParseUint(string(ctx.Query("agent_id")), 10, 64)
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		AgentID: sim.AgentID(agentID),
		Limit:   limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createWallet(c context.Context, ctx *app.RequestContext) {
	resp, err := h.WalletUC.Create(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) mine(c context.Context, ctx *app.RequestContext) {
	var body walletops.MineRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.WalletUC.Mine(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) transfer(c context.Context, ctx *app.RequestContext) {
	var body walletops.TransferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.WalletUC.Transfer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) infuse(c context.Context, ctx *app.RequestContext) {
	var body walletops.InfuseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.WalletUC.InfuseOre(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, walletops.ErrInvalidRequest),
		errors.Is(err, wallet.ErrSameWallet):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, wallet.ErrInsufficientBalance):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_balance", err.Error())
	case errors.Is(err, walletops.ErrNoProofFound):
		writeErrorBody(ctx, consts.StatusConflict, "no_proof_found", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
