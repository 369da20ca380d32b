package walletops

import (
	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"
)

type CreateResponse struct {
	Wallet wallet.Wallet `json:"wallet"`
}

type MineRequest struct {
	Address       string `json:"address"`
	StartNonce    uint64 `json:"start_nonce,omitempty"`
	MaxIterations uint64 `json:"max_iterations,omitempty"`
}

type MineResponse struct {
	Nonce   uint64 `json:"nonce"`
	Reward  uint64 `json:"reward"`
	Balance uint64 `json:"balance"`
}

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type TransferResponse struct {
	FromBalance uint64 `json:"from_balance"`
	ToBalance   uint64 `json:"to_balance"`
}

type InfuseRequest struct {
	Address         string      `json:"address"`
	Ore             sim.OreKind `json:"ore"`
	Count           int         `json:"count"`
	Capacity        sim.Qi      `json:"capacity"`
	RechargePerTick sim.Qi      `json:"recharge_per_tick"`
	Spread          int32       `json:"spread,omitempty"`
	Seed            int64       `json:"seed,omitempty"`
}

type InfuseResponse struct {
	Nodes     []sim.OreSource `json:"nodes"`
	Cost      uint64          `json:"cost"`
	Balance   uint64          `json:"balance"`
	InfusedQi uint64          `json:"infused_qi"`
}
