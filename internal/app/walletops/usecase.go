package walletops

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"
)

var (
	ErrInvalidRequest = errors.New("invalid wallet request")
	ErrNoProofFound   = errors.New("no valid proof of work in search window")
)

const (
	// TransistorCostFactor is the Qi price multiplier for infusing
	// transistor ore relative to qi ore.
	TransistorCostFactor = 100

	defaultMineIterations = 1 << 22
	defaultSpread         = int32(24)
)

type UseCase struct {
	TxManager ports.TxManager
	Wallets   ports.WalletRepository
	OreNodes  ports.OreNodeRepository
	RunState  ports.RunStateRepository
}

func (u UseCase) Create(ctx context.Context) (CreateResponse, error) {
	w, err := wallet.NewWallet()
	if err != nil {
		return CreateResponse{}, err
	}
	if err := u.Wallets.Create(ctx, w); err != nil {
		return CreateResponse{}, err
	}
	return CreateResponse{Wallet: w}, nil
}

// Mine searches a bounded nonce window and credits the reward on a
// hit. The search runs outside any transaction; only the credit is
// persisted.
func (u UseCase) Mine(ctx context.Context, req MineRequest) (MineResponse, error) {
	if req.Address == "" {
		return MineResponse{}, ErrInvalidRequest
	}
	w, err := u.Wallets.Get(ctx, req.Address)
	if err != nil {
		return MineResponse{}, err
	}

	iterations := req.MaxIterations
	if iterations == 0 {
		iterations = defaultMineIterations
	}
	nonce, ok := wallet.PowSolve(w.Address, req.StartNonce, iterations)
	if !ok {
		return MineResponse{}, ErrNoProofFound
	}
	reward, err := w.Mine(nonce)
	if err != nil {
		return MineResponse{}, err
	}
	if err := u.Wallets.Save(ctx, w); err != nil {
		return MineResponse{}, err
	}
	return MineResponse{Nonce: nonce, Reward: reward, Balance: w.Balance}, nil
}

func (u UseCase) Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error) {
	if req.From == "" || req.To == "" {
		return TransferResponse{}, ErrInvalidRequest
	}
	var resp TransferResponse
	err := u.TxManager.RunInTx(ctx, func(ctx context.Context) error {
		from, err := u.Wallets.Get(ctx, req.From)
		if err != nil {
			return fmt.Errorf("load sender: %w", err)
		}
		to, err := u.Wallets.Get(ctx, req.To)
		if err != nil {
			return fmt.Errorf("load recipient: %w", err)
		}
		if err := wallet.Transfer(&from, &to, req.Amount); err != nil {
			return err
		}
		if err := u.Wallets.Save(ctx, from); err != nil {
			return err
		}
		if err := u.Wallets.Save(ctx, to); err != nil {
			return err
		}
		resp = TransferResponse{FromBalance: from.Balance, ToBalance: to.Balance}
		return nil
	})
	if err != nil {
		return TransferResponse{}, err
	}
	return resp, nil
}

// InfuseOre converts wallet balance into persisted ore nodes. Qi ore
// costs its capacity; transistor ore costs TransistorCostFactor times
// its capacity. Only qi-ore capacity counts toward the infused total
// that caps the world supply.
func (u UseCase) InfuseOre(ctx context.Context, req InfuseRequest) (InfuseResponse, error) {
	if req.Address == "" || req.Count <= 0 || req.Capacity == 0 || !req.Ore.Valid() {
		return InfuseResponse{}, ErrInvalidRequest
	}

	perNode := uint64(req.Capacity)
	if req.Ore == sim.OreTransistor {
		perNode *= TransistorCostFactor
	}
	cost := perNode * uint64(req.Count)

	spread := req.Spread
	if spread <= 0 {
		spread = defaultSpread
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	nodes := make([]sim.OreSource, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		nodes = append(nodes, sim.OreSource{
			Ore: req.Ore,
			Position: sim.Position{
				X: rng.Int31n(2*spread+1) - spread,
				Y: rng.Int31n(2*spread+1) - spread,
			},
			Capacity:        req.Capacity,
			Current:         req.Capacity,
			RechargePerTick: req.RechargePerTick,
		})
	}

	var resp InfuseResponse
	err := u.TxManager.RunInTx(ctx, func(ctx context.Context) error {
		w, err := u.Wallets.Get(ctx, req.Address)
		if err != nil {
			return fmt.Errorf("load wallet: %w", err)
		}
		if w.Balance < cost {
			return wallet.ErrInsufficientBalance
		}
		w.Balance -= cost
		if err := u.Wallets.Save(ctx, w); err != nil {
			return err
		}
		if err := u.OreNodes.SaveAll(ctx, nodes); err != nil {
			return err
		}

		state, err := u.RunState.Get(ctx)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if req.Ore == sim.OreQi {
			state.InfusedQi += uint64(req.Capacity) * uint64(req.Count)
		}
		state.UpdatedAt = time.Now().UTC()
		if err := u.RunState.Save(ctx, state); err != nil {
			return err
		}

		resp = InfuseResponse{
			Nodes:     nodes,
			Cost:      cost,
			Balance:   w.Balance,
			InfusedQi: state.InfusedQi,
		}
		return nil
	})
	if err != nil {
		return InfuseResponse{}, err
	}
	return resp, nil
}
