package walletops

import (
	"context"
	"errors"
	"testing"

	"harimu/internal/adapter/repo/memory"
	"harimu/internal/domain/sim"
	"harimu/internal/domain/wallet"
)

func newTestUseCase() (UseCase, *memory.Store) {
	store := memory.NewStore()
	return UseCase{
		TxManager: memory.NewTxManager(),
		Wallets:   memory.NewWalletRepo(store),
		OreNodes:  memory.NewOreNodeRepo(store),
		RunState:  memory.NewRunStateRepo(store),
	}, store
}

func seedWallet(t *testing.T, u UseCase, balance uint64) wallet.Wallet {
	t.Helper()
	resp, err := u.Create(context.Background())
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	w := resp.Wallet
	w.Balance = balance
	if err := u.Wallets.Save(context.Background(), w); err != nil {
		t.Fatalf("fund wallet: %v", err)
	}
	return w
}

func TestCreateWallet(t *testing.T) {
	u, _ := newTestUseCase()

	resp, err := u.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Wallet.Address == "" || resp.Wallet.Balance != 0 {
		t.Fatalf("wallet = %+v", resp.Wallet)
	}

	got, err := u.Wallets.Get(context.Background(), resp.Wallet.Address)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != resp.Wallet {
		t.Fatalf("persisted wallet = %+v", got)
	}
}

func TestMineCreditsReward(t *testing.T) {
	u, _ := newTestUseCase()
	w := seedWallet(t, u, 0)

	resp, err := u.Mine(context.Background(), MineRequest{Address: w.Address})
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if resp.Reward != uint64(sim.PowReward) || resp.Balance != uint64(sim.PowReward) {
		t.Fatalf("mine response = %+v", resp)
	}
	if !wallet.PowValid(w.Address, resp.Nonce) {
		t.Fatalf("returned nonce %d is not a valid proof", resp.Nonce)
	}

	got, err := u.Wallets.Get(context.Background(), w.Address)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Balance != uint64(sim.PowReward) {
		t.Fatalf("persisted balance = %d", got.Balance)
	}
}

func TestTransferBetweenWallets(t *testing.T) {
	u, _ := newTestUseCase()
	from := seedWallet(t, u, 50)
	to := seedWallet(t, u, 0)

	resp, err := u.Transfer(context.Background(), TransferRequest{From: from.Address, To: to.Address, Amount: 20})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if resp.FromBalance != 30 || resp.ToBalance != 20 {
		t.Fatalf("transfer response = %+v", resp)
	}
}

func TestTransferInsufficientBalance(t *testing.T) {
	u, _ := newTestUseCase()
	from := seedWallet(t, u, 5)
	to := seedWallet(t, u, 0)

	_, err := u.Transfer(context.Background(), TransferRequest{From: from.Address, To: to.Address, Amount: 20})
	if !errors.Is(err, wallet.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	got, _ := u.Wallets.Get(context.Background(), from.Address)
	if got.Balance != 5 {
		t.Fatalf("failed transfer moved funds: %d", got.Balance)
	}
}

func TestInfuseQiOre(t *testing.T) {
	u, _ := newTestUseCase()
	w := seedWallet(t, u, 100)

	resp, err := u.InfuseOre(context.Background(), InfuseRequest{
		Address:         w.Address,
		Ore:             sim.OreQi,
		Count:           2,
		Capacity:        10,
		RechargePerTick: 3,
		Spread:          8,
		Seed:            1,
	})
	if err != nil {
		t.Fatalf("infuse: %v", err)
	}
	if resp.Cost != 20 || resp.Balance != 80 {
		t.Fatalf("cost/balance = %d/%d, want 20/80", resp.Cost, resp.Balance)
	}
	if resp.InfusedQi != 20 {
		t.Fatalf("infused qi = %d, want 20", resp.InfusedQi)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(resp.Nodes))
	}
	for _, n := range resp.Nodes {
		if n.Position.X < -8 || n.Position.X > 8 || n.Position.Y < -8 || n.Position.Y > 8 {
			t.Fatalf("node outside spread: %+v", n.Position)
		}
		if n.Current != 10 || n.Capacity != 10 || n.RechargePerTick != 3 {
			t.Fatalf("node = %+v", n)
		}
	}

	persisted, err := u.OreNodes.List(context.Background())
	if err != nil {
		t.Fatalf("list nodes: %v", err)
	}
	if len(persisted) != 2 || persisted[0].ID == 0 {
		t.Fatalf("persisted nodes = %+v", persisted)
	}
}

func TestInfuseIsDeterministicWithSeed(t *testing.T) {
	ua, _ := newTestUseCase()
	ub, _ := newTestUseCase()
	wa := seedWallet(t, ua, 100)
	wb := seedWallet(t, ub, 100)

	req := InfuseRequest{Ore: sim.OreQi, Count: 3, Capacity: 5, Spread: 16, Seed: 42}
	req.Address = wa.Address
	ra, err := ua.InfuseOre(context.Background(), req)
	if err != nil {
		t.Fatalf("infuse a: %v", err)
	}
	req.Address = wb.Address
	rb, err := ub.InfuseOre(context.Background(), req)
	if err != nil {
		t.Fatalf("infuse b: %v", err)
	}
	for i := range ra.Nodes {
		if ra.Nodes[i].Position != rb.Nodes[i].Position {
			t.Fatalf("node %d positions differ: %v vs %v", i, ra.Nodes[i].Position, rb.Nodes[i].Position)
		}
	}
}

func TestInfuseTransistorOreCostsFactor(t *testing.T) {
	u, _ := newTestUseCase()
	w := seedWallet(t, u, 250)

	resp, err := u.InfuseOre(context.Background(), InfuseRequest{
		Address:  w.Address,
		Ore:      sim.OreTransistor,
		Count:    1,
		Capacity: 2,
	})
	if err != nil {
		t.Fatalf("infuse: %v", err)
	}
	if resp.Cost != 2*TransistorCostFactor {
		t.Fatalf("cost = %d, want %d", resp.Cost, 2*TransistorCostFactor)
	}
	if resp.InfusedQi != 0 {
		t.Fatalf("transistor infusion must not raise the qi cap, got %d", resp.InfusedQi)
	}
}

func TestInfuseInsufficientBalance(t *testing.T) {
	u, _ := newTestUseCase()
	w := seedWallet(t, u, 5)

	_, err := u.InfuseOre(context.Background(), InfuseRequest{
		Address:  w.Address,
		Ore:      sim.OreQi,
		Count:    1,
		Capacity: 10,
	})
	if !errors.Is(err, wallet.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	nodes, err := u.OreNodes.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("failed infusion persisted nodes: %+v", nodes)
	}
}
