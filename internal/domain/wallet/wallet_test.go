package wallet

import (
	"errors"
	"testing"

	"harimu/internal/domain/sim"
)

func TestNewWalletAddressesAreUnique(t *testing.T) {
	a, err := NewWallet()
	if err != nil {
		t.Fatalf("new wallet: %v", err)
	}
	b, err := NewWallet()
	if err != nil {
		t.Fatalf("new wallet: %v", err)
	}
	if len(a.Address) != addressBytes*2 {
		t.Fatalf("address length = %d, want %d", len(a.Address), addressBytes*2)
	}
	if a.Address == b.Address {
		t.Fatal("two wallets share an address")
	}
	if a.Balance != 0 {
		t.Fatalf("fresh wallet balance = %d, want 0", a.Balance)
	}
}

func TestTransfer(t *testing.T) {
	from := Wallet{Address: "aa", Balance: 10}
	to := Wallet{Address: "bb"}

	if err := Transfer(&from, &to, 4); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if from.Balance != 6 || to.Balance != 4 {
		t.Fatalf("balances = %d/%d, want 6/4", from.Balance, to.Balance)
	}
}

func TestTransferInsufficientBalance(t *testing.T) {
	from := Wallet{Address: "aa", Balance: 3}
	to := Wallet{Address: "bb"}

	err := Transfer(&from, &to, 4)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if from.Balance != 3 || to.Balance != 0 {
		t.Fatalf("failed transfer must not move funds: %d/%d", from.Balance, to.Balance)
	}
}

func TestTransferZeroAmountIsNoOp(t *testing.T) {
	from := Wallet{Address: "aa", Balance: 1}
	to := Wallet{Address: "bb"}
	if err := Transfer(&from, &to, 0); err != nil {
		t.Fatalf("zero transfer: %v", err)
	}
	if from.Balance != 1 || to.Balance != 0 {
		t.Fatalf("zero transfer moved funds: %d/%d", from.Balance, to.Balance)
	}
}

func TestTransferSameWalletRejected(t *testing.T) {
	w := Wallet{Address: "aa", Balance: 5}
	if err := Transfer(&w, &w, 1); !errors.Is(err, ErrSameWallet) {
		t.Fatalf("err = %v, want ErrSameWallet", err)
	}
}

func TestMineRequiresValidProof(t *testing.T) {
	w := Wallet{Address: "deadbeef"}

	nonce, ok := PowSolve(w.Address, 0, 1<<22)
	if !ok {
		t.Fatal("no valid nonce in search window")
	}
	reward, err := w.Mine(nonce)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if reward != uint64(sim.PowReward) || w.Balance != uint64(sim.PowReward) {
		t.Fatalf("reward = %d, balance = %d, want %d", reward, w.Balance, sim.PowReward)
	}

	bad := nonce + 1
	for PowValid(w.Address, bad) {
		bad++
	}
	if _, err := w.Mine(bad); err == nil {
		t.Fatal("invalid nonce accepted")
	}
}
