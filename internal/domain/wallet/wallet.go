package wallet

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"harimu/internal/domain/sim"
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrSameWallet          = errors.New("transfer to the same wallet")
)

const addressBytes = 20

// Wallet is an off-world Qi account. Balances use the same unit as
// agent Qi but live outside the world supply until infused.
type Wallet struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// NewWallet generates a wallet with a random hex address and a zero
// balance.
func NewWallet() (Wallet, error) {
	buf := make([]byte, addressBytes)
	if _, err := rand.Read(buf); err != nil {
		return Wallet{}, fmt.Errorf("generate wallet address: %w", err)
	}
	return Wallet{Address: hex.EncodeToString(buf)}, nil
}

// Transfer moves amount from one wallet to another. Zero-amount
// transfers are no-ops; self-transfers are rejected.
func Transfer(from, to *Wallet, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from.Address == to.Address {
		return ErrSameWallet
	}
	if from.Balance < amount {
		return ErrInsufficientBalance
	}
	from.Balance -= amount
	to.Balance += amount
	return nil
}

func powDigest(address string, nonce uint64) [sha256.Size]byte {
	buf := make([]byte, 0, len(address)+8)
	buf = append(buf, address...)
	buf = binary.LittleEndian.AppendUint64(buf, nonce)
	return sha256.Sum256(buf)
}

// PowValid reports whether the nonce is a valid proof of work for the
// address, under the same difficulty as the in-world primitive.
func PowValid(address string, nonce uint64) bool {
	digest := powDigest(address, nonce)
	return sim.MeetsPowDifficulty(digest[:])
}

// PowSolve searches nonces from startNonce up to maxIterations ahead.
// It returns the first valid nonce, or false when the window holds none.
func PowSolve(address string, startNonce, maxIterations uint64) (uint64, bool) {
	for i := uint64(0); i < maxIterations; i++ {
		nonce := startNonce + i
		if PowValid(address, nonce) {
			return nonce, true
		}
	}
	return 0, false
}

// Mine credits the wallet with the standard reward when the nonce is a
// valid proof for its address.
func (w *Wallet) Mine(nonce uint64) (uint64, error) {
	if !PowValid(w.Address, nonce) {
		return 0, fmt.Errorf("invalid proof of work for %s", w.Address)
	}
	reward := uint64(sim.PowReward)
	w.Balance += reward
	return reward, nil
}
