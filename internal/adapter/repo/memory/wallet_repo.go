package memory

import (
	"context"

	"harimu/internal/app/ports"
	"harimu/internal/domain/wallet"
)

type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) WalletRepo {
	return WalletRepo{store: store}
}

func (r WalletRepo) Create(_ context.Context, w wallet.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.wallets[w.Address]; ok {
		return ports.ErrConflict
	}
	r.store.wallets[w.Address] = w
	return nil
}

func (r WalletRepo) Get(_ context.Context, address string) (wallet.Wallet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	w, ok := r.store.wallets[address]
	if !ok {
		return wallet.Wallet{}, ports.ErrNotFound
	}
	return w, nil
}

func (r WalletRepo) Save(_ context.Context, w wallet.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.wallets[w.Address]; !ok {
		return ports.ErrNotFound
	}
	r.store.wallets[w.Address] = w
	return nil
}
