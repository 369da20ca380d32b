package gormrepo

import (
	"context"
	"errors"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/app/ports"
	"harimu/internal/domain/wallet"

	"gorm.io/gorm"
)

type WalletRepo struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) WalletRepo {
	return WalletRepo{db: db}
}

func (r WalletRepo) Create(ctx context.Context, w wallet.Wallet) error {
	row := model.Wallet{Address: w.Address, Balance: w.Balance}
	err := getDBFromCtx(ctx, r.db).Create(&row).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

func (r WalletRepo) Get(ctx context.Context, address string) (wallet.Wallet, error) {
	var row model.Wallet
	err := getDBFromCtx(ctx, r.db).Where("address = ?", address).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wallet.Wallet{}, ports.ErrNotFound
		}
		return wallet.Wallet{}, err
	}
	return wallet.Wallet{Address: row.Address, Balance: row.Balance}, nil
}

func (r WalletRepo) Save(ctx context.Context, w wallet.Wallet) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Wallet{}).
		Where("address = ?", w.Address).
		Update("balance", w.Balance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
