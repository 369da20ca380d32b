package memory

import "context"

// TxManager is a pass-through: the store's own mutex guards each
// repository call, and there is nothing to roll back.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
