package repositories

import (
	"context"
	"fmt"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(q Querier) error) error
}

type TxManager struct {
	db DB
}

func NewTxManager(db DB) TxManagerInterface {
	return &TxManager{db: db}
}

// RunInTransaction выполняет fn в рамках одной транзакции:
// коммит при успехе, откат при ошибке или панике.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("ошибка при коммите транзакции: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}
