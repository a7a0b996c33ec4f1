package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// sqlBeginner adapts *sql.DB to txmanager.Beginner
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager creates a transaction manager over a plain *sql.DB (metrics disabled)
func NewTransactionManager(db *sql.DB, opts ...txmanager.Option) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(sqlBeginner{db: db}, opts...)
}
