// Package db provides database utilities: transaction propagation through
// context and bounded connection checkout.
package db

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs multi-statement reads and writes in one transaction.
type TransactionManager struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

func NewTransactionManager(db *gorm.DB, acquireTimeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, acquireTimeout: acquireTimeout}
}

// RunInTransaction executes fn within a database transaction. Repositories
// called with the context passed to fn join the transaction. The whole
// transaction is bounded by the acquire timeout.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	ctx, cancel := WithAcquireTimeout(ctx, tm.acquireTimeout)
	defer cancel()

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB bound
// to ctx when there is none.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// WithAcquireTimeout bounds how long a call may wait for a pooled connection.
// A non-positive timeout leaves ctx unchanged.
func WithAcquireTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
