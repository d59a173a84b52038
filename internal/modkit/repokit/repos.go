// Package repokit carries the shared plumbing repository packages build on.
package repokit

import (
	"context"

	"panelgrid/internal/platform/store"
)

// Queryer is the read/write surface SQL repositories run against
type Queryer = store.RowQuerier

// TxRunner runs a function inside a transaction
type TxRunner = store.TxRunner

// WithTx executes fn transactionally on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// PG surfaces the pooled Queryer without the caller importing a driver
func PG(_ context.Context, q store.RowQuerier) store.RowQuerier { return q }
