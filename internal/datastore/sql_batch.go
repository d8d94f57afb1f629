// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastore

import (
	"context"
	"database/sql"
	"fmt"
)

// sqlBatch accumulates operations in memory and applies them inside a
// single *sql.Tx on Commit, giving both SQL adapters the same atomicity
// guarantee for renameKey's delete-old/put-new pair.
type sqlBatch struct {
	store *sqlStore
	tx    *sql.Tx
	ops   []func(context.Context) error
}

func (b *sqlBatch) Put(key string, value []byte) {
	b.ops = append(b.ops, func(ctx context.Context) error {
		return b.store.putTx(ctx, b.tx, key, value)
	})
}

func (b *sqlBatch) Delete(key string) {
	b.ops = append(b.ops, func(ctx context.Context) error {
		return b.store.deleteTx(ctx, b.tx, key)
	})
}

func (b *sqlBatch) Commit(ctx context.Context) error {
	for _, op := range b.ops {
		if err := op(ctx); err != nil {
			_ = b.tx.Rollback()
			return fmt.Errorf("datastore: batch commit: %w", err)
		}
	}
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("datastore: batch commit: %w", err)
	}
	return nil
}
