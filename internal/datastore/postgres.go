// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/soteria-dev/go-keychain/internal/logger"
)

// PostgresDatastore is a Datastore backed by a PostgreSQL table, suitable
// for a server-deployed keychain shared across processes. Driver-level
// errors are classified via [PostgresErrorClassifier].
type PostgresDatastore struct {
	*sqlStore
	conn *sql.DB
}

// NewPostgresDatastore opens a PostgreSQL connection using the pgx stdlib
// driver and the DSN supplied, configures the connection pool, and
// verifies reachability with a ping. The caller is responsible for
// running the migrations in
// github.com/soteria-dev/go-keychain/migrations before first use.
//
// Returns an error if the driver cannot be opened, the ping fails, or the
// DSN is invalid.
func NewPostgresDatastore(ctx context.Context, dsn string, log *logger.Logger) (*PostgresDatastore, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresDatastore").Msg("error opening connection")
		return nil, fmt.Errorf("datastore: open postgres connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresDatastore").Msg("error connecting (ping)")
		return nil, fmt.Errorf("datastore: ping postgres: %w", err)
	}
	log.Debug().Str("func", "NewPostgresDatastore").Msg("connected to postgres successfully")

	return &PostgresDatastore{
		sqlStore: newSQLStore(conn, sq.Dollar, NewPostgresErrorClassifier(), log),
		conn:     conn,
	}, nil
}

// Close closes the underlying PostgreSQL connection pool.
func (p *PostgresDatastore) Close() error {
	return p.conn.Close()
}

func (p *PostgresDatastore) Has(ctx context.Context, key string) (bool, error) {
	return p.has(ctx, key)
}

func (p *PostgresDatastore) Get(ctx context.Context, key string) ([]byte, error) {
	return p.get(ctx, key)
}

func (p *PostgresDatastore) Put(ctx context.Context, key string, value []byte) error {
	return p.put(ctx, key, value)
}

func (p *PostgresDatastore) Delete(ctx context.Context, key string) error {
	return p.deleteKey(ctx, key)
}

func (p *PostgresDatastore) QueryKeys(ctx context.Context) ([]Entry, error) {
	return p.queryKeys(ctx)
}

func (p *PostgresDatastore) Batch(ctx context.Context) (Batch, error) {
	tx, err := p.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("datastore: begin postgres batch: %w", err)
	}
	return &sqlBatch{store: p.sqlStore, tx: tx}, nil
}
