// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/soteria-dev/go-keychain/internal/logger"
)

// SQLiteDatastore is a Datastore backed by a single SQLite file, suitable
// for the default local, single-process deployment of the keychain.
type SQLiteDatastore struct {
	*sqlStore
	conn *sql.DB
}

// NewSQLiteDatastore opens a SQLite connection to the file named by dsn,
// creating it if it does not yet exist, and verifies reachability with a
// ping. The caller is responsible for running the migrations in
// github.com/soteria-dev/go-keychain/migrations before first use.
//
// Returns an error if the file cannot be created, the driver fails to
// open, or the ping fails.
func NewSQLiteDatastore(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteDatastore, error) {
	if err := createFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteDatastore").Msg("error creating database file")
		return nil, fmt.Errorf("datastore: create sqlite file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteDatastore").Msg("error opening connection")
		return nil, fmt.Errorf("datastore: open sqlite connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteDatastore").Msg("error connecting (ping)")
		return nil, fmt.Errorf("datastore: ping sqlite: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteDatastore").Msg("connected to sqlite successfully")

	return &SQLiteDatastore{
		sqlStore: newSQLStore(conn, sq.Question, nil, log),
		conn:     conn,
	}, nil
}

func createFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == ":memory:" {
		return nil
	}
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("datastore: create sqlite file: %w", err)
		}
		return f.Close()
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteDatastore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteDatastore) Has(ctx context.Context, key string) (bool, error) {
	return s.has(ctx, key)
}

func (s *SQLiteDatastore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, key)
}

func (s *SQLiteDatastore) Put(ctx context.Context, key string, value []byte) error {
	return s.put(ctx, key, value)
}

func (s *SQLiteDatastore) Delete(ctx context.Context, key string) error {
	return s.deleteKey(ctx, key)
}

func (s *SQLiteDatastore) QueryKeys(ctx context.Context) ([]Entry, error) {
	return s.queryKeys(ctx)
}

func (s *SQLiteDatastore) Batch(ctx context.Context) (Batch, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("datastore: begin sqlite batch: %w", err)
	}
	return &sqlBatch{store: s.sqlStore, tx: tx}, nil
}
