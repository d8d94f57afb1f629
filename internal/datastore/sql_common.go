// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/soteria-dev/go-keychain/internal/logger"
)

// sqlStore is the shared implementation behind [SQLiteDatastore] and
// [PostgresDatastore]: both wrap a *sql.DB pointed at a keychain_blobs
// table (key TEXT PRIMARY KEY, value BYTEA/BLOB), differing only in
// their squirrel placeholder format and error classifier.
type sqlStore struct {
	db         *sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	log        *logger.Logger
}

func newSQLStore(db *sql.DB, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *sqlStore {
	return &sqlStore{
		db:         db,
		builder:    sq.StatementBuilder.PlaceholderFormat(placeholder),
		classifier: classifier,
		log:        log,
	}
}

func (s *sqlStore) classify(err error) error {
	if err == nil {
		return nil
	}
	if s.classifier != nil {
		if s.classifier.Classify(err) == Retryable {
			s.log.Warn().Err(err).Msg("datastore: retryable error")
		}
	}
	return err
}

func (s *sqlStore) has(ctx context.Context, key string) (bool, error) {
	query, args, err := s.builder.
		Select("1").From("keychain_blobs").Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("datastore: build has query: %w", err)
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, s.classify(fmt.Errorf("datastore: has: %w", err))
	}
	return true, nil
}

func (s *sqlStore) get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").From("keychain_blobs").Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("datastore: build get query: %w", err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.classify(fmt.Errorf("datastore: get: %w", err))
	}
	return value, nil
}

// sqlExecer is satisfied by both *sql.DB and *sql.Tx, letting put/delete
// run either directly against the pool or inside a batch's transaction.
type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *sqlStore) put(ctx context.Context, key string, value []byte) error {
	return s.putTx(ctx, s.db, key, value)
}

// putTx is factored out so batch commits can reuse it against a *sql.Tx.
func (s *sqlStore) putTx(ctx context.Context, execer sqlExecer, key string, value []byte) error {
	query, args, err := s.builder.
		Insert("keychain_blobs").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr(s.now())).
		Suffix(s.upsertSuffix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("datastore: build put query: %w", err)
	}

	_, err = execer.ExecContext(ctx, query, args...)
	if err != nil {
		return s.classify(fmt.Errorf("datastore: put: %w", err))
	}
	return nil
}

func (s *sqlStore) deleteKey(ctx context.Context, key string) error {
	return s.deleteTx(ctx, s.db, key)
}

func (s *sqlStore) deleteTx(ctx context.Context, execer sqlExecer, key string) error {
	query, args, err := s.builder.
		Delete("keychain_blobs").Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("datastore: build delete query: %w", err)
	}

	_, err = execer.ExecContext(ctx, query, args...)
	if err != nil {
		return s.classify(fmt.Errorf("datastore: delete: %w", err))
	}
	return nil
}

func (s *sqlStore) queryKeys(ctx context.Context) ([]Entry, error) {
	query, args, err := s.builder.
		Select("key").From("keychain_blobs").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("datastore: build query-keys query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify(fmt.Errorf("datastore: query keys: %w", err))
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("datastore: scan key: %w", err)
		}
		entries = append(entries, Entry{Key: k})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("datastore: iterate keys: %w", err)
	}
	return entries, nil
}

// now returns the SQL expression used for updated_at. Both dialects
// supported here accept the ANSI CURRENT_TIMESTAMP function.
func (s *sqlStore) now() string {
	return "CURRENT_TIMESTAMP"
}

// upsertSuffix returns the dialect-specific ON CONFLICT clause. SQLite and
// PostgreSQL (>=9.5) share the same upsert syntax.
func (s *sqlStore) upsertSuffix() string {
	return "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
}
