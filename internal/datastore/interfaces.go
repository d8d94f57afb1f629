// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datastore defines the keyed blob store contract the keychain
// core depends on for all persistence, plus three reference
// implementations of it: an in-memory store for tests, a SQLite-backed
// store for the default embedded/local deployment, and a PostgreSQL-backed
// store for a server-deployed keychain. The keychain facade never imports
// a concrete adapter directly — only the [Datastore] interface.
package datastore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under key.
var ErrNotFound = errors.New("datastore: key not found")

// Entry is a single keys-only query result.
type Entry struct {
	Key string
}

// Batch accumulates Put and Delete operations to be applied together via
// Commit. Implementations document their own atomicity guarantee; the
// keychain core treats a failed Commit as leaving the store in an
// unspecified state between "both writes applied" and "neither applied".
type Batch interface {
	Put(key string, value []byte)
	Delete(key string)
	Commit(ctx context.Context) error
}

// Datastore is the sole I/O dependency of the keychain core: an
// abstraction over a keyed blob store.
type Datastore interface {
	// Has reports whether a value is stored under key.
	Has(ctx context.Context, key string) (bool, error)

	// Get returns the value stored under key, or ErrNotFound if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// QueryKeys returns every key currently stored, in the datastore's own
	// enumeration order — no particular order is promised.
	QueryKeys(ctx context.Context) ([]Entry, error)

	// Batch returns a new Batch for accumulating put/delete operations to
	// be applied together.
	Batch(ctx context.Context) (Batch, error)
}
