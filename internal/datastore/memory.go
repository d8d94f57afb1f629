// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastore

import (
	"context"
	"sync"
)

// MemoryDatastore is an in-process, mutex-guarded Datastore backed by a
// plain map. It is used by the keychain core's own tests and is suitable
// for short-lived processes that do not need durability across restarts.
type MemoryDatastore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryDatastore returns an empty MemoryDatastore ready for use.
func NewMemoryDatastore() *MemoryDatastore {
	return &MemoryDatastore{data: make(map[string][]byte)}
}

func (m *MemoryDatastore) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *MemoryDatastore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryDatastore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryDatastore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryDatastore) QueryKeys(_ context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, len(m.data))
	for k := range m.data {
		out = append(out, Entry{Key: k})
	}
	return out, nil
}

func (m *MemoryDatastore) Batch(_ context.Context) (Batch, error) {
	return &memoryBatch{store: m}, nil
}

type memoryOp struct {
	key    string
	delete bool
	value  []byte
}

// memoryBatch applies its accumulated operations under a single lock
// acquisition on Commit, so concurrent readers never observe a partially
// applied batch.
type memoryBatch struct {
	store *MemoryDatastore
	ops   []memoryOp
}

func (b *memoryBatch) Put(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	b.ops = append(b.ops, memoryOp{key: key, value: cp})
}

func (b *memoryBatch) Delete(key string) {
	b.ops = append(b.ops, memoryOp{key: key, delete: true})
}

func (b *memoryBatch) Commit(_ context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	for _, op := range b.ops {
		if op.delete {
			delete(b.store.data, op.key)
			continue
		}
		b.store.data[op.key] = op.value
	}
	return nil
}
