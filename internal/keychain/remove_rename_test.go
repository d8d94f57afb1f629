// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"errors"
	"testing"

	"github.com/soteria-dev/go-keychain/models"
)

func TestRemoveKey_OK(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}
	if err := kc.RemoveKey(ctx, "alice"); err != nil {
		t.Fatalf("RemoveKey error: %v", err)
	}
	if _, err := kc.FindKeyByName(ctx, "alice"); err == nil {
		t.Fatal("expected key to be gone after removal")
	}
}

func TestRemoveKey_NotFound(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	err := kc.RemoveKey(ctx, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveKey_ReservedName(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	err := kc.RemoveKey(ctx, "self")
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestRenameKey_OK(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	created, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048)
	if err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	renamed, err := kc.RenameKey(ctx, "alice", "alice2")
	if err != nil {
		t.Fatalf("RenameKey error: %v", err)
	}
	if renamed.Name != "alice2" {
		t.Fatalf("expected name 'alice2', got %q", renamed.Name)
	}
	if renamed.ID != created.ID {
		t.Fatalf("expected ID to survive rename, got %q vs %q", renamed.ID, created.ID)
	}

	if _, err := kc.FindKeyByName(ctx, "alice"); err == nil {
		t.Fatal("expected old name to be gone")
	}
}

func TestRenameKey_OldNotFound(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.RenameKey(ctx, "ghost", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameKey_NewAlreadyExists(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey(alice) error: %v", err)
	}
	if _, err := kc.CreateKey(ctx, "bob", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey(bob) error: %v", err)
	}

	_, err := kc.RenameKey(ctx, "alice", "bob")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
