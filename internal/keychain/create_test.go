// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"errors"
	"testing"

	"github.com/soteria-dev/go-keychain/models"
)

func TestCreateKey_OK(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	info, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048)
	if err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}
	if info.Name != "alice" {
		t.Fatalf("expected name 'alice', got %q", info.Name)
	}
	if info.ID == "" {
		t.Fatal("expected non-empty key ID")
	}
}

func TestCreateKey_InvalidName(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.CreateKey(ctx, "bad/name", models.KeyTypeRSA, 2048)
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCreateKey_ReservedName(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.CreateKey(ctx, "self", models.KeyTypeRSA, 2048)
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName for reserved name, got %v", err)
	}
}

func TestCreateKey_AlreadyExists(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("first CreateKey error: %v", err)
	}
	_, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateKey_BadKeyType(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.CreateKey(ctx, "alice", models.KeyType("ed25519"), 2048)
	if !errors.Is(err, ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestCreateKey_SizeTooSmall(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 512)
	if !errors.Is(err, ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestCreateKey_DefaultSize(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	info, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 0)
	if err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}
	if info.Name != "alice" {
		t.Fatalf("expected name 'alice', got %q", info.Name)
	}
}
