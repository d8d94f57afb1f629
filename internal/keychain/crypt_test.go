// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/soteria-dev/go-keychain/models"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	plaintext := []byte("the quick brown fox")
	result, err := kc.Encrypt(ctx, "alice", plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Equal(result.Data, plaintext) {
		t.Fatal("expected ciphertext to differ from plaintext")
	}

	decrypted, err := kc.Decrypt(ctx, "alice", result.Data)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("expected %q, got %q", plaintext, decrypted)
	}
}

func TestEncrypt_EmptyData(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	_, err := kc.Encrypt(ctx, "alice", nil)
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestEncrypt_KeyNotFound(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.Encrypt(ctx, "ghost", []byte("data"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDecrypt_EmptyData(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	_, err := kc.Decrypt(ctx, "alice", nil)
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}
