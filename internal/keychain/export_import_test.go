// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"errors"
	"testing"

	"github.com/soteria-dev/go-keychain/internal/keycodec"
	"github.com/soteria-dev/go-keychain/models"
)

func TestExportKey_OK(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	exported, err := kc.ExportKey(ctx, "alice", "export-password")
	if err != nil {
		t.Fatalf("ExportKey error: %v", err)
	}
	if len(exported.PEM) == 0 {
		t.Fatal("expected non-empty PEM")
	}
}

func TestExportKey_EmptyPassword(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}

	_, err := kc.ExportKey(ctx, "alice", "")
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestExportKey_NotFound(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.ExportKey(ctx, "ghost", "password")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImportKey_RoundTrip(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}
	exported, err := kc.ExportKey(ctx, "alice", "export-password")
	if err != nil {
		t.Fatalf("ExportKey error: %v", err)
	}

	imported, err := kc.ImportKey(ctx, "alice-import", exported.PEM, "export-password")
	if err != nil {
		t.Fatalf("ImportKey error: %v", err)
	}
	if imported.Name != "alice-import" {
		t.Fatalf("expected name 'alice-import', got %q", imported.Name)
	}
}

func TestImportKey_WrongPassword(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	if _, err := kc.CreateKey(ctx, "alice", models.KeyTypeRSA, 2048); err != nil {
		t.Fatalf("CreateKey error: %v", err)
	}
	exported, err := kc.ExportKey(ctx, "alice", "export-password")
	if err != nil {
		t.Fatalf("ExportKey error: %v", err)
	}

	_, err = kc.ImportKey(ctx, "alice-import", exported.PEM, "wrong-password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestImportKey_EmptyData(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.ImportKey(ctx, "alice", nil, "password")
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestImportPeer_OK(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	priv, err := keycodec.GenerateRSA(2048)
	if err != nil {
		t.Fatalf("GenerateRSA error: %v", err)
	}
	envelope := keycodec.ToMarshalledPeerPrivKey(priv)

	info, err := kc.ImportPeer(ctx, "peer-key", envelope)
	if err != nil {
		t.Fatalf("ImportPeer error: %v", err)
	}
	if info.Name != "peer-key" {
		t.Fatalf("expected name 'peer-key', got %q", info.Name)
	}
}

func TestImportPeer_MalformedEnvelope(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.ImportPeer(ctx, "peer-key", []byte{0xff, 0xff, 0xff})
	if !errors.Is(err, ErrCryptoFailure) {
		t.Fatalf("expected ErrCryptoFailure, got %v", err)
	}
}

func TestImportPeer_EmptyEnvelope(t *testing.T) {
	kc := newTestKeychain(t)
	ctx := context.Background()

	_, err := kc.ImportPeer(ctx, "peer-key", nil)
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}
