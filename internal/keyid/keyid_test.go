// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyid

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
)

func mustGenerateRSA(t *testing.T, bits int) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		t.Fatalf("rsa.GenerateKey error: %v", err)
	}
	return key
}

func TestDerive_Deterministic(t *testing.T) {
	key := mustGenerateRSA(t, 2048)

	id1, err := Derive(&key.PublicKey)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	id2, err := Derive(&key.PublicKey)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if id1 != id2 {
		t.Fatalf("expected deterministic key ID, got %q and %q", id1, id2)
	}
	if id1 == "" {
		t.Fatalf("expected non-empty key ID")
	}
}

func TestDerive_DifferentKeysDifferentIDs(t *testing.T) {
	k1 := mustGenerateRSA(t, 2048)
	k2 := mustGenerateRSA(t, 2048)

	id1, err := Derive(&k1.PublicKey)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	id2, err := Derive(&k2.PublicKey)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if id1 == id2 {
		t.Fatalf("expected different key IDs for different keys")
	}
}

func TestDerive_NilKey(t *testing.T) {
	if _, err := Derive(nil); err == nil {
		t.Fatalf("expected error for nil public key")
	}
}

func TestDeriveFromPrivate_MatchesDerive(t *testing.T) {
	key := mustGenerateRSA(t, 2048)

	fromPub, err := Derive(&key.PublicKey)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	fromPriv, err := DeriveFromPrivate(key)
	if err != nil {
		t.Fatalf("DeriveFromPrivate error: %v", err)
	}

	if fromPub != fromPriv {
		t.Fatalf("expected DeriveFromPrivate to match Derive, got %q vs %q", fromPriv, fromPub)
	}
}
