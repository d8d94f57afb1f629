// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"testing"
	"time"

	"github.com/soteria-dev/go-keychain/internal/datastore"
	"github.com/soteria-dev/go-keychain/internal/keycodec"
)

const testPassphrase = "correct horse battery staple!!"

func noDelay(context.Context, time.Duration, time.Duration) {}

func newTestKeychain(t *testing.T) *Keychain {
	t.Helper()
	return newTestKeychainWithOptions(t, Options{})
}

func newTestKeychainWithOptions(t *testing.T, overrides Options) *Keychain {
	t.Helper()

	opts := Options{
		Datastore:  datastore.NewMemoryDatastore(),
		Passphrase: testPassphrase,
		DEKSalt:    []byte("0123456789abcdef"),
		delay:      noDelay,
	}
	if overrides.Datastore != nil {
		opts.Datastore = overrides.Datastore
	}
	if overrides.Passphrase != "" {
		opts.Passphrase = overrides.Passphrase
	}
	if overrides.DEKSalt != nil {
		opts.DEKSalt = overrides.DEKSalt
	}
	if overrides.RSABits != 0 {
		opts.RSABits = overrides.RSABits
	} else {
		opts.RSABits = keycodec.MinRSABits
	}

	kc, err := New(opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(kc.Close)
	return kc
}

func TestNew_RejectsNilDatastore(t *testing.T) {
	_, err := New(Options{Passphrase: testPassphrase, DEKSalt: []byte("0123456789abcdef")})
	if err == nil {
		t.Fatal("expected error for nil datastore")
	}
}

func TestNew_RejectsShortPassphrase(t *testing.T) {
	_, err := New(Options{
		Datastore:  datastore.NewMemoryDatastore(),
		Passphrase: "too short",
		DEKSalt:    []byte("0123456789abcdef"),
	})
	if err == nil {
		t.Fatal("expected error for short passphrase")
	}
}

func TestNew_RejectsShortSalt(t *testing.T) {
	_, err := New(Options{
		Datastore:  datastore.NewMemoryDatastore(),
		Passphrase: testPassphrase,
		DEKSalt:    []byte("short"),
	})
	if err == nil {
		t.Fatal("expected error for salt below NIST floor")
	}
}

func TestNew_RejectsSmallRSABits(t *testing.T) {
	_, err := New(Options{
		Datastore:  datastore.NewMemoryDatastore(),
		Passphrase: testPassphrase,
		DEKSalt:    []byte("0123456789abcdef"),
		RSABits:    1024,
	})
	if err == nil {
		t.Fatal("expected error for RSA bits below floor")
	}
}

func TestNew_OK(t *testing.T) {
	kc := newTestKeychain(t)
	if kc == nil {
		t.Fatal("expected non-nil Keychain")
	}
}
