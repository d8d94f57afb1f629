// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dek

import (
	"bytes"
	"errors"
	"testing"
)

func validSalt() []byte {
	return bytes.Repeat([]byte{0xAB}, MinSaltLengthBytes)
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	params := Params{Salt: validSalt(), IterationCount: 1000, KeyLength: 32}

	d1, err := Derive("this is not a secure phrase", params)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	d2, err := Derive("this is not a secure phrase", params)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if d1.String() != d2.String() {
		t.Fatalf("expected deterministic derivation for identical inputs")
	}
}

func TestDerive_DifferentSaltProducesDifferentDEK(t *testing.T) {
	p1 := Params{Salt: validSalt(), IterationCount: 1000, KeyLength: 32}
	p2 := Params{Salt: bytes.Repeat([]byte{0xCD}, MinSaltLengthBytes), IterationCount: 1000, KeyLength: 32}

	d1, err := Derive("this is not a secure phrase", p1)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	d2, err := Derive("this is not a secure phrase", p2)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if d1.String() == d2.String() {
		t.Fatalf("expected different DEKs for different salts")
	}
}

func TestDerive_RejectsShortPassphrase(t *testing.T) {
	_, err := Derive("too short", Params{Salt: validSalt(), IterationCount: 1000, KeyLength: 32})
	if !errors.Is(err, ErrPassphraseTooShort) {
		t.Fatalf("expected ErrPassphraseTooShort, got %v", err)
	}
}

func TestDerive_RejectsShortSalt(t *testing.T) {
	_, err := Derive("this is not a secure phrase", Params{Salt: []byte("short"), IterationCount: 1000, KeyLength: 32})
	if !errors.Is(err, ErrSaltTooShort) {
		t.Fatalf("expected ErrSaltTooShort, got %v", err)
	}
}

func TestDerive_RejectsMissingSalt(t *testing.T) {
	_, err := Derive("this is not a secure phrase", Params{IterationCount: 1000, KeyLength: 32})
	if !errors.Is(err, ErrSaltRequired) {
		t.Fatalf("expected ErrSaltRequired, got %v", err)
	}
}

func TestDerive_RejectsLowIterationCount(t *testing.T) {
	_, err := Derive("this is not a secure phrase", Params{Salt: validSalt(), IterationCount: 1, KeyLength: 32})
	if !errors.Is(err, ErrIterationCountTooLow) {
		t.Fatalf("expected ErrIterationCountTooLow, got %v", err)
	}
}

func TestDerive_RejectsShortKeyLength(t *testing.T) {
	_, err := Derive("this is not a secure phrase", Params{Salt: validSalt(), IterationCount: 1000, KeyLength: 4})
	if !errors.Is(err, ErrKeyLengthTooShort) {
		t.Fatalf("expected ErrKeyLengthTooShort, got %v", err)
	}
}

func TestDerive_AppliesDefaults(t *testing.T) {
	d, err := Derive("this is not a secure phrase", Params{Salt: validSalt()})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	// DefaultKeyLengthBytes hex-encodes to twice as many characters.
	if len(d.String()) != DefaultKeyLengthBytes*2 {
		t.Fatalf("hex length = %d, want %d", len(d.String()), DefaultKeyLengthBytes*2)
	}
}

func TestDEK_Zero(t *testing.T) {
	d, err := Derive("this is not a secure phrase", Params{Salt: validSalt(), IterationCount: 1000, KeyLength: 32})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	d.Zero()
	for _, b := range []byte(d.String()) {
		if b != 0 {
			t.Fatalf("expected DEK buffer to be zeroed after Zero()")
		}
	}
}
