// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"fmt"
	"time"

	"github.com/soteria-dev/go-keychain/internal/datastore"
	"github.com/soteria-dev/go-keychain/internal/dek"
	"github.com/soteria-dev/go-keychain/internal/keycodec"
	"github.com/soteria-dev/go-keychain/internal/logger"
)

// Options configures a Keychain at construction time. Every field here is
// validated synchronously by New; a Keychain is never returned half-valid,
// and construction errors never pass through the error-delay smear — a
// caller that misconfigures a passphrase or DEK parameter finds out
// immediately.
type Options struct {
	// Datastore is the keyed blob store backing every key operation.
	// Required.
	Datastore datastore.Datastore

	// Passphrase unlocks this keychain's DEK. Required, and must satisfy
	// the NIST SP 800-132 floor enforced by internal/dek
	// (MinPassphraseLength).
	Passphrase string

	// DEKSalt is the random salt used to derive this keychain's DEK.
	// Required — internal/dek ships no default salt.
	DEKSalt []byte

	// DEKKeyLength, DEKIterationCount override the PBKDF2 output length and
	// iteration count. Zero selects internal/dek's package defaults.
	DEKKeyLength      int
	DEKIterationCount int

	// RSABits is the modulus size createKey uses when the caller does not
	// specify one. Zero selects keycodec.MinRSABits.
	RSABits int

	// ErrorDelayMin, ErrorDelayMax bound the uniform random delay applied
	// before any fallible operation returns an error. Zero values select
	// the 200ms/1000ms defaults.
	ErrorDelayMin time.Duration
	ErrorDelayMax time.Duration

	// Log is stored on the Keychain; the Keychain's methods do not write
	// to it. Nil selects logger.Nop().
	Log *logger.Logger

	// delay overrides the delay implementation; used only by tests to
	// avoid paying the real delay window.
	delay delayer
}

func (o Options) withDefaults() Options {
	out := o
	if out.RSABits == 0 {
		out.RSABits = keycodec.MinRSABits
	}
	if out.ErrorDelayMin == 0 {
		out.ErrorDelayMin = 200 * time.Millisecond
	}
	if out.ErrorDelayMax == 0 {
		out.ErrorDelayMax = 1000 * time.Millisecond
	}
	if out.Log == nil {
		out.Log = logger.Nop()
	}
	if out.delay == nil {
		out.delay = errorDelay
	}
	return out
}

func (o Options) validate() error {
	if o.Datastore == nil {
		return fmt.Errorf("keychain: datastore is required")
	}
	if err := dek.ValidatePassphrase(o.Passphrase); err != nil {
		return fmt.Errorf("keychain: %w", err)
	}
	if o.RSABits != 0 && o.RSABits < keycodec.MinRSABits {
		return fmt.Errorf("keychain: %w", keycodec.ErrKeySizeTooSmall)
	}
	if o.ErrorDelayMax != 0 && o.ErrorDelayMax < o.ErrorDelayMin {
		return fmt.Errorf("keychain: error delay max must not be less than min")
	}
	return nil
}

func (o Options) dekParams() dek.Params {
	return dek.Params{
		Salt:           o.DEKSalt,
		KeyLength:      o.DEKKeyLength,
		IterationCount: o.DEKIterationCount,
	}
}
