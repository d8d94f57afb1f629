// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keychain implements a local, password-protected asymmetric-key
// keychain: create, list, rename, remove, import, and export RSA private
// keys, and encrypt/decrypt payloads against a stored key's public half.
// Every private key is persisted as a PKCS#8 encrypted PEM blob, encrypted
// under a DEK derived from the caller's passphrase via internal/dek.
// Persistence is delegated entirely to a caller-supplied
// internal/datastore.Datastore, so the same facade runs against an
// in-memory store in tests, a local SQLite file, or a shared PostgreSQL
// instance.
//
// Every operation that can fail asynchronously (anything that touches the
// datastore or decrypts a blob) applies a uniform random delay before
// returning its error, so timing cannot distinguish a wrong password from
// a missing key from a datastore outage. Construction-time configuration
// errors are the one exception: New fails synchronously and immediately.
package keychain

import (
	"fmt"

	"github.com/soteria-dev/go-keychain/internal/datastore"
	"github.com/soteria-dev/go-keychain/internal/dek"
	"github.com/soteria-dev/go-keychain/internal/logger"
)

// Keychain is the public facade over one passphrase-protected keychain.
// A Keychain is safe for concurrent use: it holds no mutable state beyond
// the DEK, which is derived once at construction and not mutated until
// Close zeroes it.
type Keychain struct {
	ds         datastore.Datastore
	dekVal     *dek.DEK
	cfg        Options
	log        *logger.Logger
	delay      delayer
	rsaBits    int
	iterations int
}

// New derives this keychain's DEK from opts.Passphrase and opts.DEKSalt
// and returns a ready-to-use Keychain. Returns an error synchronously
// (never delayed) if opts.Datastore is nil, the passphrase is shorter
// than internal/dek.MinPassphraseLength, opts.RSABits is set below
// keycodec.MinRSABits, or the DEK parameters fail the NIST SP 800-132
// floors enforced by internal/dek.
func New(opts Options) (*Keychain, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	params := opts.dekParams().WithDefaults()
	derived, err := dek.Derive(opts.Passphrase, params)
	if err != nil {
		return nil, fmt.Errorf("keychain: derive DEK: %w", err)
	}

	return &Keychain{
		ds:         opts.Datastore,
		dekVal:     derived,
		cfg:        opts,
		log:        opts.Log,
		delay:      opts.delay,
		rsaBits:    opts.RSABits,
		iterations: params.IterationCount,
	}, nil
}

// Close zeroes the keychain's DEK. The Keychain must not be used after
// Close returns.
func (k *Keychain) Close() {
	k.dekVal.Zero()
}

// dekPassword returns the DEK rendered as the string used as the PKCS#8
// encryption password for every stored key blob.
func (k *Keychain) dekPassword() string {
	return k.dekVal.String()
}
