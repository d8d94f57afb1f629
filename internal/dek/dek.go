// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dek derives the data-encrypting key (DEK) that protects every
// private key a Keychain stores, using PBKDF2 over a caller-supplied
// passphrase, salt, iteration count, and PRF. Parameters are checked
// against the NIST SP 800-132 floors before derivation is attempted;
// construction fails fast and synchronously so a caller never pays the
// error-delay smear for a config mistake they could have caught locally.
package dek

import (
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// Minimum parameter floors mandated by NIST SP 800-132.
const (
	MinPassphraseLength = 20
	MinKeyLengthBytes   = 14 // 112 bits
	MinSaltLengthBytes  = 16 // 128 bits
	MinIterationCount   = 1000
)

// Shipped defaults for parameters the caller does not override. There is
// deliberately no default salt: a shared salt across installations would
// defeat the purpose of salting, so Params.Salt has no zero-value
// fallback and must always be supplied by the caller.
const (
	DefaultKeyLengthBytes = 64
	DefaultIterationCount = 10000
)

// DefaultHash is SHA-512, matching the shipped default of the source this
// package's contract is ported from.
func DefaultHash() hash.Hash { return sha512.New() }

// Params holds the tunable PBKDF2 parameters used to derive a DEK from a
// passphrase. Hash is a constructor (not a live hash.Hash) because
// pbkdf2.Key needs a fresh instance per internal iteration.
type Params struct {
	Salt           []byte
	IterationCount int
	KeyLength      int
	Hash           func() hash.Hash
}

// WithDefaults returns a copy of p with zero-value fields replaced by the
// package defaults. Salt is never defaulted — a missing salt is a
// configuration error the caller must fix, not one this package can
// paper over safely.
func (p Params) WithDefaults() Params {
	out := p
	if out.KeyLength == 0 {
		out.KeyLength = DefaultKeyLengthBytes
	}
	if out.IterationCount == 0 {
		out.IterationCount = DefaultIterationCount
	}
	if out.Hash == nil {
		out.Hash = DefaultHash
	}
	return out
}

// Validate checks p against the NIST SP 800-132 floors. It does not
// validate the passphrase; see [ValidatePassphrase].
func (p Params) Validate() error {
	if len(p.Salt) == 0 {
		return ErrSaltRequired
	}
	if len(p.Salt) < MinSaltLengthBytes {
		return ErrSaltTooShort
	}
	if p.KeyLength < MinKeyLengthBytes {
		return ErrKeyLengthTooShort
	}
	if p.IterationCount < MinIterationCount {
		return ErrIterationCountTooLow
	}
	return nil
}

// ValidatePassphrase checks passphrase against the NIST SP 800-132 floor
// on passphrase length.
func ValidatePassphrase(passphrase string) error {
	if len(passphrase) < MinPassphraseLength {
		return ErrPassphraseTooShort
	}
	return nil
}

// DEK is the derived data-encrypting key, rendered as lowercase hex so it
// can be consumed directly as a PKCS#8 encryption password string.
// Zero must be called when the DEK is no longer needed.
type DEK struct {
	hexValue []byte
}

// String returns the DEK as a lowercase hex string. Because *DEK
// implements fmt.Stringer, formatting a *DEK with %v or %s also prints
// the secret.
func (d *DEK) String() string {
	return string(d.hexValue)
}

// Zero overwrites the DEK's backing buffer with zeros. Safe to call more
// than once and on a nil receiver.
func (d *DEK) Zero() {
	if d == nil {
		return
	}
	for i := range d.hexValue {
		d.hexValue[i] = 0
	}
}

// Derive runs PBKDF2 over passphrase with the given params (after
// defaulting via [Params.WithDefaults]) and returns the result as a
// lowercase-hex-encoded DEK. Returns an error if passphrase or params
// fail validation.
func Derive(passphrase string, params Params) (*DEK, error) {
	if err := ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}

	p := params.WithDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	raw := pbkdf2.Key([]byte(passphrase), p.Salt, p.IterationCount, p.KeyLength, p.Hash)
	defer zero(raw)

	encoded := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(encoded, raw)

	return &DEK{hexValue: encoded}, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
