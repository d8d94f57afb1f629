// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyid derives the stable, printable identifier attached to every
// KeyInfo: the SHA-256 digest of the DER-encoded SubjectPublicKeyInfo of an
// RSA public key, wrapped as a multihash and rendered in base58 — the same
// construction libp2p uses to derive a PeerID from an RSA key. Identical
// key material always yields an identical ID, independent of the name it
// is stored under.
package keyid

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

// Derive computes the key ID for pub: SHA-256(DER(SubjectPublicKeyInfo))
// wrapped in a multihash and rendered as base58 (bitcoin alphabet).
func Derive(pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("keyid: public key is nil")
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("keyid: marshal public key: %w", err)
	}

	digest := sha256.Sum256(der)

	mh, err := multihash.Encode(digest[:], multihash.SHA2_256)
	if err != nil {
		return "", fmt.Errorf("keyid: encode multihash: %w", err)
	}

	return base58.Encode(mh), nil
}

// DeriveFromPrivate is a convenience wrapper over Derive for the common
// case of computing the ID for the public half of a loaded private key.
func DeriveFromPrivate(priv *rsa.PrivateKey) (string, error) {
	if priv == nil {
		return "", fmt.Errorf("keyid: private key is nil")
	}
	return Derive(&priv.PublicKey)
}
