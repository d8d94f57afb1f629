// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keycodec implements the uniform handling of PKCS#8-encrypted PEM
// material used across every create/import/export/rename/use path of the
// keychain: RSA key generation, encoding to (and decoding from) PKCS#8
// encrypted PEM, and decoding of a libp2p peer private-key protobuf
// envelope for importPeer.
package keycodec

import (
	"crypto/rand"
	"crypto/rsa"
)

// MinRSABits is the NIST SP 800-131A floor below which GenerateRSA
// refuses to produce a key.
const MinRSABits = 2048

// GenerateRSA generates a new RSA key pair of the given size. bits below
// MinRSABits is rejected with ErrKeySizeTooSmall.
func GenerateRSA(bits int) (*rsa.PrivateKey, error) {
	if bits < MinRSABits {
		return nil, ErrKeySizeTooSmall
	}
	return rsa.GenerateKey(rand.Reader, bits)
}
