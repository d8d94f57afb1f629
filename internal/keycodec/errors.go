// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keycodec

import "errors"

var (
	// ErrKeySizeTooSmall is returned by GenerateRSA when bits is below the
	// NIST SP 800-131A floor of 2048 bits.
	ErrKeySizeTooSmall = errors.New("RSA key size below the 2048-bit minimum")

	// ErrWrongPassword is returned by DecodeEncryptedPEM when the password
	// is wrong or the blob is not a valid encrypted PKCS#8 private key; the
	// two cases return the same sentinel and cannot be told apart.
	ErrWrongPassword = errors.New("cannot read the key, most likely the password is wrong")

	// ErrNotRSAKey is returned when a decoded PKCS#8 private key is of a
	// type other than RSA.
	ErrNotRSAKey = errors.New("decoded private key is not an RSA key")

	// ErrPasswordRequired is returned when an empty password is supplied to
	// an operation that requires one.
	ErrPasswordRequired = errors.New("password is required")

	// ErrMalformedPeerEnvelope is returned when the bytes handed to
	// FromMarshalledPeerPrivKey cannot be parsed as a libp2p private-key
	// protobuf envelope.
	ErrMalformedPeerEnvelope = errors.New("malformed peer private key envelope")

	// ErrUnsupportedPeerKeyType is returned when the envelope's key type is
	// not RSA — the only type this keychain core stores.
	ErrUnsupportedPeerKeyType = errors.New("unsupported peer private key type")
)
