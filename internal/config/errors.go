// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Config.validate].
var (
	// ErrInvalidDEKConfig indicates a DEK parameter falls below a NIST SP
	// 800-132 floor enforced independently by internal/dek.
	ErrInvalidDEKConfig = errors.New("invalid DEK configuration")

	// ErrInvalidDatastoreConfig indicates an unrecognised datastore
	// backend name, or a non-memory backend with an empty DSN.
	ErrInvalidDatastoreConfig = errors.New("invalid datastore configuration")

	// ErrInvalidRSABits indicates an RSA key size below the 2048-bit
	// floor enforced independently by internal/keycodec.
	ErrInvalidRSABits = errors.New("invalid RSA key size")

	// ErrInvalidErrorDelay indicates the error-delay window is empty or
	// inverted (min >= max).
	ErrInvalidErrorDelay = errors.New("invalid error delay window")
)
