// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dek

import "errors"

var (
	// ErrPassphraseTooShort is returned at construction when the supplied
	// passphrase is shorter than the NIST SP 800-132 floor of 20 characters.
	ErrPassphraseTooShort = errors.New("passPhrase must be at least 20 characters")

	// ErrKeyLengthTooShort is returned at construction when the requested
	// derived-key length is below the 112-bit (14-byte) floor.
	ErrKeyLengthTooShort = errors.New("dek.keyLength must be at least 14 bytes")

	// ErrSaltTooShort is returned at construction when the supplied salt is
	// below the 128-bit (16-byte) floor.
	ErrSaltTooShort = errors.New("dek.salt must be at least 16 bytes")

	// ErrIterationCountTooLow is returned at construction when the supplied
	// PBKDF2 iteration count is below the 1000-iteration floor.
	ErrIterationCountTooLow = errors.New("dek.iterationCount must be at least 1000")

	// ErrSaltRequired is returned when no salt was supplied at all. The
	// library ships no usable default salt; callers MUST provide their own.
	ErrSaltRequired = errors.New("dek.salt is required and has no safe default")
)
