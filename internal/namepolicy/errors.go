// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package namepolicy

import "errors"

var (
	// ErrReservedName describes the reserved key name "self". The keychain
	// facade reports a reserved name as its own ErrInvalidName and does not
	// return this error.
	ErrReservedName = errors.New("'self' is a reserved name and cannot be used")
)
