// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every operation that fails wraps one of these so callers
// can classify a failure with errors.Is regardless of which key or name
// triggered it.
var (
	// ErrInvalidName is returned when a key name fails namepolicy validation.
	ErrInvalidName = errors.New("invalid key name")

	// ErrAlreadyExists is returned when createKey or renameKey targets a name
	// that is already occupied in the datastore.
	ErrAlreadyExists = errors.New("key already exists")

	// ErrNotFound is returned when an operation references a key name that
	// has no entry in the datastore.
	ErrNotFound = errors.New("key does not exist")

	// ErrBadParameter is returned when a caller-supplied parameter (key type,
	// key size) falls outside what this keychain accepts.
	ErrBadParameter = errors.New("bad parameter")

	// ErrWrongPassword is returned when a stored key blob fails to decode
	// under the derived DEK or the supplied export/import password.
	ErrWrongPassword = errors.New("cannot read the key, most likely the password is wrong")

	// ErrBadInput is returned when a required argument (plaintext,
	// ciphertext, password, peer envelope) is missing.
	ErrBadInput = errors.New("bad input")

	// ErrCryptoFailure is returned when key generation, encoding, or
	// encryption/decryption fails for a reason other than a wrong password.
	ErrCryptoFailure = errors.New("crypto failure")

	// ErrDatastoreFailure is returned when the underlying datastore reports
	// an error other than "not found".
	ErrDatastoreFailure = errors.New("datastore failure")
)

// invalidNameError carries the offending name so the message matches
// "Invalid key name '<name>'" while still unwrapping to ErrInvalidName.
type invalidNameError struct{ name string }

func (e *invalidNameError) Error() string { return fmt.Sprintf("Invalid key name '%s'", e.name) }
func (e *invalidNameError) Unwrap() error { return ErrInvalidName }

func newInvalidNameError(name string) error { return &invalidNameError{name: name} }

type alreadyExistsError struct{ name string }

func (e *alreadyExistsError) Error() string { return fmt.Sprintf("Key '%s' already exists", e.name) }
func (e *alreadyExistsError) Unwrap() error { return ErrAlreadyExists }

func newAlreadyExistsError(name string) error { return &alreadyExistsError{name: name} }

type notFoundError struct {
	name   string
	detail string
}

func (e *notFoundError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("Key '%s' does not exist.", e.name)
	}
	return fmt.Sprintf("Key '%s' does not exist. %s", e.name, e.detail)
}
func (e *notFoundError) Unwrap() error { return ErrNotFound }

func newNotFoundError(name, detail string) error { return &notFoundError{name: name, detail: detail} }

type badParameterError struct{ msg string }

func (e *badParameterError) Error() string { return e.msg }
func (e *badParameterError) Unwrap() error { return ErrBadParameter }

func newBadParameterError(format string, args ...any) error {
	return &badParameterError{msg: fmt.Sprintf(format, args...)}
}

type badInputError struct{ msg string }

func (e *badInputError) Error() string { return e.msg }
func (e *badInputError) Unwrap() error { return ErrBadInput }

func newBadInputError(msg string) error { return &badInputError{msg: msg} }

// wrapCrypto wraps an underlying crypto/codec error with ErrCryptoFailure
// while preserving the original error for inspection via errors.Unwrap.
func wrapCrypto(op string, err error) error {
	return fmt.Errorf("keychain: %s: %w: %w", op, ErrCryptoFailure, err)
}

// wrapDatastore wraps an underlying Datastore error with ErrDatastoreFailure.
func wrapDatastore(op string, err error) error {
	return fmt.Errorf("keychain: %s: %w: %w", op, ErrDatastoreFailure, err)
}
