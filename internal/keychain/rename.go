// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"errors"

	"github.com/soteria-dev/go-keychain/internal/datastore"
	"github.com/soteria-dev/go-keychain/internal/namepolicy"
	"github.com/soteria-dev/go-keychain/models"
)

// RenameKey moves the blob stored under oldName to newName, leaving its
// contents untouched, and returns the KeyInfo for the renamed key (its ID
// is unchanged; only its Name changes). The move is applied via the
// datastore's Batch, so it is atomic whenever the Datastore implementation
// documents Batch.Commit as atomic.
//
// Fails with ErrInvalidName if either name fails namepolicy validation or
// is "self", ErrNotFound if oldName has no stored key, and
// ErrAlreadyExists if newName is already taken.
func (k *Keychain) RenameKey(ctx context.Context, oldName, newName string) (models.KeyInfo, error) {
	if !namepolicy.ValidateKeyName(oldName) || namepolicy.IsReserved(oldName) {
		return models.KeyInfo{}, k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(oldName)))
	}
	if !namepolicy.ValidateKeyName(newName) || namepolicy.IsReserved(newName) {
		return models.KeyInfo{}, k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(newName)))
	}

	blob, err := k.ds.Get(ctx, namepolicy.ToDsKey(oldName))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return models.KeyInfo{}, k.delayErr(ctx, newNotFoundError(oldName, ""))
		}
		return models.KeyInfo{}, k.delayErr(ctx, wrapDatastore("rename key", err))
	}

	newExists, err := k.existsKey(ctx, newName)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	if newExists {
		return models.KeyInfo{}, k.delayErr(ctx, newAlreadyExistsError(newName))
	}

	batch, err := k.ds.Batch(ctx)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, wrapDatastore("rename key", err))
	}
	batch.Put(namepolicy.ToDsKey(newName), blob)
	batch.Delete(namepolicy.ToDsKey(oldName))
	if err := batch.Commit(ctx); err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, wrapDatastore("rename key", err))
	}

	info, err := k.keyInfoFor(ctx, newName)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	return info, nil
}
