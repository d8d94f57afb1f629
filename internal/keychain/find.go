// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"

	"github.com/soteria-dev/go-keychain/models"
)

// FindKeyByID scans every stored key and returns the first whose ID
// matches id. The second return value is false if no key matches; in
// that case the error is always nil — "not found" is a normal outcome of
// a lookup-by-ID, unlike the other operations, which treat a missing name
// as an error.
func (k *Keychain) FindKeyByID(ctx context.Context, id string) (models.KeyInfo, bool, error) {
	infos, err := k.ListKeys(ctx)
	if err != nil {
		return models.KeyInfo{}, false, err
	}
	for _, info := range infos {
		if info.ID == id {
			return info, true, nil
		}
	}
	return models.KeyInfo{}, false, nil
}

// FindKeyByName returns the KeyInfo stored under name. It is the named
// counterpart to FindKeyByID and to the underlying keyInfoFor lookup
// CreateKey, RenameKey and the import operations use internally; unlike
// FindKeyByID, a missing
// name is reported as ErrNotFound rather than a false ok flag, since a
// caller who already knows the name they want is asking "load this key",
// not "does anything match".
func (k *Keychain) FindKeyByName(ctx context.Context, name string) (models.KeyInfo, error) {
	info, err := k.keyInfoFor(ctx, name)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	return info, nil
}
