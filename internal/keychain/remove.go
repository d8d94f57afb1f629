// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"

	"github.com/soteria-dev/go-keychain/internal/namepolicy"
)

// RemoveKey deletes name's stored key. Fails with ErrInvalidName if name
// fails namepolicy validation or is the reserved name "self", and
// ErrNotFound if name has no stored key.
func (k *Keychain) RemoveKey(ctx context.Context, name string) error {
	if !namepolicy.ValidateKeyName(name) || namepolicy.IsReserved(name) {
		return k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(name)))
	}

	exists, err := k.existsKey(ctx, name)
	if err != nil {
		return k.delayErr(ctx, err)
	}
	if !exists {
		return k.delayErr(ctx, newNotFoundError(name, ""))
	}

	if err := k.ds.Delete(ctx, namepolicy.ToDsKey(name)); err != nil {
		return k.delayErr(ctx, wrapDatastore("remove key", err))
	}
	return nil
}
