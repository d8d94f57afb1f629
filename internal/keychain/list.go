// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"

	"github.com/soteria-dev/go-keychain/internal/namepolicy"
	"github.com/soteria-dev/go-keychain/models"
)

// ListKeys returns the KeyInfo for every key currently stored, in no
// particular order. Returns ErrDatastoreFailure if the underlying query
// fails, or ErrWrongPassword/ErrCryptoFailure if a stored blob cannot be
// decrypted under this keychain's DEK.
func (k *Keychain) ListKeys(ctx context.Context) ([]models.KeyInfo, error) {
	entries, err := k.ds.QueryKeys(ctx)
	if err != nil {
		return nil, k.delayErr(ctx, wrapDatastore("list keys", err))
	}

	infos := make([]models.KeyInfo, 0, len(entries))
	for _, e := range entries {
		name := namepolicy.FromDsKey(e.Key)
		info, err := k.keyInfoFor(ctx, name)
		if err != nil {
			return nil, k.delayErr(ctx, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
