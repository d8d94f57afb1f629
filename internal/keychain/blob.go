// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"crypto/rsa"
	"errors"

	"github.com/soteria-dev/go-keychain/internal/datastore"
	"github.com/soteria-dev/go-keychain/internal/keycodec"
	"github.com/soteria-dev/go-keychain/internal/keyid"
	"github.com/soteria-dev/go-keychain/internal/namepolicy"
	"github.com/soteria-dev/go-keychain/models"
)

// storeKey encodes priv as a PKCS#8 encrypted PEM blob under this
// keychain's DEK and writes it to the datastore under name's translated
// key.
func (k *Keychain) storeKey(ctx context.Context, name string, priv *rsa.PrivateKey) error {
	pemBytes, err := keycodec.EncodeEncryptedPEM(priv, k.dekPassword(), keycodec.DefaultExportOptions(k.iterations))
	if err != nil {
		return wrapCrypto("store key", err)
	}
	if err := k.ds.Put(ctx, namepolicy.ToDsKey(name), pemBytes); err != nil {
		return wrapDatastore("store key", err)
	}
	return nil
}

// loadKey reads name's blob from the datastore and decrypts it under
// this keychain's DEK. Returns ErrNotFound if no blob is stored under
// name, or ErrWrongPassword if the blob cannot be decrypted —
// which should not happen for a blob this keychain itself wrote, since
// storeKey and loadKey always use the same DEK, but can happen if the
// datastore was shared with a keychain opened under a different
// passphrase.
func (k *Keychain) loadKey(ctx context.Context, name string) (*rsa.PrivateKey, error) {
	raw, err := k.ds.Get(ctx, namepolicy.ToDsKey(name))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return nil, newNotFoundError(name, "")
		}
		return nil, wrapDatastore("load key", err)
	}

	priv, err := keycodec.DecodeEncryptedPEM(raw, k.dekPassword())
	if err != nil {
		if errors.Is(err, keycodec.ErrWrongPassword) {
			return nil, ErrWrongPassword
		}
		return nil, wrapCrypto("load key", err)
	}
	return priv, nil
}

// existsKey reports whether name has a blob in the datastore.
func (k *Keychain) existsKey(ctx context.Context, name string) (bool, error) {
	ok, err := k.ds.Has(ctx, namepolicy.ToDsKey(name))
	if err != nil {
		return false, wrapDatastore("check key existence", err)
	}
	return ok, nil
}

// keyInfoFor loads name's key and builds the KeyInfo describing it.
func (k *Keychain) keyInfoFor(ctx context.Context, name string) (models.KeyInfo, error) {
	priv, err := k.loadKey(ctx, name)
	if err != nil {
		return models.KeyInfo{}, err
	}
	id, err := keyid.Derive(&priv.PublicKey)
	if err != nil {
		return models.KeyInfo{}, wrapCrypto("derive key id", err)
	}
	return models.KeyInfo{Name: name, ID: id}, nil
}
