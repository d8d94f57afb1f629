// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"

	"github.com/soteria-dev/go-keychain/internal/keycodec"
	"github.com/soteria-dev/go-keychain/internal/namepolicy"
	"github.com/soteria-dev/go-keychain/models"
)

// CreateKey generates a new key of keyType under name and size bits,
// encrypts it under this keychain's DEK, and stores it. Returns the
// KeyInfo describing the new key.
//
// Fails with ErrInvalidName if name fails namepolicy validation or is the
// reserved name "self", ErrAlreadyExists if name is already taken,
// ErrBadParameter if keyType is not models.KeyTypeRSA or size is below
// keycodec.MinRSABits, and ErrCryptoFailure/ErrDatastoreFailure for
// generation or persistence failures. Every failure here is asynchronous
// and passes through the error-delay smear.
func (k *Keychain) CreateKey(ctx context.Context, name string, keyType models.KeyType, size int) (models.KeyInfo, error) {
	if !namepolicy.ValidateKeyName(name) || namepolicy.IsReserved(name) {
		return models.KeyInfo{}, k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(name)))
	}
	if keyType != models.KeyTypeRSA {
		return models.KeyInfo{}, k.delayErr(ctx, newBadParameterError("Invalid key type '%s'", keyType))
	}
	if size == 0 {
		size = k.rsaBits
	}
	if size < keycodec.MinRSABits {
		return models.KeyInfo{}, k.delayErr(ctx, newBadParameterError("Invalid RSA key size %d", size))
	}

	exists, err := k.existsKey(ctx, name)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	if exists {
		return models.KeyInfo{}, k.delayErr(ctx, newAlreadyExistsError(name))
	}

	priv, err := keycodec.GenerateRSA(size)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, wrapCrypto("generate key", err))
	}

	if err := k.storeKey(ctx, name, priv); err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}

	info, err := k.keyInfoFor(ctx, name)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	return info, nil
}
