// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"errors"

	"github.com/soteria-dev/go-keychain/internal/keycodec"
	"github.com/soteria-dev/go-keychain/internal/namepolicy"
	"github.com/soteria-dev/go-keychain/models"
)

// ExportKey re-encrypts name's private key under password (independent of
// this keychain's own DEK) and returns the result as a PKCS#8 encrypted
// PEM blob, suitable for handing to another party.
//
// Fails with ErrBadInput if password is empty, ErrNotFound if name has no
// stored key, and ErrCryptoFailure if re-encryption fails.
func (k *Keychain) ExportKey(ctx context.Context, name, password string) (models.ExportedKey, error) {
	if password == "" {
		return models.ExportedKey{}, k.delayErr(ctx, newBadInputError("Password is required"))
	}

	priv, err := k.loadKey(ctx, name)
	if err != nil {
		return models.ExportedKey{}, k.delayErr(ctx, err)
	}

	pemBytes, err := keycodec.EncodeEncryptedPEM(priv, password, keycodec.DefaultExportOptions(k.iterations))
	if err != nil {
		return models.ExportedKey{}, k.delayErr(ctx, wrapCrypto("export key", err))
	}
	return models.ExportedKey{PEM: pemBytes}, nil
}

// ImportKey decrypts pemBytes under password, re-encrypts the contained
// RSA private key under this keychain's own DEK, and stores it under
// name.
//
// Fails with ErrInvalidName, ErrAlreadyExists (as CreateKey does),
// ErrBadInput if pemBytes or password is empty, and ErrWrongPassword if
// password does not match pemBytes.
func (k *Keychain) ImportKey(ctx context.Context, name string, pemBytes []byte, password string) (models.KeyInfo, error) {
	if !namepolicy.ValidateKeyName(name) || namepolicy.IsReserved(name) {
		return models.KeyInfo{}, k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(name)))
	}
	if len(pemBytes) == 0 {
		return models.KeyInfo{}, k.delayErr(ctx, newBadInputError("Data is required"))
	}
	if password == "" {
		return models.KeyInfo{}, k.delayErr(ctx, newBadInputError("Password is required"))
	}

	exists, err := k.existsKey(ctx, name)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	if exists {
		return models.KeyInfo{}, k.delayErr(ctx, newAlreadyExistsError(name))
	}

	priv, err := keycodec.DecodeEncryptedPEM(pemBytes, password)
	if err != nil {
		if isWrongPassword(err) {
			return models.KeyInfo{}, k.delayErr(ctx, ErrWrongPassword)
		}
		return models.KeyInfo{}, k.delayErr(ctx, wrapCrypto("import key", err))
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

// ImportPeer decodes a libp2p private-key protobuf envelope (as produced
// by a peer identity store) and stores the RSA key it contains under
// name, encrypted under this keychain's own DEK.
//
// Fails with ErrInvalidName, ErrAlreadyExists, ErrBadInput if envelope is
// empty, and ErrCryptoFailure if the envelope cannot be parsed or is not
// an RSA key — unlike importKey's wrong-password case, a malformed peer
// envelope is a caller bug, not an adversarial guess, so its underlying
// keycodec error is surfaced rather than collapsed into ErrWrongPassword.
func (k *Keychain) ImportPeer(ctx context.Context, name string, envelope []byte) (models.KeyInfo, error) {
	if !namepolicy.ValidateKeyName(name) || namepolicy.IsReserved(name) {
		return models.KeyInfo{}, k.delayErr(ctx, newInvalidNameError(namepolicy.FormatName(name)))
	}
	if len(envelope) == 0 {
		return models.KeyInfo{}, k.delayErr(ctx, newBadInputError("Peer.privKey is required"))
	}

	exists, err := k.existsKey(ctx, name)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, err)
	}
	if exists {
		return models.KeyInfo{}, k.delayErr(ctx, newAlreadyExistsError(name))
	}

	priv, err := keycodec.FromMarshalledPeerPrivKey(envelope)
	if err != nil {
		return models.KeyInfo{}, k.delayErr(ctx, wrapCrypto("import peer key", err))
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

func isWrongPassword(err error) bool {
	return errors.Is(err, keycodec.ErrWrongPassword) || errors.Is(err, keycodec.ErrNotRSAKey)
}
