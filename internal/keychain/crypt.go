// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"crypto/rand"
	"crypto/rsa"

	"github.com/soteria-dev/go-keychain/models"
)

// Encrypt encrypts data under name's public half using RSA PKCS#1 v1.5
// and returns the ciphertext.
//
// Fails with ErrBadInput if data is empty, ErrNotFound if name has no
// stored key, and ErrCryptoFailure if encryption fails (e.g. data is
// longer than the key's maximum payload size).
func (k *Keychain) Encrypt(ctx context.Context, name string, data []byte) (models.EncryptResult, error) {
	if len(data) == 0 {
		return models.EncryptResult{}, k.delayErr(ctx, newBadInputError("Data is required"))
	}

	priv, err := k.loadKey(ctx, name)
	if err != nil {
		return models.EncryptResult{}, k.delayErr(ctx, err)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &priv.PublicKey, data)
	if err != nil {
		return models.EncryptResult{}, k.delayErr(ctx, wrapCrypto("encrypt", err))
	}
	return models.EncryptResult{Data: ciphertext}, nil
}

// Decrypt decrypts ciphertext with name's private half using RSA PKCS#1
// v1.5 and returns the plaintext.
//
// Fails with ErrBadInput if ciphertext is empty, ErrNotFound if name has
// no stored key, and ErrCryptoFailure if decryption fails (ciphertext was
// not produced for this key, or is malformed).
func (k *Keychain) Decrypt(ctx context.Context, name string, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, k.delayErr(ctx, newBadInputError("Data is required"))
	}

	priv, err := k.loadKey(ctx, name)
	if err != nil {
		return nil, k.delayErr(ctx, err)
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext)
	if err != nil {
		return nil, k.delayErr(ctx, wrapCrypto("decrypt", err))
	}
	return plaintext, nil
}
