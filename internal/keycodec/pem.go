// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keycodec

import (
	"crypto"
	"crypto/rsa"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"
)

// pemBlockType is the standard PKCS#8 encrypted private key PEM header.
const pemBlockType = "ENCRYPTED PRIVATE KEY"

// ExportOptions controls the PBES2 cipher used when re-encrypting a key
// under a user-supplied password for export. The zero value is not
// usable; construct via DefaultExportOptions.
type ExportOptions struct {
	IterationCount int
	SaltSize       int
}

// DefaultExportOptions returns the default export cipher options: AES-256,
// PBKDF2 with the given iteration count (normally the Keychain's own DEK
// iteration count, so export does not weaken what create used), a 16-byte
// salt, and PRF SHA-512.
func DefaultExportOptions(iterationCount int) ExportOptions {
	return ExportOptions{IterationCount: iterationCount, SaltSize: 16}
}

func (o ExportOptions) pkcs8Opts() *pkcs8.Opts {
	return &pkcs8.Opts{
		Cipher: pkcs8.AES256CBC,
		KDFOpts: pkcs8.PBKDF2Opts{
			SaltSize:       o.SaltSize,
			IterationCount: o.IterationCount,
			HMACHash:       crypto.SHA512,
		},
	}
}

// EncodeEncryptedPEM encrypts priv under password using opts and returns
// the result as a PKCS#8 "ENCRYPTED PRIVATE KEY" PEM block.
func EncodeEncryptedPEM(priv *rsa.PrivateKey, password string, opts ExportOptions) ([]byte, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	der, err := pkcs8.MarshalPrivateKey(priv, []byte(password), opts.pkcs8Opts())
	if err != nil {
		return nil, fmt.Errorf("keycodec: marshal encrypted PKCS#8: %w", err)
	}

	block := &pem.Block{Type: pemBlockType, Bytes: der}
	return pem.EncodeToMemory(block), nil
}

// DecodeEncryptedPEM decrypts an encrypted PKCS#8 private key PEM with
// password and returns the RSA private key it contains. Returns
// ErrWrongPassword if the password is wrong or the blob is not a valid
// encrypted PKCS#8 PEM block — the two are indistinguishable to the
// caller — ErrNotRSAKey if the decoded key is not RSA, and
// ErrPasswordRequired if password is empty.
func DecodeEncryptedPEM(pemBytes []byte, password string) (*rsa.PrivateKey, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil || block.Type != pemBlockType {
		return nil, ErrWrongPassword
	}

	key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(password))
	if err != nil {
		return nil, ErrWrongPassword
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAKey
	}

	return rsaKey, nil
}
