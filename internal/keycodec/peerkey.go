// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keycodec

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// peerKeyTypeRSA is the libp2p crypto.proto KeyType enum value for RSA
// (field 1 of the PrivateKey envelope message). The envelope's schema is
// external and stable; this package parses only the one variant the
// keychain core supports.
const peerKeyTypeRSA = 0

// FromMarshalledPeerPrivKey parses a libp2p private-key protobuf envelope
// (message PrivateKey { required KeyType Type = 1; required bytes Data =
// 2; }) and decodes its Data field — a PKCS#1 DER-encoded RSA private
// key, per the libp2p-crypto convention — into an *rsa.PrivateKey.
//
// Returns ErrMalformedPeerEnvelope if the bytes are not a well-formed
// envelope, and ErrUnsupportedPeerKeyType if the envelope's Type field is
// not RSA. Both are returned directly to the caller rather than silently
// continuing, which a prior implementation of this contract failed to do.
func FromMarshalledPeerPrivKey(envelope []byte) (*rsa.PrivateKey, error) {
	var (
		keyType  int64
		haveType bool
		data     []byte
		haveData bool
	)

	b := envelope
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, ErrMalformedPeerEnvelope
		}
		b = b[n:]

		switch num {
		case 1: // Type
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, ErrMalformedPeerEnvelope
			}
			keyType = int64(v)
			haveType = true
			b = b[n:]
		case 2: // Data
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, ErrMalformedPeerEnvelope
			}
			data = v
			haveData = true
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, ErrMalformedPeerEnvelope
			}
			b = b[n:]
		}
	}

	if !haveType || !haveData {
		return nil, ErrMalformedPeerEnvelope
	}
	if keyType != peerKeyTypeRSA {
		return nil, ErrUnsupportedPeerKeyType
	}

	priv, err := x509.ParsePKCS1PrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("keycodec: parse peer RSA private key: %w", err)
	}

	return priv, nil
}

// ToMarshalledPeerPrivKey encodes priv as a libp2p private-key protobuf
// envelope. It is the inverse of FromMarshalledPeerPrivKey and exists
// primarily so the round-trip can be exercised in tests; the keychain
// core does not export to this format.
func ToMarshalledPeerPrivKey(priv *rsa.PrivateKey) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, peerKeyTypeRSA)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, x509.MarshalPKCS1PrivateKey(priv))
	return b
}
