// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [Config] satisfies the invariants the
// keychain facade relies on at construction time. It does not re-derive
// the NIST floors enforced by internal/dek and internal/keycodec — those
// packages validate their own inputs independently — but it rejects
// configuration values that could never pass those checks, so a
// misconfigured deployment fails at startup instead of on first use.
func (cfg *Config) validate() error {
	if cfg.DEK.KeyLength < 14 || cfg.DEK.Iterations < 1000 || cfg.DEK.SaltLength < 16 {
		return ErrInvalidDEKConfig
	}

	switch cfg.Datastore.Backend {
	case "memory":
	case "sqlite", "postgres":
		if cfg.Datastore.DSN == "" {
			return ErrInvalidDatastoreConfig
		}
	default:
		return ErrInvalidDatastoreConfig
	}

	if cfg.RSABits < 2048 {
		return ErrInvalidRSABits
	}

	if cfg.ErrorDelayMin <= 0 || cfg.ErrorDelayMax <= cfg.ErrorDelayMin {
		return ErrInvalidErrorDelay
	}

	return nil
}
