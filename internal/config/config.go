// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration for the keychain. It is populated
// by merging values parsed from environment variables (via
// github.com/caarlos0/env/v11, `KEYCHAIN_` prefix) on top of [Defaults],
// so that unset fields fall back to sane values rather than being zeroed.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups.
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// DEK holds the PBKDF2 parameters used to derive a key's encrypting
	// key from its passphrase.
	DEK DEKConfig `envPrefix:"DEK_"`

	// Datastore selects and configures the persistence backend.
	Datastore DatastoreConfig `envPrefix:"DATASTORE_"`

	// RSABits is the modulus size used for newly generated RSA keys.
	// Env: KEYCHAIN_RSA_BITS
	RSABits int `env:"RSA_BITS"`

	// ErrorDelayMin is the lower bound of the uniform random delay applied
	// before any facade method returns an error.
	// Env: KEYCHAIN_ERROR_DELAY_MIN
	ErrorDelayMin time.Duration `env:"ERROR_DELAY_MIN"`

	// ErrorDelayMax is the upper bound of the uniform random delay applied
	// before any facade method returns an error.
	// Env: KEYCHAIN_ERROR_DELAY_MAX
	ErrorDelayMax time.Duration `env:"ERROR_DELAY_MAX"`
}

// DEKConfig mirrors internal/dek.Params as environment-configurable
// fields. The keychain package does not read a Config; its Options carry
// the corresponding DEK fields separately.
type DEKConfig struct {
	// KeyLength is the derived key length in bytes.
	// Env: KEYCHAIN_DEK_KEY_LENGTH
	KeyLength int `env:"KEY_LENGTH"`

	// Iterations is the PBKDF2 iteration count.
	// Env: KEYCHAIN_DEK_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// SaltLength is the random salt length in bytes.
	// Env: KEYCHAIN_DEK_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH"`
}

// DatastoreConfig selects the backing store and its connection string.
type DatastoreConfig struct {
	// Backend names the adapter to use: "memory", "sqlite", or "postgres".
	// Env: KEYCHAIN_DATASTORE_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the backend-specific data source name. Unused for "memory".
	// Env: KEYCHAIN_DATASTORE_DSN
	DSN string `env:"DSN"`
}

// Defaults returns the immutable baseline configuration that [Load] merges
// environment overrides on top of. The DEK key length and iteration count
// match internal/dek's package defaults, and the salt length matches the
// NIST SP 800-132 floor enforced by internal/dek; RSABits matches the
// 2048-bit floor enforced independently by internal/keycodec.
func Defaults() *Config {
	return &Config{
		DEK: DEKConfig{
			KeyLength:  64,
			Iterations: 10000,
			SaltLength: 16,
		},
		Datastore: DatastoreConfig{
			Backend: "memory",
		},
		RSABits:       2048,
		ErrorDelayMin: 200 * time.Millisecond,
		ErrorDelayMax: 1000 * time.Millisecond,
	}
}

// Load parses environment variables into a partial [Config] and merges it
// on top of [Defaults] — fields set via the environment win, unset fields
// keep their default value. Returns an error if env.Parse fails or the
// merged result fails [Config.validate].
func Load() (*Config, error) {
	return newConfigBuilder().withEnv().build()
}
