// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading and merging facilities
// for the keychain.
//
// Configuration is assembled by parsing environment variables via
// [Load] and merging the result on top of a set of hard-coded defaults
// with dario.cat/mergo, so that unset environment variables fall back
// to sane values rather than zeroing out the field.
package config
