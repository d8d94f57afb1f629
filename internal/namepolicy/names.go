// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package namepolicy implements the pure, side-effect-free rules that
// govern which strings may name a stored key and how a validated name
// maps to a datastore key.
//
// A key name is accepted only if it survives filesystem sanitisation
// unchanged: path separators, control characters, and the reserved
// Windows device stems (CON, PRN, AUX, NUL, COM1-9, LPT1-9) are all
// rejected, along with the empty string and whitespace-only strings.
// The literal name "self" is additionally reserved by every mutating
// keychain operation, enforced separately via [IsReserved] so that
// read-only lookups (e.g. findKeyByID) are free to treat it like any
// other string.
package namepolicy

import (
	"strings"
)

// ReservedSelf is the one key name every mutating keychain operation
// refuses to touch.
const ReservedSelf = "self"

// reservedDeviceStems mirrors the Windows reserved device names; a name
// equal to one of these (case-insensitively, ignoring any extension) is
// not filesystem-safe on every platform the keychain might run on.
var reservedDeviceStems = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// ValidateKeyName reports whether name is non-empty and byte-equal to
// the result of filesystem-sanitising its whitespace-trimmed form. Any
// trimming, stripping, or case-folding performed by sanitisation — even
// if it would otherwise produce a usable name — disqualifies the
// original string, because the facade must reject surprising input
// rather than silently coerce it.
func ValidateKeyName(name string) bool {
	if name == "" {
		return false
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	return sanitize(trimmed) == name
}

// IsReserved reports whether name is the reserved literal "self".
func IsReserved(name string) bool {
	return name == ReservedSelf
}

// ToDsKey translates a validated key name to its datastore key by
// prepending "/". Callers must validate name before calling ToDsKey; it
// performs no validation itself.
func ToDsKey(name string) string {
	return "/" + name
}

// FromDsKey strips the leading "/" added by [ToDsKey]. Callers must only
// pass keys previously produced by ToDsKey.
func FromDsKey(key string) string {
	return strings.TrimPrefix(key, "/")
}

// sanitize strips path separators, control characters, and reserved
// device stems from s. It never lengthens s, so byte-equality with the
// input after sanitisation is sufficient to prove s was already safe.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '/' || r == '\\' || r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()

	stem := cleaned
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	if _, reserved := reservedDeviceStems[strings.ToLower(stem)]; reserved {
		return ""
	}

	return cleaned
}

// FormatName renders name for inclusion in an `Invalid key name '<name>'`
// error message. Go's static typing has no null/undefined counterpart to
// the dynamic-language source this package's contract is ported from;
// the empty string is the closest analogue and is rendered verbatim.
func FormatName(name string) string {
	return name
}
