// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keychain

import (
	"context"
	"math/rand"
	"time"
)

// delayer sleeps for a uniform random duration in [min, max) before an
// error is returned to the caller, so the wall-clock time an operation
// takes does not itself leak whether it succeeded or failed (a wrong
// password and a missing key must take indistinguishable time). It is a
// field on Keychain, not a package-level function, so tests can inject a
// zero-delay implementation.
type delayer func(ctx context.Context, min, max time.Duration)

// errorDelay blocks for a uniform random duration in [min, max), or until
// ctx is cancelled, whichever comes first. max <= min degenerates to a
// fixed delay of min.
func errorDelay(ctx context.Context, min, max time.Duration) {
	d := min
	if max > min {
		d = min + time.Duration(rand.Int63n(int64(max-min)))
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// delayErr invokes k.delay with the configured error-delay window and
// then returns err unchanged, so every fallible facade method can end
// with `return nil, k.delayErr(ctx, err)` / `return k.delayErr(ctx, err)`.
func (k *Keychain) delayErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	k.delay(ctx, k.cfg.ErrorDelayMin, k.cfg.ErrorDelayMax)
	return err
}
