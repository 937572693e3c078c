// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"time"

	"github.com/orbs-network/govnr"
)

func WithContext(f func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f(ctx)
}

// ShutsDownWithin reports whether waiter shut down before the timeout.
func ShutsDownWithin(waiter govnr.ShutdownWaiter, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	waiter.WaitUntilShutdown(ctx)
	return ctx.Err() == nil
}
