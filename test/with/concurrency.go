// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"context"
	"testing"
	"time"

	"github.com/orbs-network/govnr"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

// ConcurrencyHarness supervises the goroutines a test starts.
type ConcurrencyHarness struct {
	*LoggingHarness
	govnr.TreeSupervisor
}

// Concurrency cancels ctx once f returns and fails the test if anything supervised outlives it.
func Concurrency(tb testing.TB, f func(ctx context.Context, harness *ConcurrencyHarness)) {
	Logging(tb, func(parent *LoggingHarness) {
		ctx, cancel := context.WithCancel(context.Background())
		h := &ConcurrencyHarness{LoggingHarness: parent}

		defer func() {
			cancel()
			shutdownCtx, stop := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
			defer stop()
			h.WaitUntilShutdown(shutdownCtx)
			if shutdownCtx.Err() != nil {
				tb.Errorf("supervised goroutines did not shut down within %s", SHUTDOWN_TIMEOUT)
			}
		}()

		f(ctx, h)
	})
}
