// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/govnr"
)

// PeriodicalTrigger runs a handler on every tick until its context ends or Stop is called.
type PeriodicalTrigger struct {
	govnr.TreeSupervisor
	interval       time.Duration
	handler        func()
	onStop         func()
	logger         logfields.Errorer
	cancel         context.CancelFunc
	ticker         *time.Ticker
	closed         govnr.ContextEndedChan
	name           string
	timesTriggered uint64
}

func NewPeriodicalTrigger(ctx context.Context, name string, interval time.Duration, logger logfields.Errorer, trigger func(), onStop func()) *PeriodicalTrigger {
	subCtx, cancel := context.WithCancel(ctx)
	t := &PeriodicalTrigger{
		interval: interval,
		handler:  trigger,
		onStop:   onStop,
		cancel:   cancel,
		logger:   logger,
		name:     name,
	}

	t.run(subCtx)
	return t
}

func (t *PeriodicalTrigger) run(ctx context.Context) {
	t.ticker = time.NewTicker(t.interval)
	h := govnr.Forever(ctx, t.name, logfields.GovnrErrorer(t.logger), func() {
		for {
			select {
			case <-t.ticker.C:
				atomic.AddUint64(&t.timesTriggered, 1)
				t.handler()
			case <-ctx.Done():
				t.ticker.Stop()
				if t.onStop != nil {
					t.onStop()
				}
				return
			}
		}
	})
	t.closed = h.Done()
	t.Supervise(h)
}

func (t *PeriodicalTrigger) TimesTriggered() uint64 {
	return atomic.LoadUint64(&t.timesTriggered)
}

func (t *PeriodicalTrigger) Stop() {
	t.cancel()
	// the onStop handler has run once this returns
	<-t.closed
}
