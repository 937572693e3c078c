// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

type GracefulShutdowner interface {
	govnr.ShutdownWaiter
	GracefulShutdown(shutdownContext context.Context)
}

func ShutdownGracefully(s GracefulShutdowner, timeout time.Duration) {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout) // give system some time to gracefully finish
	defer cancel()
	s.GracefulShutdown(shutdownContext)
}

type OSShutdownListener struct {
	Logger     log.Logger
	shutdowner GracefulShutdowner
	timeout    time.Duration
	signals    chan os.Signal
}

func NewShutdownListener(logger log.Logger, shutdowner GracefulShutdowner, timeout time.Duration) *OSShutdownListener {
	return &OSShutdownListener{
		Logger:     logger,
		shutdowner: shutdowner,
		timeout:    timeout,
		signals:    make(chan os.Signal, 1),
	}
}

func (n *OSShutdownListener) ListenToOSShutdownSignal() {
	signal.Notify(n.signals, os.Interrupt, syscall.SIGTERM)
	govnr.Once(logfields.GovnrErrorer(n.Logger), func() {
		<-n.signals
		signal.Stop(n.signals)
		n.Logger.Info("terminating node gracefully due to os signal received")

		ShutdownGracefully(n.shutdowner, n.timeout)
	})
}
