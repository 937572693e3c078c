// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/call-tracker-go/bootstrap/httpserver"
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/eventexport"
	stateStorageAdapter "github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter/postgres"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type Node interface {
	govnr.ShutdownWaiter
	GracefulShutdown(shutdownContext context.Context)
	HttpPort() int
	PublicApi() services.PublicApi
}

type node struct {
	govnr.TreeSupervisor
	logic        NodeLogic
	httpServer   *httpserver.HttpServer
	kafka        *eventexport.KafkaPublisher
	closeStorage func() error
	ctxCancel    context.CancelFunc
	logger       log.Logger
}

// NewNode picks postgres when a dsn is configured and kafka when brokers are, falling back to memory and the log.
func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (Node, error) {
	ctx, ctxCancel := context.WithCancel(context.Background())
	metricRegistry := metric.NewRegistry()

	statePersistence, closeStorage, err := openStatePersistence(ctx, nodeConfig, logger, metricRegistry)
	if err != nil {
		ctxCancel()
		return nil, err
	}

	n := &node{
		closeStorage: closeStorage,
		ctxCancel:    ctxCancel,
		logger:       logger,
	}

	var publisher eventexport.Publisher
	if len(nodeConfig.EventExportKafkaBrokers()) > 0 {
		n.kafka = eventexport.NewKafkaPublisher(ctx, nodeConfig, logger, metricRegistry)
		n.Supervise(n.kafka)
		publisher = n.kafka
	} else {
		publisher = eventexport.NewLoggingPublisher(logger)
	}

	n.logic = NewNodeLogic(ctx, statePersistence, publisher, logger, metricRegistry, nodeConfig)
	n.httpServer = httpserver.NewHttpServer(nodeConfig, logger, n.logic.PublicApi(), metricRegistry)
	n.Supervise(n.logic)
	n.Supervise(n.httpServer)

	return n, nil
}

func openStatePersistence(ctx context.Context, nodeConfig config.StateStorageConfig, logger log.Logger, metricRegistry metric.Registry) (stateStorageAdapter.StatePersistence, func() error, error) {
	dsn := nodeConfig.StateStoragePostgresDsn()
	if dsn == "" {
		logger.Info("using in-memory state persistence, state will not survive a restart")
		return memory.NewStatePersistence(metricRegistry), func() error { return nil }, nil
	}

	persistence, err := postgres.Open(ctx, dsn, logger, metricRegistry)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open state persistence")
	}
	logger.Info("using postgres state persistence")
	return persistence, persistence.Close, nil
}

func (n *node) HttpPort() int {
	return n.httpServer.Port()
}

func (n *node) PublicApi() services.PublicApi {
	return n.logic.PublicApi()
}

// GracefulShutdown stops accepting requests before flushing exports and closing storage.
func (n *node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down")
	n.httpServer.GracefulShutdown(shutdownContext)
	if n.kafka != nil {
		n.kafka.GracefulShutdown(shutdownContext)
	}
	n.ctxCancel()
	n.logic.WaitUntilShutdown(shutdownContext)
	if err := n.closeStorage(); err != nil {
		n.logger.Error("failed to close state persistence", log.Error(err))
	}
}
