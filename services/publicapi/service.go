// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/eventexport"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("public-api")

type service struct {
	config         config.PublicApiConfig
	virtualMachine services.VirtualMachine
	publisher      eventexport.Publisher
	logger         log.Logger

	metrics *metrics
}

type metrics struct {
	sendTransactionTime                *metric.Histogram
	runQueryTime                       *metric.Histogram
	totalTransactionsFromClients       *metric.Gauge
	totalTransactionsErrNilRequest     *metric.Gauge
	totalTransactionsErrInvalidRequest *metric.Gauge
	totalTransactionsSucceeded         *metric.Gauge
	totalTransactionsFailed            *metric.Gauge
	totalTransactionsPaymentRequired   *metric.Gauge
	totalQueriesFromClients            *metric.Gauge
	totalQueriesErrInvalidRequest      *metric.Gauge
}

func newMetrics(factory metric.Factory, sendTransactionTimeout time.Duration) *metrics {
	return &metrics{
		sendTransactionTime:                factory.NewLatency("PublicApi.SendTransactionProcessingTime.Millis", sendTransactionTimeout),
		runQueryTime:                       factory.NewLatency("PublicApi.RunQueryProcessingTime.Millis", sendTransactionTimeout),
		totalTransactionsFromClients:       factory.NewGauge("PublicApi.TotalTransactionsFromClients.Count"),
		totalTransactionsErrNilRequest:     factory.NewGauge("PublicApi.TotalTransactionsErrNilRequest.Count"),
		totalTransactionsErrInvalidRequest: factory.NewGauge("PublicApi.TotalTransactionsErrInvalidRequest.Count"),
		totalTransactionsSucceeded:         factory.NewGauge("PublicApi.TotalTransactionsSucceeded.Count"),
		totalTransactionsFailed:            factory.NewGauge("PublicApi.TotalTransactionsFailed.Count"),
		totalTransactionsPaymentRequired:   factory.NewGauge("PublicApi.TotalTransactionsPaymentRequired.Count"),
		totalQueriesFromClients:            factory.NewGauge("PublicApi.TotalQueriesFromClients.Count"),
		totalQueriesErrInvalidRequest:      factory.NewGauge("PublicApi.TotalQueriesErrInvalidRequest.Count"),
	}
}

func NewPublicApi(
	config config.PublicApiConfig,
	virtualMachine services.VirtualMachine,
	publisher eventexport.Publisher,
	logger log.Logger,
	metricFactory metric.Factory,
) services.PublicApi {
	return &service{
		config:         config,
		virtualMachine: virtualMachine,
		publisher:      publisher,
		logger:         logger.WithTags(LogTag),
		metrics:        newMetrics(metricFactory, config.SendTransactionTimeout()),
	}
}

func (s *service) GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error) {
	if contractName == "" {
		return primitives.ZeroAmount, &InvalidRequestError{Reason: "contract name is empty"}
	}
	balance, err := s.virtualMachine.GetContractBalance(ctx, contractName)
	if err != nil {
		return primitives.ZeroAmount, errors.Wrapf(err, "failed to read balance of %s", contractName)
	}
	return balance, nil
}
