// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/eventexport"
	"github.com/orbs-network/call-tracker-go/services/processor/native"
	"github.com/orbs-network/call-tracker-go/services/publicapi"
	"github.com/orbs-network/call-tracker-go/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
	"github.com/orbs-network/call-tracker-go/services/virtualmachine"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

type NodeLogic interface {
	govnr.ShutdownWaiter
	PublicApi() services.PublicApi
}

type nodeLogic struct {
	govnr.TreeSupervisor
	publicApi services.PublicApi
}

func NewNodeLogic(
	ctx context.Context,
	statePersistence stateStorageAdapter.StatePersistence,
	publisher eventexport.Publisher,
	logger log.Logger,
	metricRegistry metric.Registry,
	nodeConfig config.NodeConfig,
) NodeLogic {

	processor := native.NewNativeProcessor(nodeConfig, logger, metricRegistry)
	stateStorageService := statestorage.NewStateStorage(statePersistence, logger, metricRegistry)
	virtualMachineService := virtualmachine.NewVirtualMachine(nodeConfig, stateStorageService, processor, virtualmachine.NewTrustedSignerResolver(), logger, metricRegistry)
	publicApiService := publicapi.NewPublicApi(nodeConfig, virtualMachineService, publisher, logger, metricRegistry)

	n := &nodeLogic{
		publicApi: publicApiService,
	}
	n.Supervise(metricRegistry.ReportEvery(ctx, nodeConfig.MetricsReportInterval(), logger))

	logger.Info("node logic initialized",
		log.Uint32("free-call-allowance", nodeConfig.CallTrackerFreeCallAllowance()),
		log.Stringable("fee-per-extra-call", nodeConfig.CallTrackerFeePerExtraCall()),
		log.String("token", nodeConfig.CallTrackerTokenSymbol()))
	return n
}

func (n *nodeLogic) PublicApi() services.PublicApi {
	return n.publicApi
}
