// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"sync"
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("virtual-machine")

type service struct {
	stateStorage     services.StateStorage
	processor        services.Processor
	identityResolver IdentityResolver
	config           config.VirtualMachineConfig
	logger           log.Logger
	metrics          *metrics

	// transactions hold the write lock for their whole execution, queries share the read lock
	executionLock sync.RWMutex

	contexts *executionContextProvider
}

type metrics struct {
	transactionTime *metric.Histogram
	queryTime       *metric.Histogram
	committedDiffs  *metric.Rate
	discardedDiffs  *metric.Rate
	activeContexts  *metric.Gauge
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		transactionTime: m.NewLatency("VirtualMachine.ProcessTransactionTime.Millis", 10*time.Second),
		queryTime:       m.NewLatency("VirtualMachine.ProcessQueryTime.Millis", 10*time.Second),
		committedDiffs:  m.NewRate("VirtualMachine.CommittedStateDiffs.Count"),
		discardedDiffs:  m.NewRate("VirtualMachine.DiscardedStateDiffs.Count"),
		activeContexts:  m.NewGauge("VirtualMachine.ActiveExecutionContexts.Count"),
	}
}

func NewVirtualMachine(
	config config.VirtualMachineConfig,
	stateStorage services.StateStorage,
	processor services.Processor,
	identityResolver IdentityResolver,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) services.VirtualMachine {

	s := &service{
		stateStorage:     stateStorage,
		processor:        processor,
		identityResolver: identityResolver,
		config:           config,
		logger:           parentLogger.WithTags(LogTag),
		metrics:          getMetrics(metricFactory),
		contexts:         newExecutionContextProvider(),
	}

	processor.RegisterContractSdkCallHandler(s)

	return s
}

func (s *service) ProcessTransaction(ctx context.Context, input *services.ProcessTransactionInput) (*services.ProcessTransactionOutput, error) {
	if input == nil || input.Transaction == nil {
		return nil, errors.New("transaction must not be nil")
	}
	start := time.Now()
	defer s.metrics.transactionTime.RecordSince(start)

	tx := input.Transaction
	logger := s.logger.WithTags(logfields.Contract(tx.ContractName), logfields.Method(tx.MethodName))

	signer, err := s.identityResolver.ResolveSigner(ctx, tx.Signer)
	if err != nil {
		logger.Info("transaction signer could not be resolved", log.Error(err))
		return &services.ProcessTransactionOutput{
			ExecutionResult: primitives.EXECUTION_RESULT_ERROR_INPUT,
			OutputArguments: errorOutputArguments(err),
			CallError:       err,
		}, nil
	}

	s.executionLock.Lock()
	defer s.executionLock.Unlock()

	return s.processTransaction(ctx, logger.WithTags(logfields.Account(signer)), signer, tx)
}

func (s *service) ProcessQuery(ctx context.Context, input *services.ProcessQueryInput) (*services.ProcessQueryOutput, error) {
	if input == nil || input.Query == nil {
		return nil, errors.New("query must not be nil")
	}
	start := time.Now()
	defer s.metrics.queryTime.RecordSince(start)

	query := input.Query
	logger := s.logger.WithTags(logfields.Contract(query.ContractName), logfields.Method(query.MethodName))

	// queries may be anonymous, the caller identity is only needed if the method asks for it
	var signer primitives.AccountId
	if !query.Signer.IsEmpty() {
		resolved, err := s.identityResolver.ResolveSigner(ctx, query.Signer)
		if err != nil {
			logger.Info("query signer could not be resolved", log.Error(err))
			return &services.ProcessQueryOutput{
				ExecutionResult: primitives.EXECUTION_RESULT_ERROR_INPUT,
				OutputArguments: errorOutputArguments(err),
				CallError:       err,
			}, nil
		}
		signer = resolved
	}

	s.executionLock.RLock()
	defer s.executionLock.RUnlock()

	return s.processQuery(ctx, logger, signer, query)
}

func (s *service) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	executionContext := s.contexts.loadExecutionContext(input.ContextId)
	if executionContext == nil {
		return nil, errors.Errorf("invalid execution context %d", input.ContextId)
	}

	var output protocol.ArgumentArray
	var err error
	switch input.OperationName {
	case sdk.SDK_OPERATION_NAME_STATE:
		output, err = s.handleSdkStateCall(ctx, executionContext, input.MethodName, input.InputArguments)
	case sdk.SDK_OPERATION_NAME_ADDRESS:
		output, err = s.handleSdkAddressCall(ctx, executionContext, input.MethodName, input.InputArguments)
	case sdk.SDK_OPERATION_NAME_PAYMENT:
		output, err = s.handleSdkPaymentCall(ctx, executionContext, input.MethodName, input.InputArguments)
	case sdk.SDK_OPERATION_NAME_EVENTS:
		output, err = s.handleSdkEventsCall(ctx, executionContext, input.MethodName, input.InputArguments)
	default:
		return nil, errors.Errorf("unknown SDK call operation: %s", input.OperationName)
	}
	if err != nil {
		return nil, err
	}

	return &handlers.HandleSdkCallOutput{
		OutputArguments: output,
	}, nil
}
