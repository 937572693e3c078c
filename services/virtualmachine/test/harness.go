// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/orbs-network/call-tracker-go/services/statestorage"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/call-tracker-go/services/virtualmachine"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
)

type harness struct {
	processor    *services.MockProcessor
	persistence  *memory.InMemoryStatePersistence
	stateStorage services.StateStorage
	service      services.VirtualMachine
	metrics      metric.Registry
}

func newHarness(logger log.Logger, atomicTransactions bool) *harness {
	registry := metric.NewRegistry()
	persistence := memory.NewStatePersistence(registry)
	h := newHarnessWithStateStorage(logger, atomicTransactions, statestorage.NewStateStorage(persistence, logger, registry), registry)
	h.persistence = persistence
	return h
}

func newHarnessWithStateStorage(logger log.Logger, atomicTransactions bool, stateStorage services.StateStorage, registry metric.Registry) *harness {
	processor := &services.MockProcessor{}
	processor.When("RegisterContractSdkCallHandler", mock.Any).Return().Times(1)

	service := virtualmachine.NewVirtualMachine(
		config.ForVirtualMachineTests(atomicTransactions),
		stateStorage,
		processor,
		virtualmachine.NewTrustedSignerResolver(),
		logger,
		registry,
	)

	return &harness{
		processor:    processor,
		stateStorage: stateStorage,
		service:      service,
		metrics:      registry,
	}
}

type contractFunction func(ctx context.Context, input *services.ProcessCallInput) (*services.ProcessCallOutput, error)

func (h *harness) expectContractCalled(contractFunction contractFunction) {
	h.expectContractCalledTimes(contractFunction, 1)
}

func (h *harness) expectContractCalledTimes(contractFunction contractFunction, times int) {
	h.processor.When("ProcessCall", mock.Any, mock.Any).Call(contractFunction).Times(times)
}

func (h *harness) expectContractNotCalled() {
	h.processor.Never("ProcessCall", mock.Any, mock.Any)
}

func (h *harness) verifyProcessor() (bool, error) {
	return h.processor.Verify()
}

func (h *harness) sdkCall(ctx context.Context, contextId primitives.ExecutionContextId, operation string, method primitives.MethodName, args ...interface{}) (protocol.ArgumentArray, error) {
	output, err := h.service.HandleSdkCall(ctx, &handlers.HandleSdkCallInput{
		ContextId:       contextId,
		OperationName:   operation,
		MethodName:      method,
		InputArguments:  builders.ArgumentsArray(args...),
		PermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
	})
	if err != nil {
		return nil, err
	}
	return output.OutputArguments, nil
}

func (h *harness) writeState(ctx context.Context, contextId primitives.ExecutionContextId, key string, value []byte) error {
	_, err := h.sdkCall(ctx, contextId, sdk.SDK_OPERATION_NAME_STATE, sdk.METHOD_STATE_WRITE, key, value)
	return err
}

func (h *harness) readState(ctx context.Context, contextId primitives.ExecutionContextId, key string) ([]byte, error) {
	output, err := h.sdkCall(ctx, contextId, sdk.SDK_OPERATION_NAME_STATE, sdk.METHOD_STATE_READ, key)
	if err != nil {
		return nil, err
	}
	return output[0].BytesValue, nil
}

func (h *harness) committedValue(contract primitives.ContractName, key string) ([]byte, bool) {
	value, found, _ := h.persistence.Read(context.Background(), contract, key)
	return value, found
}

func (h *harness) processTransaction(ctx context.Context, tx *protocol.Transaction) (*services.ProcessTransactionOutput, error) {
	return h.service.ProcessTransaction(ctx, &services.ProcessTransactionInput{Transaction: tx})
}

func (h *harness) processQuery(ctx context.Context, query *protocol.Query) (*services.ProcessQueryOutput, error) {
	return h.service.ProcessQuery(ctx, &services.ProcessQueryInput{Query: query})
}

func successfulCall(args ...interface{}) *services.ProcessCallOutput {
	return &services.ProcessCallOutput{
		OutputArgumentArray: builders.ArgumentsArray(args...),
		CallResult:          primitives.EXECUTION_RESULT_SUCCESS,
	}
}

func failedCall(err error) (*services.ProcessCallOutput, error) {
	return &services.ProcessCallOutput{
		OutputArgumentArray: builders.ArgumentsArray(err.Error()),
		CallResult:          primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT,
	}, err
}
