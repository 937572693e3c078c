// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/native"
	"github.com/orbs-network/call-tracker-go/services/processor/native/repository"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
)

type harness struct {
	service        services.Processor
	sdkCallHandler *handlers.MockContractSdkCallHandler
	metrics        metric.Registry
}

func newHarness(logger log.Logger) *harness {
	contracts := map[primitives.ContractName]types.ContractInfo{
		TEST_CONTRACT_NAME: testContract,
	}
	for name, contract := range repository.Contracts {
		contracts[name] = contract
	}

	registry := metric.NewRegistry()
	sdkCallHandler := &handlers.MockContractSdkCallHandler{}
	service := native.NewNativeProcessorWithContracts(contracts, config.ForNativeProcessorTests(3, "0.01"), logger, registry)
	service.RegisterContractSdkCallHandler(sdkCallHandler)

	return &harness{
		service:        service,
		sdkCallHandler: sdkCallHandler,
		metrics:        registry,
	}
}

func (h *harness) expectSdkCall(operation string, method primitives.MethodName, output protocol.ArgumentArray) {
	matcher := func(i interface{}) bool {
		input, ok := i.(*handlers.HandleSdkCallInput)
		return ok && input.OperationName == operation && input.MethodName == method
	}
	h.sdkCallHandler.When("HandleSdkCall", mock.Any, mock.AnyIf(operation+"."+string(method), matcher)).
		Return(&handlers.HandleSdkCallOutput{OutputArguments: output}, nil).Times(1)
}

func (h *harness) expectStateWrite() {
	h.expectSdkCall(sdk.SDK_OPERATION_NAME_STATE, sdk.METHOD_STATE_WRITE, protocol.ArgumentArray{})
}

func (h *harness) expectNoSdkCalls() {
	h.sdkCallHandler.Never("HandleSdkCall", mock.Any, mock.Any)
}

func (h *harness) verifySdkCalls() (bool, error) {
	return h.sdkCallHandler.Verify()
}

func (h *harness) callResultCount(name string) int64 {
	return h.metrics.Get("Processor.Native.Calls." + name + ".Count").(*metric.Rate).Total()
}

type callInput struct {
	input *services.ProcessCallInput
}

func processCallInput() *callInput {
	return &callInput{
		input: &services.ProcessCallInput{
			ContextId:              0,
			ContractName:           TEST_CONTRACT_NAME,
			MethodName:             "add",
			InputArgumentArray:     builders.ArgumentsArray(uint64(12), uint64(27)),
			AccessScope:            protocol.ACCESS_SCOPE_READ_WRITE,
			CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
			AttachedDeposit:        primitives.ZeroAmount,
		},
	}
}

func (c *callInput) Build() *services.ProcessCallInput {
	return c.input
}

func (c *callInput) WithContract(contractName primitives.ContractName) *callInput {
	c.input.ContractName = contractName
	return c
}

func (c *callInput) WithMethod(methodName primitives.MethodName, args ...interface{}) *callInput {
	c.input.MethodName = methodName
	c.input.InputArgumentArray = builders.ArgumentsArray(args...)
	return c
}

func (c *callInput) WithContextId(contextId primitives.ExecutionContextId) *callInput {
	c.input.ContextId = contextId
	return c
}

func (c *callInput) WithReadOnlyAccess() *callInput {
	c.input.AccessScope = protocol.ACCESS_SCOPE_READ_ONLY
	return c
}

func (c *callInput) WithSystemPermissions() *callInput {
	c.input.CallingPermissionScope = protocol.PERMISSION_SCOPE_SYSTEM
	return c
}

func (c *callInput) WithDeposit(amount string) *callInput {
	c.input.AttachedDeposit = primitives.MustParseAmount(amount)
	return c
}
