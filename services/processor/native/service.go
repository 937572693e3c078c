// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/native/repository"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("processor-native")

type service struct {
	logger    log.Logger
	config    config.NativeProcessorConfig
	contracts map[primitives.ContractName]types.ContractInfo

	sync.RWMutex
	sdkHandler handlers.ContractSdkCallHandler
	instances  map[primitives.ContractName]types.Contract

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
	callResults     map[primitives.ExecutionResult]*metric.Rate
}

func getMetrics(m metric.Factory) *metrics {
	callResults := make(map[primitives.ExecutionResult]*metric.Rate)
	for _, result := range []primitives.ExecutionResult{
		primitives.EXECUTION_RESULT_SUCCESS,
		primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT,
		primitives.EXECUTION_RESULT_ERROR_INPUT,
		primitives.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED,
		primitives.EXECUTION_RESULT_ERROR_UNEXPECTED,
	} {
		name := strings.TrimPrefix(result.String(), "EXECUTION_RESULT_")
		callResults[result] = m.NewRate(fmt.Sprintf("Processor.Native.Calls.%s.Count", strings.ToLower(name)))
	}
	return &metrics{
		processCallTime: m.NewLatency("Processor.Native.ProcessCallTime.Millis", 10*time.Second),
		callResults:     callResults,
	}
}

func NewNativeProcessor(config config.NativeProcessorConfig, parentLogger log.Logger, metricFactory metric.Factory) services.Processor {
	return NewNativeProcessorWithContracts(repository.Contracts, config, parentLogger, metricFactory)
}

func NewNativeProcessorWithContracts(contracts map[primitives.ContractName]types.ContractInfo, config config.NativeProcessorConfig, parentLogger log.Logger, metricFactory metric.Factory) services.Processor {
	return &service{
		logger:    parentLogger.WithTags(LogTag),
		config:    config,
		contracts: contracts,
		instances: make(map[primitives.ContractName]types.Contract),
		metrics:   getMetrics(metricFactory),
	}
}

// runs once on system initialization (called by the virtual machine constructor)
func (s *service) RegisterContractSdkCallHandler(handler handlers.ContractSdkCallHandler) {
	s.Lock()
	defer s.Unlock()

	s.sdkHandler = handler
	for name, contractInfo := range s.contracts {
		s.instances[name] = contractInfo.InitSingleton(types.NewBaseContract(
			&stateSdk{handler: handler, permissionScope: contractInfo.Permission},
			&addressSdk{handler: handler, permissionScope: contractInfo.Permission, contractName: name},
			&paymentSdk{handler: handler, permissionScope: contractInfo.Permission},
			&eventsSdk{handler: handler, permissionScope: contractInfo.Permission},
			s.config,
			s.logger.WithTags(logfields.Contract(name)),
		))
	}
	s.logger.Info("contract sdk handler registered", log.Int("contracts", len(s.instances)))
}

func (s *service) ProcessCall(ctx context.Context, input *services.ProcessCallInput) (*services.ProcessCallOutput, error) {
	logger := s.logger.WithTags(logfields.ExecutionContext(input.ContextId), logfields.Contract(input.ContractName), logfields.Method(input.MethodName))

	output, err := s.processCall(logger, input)
	s.metrics.callResults[output.CallResult].Inc()
	return output, err
}

func (s *service) processCall(logger log.Logger, input *services.ProcessCallInput) (*services.ProcessCallOutput, error) {
	// retrieve code
	contractInfo, found := s.contracts[input.ContractName]
	if !found {
		err := errors.Errorf("contract '%s' is not deployed", input.ContractName)
		return failedCall(primitives.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, err)
	}

	// get the method and check permissions
	methodInfo, err := s.retrieveMethod(contractInfo, input)
	if err != nil {
		return failedCall(primitives.EXECUTION_RESULT_ERROR_INPUT, err)
	}

	contractInstance, err := s.retrieveContractInstance(input.ContractName)
	if err != nil {
		return failedCall(primitives.EXECUTION_RESULT_ERROR_UNEXPECTED, err)
	}

	start := time.Now()
	defer s.metrics.processCallTime.RecordSince(start)

	// execute
	logger.Info("processor executing contract", logfields.Amount("attached-deposit", input.AttachedDeposit))

	functionNameForErrors := fmt.Sprintf("%s.%s", input.ContractName, input.MethodName)
	outputArgs, contractErr, err := processMethodCall(methodInfo.Implementation, input.InputArgumentArray, functionNameForErrors,
		reflect.ValueOf(contractInstance), reflect.ValueOf(types.Context(input.ContextId)))
	if err != nil {
		logger.Info("contract execution failed", log.Error(err))
		return failedCall(primitives.EXECUTION_RESULT_ERROR_INPUT, err)
	}
	if outputArgs == nil {
		outputArgs = protocol.ArgumentArray{}
	}

	// result
	callResult := primitives.EXECUTION_RESULT_SUCCESS
	if contractErr != nil {
		logger.Info("contract returned error", log.Error(contractErr))
		callResult = primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT
	}
	return &services.ProcessCallOutput{
		OutputArgumentArray: outputArgs,
		CallResult:          callResult,
	}, contractErr
}

func (s *service) GetContractInfo(ctx context.Context, input *services.GetContractInfoInput) (*services.GetContractInfoOutput, error) {
	contractInfo, found := s.contracts[input.ContractName]
	if !found {
		return nil, errors.Errorf("contract '%s' is not deployed", input.ContractName)
	}

	return &services.GetContractInfoOutput{
		PermissionScope: contractInfo.Permission,
		PayableMethods:  contractInfo.PayableMethods(),
	}, nil
}

func (s *service) retrieveMethod(contractInfo types.ContractInfo, input *services.ProcessCallInput) (types.MethodInfo, error) {
	methodInfo, found := contractInfo.Methods[input.MethodName]
	if !found {
		return methodInfo, errors.Errorf("method '%s' not found on contract '%s'", input.MethodName, contractInfo.Name)
	}

	if !methodInfo.External && input.CallingPermissionScope != protocol.PERMISSION_SCOPE_SYSTEM {
		return methodInfo, errors.Errorf("only system contracts can run method '%s'", input.MethodName)
	}

	if methodInfo.WritesState() && input.AccessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return methodInfo, errors.Errorf("method '%s' writes state and cannot run with %s access", input.MethodName, input.AccessScope)
	}

	if !methodInfo.Payable && !input.AttachedDeposit.IsZero() {
		return methodInfo, errors.Errorf("method '%s' is not payable but %s was attached", input.MethodName, input.AttachedDeposit)
	}

	return methodInfo, nil
}

func (s *service) retrieveContractInstance(contractName primitives.ContractName) (types.Contract, error) {
	s.RLock()
	defer s.RUnlock()

	instance, found := s.instances[contractName]
	if !found {
		return nil, errors.Errorf("contract instance not found for contract '%s', was the sdk handler registered?", contractName)
	}
	return instance, nil
}

func failedCall(result primitives.ExecutionResult, err error) (*services.ProcessCallOutput, error) {
	return &services.ProcessCallOutput{
		OutputArgumentArray: createMethodOutputArgsWithString(err.Error()),
		CallResult:          result,
	}, err
}
