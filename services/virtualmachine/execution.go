// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) processTransaction(ctx context.Context, logger log.Logger, signer primitives.AccountId, tx *protocol.Transaction) (*services.ProcessTransactionOutput, error) {
	executionContextId, executionContext := s.allocateExecutionContext(tx.ContractName, protocol.ACCESS_SCOPE_READ_WRITE, signer, tx.AttachedDeposit)
	defer s.destroyExecutionContext(executionContextId)

	logger.Info("processing transaction", logfields.ExecutionContext(executionContextId), logfields.Amount("attached-deposit", tx.AttachedDeposit))
	callResult, outputArgs, callErr := s.runMethod(ctx, executionContextId, tx.ContractName, tx.MethodName, tx.InputArguments, protocol.ACCESS_SCOPE_READ_WRITE, tx.AttachedDeposit)
	if callErr != nil {
		logger.Info("transaction execution failed", logfields.ExecutionResult(callResult), log.Error(callErr))
	}

	succeeded := callResult == primitives.EXECUTION_RESULT_SUCCESS
	if succeeded && !tx.AttachedDeposit.IsZero() {
		if err := s.creditContractBalance(ctx, executionContext, tx.ContractName, tx.AttachedDeposit); err != nil {
			logger.Info("failed to credit attached deposit", log.Error(err))
			callResult, outputArgs, callErr = primitives.EXECUTION_RESULT_ERROR_UNEXPECTED, errorOutputArguments(err), err
			succeeded = false
		}
	}

	output := &services.ProcessTransactionOutput{
		Signer:          signer,
		ExecutionResult: callResult,
		OutputArguments: outputArgs,
		CallError:       callErr,
	}

	// a host without rollback keeps the writes of failed invocations
	if succeeded || !s.config.VirtualMachineAtomicTransactions() {
		committed, err := s.commitTransientState(ctx, executionContext.transientState)
		if err != nil {
			logger.Error("failed to commit state diff", log.Error(err))
			output.ExecutionResult = primitives.EXECUTION_RESULT_ERROR_UNEXPECTED
			output.OutputArguments = errorOutputArguments(err)
			output.CallError = err
			return output, err
		}
		output.CommittedDiffs = committed
	} else if executionContext.transientState.isDirty() {
		logger.Info("discarding state changes of failed transaction")
		s.metrics.discardedDiffs.Inc()
	}

	if succeeded {
		output.OutputEvents = executionContext.eventList
	}

	return output, nil
}

func (s *service) processQuery(ctx context.Context, logger log.Logger, signer primitives.AccountId, query *protocol.Query) (*services.ProcessQueryOutput, error) {
	executionContextId, _ := s.allocateExecutionContext(query.ContractName, protocol.ACCESS_SCOPE_READ_ONLY, signer, primitives.ZeroAmount)
	defer s.destroyExecutionContext(executionContextId)

	callResult, outputArgs, callErr := s.runMethod(ctx, executionContextId, query.ContractName, query.MethodName, query.InputArguments, protocol.ACCESS_SCOPE_READ_ONLY, primitives.ZeroAmount)
	if callErr != nil {
		logger.Info("query execution failed", logfields.ExecutionResult(callResult), log.Error(callErr))
	}

	return &services.ProcessQueryOutput{
		ExecutionResult: callResult,
		OutputArguments: outputArgs,
		CallError:       callErr,
	}, nil
}

func (s *service) runMethod(
	ctx context.Context,
	executionContextId primitives.ExecutionContextId,
	contractName primitives.ContractName,
	methodName primitives.MethodName,
	inputArgs protocol.ArgumentArray,
	accessScope protocol.ExecutionAccessScope,
	attachedDeposit primitives.Amount,
) (primitives.ExecutionResult, protocol.ArgumentArray, error) {

	if inputArgs == nil {
		inputArgs = protocol.ArgumentArray{}
	}
	output, err := s.processor.ProcessCall(ctx, &services.ProcessCallInput{
		ContextId:              executionContextId,
		ContractName:           contractName,
		MethodName:             methodName,
		InputArgumentArray:     inputArgs,
		AccessScope:            accessScope,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
		AttachedDeposit:        attachedDeposit,
	})
	if output == nil {
		if err == nil {
			err = errors.Errorf("processor returned no output for %s.%s", contractName, methodName)
		}
		return primitives.EXECUTION_RESULT_ERROR_UNEXPECTED, errorOutputArguments(err), err
	}

	outputArgs := output.OutputArgumentArray
	if outputArgs == nil {
		outputArgs = protocol.ArgumentArray{}
	}
	return output.CallResult, outputArgs, err
}

func (s *service) commitTransientState(ctx context.Context, state *transientState) ([]*protocol.ContractStateDiff, error) {
	diffs := encodeTransientStateToStateDiffs(state)
	if len(diffs) == 0 {
		return nil, nil
	}

	_, err := s.stateStorage.CommitStateDiff(ctx, &services.CommitStateDiffInput{ContractStateDiffs: diffs})
	if err != nil {
		return nil, errors.Wrap(err, "state storage rejected the state diff")
	}
	s.metrics.committedDiffs.Inc()
	return diffs, nil
}

func (s *service) allocateExecutionContext(contractName primitives.ContractName, accessScope protocol.ExecutionAccessScope, signer primitives.AccountId, attachedDeposit primitives.Amount) (primitives.ExecutionContextId, *executionContext) {
	s.metrics.activeContexts.Inc()
	return s.contexts.allocateExecutionContext(contractName, accessScope, signer, attachedDeposit)
}

func (s *service) destroyExecutionContext(executionContextId primitives.ExecutionContextId) {
	s.contexts.destroyExecutionContext(executionContextId)
	s.metrics.activeContexts.Dec()
}

func encodeTransientStateToStateDiffs(state *transientState) []*protocol.ContractStateDiff {
	res := []*protocol.ContractStateDiff{}
	for _, contractName := range state.contractSortOrder {
		stateDiffs := []*protocol.StateRecord{}
		state.forDirty(contractName, func(key string, value []byte) {
			stateDiffs = append(stateDiffs, &protocol.StateRecord{
				Key:   key,
				Value: value,
			})
		})
		if len(stateDiffs) > 0 {
			res = append(res, &protocol.ContractStateDiff{
				ContractName: contractName,
				StateDiffs:   stateDiffs,
			})
		}
	}
	return res
}

func errorOutputArguments(err error) protocol.ArgumentArray {
	return protocol.ArgumentArray{
		{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: err.Error()},
	}
}
