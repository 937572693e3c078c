// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package services declares the contracts between the node services. Each service lives in its own sub package.
package services

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/handlers"
)

type ProcessCallInput struct {
	ContextId              primitives.ExecutionContextId
	ContractName           primitives.ContractName
	MethodName             primitives.MethodName
	InputArgumentArray     protocol.ArgumentArray
	AccessScope            protocol.ExecutionAccessScope
	CallingPermissionScope protocol.ExecutionPermissionScope
	AttachedDeposit        primitives.Amount
}

type ProcessCallOutput struct {
	OutputArgumentArray protocol.ArgumentArray
	CallResult          primitives.ExecutionResult
}

type Processor interface {
	ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error)
	GetContractInfo(ctx context.Context, input *GetContractInfoInput) (*GetContractInfoOutput, error)
	RegisterContractSdkCallHandler(handler handlers.ContractSdkCallHandler)
}

type GetContractInfoInput struct {
	ContractName primitives.ContractName
}

type GetContractInfoOutput struct {
	PermissionScope protocol.ExecutionPermissionScope
	PayableMethods  []primitives.MethodName
}

type ProcessTransactionInput struct {
	Transaction *protocol.Transaction
}

type ProcessTransactionOutput struct {
	Signer          primitives.AccountId
	ExecutionResult primitives.ExecutionResult
	OutputArguments protocol.ArgumentArray
	OutputEvents    []*protocol.Event
	CommittedDiffs  []*protocol.ContractStateDiff
	// cause of a non successful execution result, kept for callers that map it (HTTP 402)
	CallError error
}

type ProcessQueryInput struct {
	Query *protocol.Query
}

type ProcessQueryOutput struct {
	ExecutionResult primitives.ExecutionResult
	OutputArguments protocol.ArgumentArray
	CallError       error
}

type VirtualMachine interface {
	handlers.ContractSdkCallHandler
	ProcessTransaction(ctx context.Context, input *ProcessTransactionInput) (*ProcessTransactionOutput, error)
	ProcessQuery(ctx context.Context, input *ProcessQueryInput) (*ProcessQueryOutput, error)
	GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error)
}

type ReadKeysInput struct {
	ContractName primitives.ContractName
	Keys         []string
}

type ReadKeysOutput struct {
	StateRecords []*protocol.StateRecord
}

type CommitStateDiffInput struct {
	ContractStateDiffs []*protocol.ContractStateDiff
}

type CommitStateDiffOutput struct {
	CommitCount uint64
}

type StateStorage interface {
	ReadKeys(ctx context.Context, input *ReadKeysInput) (*ReadKeysOutput, error)
	CommitStateDiff(ctx context.Context, input *CommitStateDiffInput) (*CommitStateDiffOutput, error)
}

type SendTransactionInput struct {
	Transaction *protocol.Transaction
}

type SendTransactionOutput struct {
	TransactionReceipt *protocol.TransactionReceipt
	CallError          error
}

type RunQueryInput struct {
	Query *protocol.Query
}

type RunQueryOutput struct {
	QueryResult *protocol.QueryResult
	CallError   error
}

type PublicApi interface {
	SendTransaction(ctx context.Context, input *SendTransactionInput) (*SendTransactionOutput, error)
	RunQuery(ctx context.Context, input *RunQueryInput) (*RunQueryOutput, error)
	GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error)
}
