// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package services

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/go-mock"
)

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*ProcessCallOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockProcessor) GetContractInfo(ctx context.Context, input *GetContractInfoInput) (*GetContractInfoOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*GetContractInfoOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockProcessor) RegisterContractSdkCallHandler(handler handlers.ContractSdkCallHandler) {
	m.Called(handler)
}

type MockStateStorage struct {
	mock.Mock
}

func (m *MockStateStorage) ReadKeys(ctx context.Context, input *ReadKeysInput) (*ReadKeysOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*ReadKeysOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockStateStorage) CommitStateDiff(ctx context.Context, input *CommitStateDiffInput) (*CommitStateDiffOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*CommitStateDiffOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

type MockVirtualMachine struct {
	mock.Mock
}

func (m *MockVirtualMachine) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*handlers.HandleSdkCallOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockVirtualMachine) ProcessTransaction(ctx context.Context, input *ProcessTransactionInput) (*ProcessTransactionOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*ProcessTransactionOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockVirtualMachine) ProcessQuery(ctx context.Context, input *ProcessQueryInput) (*ProcessQueryOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*ProcessQueryOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockVirtualMachine) GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error) {
	ret := m.Called(ctx, contractName)
	return ret.Get(0).(primitives.Amount), ret.Error(1)
}

type MockPublicApi struct {
	mock.Mock
}

func (m *MockPublicApi) SendTransaction(ctx context.Context, input *SendTransactionInput) (*SendTransactionOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*SendTransactionOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPublicApi) RunQuery(ctx context.Context, input *RunQueryInput) (*RunQueryOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*RunQueryOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPublicApi) GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error) {
	ret := m.Called(ctx, contractName)
	return ret.Get(0).(primitives.Amount), ret.Error(1)
}
