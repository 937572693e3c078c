// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/go-mock"
)

type MockStateSdk struct {
	mock.Mock
}

func (m *MockStateSdk) ReadBytesByKey(ctx Context, key string) ([]byte, error) {
	ret := m.Called(ctx, key)
	if b := ret.Get(0); b != nil {
		return b.([]byte), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockStateSdk) ReadStringByKey(ctx Context, key string) (string, error) {
	ret := m.Called(ctx, key)
	return ret.Get(0).(string), ret.Error(1)
}

func (m *MockStateSdk) ReadUint64ByKey(ctx Context, key string) (uint64, error) {
	ret := m.Called(ctx, key)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (m *MockStateSdk) ReadUint32ByKey(ctx Context, key string) (uint32, error) {
	ret := m.Called(ctx, key)
	return ret.Get(0).(uint32), ret.Error(1)
}

func (m *MockStateSdk) WriteBytesByKey(ctx Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStateSdk) WriteStringByKey(ctx Context, key string, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStateSdk) WriteUint64ByKey(ctx Context, key string, value uint64) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStateSdk) WriteUint32ByKey(ctx Context, key string, value uint32) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStateSdk) ClearByKey(ctx Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockAddressSdk struct {
	mock.Mock
}

func (m *MockAddressSdk) GetSignerAddress(ctx Context) (primitives.AccountId, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(primitives.AccountId), ret.Error(1)
}

func (m *MockAddressSdk) GetOwnContractName(ctx Context) (primitives.ContractName, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(primitives.ContractName), ret.Error(1)
}

type MockPaymentSdk struct {
	mock.Mock
}

func (m *MockPaymentSdk) GetAttachedDeposit(ctx Context) (primitives.Amount, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(primitives.Amount), ret.Error(1)
}

type MockEventsSdk struct {
	mock.Mock
}

func (m *MockEventsSdk) EmitEvent(ctx Context, eventName string, args ...interface{}) error {
	return m.Called(ctx, eventName, args).Error(0)
}
