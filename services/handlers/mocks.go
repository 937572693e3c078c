// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package handlers

import (
	"context"

	"github.com/orbs-network/go-mock"
)

type MockContractSdkCallHandler struct {
	mock.Mock
}

func (m *MockContractSdkCallHandler) HandleSdkCall(ctx context.Context, input *HandleSdkCallInput) (*HandleSdkCallOutput, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*HandleSdkCallOutput), ret.Error(1)
	}
	return nil, ret.Error(1)
}
