// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package eventexport

import (
	"context"

	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/go-mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, receipt *protocol.TransactionReceipt) {
	m.Called(ctx, receipt)
}
