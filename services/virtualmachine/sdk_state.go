// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/pkg/errors"
)

func (s *service) handleSdkStateCall(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args protocol.ArgumentArray) (protocol.ArgumentArray, error) {
	switch methodName {

	case sdk.METHOD_STATE_READ:
		value, err := s.handleSdkStateRead(ctx, executionContext, args)
		if err != nil {
			return nil, err
		}
		return protocol.ArgumentArray{
			{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value},
		}, nil

	case sdk.METHOD_STATE_WRITE:
		err := s.handleSdkStateWrite(executionContext, args)
		if err != nil {
			return nil, err
		}
		return protocol.ArgumentArray{}, nil

	default:
		return nil, errors.Errorf("unknown SDK state call method: %s", methodName)
	}
}

// inputArg0: key (string)
func (s *service) handleSdkStateRead(ctx context.Context, executionContext *executionContext, args protocol.ArgumentArray) ([]byte, error) {
	if len(args) != 1 || !args[0].IsTypeStringValue() {
		return nil, errors.Errorf("invalid SDK state read args: %v", args)
	}
	return s.readState(ctx, executionContext.transientState, executionContext.contractName, args[0].StringValue)
}

// inputArg0: key (string)
// inputArg1: value ([]byte)
func (s *service) handleSdkStateWrite(executionContext *executionContext, args protocol.ArgumentArray) error {
	if executionContext.accessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return errors.Errorf("write attempted without write access: %s", executionContext.accessScope)
	}
	if len(args) != 2 || !args[0].IsTypeStringValue() || !args[1].IsTypeBytesValue() {
		return errors.Errorf("invalid SDK state write args: %v", args)
	}
	value := args[1].BytesValue
	if value == nil {
		value = []byte{}
	}
	executionContext.transientState.setValue(executionContext.contractName, args[0].StringValue, value, true)
	return nil
}
