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

func (s *service) handleSdkAddressCall(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args protocol.ArgumentArray) (protocol.ArgumentArray, error) {
	switch methodName {

	case sdk.METHOD_ADDRESS_GET_SIGNER_ADDRESS:
		if len(args) != 0 {
			return nil, errors.Errorf("invalid SDK address getSignerAddress args: %v", args)
		}
		if executionContext.signer.IsEmpty() {
			return nil, errors.New("execution context has no signer")
		}
		return protocol.ArgumentArray{
			{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: executionContext.signer.String()},
		}, nil

	default:
		return nil, errors.Errorf("unknown SDK address call method: %s", methodName)
	}
}
