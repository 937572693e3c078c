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

func (s *service) handleSdkEventsCall(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args protocol.ArgumentArray) (protocol.ArgumentArray, error) {
	switch methodName {

	case sdk.METHOD_EVENTS_EMIT_EVENT:
		err := s.handleSdkEventsEmitEvent(executionContext, args)
		if err != nil {
			return nil, err
		}
		return protocol.ArgumentArray{}, nil

	default:
		return nil, errors.Errorf("unknown SDK events call method: %s", methodName)
	}
}

// inputArg0: eventName (string)
// inputArg1..: event arguments
func (s *service) handleSdkEventsEmitEvent(executionContext *executionContext, args protocol.ArgumentArray) error {
	if executionContext.accessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return errors.Errorf("event emitted without write access: %s", executionContext.accessScope)
	}
	if len(args) == 0 || !args[0].IsTypeStringValue() || args[0].StringValue == "" {
		return errors.Errorf("invalid SDK events emitEvent args: %v", args)
	}

	eventArgs := append(protocol.ArgumentArray{}, args[1:]...)
	executionContext.eventListAdd(args[0].StringValue, eventArgs)
	return nil
}
