// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/pkg/errors"
)

type eventsSdk struct {
	handler         handlers.ContractSdkCallHandler
	permissionScope protocol.ExecutionPermissionScope
}

// EmitEvent sends the event name followed by the event arguments.
func (s *eventsSdk) EmitEvent(ctx types.Context, eventName string, args ...interface{}) error {
	if eventName == "" {
		return errors.New("event name must not be empty")
	}
	eventArgs, err := protocol.ArgumentsFromNatives(args...)
	if err != nil {
		return errors.Wrapf(err, "incorrect types given to event %s", eventName)
	}

	inputArgs := append(protocol.ArgumentArray{
		{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: eventName},
	}, eventArgs...)

	_, err = s.handler.HandleSdkCall(context.TODO(), &handlers.HandleSdkCallInput{
		ContextId:       primitives.ExecutionContextId(ctx),
		OperationName:   sdk.SDK_OPERATION_NAME_EVENTS,
		MethodName:      sdk.METHOD_EVENTS_EMIT_EVENT,
		InputArguments:  inputArgs,
		PermissionScope: s.permissionScope,
	})
	return err
}
