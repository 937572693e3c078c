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

type paymentSdk struct {
	handler         handlers.ContractSdkCallHandler
	permissionScope protocol.ExecutionPermissionScope
}

func (s *paymentSdk) GetAttachedDeposit(ctx types.Context) (primitives.Amount, error) {
	output, err := s.handler.HandleSdkCall(context.TODO(), &handlers.HandleSdkCallInput{
		ContextId:       primitives.ExecutionContextId(ctx),
		OperationName:   sdk.SDK_OPERATION_NAME_PAYMENT,
		MethodName:      sdk.METHOD_PAYMENT_GET_ATTACHED_DEPOSIT,
		InputArguments:  protocol.ArgumentArray{},
		PermissionScope: s.permissionScope,
	})
	if err != nil {
		return primitives.ZeroAmount, err
	}
	if len(output.OutputArguments) != 1 || !output.OutputArguments[0].IsTypeStringValue() {
		return primitives.ZeroAmount, errors.Errorf("getAttachedDeposit %s returned corrupt output value", sdk.SDK_OPERATION_NAME_PAYMENT)
	}
	amount, err := primitives.ParseAmount(output.OutputArguments[0].StringValue)
	if err != nil {
		return primitives.ZeroAmount, errors.Wrapf(err, "getAttachedDeposit %s returned a malformed amount", sdk.SDK_OPERATION_NAME_PAYMENT)
	}
	return amount, nil
}
