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

type addressSdk struct {
	handler         handlers.ContractSdkCallHandler
	permissionScope protocol.ExecutionPermissionScope
	contractName    primitives.ContractName
}

func (s *addressSdk) GetSignerAddress(ctx types.Context) (primitives.AccountId, error) {
	output, err := s.handler.HandleSdkCall(context.TODO(), &handlers.HandleSdkCallInput{
		ContextId:       primitives.ExecutionContextId(ctx),
		OperationName:   sdk.SDK_OPERATION_NAME_ADDRESS,
		MethodName:      sdk.METHOD_ADDRESS_GET_SIGNER_ADDRESS,
		InputArguments:  protocol.ArgumentArray{},
		PermissionScope: s.permissionScope,
	})
	if err != nil {
		return "", err
	}
	if len(output.OutputArguments) != 1 || !output.OutputArguments[0].IsTypeStringValue() {
		return "", errors.Errorf("getSignerAddress %s returned corrupt output value", sdk.SDK_OPERATION_NAME_ADDRESS)
	}
	account := primitives.AccountId(output.OutputArguments[0].StringValue)
	if account.IsEmpty() {
		return "", errors.Errorf("getSignerAddress %s returned an empty account", sdk.SDK_OPERATION_NAME_ADDRESS)
	}
	return account, nil
}

func (s *addressSdk) GetOwnContractName(ctx types.Context) (primitives.ContractName, error) {
	return s.contractName, nil
}
