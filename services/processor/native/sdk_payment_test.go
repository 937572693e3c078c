// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/orbs-network/go-mock"
	"github.com/stretchr/testify/require"
)

func createPaymentSdk(handler handlers.ContractSdkCallHandler) *paymentSdk {
	return &paymentSdk{
		handler:         handler,
		permissionScope: protocol.PERMISSION_SCOPE_SERVICE,
	}
}

func TestGetAttachedDeposit(t *testing.T) {
	handler := &handlers.MockContractSdkCallHandler{}
	handler.When("HandleSdkCall", mock.Any, mock.AnyIf("getAttachedDeposit call", sdkCallWith(sdk.SDK_OPERATION_NAME_PAYMENT, "getAttachedDeposit"))).
		Return(&handlers.HandleSdkCallOutput{OutputArguments: builders.ArgumentsArray("0.01")}, nil).Times(1)

	amount, err := createPaymentSdk(handler).GetAttachedDeposit(EXAMPLE_CONTEXT)
	require.NoError(t, err)
	require.True(t, amount.Equal(primitives.MustParseAmount("0.01")), "got %s", amount)

	ok, err := handler.Verify()
	require.True(t, ok, "%v", err)
}

func TestGetAttachedDepositRejectsMalformedAmount(t *testing.T) {
	handler := &handlers.MockContractSdkCallHandler{}
	handler.When("HandleSdkCall", mock.Any, mock.Any).
		Return(&handlers.HandleSdkCallOutput{OutputArguments: builders.ArgumentsArray("lots")}, nil)

	_, err := createPaymentSdk(handler).GetAttachedDeposit(EXAMPLE_CONTEXT)
	require.Error(t, err)
}

func TestGetAttachedDepositRejectsCorruptOutput(t *testing.T) {
	handler := &handlers.MockContractSdkCallHandler{}
	handler.When("HandleSdkCall", mock.Any, mock.Any).
		Return(&handlers.HandleSdkCallOutput{}, nil)

	_, err := createPaymentSdk(handler).GetAttachedDeposit(EXAMPLE_CONTEXT)
	require.Error(t, err)
}
