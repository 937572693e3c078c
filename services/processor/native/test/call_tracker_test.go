// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/orbs-network/call-tracker-go/test/with"
	"github.com/stretchr/testify/require"
)

func TestCallTrackerGetCallCountThroughProcessor(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectSdkCall("Sdk.State", "read", builders.ArgumentsArray([]byte{0x02, 0x00, 0x00, 0x00}))
		call := processCallInput().WithContract("CallTracker").WithMethod("get_call_count", "bob.testnet").WithReadOnlyAccess().Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err)
		require.Equal(t, primitives.EXECUTION_RESULT_SUCCESS, output.CallResult)
		require.Equal(t, builders.ArgumentsArray(uint32(2)), output.OutputArgumentArray)

		ok, err := h.verifySdkCalls()
		require.True(t, ok, "%v", err)
	})
}

func TestCallTrackerRecordCallIsNotAllowedReadOnly(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectNoSdkCalls()
		call := processCallInput().WithContract("CallTracker").WithMethod("record_call").WithReadOnlyAccess().Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err)
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestCallTrackerFirstRecordCallThroughProcessor(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectSdkCall("Sdk.Address", "getSignerAddress", builders.ArgumentsArray("alice.testnet"))
		h.expectSdkCall("Sdk.State", "read", builders.ArgumentsArray([]byte{}))
		h.expectSdkCall("Sdk.State", "write", builders.ArgumentsArray())
		h.expectSdkCall("Sdk.Events", "emitEvent", builders.ArgumentsArray())
		call := processCallInput().WithContract("CallTracker").WithMethod("record_call").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err)
		require.Equal(t, builders.ArgumentsArray("Call recorded. You have called this function 1 times."), output.OutputArgumentArray)

		ok, err := h.verifySdkCalls()
		require.True(t, ok, "%v", err)
	})
}
