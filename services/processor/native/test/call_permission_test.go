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

func TestCallInternalMethodFromOutsideFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("internal").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err, "call should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestCallInternalMethodUnderSystemPermissionsSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("internal").WithSystemPermissions().Build()

		_, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
	})
}

func TestCallWriteMethodWithWriteAccessSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectStateWrite()
		call := processCallInput().WithMethod("write", "key", []byte{0x01}).Build()

		_, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")

		ok, err := h.verifySdkCalls()
		require.True(t, ok, "%v", err)
	})
}

func TestCallWriteMethodWithReadOnlyAccessFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectNoSdkCalls()
		call := processCallInput().WithMethod("write", "key", []byte{0x01}).WithReadOnlyAccess().Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err, "call should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)

		ok, err := h.verifySdkCalls()
		require.True(t, ok, "%v", err)
	})
}

func TestCallReadMethodWithReadOnlyAccessSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("add", uint64(1), uint64(2)).WithReadOnlyAccess().Build()

		_, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
	})
}

func TestCallNonPayableMethodWithDepositFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("add", uint64(1), uint64(2)).WithDeposit("0.01").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err, "call should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}

func TestCallPayableMethodWithDepositSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		h.expectSdkCall("Sdk.Payment", "getAttachedDeposit", builders.ArgumentsArray("0.01"))
		call := processCallInput().WithMethod("deposit").WithDeposit("0.01").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, builders.ArgumentsArray("0.01"), output.OutputArgumentArray)
	})
}
