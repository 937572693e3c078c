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

func TestCallReturnsMethodOutput(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("add", uint64(12), uint64(27)).Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, primitives.EXECUTION_RESULT_SUCCESS, output.CallResult)
		require.Equal(t, builders.ArgumentsArray(uint64(39)), output.OutputArgumentArray)
		require.EqualValues(t, 1, h.callResultCount("success"))
	})
}

func TestCallWithSeveralArgumentTypes(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("echo", "hello", []byte{0x01, 0x02}, uint32(7)).Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, builders.ArgumentsArray("hello", []byte{0x01, 0x02}, uint32(7)), output.OutputArgumentArray)
	})
}

func TestCallPassesExecutionContextToContract(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("context").WithContextId(17).Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, builders.ArgumentsArray(uint64(17)), output.OutputArgumentArray)
	})
}

func TestCallUnknownContractFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithContract("UnknownContract").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err, "call should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, output.CallResult)
		require.EqualValues(t, 1, h.callResultCount("error_contract_not_deployed"))
	})
}

func TestCallUnknownMethodFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("unknown").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.Error(t, err, "call should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
		require.Equal(t, builders.ArgumentsArray(err.Error()), output.OutputArgumentArray)
	})
}

func TestCallWithBadArgumentsFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		output, err := h.service.ProcessCall(context.Background(), processCallInput().WithMethod("add", uint64(1)).Build())
		require.Error(t, err, "call with missing args should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)

		output, err = h.service.ProcessCall(context.Background(), processCallInput().WithMethod("add", "1", "2").Build())
		require.Error(t, err, "call with wrong arg types should fail")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, output.CallResult)
	})
}
