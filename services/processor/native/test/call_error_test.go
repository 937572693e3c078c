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

func TestCallThatReturnsErrorIsSmartContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("fail").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.EqualError(t, err, "contract refused")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.CallResult)
		require.Equal(t, builders.ArgumentsArray("contract refused"), output.OutputArgumentArray)
		require.EqualValues(t, 1, h.callResultCount("error_smart_contract"))
	})
}

func TestCallThatPanicsIsSmartContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod("panic").Build()

		output, err := h.service.ProcessCall(context.Background(), call)
		require.EqualError(t, err, "contract exploded")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.CallResult)
		require.Equal(t, builders.ArgumentsArray("contract exploded"), output.OutputArgumentArray)
	})
}
