// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/stretchr/testify/require"
)

func TestContextLoad(t *testing.T) {
	cp := newExecutionContextProvider()

	contextId1, _ := cp.allocateExecutionContext("CallTracker", protocol.ACCESS_SCOPE_READ_WRITE, "alice.testnet", primitives.ZeroAmount)
	defer cp.destroyExecutionContext(contextId1)

	contextId2, _ := cp.allocateExecutionContext("CallTracker", protocol.ACCESS_SCOPE_READ_ONLY, "bob.testnet", primitives.ZeroAmount)
	defer cp.destroyExecutionContext(contextId2)

	require.NotEqual(t, contextId1, contextId2, "contextId1 should be different from contextId2")

	c1 := cp.loadExecutionContext(contextId1)
	require.EqualValues(t, "alice.testnet", c1.signer, "loaded context with contextId1 should belong to alice")

	c2 := cp.loadExecutionContext(contextId2)
	require.EqualValues(t, "bob.testnet", c2.signer, "loaded context with contextId2 should belong to bob")
	require.Equal(t, protocol.ACCESS_SCOPE_READ_ONLY, c2.accessScope)
}

func TestContextDestroy(t *testing.T) {
	cp := newExecutionContextProvider()

	contextId, _ := cp.allocateExecutionContext("CallTracker", protocol.ACCESS_SCOPE_READ_WRITE, "alice.testnet", primitives.ZeroAmount)
	require.NotNil(t, cp.loadExecutionContext(contextId))

	cp.destroyExecutionContext(contextId)
	require.Nil(t, cp.loadExecutionContext(contextId), "destroyed context should not load")
}

func TestContextEventList(t *testing.T) {
	cp := newExecutionContextProvider()
	contextId, c := cp.allocateExecutionContext("CallTracker", protocol.ACCESS_SCOPE_READ_WRITE, "alice.testnet", primitives.ZeroAmount)
	defer cp.destroyExecutionContext(contextId)

	c.eventListAdd("CallRecorded", protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: 1}})

	require.Len(t, c.eventList, 1)
	require.EqualValues(t, "CallTracker", c.eventList[0].ContractName)
	require.Equal(t, "CallRecorded", c.eventList[0].EventName)
}
