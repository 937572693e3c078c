// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"sync"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
)

type executionContext struct {
	contractName    primitives.ContractName
	accessScope     protocol.ExecutionAccessScope
	signer          primitives.AccountId
	attachedDeposit primitives.Amount
	transientState  *transientState
	eventList       []*protocol.Event
}

func (c *executionContext) eventListAdd(eventName string, args protocol.ArgumentArray) {
	c.eventList = append(c.eventList, &protocol.Event{
		ContractName: c.contractName,
		EventName:    eventName,
		Arguments:    args,
	})
}

type executionContextProvider struct {
	mutex          sync.RWMutex
	lastContextId  primitives.ExecutionContextId
	activeContexts map[primitives.ExecutionContextId]*executionContext
}

func newExecutionContextProvider() *executionContextProvider {
	return &executionContextProvider{
		activeContexts: make(map[primitives.ExecutionContextId]*executionContext),
	}
}

func (cp *executionContextProvider) allocateExecutionContext(contractName primitives.ContractName, accessScope protocol.ExecutionAccessScope, signer primitives.AccountId, attachedDeposit primitives.Amount) (primitives.ExecutionContextId, *executionContext) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	newContext := &executionContext{
		contractName:    contractName,
		accessScope:     accessScope,
		signer:          signer,
		attachedDeposit: attachedDeposit,
		transientState:  newTransientState(),
	}

	// context ids are never reused
	cp.lastContextId += 1
	contextId := cp.lastContextId
	cp.activeContexts[contextId] = newContext
	return contextId, newContext
}

func (cp *executionContextProvider) destroyExecutionContext(contextId primitives.ExecutionContextId) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	delete(cp.activeContexts, contextId)
}

func (cp *executionContextProvider) loadExecutionContext(contextId primitives.ExecutionContextId) *executionContext {
	cp.mutex.RLock()
	defer cp.mutex.RUnlock()

	return cp.activeContexts[contextId]
}
