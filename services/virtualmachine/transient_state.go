// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"sort"

	"github.com/orbs-network/call-tracker-go/primitives"
)

type transientState struct {
	contracts         map[primitives.ContractName]*transientContractState
	contractSortOrder []primitives.ContractName
}

type transientContractState struct {
	values map[string]*transientValue
}

type transientValue struct {
	value   []byte
	isDirty bool
}

func newTransientState() *transientState {
	return &transientState{
		contracts: make(map[primitives.ContractName]*transientContractState),
	}
}

func (t *transientState) getValue(contractName primitives.ContractName, key string) ([]byte, bool) {
	contract, found := t.contracts[contractName]
	if !found {
		return nil, false
	}
	record, found := contract.values[key]
	if !found {
		return nil, false
	}
	return record.value, true
}

// setValue overwrites the dirty flag together with the value
func (t *transientState) setValue(contractName primitives.ContractName, key string, value []byte, isDirty bool) {
	contract, found := t.contracts[contractName]
	if !found {
		contract = &transientContractState{values: make(map[string]*transientValue)}
		t.contracts[contractName] = contract
		t.contractSortOrder = append(t.contractSortOrder, contractName)
	}
	contract.values[key] = &transientValue{value: value, isDirty: isDirty}
}

// forDirty visits the dirty keys of a contract in key order
func (t *transientState) forDirty(contractName primitives.ContractName, f func(key string, value []byte)) {
	contract, found := t.contracts[contractName]
	if !found {
		return
	}
	keys := make([]string, 0, len(contract.values))
	for key, record := range contract.values {
		if record.isDirty {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		f(key, contract.values[key].value)
	}
}

func (t *transientState) isDirty() bool {
	for _, contractName := range t.contractSortOrder {
		for _, record := range t.contracts[contractName].values {
			if record.isDirty {
				return true
			}
		}
	}
	return false
}
