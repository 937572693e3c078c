// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/pkg/errors"
)

// BALANCES_CONTRACT_NAME is the system state holding the deposits credited to each contract, keyed by contract name.
const BALANCES_CONTRACT_NAME = primitives.ContractName("_Balances")

func (s *service) creditContractBalance(ctx context.Context, executionContext *executionContext, contractName primitives.ContractName, amount primitives.Amount) error {
	key := string(contractName)
	value, err := s.readState(ctx, executionContext.transientState, BALANCES_CONTRACT_NAME, key)
	if err != nil {
		return err
	}
	balance, err := decodeBalance(value)
	if err != nil {
		return errors.Wrapf(err, "balance of %s is corrupt", contractName)
	}
	credited, err := balance.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "failed to credit %s to %s", amount, contractName)
	}
	executionContext.transientState.setValue(BALANCES_CONTRACT_NAME, key, []byte(credited.String()), true)
	return nil
}

func (s *service) GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error) {
	s.executionLock.RLock()
	defer s.executionLock.RUnlock()

	value, err := s.readCommittedState(ctx, BALANCES_CONTRACT_NAME, string(contractName))
	if err != nil {
		return primitives.ZeroAmount, err
	}
	balance, err := decodeBalance(value)
	if err != nil {
		return primitives.ZeroAmount, errors.Wrapf(err, "balance of %s is corrupt", contractName)
	}
	return balance, nil
}

func decodeBalance(value []byte) (primitives.Amount, error) {
	if len(value) == 0 {
		return primitives.ZeroAmount, nil
	}
	return primitives.ParseAmount(string(value))
}

// readState prefers the uncommitted value of the running invocation
func (s *service) readState(ctx context.Context, state *transientState, contractName primitives.ContractName, key string) ([]byte, error) {
	if state != nil {
		if value, found := state.getValue(contractName, key); found {
			return value, nil
		}
	}
	return s.readCommittedState(ctx, contractName, key)
}

func (s *service) readCommittedState(ctx context.Context, contractName primitives.ContractName, key string) ([]byte, error) {
	output, err := s.stateStorage.ReadKeys(ctx, &services.ReadKeysInput{
		ContractName: contractName,
		Keys:         []string{key},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %s of %s", key, contractName)
	}
	if len(output.StateRecords) == 0 {
		return []byte{}, nil
	}
	return output.StateRecords[0].Value, nil
}
