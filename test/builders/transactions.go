// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
)

const DEFAULT_TEST_SIGNER = primitives.AccountId("alice.testnet")
const DEFAULT_TEST_CONTRACT = primitives.ContractName("CallTracker")

/// Test builders for: protocol.Transaction

type transaction struct {
	tx *protocol.Transaction
}

// Transaction defaults to a free record_call by the default test signer.
func Transaction() *transaction {
	return &transaction{
		tx: &protocol.Transaction{
			Signer:          DEFAULT_TEST_SIGNER,
			ContractName:    DEFAULT_TEST_CONTRACT,
			MethodName:      "record_call",
			InputArguments:  protocol.ArgumentArray{},
			AttachedDeposit: primitives.ZeroAmount,
		},
	}
}

func (t *transaction) Build() *protocol.Transaction {
	return t.tx
}

func (t *transaction) WithSigner(signer primitives.AccountId) *transaction {
	t.tx.Signer = signer
	return t
}

func (t *transaction) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *transaction {
	t.tx.ContractName = contractName
	t.tx.MethodName = methodName
	return t
}

func (t *transaction) WithArgs(args ...interface{}) *transaction {
	t.tx.InputArguments = ArgumentsArray(args...)
	return t
}

func (t *transaction) WithDeposit(amount string) *transaction {
	t.tx.AttachedDeposit = primitives.MustParseAmount(amount)
	return t
}

/// Test builders for: protocol.Query

type query struct {
	q *protocol.Query
}

// Query defaults to get_call_count of the default test signer.
func Query() *query {
	return &query{
		q: &protocol.Query{
			Signer:         DEFAULT_TEST_SIGNER,
			ContractName:   DEFAULT_TEST_CONTRACT,
			MethodName:     "get_call_count",
			InputArguments: ArgumentsArray(string(DEFAULT_TEST_SIGNER)),
		},
	}
}

func (q *query) Build() *protocol.Query {
	return q.q
}

func (q *query) WithSigner(signer primitives.AccountId) *query {
	q.q.Signer = signer
	return q
}

func (q *query) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *query {
	q.q.ContractName = contractName
	q.q.MethodName = methodName
	return q
}

func (q *query) WithArgs(args ...interface{}) *query {
	q.q.InputArguments = ArgumentsArray(args...)
	return q
}
