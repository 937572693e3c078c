// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"fmt"

	"github.com/orbs-network/call-tracker-go/primitives"
)

// Transaction is a state mutating invocation. Signer is the account the host resolved as the caller.
type Transaction struct {
	Signer          primitives.AccountId    `json:"Signer"`
	ContractName    primitives.ContractName `json:"ContractName"`
	MethodName      primitives.MethodName   `json:"MethodName"`
	InputArguments  ArgumentArray           `json:"Arguments"`
	AttachedDeposit primitives.Amount       `json:"AttachedDeposit"`
}

func (t *Transaction) String() string {
	return fmt.Sprintf("{Signer:%s, ContractName:%s, MethodName:%s, Arguments:%s, AttachedDeposit:%s}",
		t.Signer, t.ContractName, t.MethodName, t.InputArguments, t.AttachedDeposit)
}

// Query is a read only invocation. It never carries a deposit.
type Query struct {
	Signer         primitives.AccountId    `json:"Signer"`
	ContractName   primitives.ContractName `json:"ContractName"`
	MethodName     primitives.MethodName   `json:"MethodName"`
	InputArguments ArgumentArray           `json:"Arguments"`
}

func (q *Query) String() string {
	return fmt.Sprintf("{Signer:%s, ContractName:%s, MethodName:%s, Arguments:%s}",
		q.Signer, q.ContractName, q.MethodName, q.InputArguments)
}

type Event struct {
	ContractName primitives.ContractName `json:"ContractName"`
	EventName    string                  `json:"EventName"`
	Arguments    ArgumentArray           `json:"Arguments"`
}

type TransactionReceipt struct {
	TxId            primitives.TxId            `json:"TxId"`
	Signer          primitives.AccountId       `json:"Signer"`
	ExecutionResult primitives.ExecutionResult `json:"ExecutionResult"`
	OutputArguments ArgumentArray              `json:"OutputArguments"`
	OutputEvents    []*Event                   `json:"OutputEvents"`
	ErrorMessage    string                     `json:"ErrorMessage,omitempty"`
}

type QueryResult struct {
	ExecutionResult primitives.ExecutionResult `json:"ExecutionResult"`
	OutputArguments ArgumentArray              `json:"OutputArguments"`
	ErrorMessage    string                     `json:"ErrorMessage,omitempty"`
}

type StateRecord struct {
	Key   string
	Value []byte
}

type ContractStateDiff struct {
	ContractName primitives.ContractName
	StateDiffs   []*StateRecord
}
