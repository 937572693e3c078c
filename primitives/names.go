// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

// AccountId identifies a caller. It is opaque to contracts and is resolved and
// validated by the host before a contract ever sees it.
type AccountId string

func (a AccountId) String() string {
	return string(a)
}

func (a AccountId) IsEmpty() bool {
	return len(a) == 0
}

type ContractName string

func (c ContractName) String() string {
	return string(c)
}

type MethodName string

func (m MethodName) String() string {
	return string(m)
}

type TxId string

func (t TxId) String() string {
	return string(t)
}

// ExecutionContextId identifies a single running invocation inside the virtual machine.
type ExecutionContextId uint64
