// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"sort"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
)

// ContractInfo describes a prebuilt contract: its methods and how to create its single instance.
type ContractInfo struct {
	Name          primitives.ContractName
	Permission    protocol.ExecutionPermissionScope
	Methods       map[primitives.MethodName]MethodInfo
	InitSingleton func(*BaseContract) Contract
}

// Payable methods accept an attached deposit, all others reject one.
type MethodInfo struct {
	Name           primitives.MethodName
	External       bool
	Access         protocol.ExecutionAccessScope
	Payable        bool
	Implementation interface{}
}

func (c ContractInfo) PayableMethods() []primitives.MethodName {
	var payable []primitives.MethodName
	for name, method := range c.Methods {
		if method.Payable {
			payable = append(payable, name)
		}
	}
	sort.Slice(payable, func(i, j int) bool { return payable[i] < payable[j] })
	return payable
}

func (m MethodInfo) WritesState() bool {
	return m.Access == protocol.ACCESS_SCOPE_READ_WRITE
}
