// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/pkg/errors"
)

const TEST_CONTRACT_NAME = primitives.ContractName("TestContract")

var testContract = types.ContractInfo{
	Name:       TEST_CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		"add":      {Name: "add", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).add},
		"echo":     {Name: "echo", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).echo},
		"write":    {Name: "write", External: true, Access: protocol.ACCESS_SCOPE_READ_WRITE, Implementation: (*testContractInstance).write},
		"deposit":  {Name: "deposit", External: true, Access: protocol.ACCESS_SCOPE_READ_WRITE, Payable: true, Implementation: (*testContractInstance).deposit},
		"internal": {Name: "internal", External: false, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).internal},
		"fail":     {Name: "fail", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).fail},
		"panic":    {Name: "panic", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).panic},
		"context":  {Name: "context", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*testContractInstance).context},
	},
	InitSingleton: func(base *types.BaseContract) types.Contract {
		return &testContractInstance{BaseContract: base}
	},
}

type testContractInstance struct {
	*types.BaseContract
}

func (c *testContractInstance) add(ctx types.Context, a uint64, b uint64) uint64 {
	return a + b
}

func (c *testContractInstance) echo(ctx types.Context, s string, b []byte, n uint32) (string, []byte, uint32) {
	return s, b, n
}

func (c *testContractInstance) write(ctx types.Context, key string, value []byte) error {
	return c.State.WriteBytesByKey(ctx, key, value)
}

func (c *testContractInstance) deposit(ctx types.Context) (string, error) {
	amount, err := c.Payment.GetAttachedDeposit(ctx)
	if err != nil {
		return "", err
	}
	return amount.String(), nil
}

func (c *testContractInstance) internal(ctx types.Context) uint32 {
	return 1
}

func (c *testContractInstance) fail(ctx types.Context) (string, error) {
	return "", errors.New("contract refused")
}

func (c *testContractInstance) panic(ctx types.Context) string {
	panic("contract exploded")
}

func (c *testContractInstance) context(ctx types.Context) uint64 {
	return uint64(ctx)
}
