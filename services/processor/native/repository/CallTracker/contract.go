// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package calltracker counts calls per account. The first few calls of every account are free,
// every call after that must carry a fixed attached deposit which the contract keeps.
package calltracker

import (
	"fmt"
	"math"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = "CallTracker"

const EVENT_CALL_RECORDED = "CallRecorded"

// call counts live under c/<account>
const COUNT_KEY_PREFIX = "c"

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_RECORD_CALL.Name:    METHOD_RECORD_CALL,
		METHOD_GET_CALL_COUNT.Name: METHOD_GET_CALL_COUNT,
	},
	InitSingleton: newContract,
}

func newContract(base *types.BaseContract) types.Contract {
	return &contract{
		BaseContract:      base,
		freeCallAllowance: base.Config.CallTrackerFreeCallAllowance(),
		feePerExtraCall:   base.Config.CallTrackerFeePerExtraCall(),
		tokenSymbol:       base.Config.CallTrackerTokenSymbol(),
	}
}

type contract struct {
	*types.BaseContract
	freeCallAllowance uint32
	feePerExtraCall   primitives.Amount
	tokenSymbol       string
}

func countKey(account primitives.AccountId) string {
	return COUNT_KEY_PREFIX + "/" + account.String()
}

///////////////////////////////////////////////////////////////////////////

var METHOD_RECORD_CALL = types.MethodInfo{
	Name:           "record_call",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Payable:        true,
	Implementation: (*contract).recordCall,
}

func (c *contract) recordCall(ctx types.Context) (string, error) {
	account, err := c.Address.GetSignerAddress(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve caller")
	}

	count, err := c.State.ReadUint32ByKey(ctx, countKey(account))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read call count of %s", account)
	}
	if count == math.MaxUint32 {
		return "", &CounterOverflowError{Account: account}
	}
	newCount := count + 1

	// payment is checked before anything is written so a rejected call never leaves an increment behind
	if newCount > c.freeCallAllowance {
		attached, err := c.Payment.GetAttachedDeposit(ctx)
		if err != nil {
			return "", errors.Wrap(err, "failed to read attached deposit")
		}
		if !attached.GreaterOrEqual(c.feePerExtraCall) {
			return "", &InsufficientPaymentError{
				Required:          c.feePerExtraCall,
				Attached:          attached,
				FreeCallAllowance: c.freeCallAllowance,
				TokenSymbol:       c.tokenSymbol,
			}
		}
	}

	if err := c.State.WriteUint32ByKey(ctx, countKey(account), newCount); err != nil {
		return "", errors.Wrapf(err, "failed to write call count of %s", account)
	}

	c.Logger.Info(fmt.Sprintf("Call recorded for %s. Total calls: %d", account, newCount), log.Stringable("account", account), log.Uint32("total-calls", newCount))

	if err := c.Events.EmitEvent(ctx, EVENT_CALL_RECORDED, account.String(), newCount); err != nil {
		return "", errors.Wrap(err, "failed to emit event")
	}

	return fmt.Sprintf("Call recorded. You have called this function %d times.", newCount), nil
}

///////////////////////////////////////////////////////////////////////////

var METHOD_GET_CALL_COUNT = types.MethodInfo{
	Name:           "get_call_count",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: (*contract).getCallCount,
}

func (c *contract) getCallCount(ctx types.Context, accountId string) (uint32, error) {
	return c.State.ReadUint32ByKey(ctx, countKey(primitives.AccountId(accountId)))
}
