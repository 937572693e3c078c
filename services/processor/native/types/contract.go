// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/scribe/log"
)

// Context identifies the execution context a contract method runs in. Every sdk call must pass it back.
type Context primitives.ExecutionContextId

// Contract receiver for repository contracts (instantiated once, when the processor starts)
type Contract interface{}

// ContractConfig holds the parameters the node supplies to native contracts when they are instantiated.
type ContractConfig interface {
	CallTrackerFreeCallAllowance() uint32
	CallTrackerFeePerExtraCall() primitives.Amount
	CallTrackerTokenSymbol() string
}

type BaseContract struct {
	State   StateSdk
	Address AddressSdk
	Payment PaymentSdk
	Events  EventsSdk
	Config  ContractConfig
	Logger  log.Logger
}

func NewBaseContract(
	state StateSdk,
	address AddressSdk,
	payment PaymentSdk,
	events EventsSdk,
	config ContractConfig,
	logger log.Logger,
) *BaseContract {

	return &BaseContract{
		State:   state,
		Address: address,
		Payment: payment,
		Events:  events,
		Config:  config,
		Logger:  logger,
	}
}
