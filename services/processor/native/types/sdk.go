// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import "github.com/orbs-network/call-tracker-go/primitives"

type StateSdk interface {
	// read
	ReadBytesByKey(ctx Context, key string) ([]byte, error)
	ReadStringByKey(ctx Context, key string) (string, error)
	ReadUint64ByKey(ctx Context, key string) (uint64, error)
	ReadUint32ByKey(ctx Context, key string) (uint32, error)

	// write
	WriteBytesByKey(ctx Context, key string, value []byte) error
	WriteStringByKey(ctx Context, key string, value string) error
	WriteUint64ByKey(ctx Context, key string, value uint64) error
	WriteUint32ByKey(ctx Context, key string, value uint32) error

	// clear
	ClearByKey(ctx Context, key string) error
}

type AddressSdk interface {
	// the account the host resolved as the caller of the running transaction
	GetSignerAddress(ctx Context) (primitives.AccountId, error)
	GetOwnContractName(ctx Context) (primitives.ContractName, error)
}

type PaymentSdk interface {
	GetAttachedDeposit(ctx Context) (primitives.Amount, error)
}

type EventsSdk interface {
	EmitEvent(ctx Context, eventName string, args ...interface{}) error
}
