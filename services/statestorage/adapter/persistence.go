// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
)

type ContractState map[string][]byte
type ChainState map[primitives.ContractName]ContractState

// StatePersistence stores the latest committed value of every key, writing a zero length value removes the key.
type StatePersistence interface {
	Write(ctx context.Context, diff ChainState) error
	Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error)
	Dump() string
}

func IsZeroValue(value []byte) bool {
	return len(value) == 0
}
