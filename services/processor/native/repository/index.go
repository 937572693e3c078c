// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services/processor/native/repository/CallTracker"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
)

var Contracts = map[primitives.ContractName]types.ContractInfo{
	calltracker.CONTRACT.Name: calltracker.CONTRACT,
	// add new native contracts here
}
