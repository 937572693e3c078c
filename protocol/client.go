// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import "github.com/orbs-network/call-tracker-go/primitives"

// response headers set on every execution result
const (
	HEADER_EXECUTION_RESULT = "X-CALL-TRACKER-EXECUTION-RESULT"
	HEADER_ERROR_DETAILS    = "X-CALL-TRACKER-ERROR-DETAILS"
	HEADER_REQUIRED_PAYMENT = "X-CALL-TRACKER-REQUIRED-PAYMENT"
	HEADER_TRANSACTION_ID   = "X-CALL-TRACKER-TX-ID"
)

// RecordCallRequest is the body of the record-call shortcut. The deposit is optional.
type RecordCallRequest struct {
	Signer          primitives.AccountId `json:"signer"`
	AttachedDeposit primitives.Amount    `json:"attachedDeposit"`
}

type CallCountResponse struct {
	Account primitives.AccountId `json:"account"`
	Count   uint32               `json:"count"`
}

type ContractBalanceResponse struct {
	ContractName primitives.ContractName `json:"contractName"`
	Balance      primitives.Amount       `json:"balance"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
