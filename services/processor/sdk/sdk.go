// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package sdk names the operations a contract may request from its host through HandleSdkCall.
package sdk

const (
	SDK_OPERATION_NAME_STATE   = "Sdk.State"
	SDK_OPERATION_NAME_ADDRESS = "Sdk.Address"
	SDK_OPERATION_NAME_PAYMENT = "Sdk.Payment"
	SDK_OPERATION_NAME_EVENTS  = "Sdk.Events"
)

// Sdk.State
// read: key (string) -> value (bytes, empty when missing)
// write: key (string), value (bytes, empty clears) -> nothing
const (
	METHOD_STATE_READ  = "read"
	METHOD_STATE_WRITE = "write"
)

// Sdk.Address
// getSignerAddress: nothing -> account (string)
const METHOD_ADDRESS_GET_SIGNER_ADDRESS = "getSignerAddress"

// Sdk.Payment
// getAttachedDeposit: nothing -> amount (decimal string)
const METHOD_PAYMENT_GET_ATTACHED_DEPOSIT = "getAttachedDeposit"

// Sdk.Events
// emitEvent: event name (string), event args... -> nothing
const METHOD_EVENTS_EMIT_EVENT = "emitEvent"
