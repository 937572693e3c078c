// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
)

/// Test builders for: protocol.TransactionReceipt

type receipt struct {
	r *protocol.TransactionReceipt
}

// TransactionReceipt defaults to a successful first record_call of the default test signer.
func TransactionReceipt() *receipt {
	return &receipt{
		r: &protocol.TransactionReceipt{
			TxId:            "00000000-0000-0000-0000-000000000001",
			Signer:          DEFAULT_TEST_SIGNER,
			ExecutionResult: primitives.EXECUTION_RESULT_SUCCESS,
			OutputArguments: ArgumentsArray("Call recorded. You have called this function 1 times."),
			OutputEvents: []*protocol.Event{
				{
					ContractName: DEFAULT_TEST_CONTRACT,
					EventName:    "CallRecorded",
					Arguments:    ArgumentsArray(string(DEFAULT_TEST_SIGNER), uint32(1)),
				},
			},
		},
	}
}

func (r *receipt) Build() *protocol.TransactionReceipt {
	return r.r
}

func (r *receipt) WithTxId(txId primitives.TxId) *receipt {
	r.r.TxId = txId
	return r
}

func (r *receipt) WithSigner(signer primitives.AccountId) *receipt {
	r.r.Signer = signer
	for _, event := range r.r.OutputEvents {
		if len(event.Arguments) > 0 {
			event.Arguments[0] = &protocol.Argument{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: string(signer)}
		}
	}
	return r
}

func (r *receipt) WithoutEvents() *receipt {
	r.r.OutputEvents = nil
	return r
}

func (r *receipt) WithExecutionResult(result primitives.ExecutionResult, errorMessage string) *receipt {
	r.r.ExecutionResult = result
	r.r.ErrorMessage = errorMessage
	return r
}
