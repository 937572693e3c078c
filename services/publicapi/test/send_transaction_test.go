// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/processor/native/repository/CallTracker"
	"github.com/orbs-network/call-tracker-go/services/publicapi"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/orbs-network/call-tracker-go/test/with"
	"github.com/orbs-network/go-mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func successfulRecordCall() *services.ProcessTransactionOutput {
	return &services.ProcessTransactionOutput{
		Signer:          "alice.testnet",
		ExecutionResult: primitives.EXECUTION_RESULT_SUCCESS,
		OutputArguments: builders.ArgumentsArray("Call recorded. You have called this function 1 times."),
		OutputEvents: []*protocol.Event{
			{ContractName: "CallTracker", EventName: "CallRecorded", Arguments: builders.ArgumentsArray("alice.testnet", uint32(1))},
		},
	}
}

func TestSendTransaction_ReturnsReceiptAndPublishesEvents(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)
		h.transactionSucceeds(successfulRecordCall())
		h.expectPublished(1)

		output, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.NoError(t, err)
		receipt := output.TransactionReceipt
		require.Equal(t, primitives.EXECUTION_RESULT_SUCCESS, receipt.ExecutionResult)
		require.Equal(t, primitives.AccountId("alice.testnet"), receipt.Signer)
		require.Equal(t, builders.ArgumentsArray("Call recorded. You have called this function 1 times."), receipt.OutputArguments)
		require.Len(t, receipt.OutputEvents, 1)
		require.Empty(t, receipt.ErrorMessage)

		_, err = uuid.Parse(receipt.TxId.String())
		require.NoError(t, err, "tx id should be a uuid")

		require.EqualValues(t, 1, h.gauge("PublicApi.TotalTransactionsSucceeded.Count"))
		ok, err := h.verifyMocks()
		require.True(t, ok, "%v", err)
	})
}

func TestSendTransaction_AssignsUniqueTxIds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)
		h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Return(successfulRecordCall(), nil).Times(2)
		h.expectPublished(2)

		first, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.NoError(t, err)
		second, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.NoError(t, err)
		require.NotEqual(t, first.TransactionReceipt.TxId, second.TransactionReceipt.TxId)
	})
}

func TestSendTransaction_PaymentRejectionIsReportedAndNotPublished(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)
		paymentErr := &calltracker.InsufficientPaymentError{
			Required:          primitives.MustParseAmount("0.01"),
			Attached:          primitives.ZeroAmount,
			FreeCallAllowance: 3,
			TokenSymbol:       "NEAR",
		}
		h.transactionFails(primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT, paymentErr)
		h.expectNothingPublished()

		output, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.NoError(t, err, "contract rejections are not transport errors")
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.TransactionReceipt.ExecutionResult)
		require.Equal(t, "insufficient attached deposit: you must pay 0.01 NEAR after 3 calls", output.TransactionReceipt.ErrorMessage)
		require.True(t, errors.Is(output.CallError, calltracker.ErrInsufficientPayment))

		require.EqualValues(t, 1, h.gauge("PublicApi.TotalTransactionsFailed.Count"))
		require.EqualValues(t, 1, h.gauge("PublicApi.TotalTransactionsPaymentRequired.Count"))
		ok, err := h.verifyMocks()
		require.True(t, ok, "%v", err)
	})
}

func TestSendTransaction_RejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		tx   *protocol.Transaction
	}{
		{"missing transaction", nil},
		{"empty signer", builders.Transaction().WithSigner("  ").Build()},
		{"empty contract", builders.Transaction().WithMethod("", "record_call").Build()},
		{"empty method", builders.Transaction().WithMethod("CallTracker", "").Build()},
		{"internal method", builders.Transaction().WithMethod("CallTracker", "_init").Build()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			with.Logging(t, func(parent *with.LoggingHarness) {
				h := newPublicApiHarness(parent.Logger, time.Second)
				h.virtualMachineIsNeverCalled()
				h.expectNothingPublished()

				output, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: tt.tx})
				require.Nil(t, output)
				require.True(t, errors.Is(err, publicapi.ErrInvalidRequest), "expected invalid request, got %v", err)

				ok, err := h.verifyMocks()
				require.True(t, ok, "%v", err)
			})
		})
	}
}

func TestSendTransaction_NilInputIsCounted(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)

		_, err := h.papi.SendTransaction(context.Background(), nil)
		require.True(t, errors.Is(err, publicapi.ErrInvalidRequest))
		require.EqualValues(t, 1, h.gauge("PublicApi.TotalTransactionsErrNilRequest.Count"))
	})
}

func TestSendTransaction_VirtualMachineFailureIsReturned(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)
		h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Return(nil, errors.New("vm is down")).Times(1)
		h.expectNothingPublished()

		output, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.Nil(t, output)
		require.Error(t, err)
		require.Contains(t, err.Error(), "vm is down")
	})
}

func TestSendTransaction_CommitFailureKeepsReceipt(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, time.Second)
		commitErr := errors.New("state storage rejected the state diff: disk full")
		h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Return(&services.ProcessTransactionOutput{
			Signer:          "alice.testnet",
			ExecutionResult: primitives.EXECUTION_RESULT_ERROR_UNEXPECTED,
			OutputArguments: builders.ArgumentsArray(commitErr.Error()),
			CallError:       commitErr,
		}, commitErr).Times(1)
		h.expectNothingPublished()

		output, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.Error(t, err)
		require.NotNil(t, output)
		require.Equal(t, primitives.EXECUTION_RESULT_ERROR_UNEXPECTED, output.TransactionReceipt.ExecutionResult)
	})
}

func TestSendTransaction_PassesDeadlineToVirtualMachine(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newPublicApiHarness(parent.Logger, 50*time.Millisecond)
		h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Call(func(ctx context.Context, input *services.ProcessTransactionInput) (*services.ProcessTransactionOutput, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "transaction context must carry the configured timeout")
			require.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return successfulRecordCall(), nil
		}).Times(1)
		h.expectPublished(1)

		_, err := h.papi.SendTransaction(context.Background(), &services.SendTransactionInput{Transaction: builders.Transaction().Build()})
		require.NoError(t, err)
	})
}
