// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orbs-network/call-tracker-go/instrumentation"
	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) SendTransaction(parentCtx context.Context, input *services.SendTransactionInput) (*services.SendTransactionOutput, error) {
	start := time.Now()
	defer s.metrics.sendTransactionTime.RecordSince(start)

	s.metrics.totalTransactionsFromClients.Inc()
	if input == nil || input.Transaction == nil {
		s.metrics.totalTransactionsErrNilRequest.Inc()
		err := &InvalidRequestError{Reason: "transaction is missing"}
		s.logger.Info("send transaction received missing input", log.Error(err))
		return nil, err
	}

	tx := input.Transaction
	txId := primitives.TxId(uuid.New().String())
	logger := s.logger.WithTags(logfields.Transaction(txId), logfields.Contract(tx.ContractName), logfields.Method(tx.MethodName), instrumentation.CheckpointTag)

	if err := validateTransaction(tx); err != nil {
		s.metrics.totalTransactionsErrInvalidRequest.Inc()
		logger.Info("send transaction received invalid input", log.Error(err))
		return nil, err
	}

	logger.Info("send transaction request received", logfields.Account(tx.Signer), logfields.Amount("attached-deposit", tx.AttachedDeposit))

	ctx, cancel := context.WithTimeout(parentCtx, s.config.SendTransactionTimeout())
	defer cancel()

	output, err := s.virtualMachine.ProcessTransaction(ctx, &services.ProcessTransactionInput{Transaction: tx})
	if output == nil {
		if err == nil {
			err = errors.New("virtual machine returned no output")
		}
		s.metrics.totalTransactionsFailed.Inc()
		logger.Info("transaction processing failed", log.Error(err))
		return nil, errors.Wrap(err, "failed to process transaction")
	}

	receipt := toTransactionReceipt(txId, tx, output)
	s.countResult(output)

	if receipt.ExecutionResult == primitives.EXECUTION_RESULT_SUCCESS {
		logger.Info("transaction committed", logfields.ExecutionResult(receipt.ExecutionResult))
		s.publisher.Publish(ctx, receipt)
	} else {
		logger.Info("transaction rejected", logfields.ExecutionResult(receipt.ExecutionResult), log.String("reason", receipt.ErrorMessage))
	}

	return &services.SendTransactionOutput{
		TransactionReceipt: receipt,
		CallError:          output.CallError,
	}, err
}

func (s *service) countResult(output *services.ProcessTransactionOutput) {
	if output.ExecutionResult == primitives.EXECUTION_RESULT_SUCCESS {
		s.metrics.totalTransactionsSucceeded.Inc()
		return
	}
	s.metrics.totalTransactionsFailed.Inc()
	var paymentErr types.PaymentError
	if errors.As(output.CallError, &paymentErr) {
		s.metrics.totalTransactionsPaymentRequired.Inc()
	}
}

func toTransactionReceipt(txId primitives.TxId, tx *protocol.Transaction, output *services.ProcessTransactionOutput) *protocol.TransactionReceipt {
	signer := output.Signer
	if signer.IsEmpty() {
		signer = tx.Signer
	}
	return &protocol.TransactionReceipt{
		TxId:            txId,
		Signer:          signer,
		ExecutionResult: output.ExecutionResult,
		OutputArguments: output.OutputArguments,
		OutputEvents:    output.OutputEvents,
		ErrorMessage:    errorMessage(output.CallError),
	}
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
