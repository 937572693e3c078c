// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/test"
	"github.com/orbs-network/call-tracker-go/test/builders"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newTestNode(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *recordedRequest) {
	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded.method = r.Method
		recorded.path = r.URL.EscapedPath()
		recorded.body = string(body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", 5*time.Second), recorded
}

func writeJson(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_RecordCallSucceeds(t *testing.T) {
	client, recorded := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(protocol.HEADER_EXECUTION_RESULT, "EXECUTION_RESULT_SUCCESS")
		writeJson(w, http.StatusOK, builders.TransactionReceipt().Build())
	})

	receipt, err := client.RecordCall(context.Background(), "alice.testnet", primitives.ZeroAmount)
	require.NoError(t, err)
	require.Equal(t, primitives.EXECUTION_RESULT_SUCCESS, receipt.ExecutionResult)
	require.Equal(t, builders.ArgumentsArray("Call recorded. You have called this function 1 times."), receipt.OutputArguments)

	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/v1/contracts/CallTracker/record-call", recorded.path)
	require.JSONEq(t, `{"signer":"alice.testnet","attachedDeposit":"0"}`, recorded.body)
}

func TestClient_RecordCallSendsDeposit(t *testing.T) {
	client, recorded := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(protocol.HEADER_EXECUTION_RESULT, "EXECUTION_RESULT_SUCCESS")
		writeJson(w, http.StatusOK, builders.TransactionReceipt().Build())
	})

	_, err := client.RecordCall(context.Background(), "alice.testnet", primitives.MustParseAmount("0.010"))
	require.NoError(t, err)

	sent := &protocol.RecordCallRequest{}
	require.NoError(t, json.Unmarshal([]byte(recorded.body), sent))
	test.RequireCmpEqual(t, &protocol.RecordCallRequest{Signer: "alice.testnet", AttachedDeposit: primitives.MustParseAmount("0.01")}, sent)
}

func TestClient_RecordCallRequiresPayment(t *testing.T) {
	message := "insufficient attached deposit: you must pay 0.01 NEAR after 3 calls"
	client, _ := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(protocol.HEADER_EXECUTION_RESULT, "EXECUTION_RESULT_ERROR_SMART_CONTRACT")
		w.Header().Set(protocol.HEADER_REQUIRED_PAYMENT, "0.01")
		writeJson(w, http.StatusPaymentRequired, builders.TransactionReceipt().
			WithoutEvents().
			WithExecutionResult(primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT, message).
			Build())
	})

	receipt, err := client.RecordCall(context.Background(), "alice.testnet", primitives.ZeroAmount)
	require.NotNil(t, receipt, "receipt is returned with the error")

	var paymentErr *PaymentRequiredError
	require.True(t, errors.As(err, &paymentErr), "expected a payment error, got %v", err)
	require.Equal(t, "0.01", paymentErr.RequiredPayment().String())
	require.EqualError(t, err, message)
}

func TestClient_ContractErrorIsAnExecutionError(t *testing.T) {
	client, _ := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(protocol.HEADER_EXECUTION_RESULT, "EXECUTION_RESULT_ERROR_INPUT")
		writeJson(w, http.StatusBadRequest, &protocol.QueryResult{
			ExecutionResult: primitives.EXECUTION_RESULT_ERROR_INPUT,
			ErrorMessage:    "method 'nope' not found on contract 'CallTracker'",
		})
	})

	result, err := client.RunQuery(context.Background(), &protocol.Query{ContractName: "CallTracker", MethodName: "nope"})
	require.NotNil(t, result)

	var executionErr *ExecutionError
	require.True(t, errors.As(err, &executionErr), "expected an execution error, got %v", err)
	require.Equal(t, primitives.EXECUTION_RESULT_ERROR_INPUT, executionErr.ExecutionResult)
}

func TestClient_RejectedRequestIsAnHttpError(t *testing.T) {
	client, _ := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusBadRequest, &protocol.ErrorResponse{Error: "invalid request: signer is empty"})
	})

	_, err := client.SendTransaction(context.Background(), &protocol.Transaction{ContractName: "CallTracker", MethodName: "record_call"})

	var httpErr *HttpError
	require.True(t, errors.As(err, &httpErr), "expected an http error, got %v", err)
	require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	require.Equal(t, "invalid request: signer is empty", httpErr.Message)
}

func TestClient_NonJsonErrorBodyIsKept(t *testing.T) {
	client, _ := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := client.Health(context.Background())

	var httpErr *HttpError
	require.True(t, errors.As(err, &httpErr), "expected an http error, got %v", err)
	require.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	require.Equal(t, "upstream unavailable", httpErr.Message)
}

func TestClient_GetCallCount(t *testing.T) {
	client, recorded := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(protocol.HEADER_EXECUTION_RESULT, "EXECUTION_RESULT_SUCCESS")
		writeJson(w, http.StatusOK, &protocol.CallCountResponse{Account: "bob.testnet", Count: 7})
	})

	count, err := client.GetCallCount(context.Background(), "bob.testnet")
	require.NoError(t, err)
	require.EqualValues(t, 7, count)
	require.Equal(t, http.MethodGet, recorded.method)
	require.Equal(t, "/api/v1/contracts/CallTracker/call-count/bob.testnet", recorded.path)
}

func TestClient_GetContractBalance(t *testing.T) {
	client, recorded := newTestNode(t, func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, &protocol.ContractBalanceResponse{ContractName: "CallTracker", Balance: primitives.MustParseAmount("0.02")})
	})

	balance, err := client.GetContractBalance(context.Background(), "CallTracker")
	require.NoError(t, err)
	require.Equal(t, "0.02", balance.String())
	require.Equal(t, "/api/v1/contracts/CallTracker/balance", recorded.path)
}

func TestClient_UnreachableNode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewClient(server.URL, time.Second).Health(context.Background())
	require.Error(t, err)
}
