// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/pkg/errors"
)

const API_PREFIX = "/api/v1"

// PaymentRequiredError is returned when the node rejected a call for lack of an attached deposit.
type PaymentRequiredError struct {
	Required primitives.Amount
	Message  string
}

func (e *PaymentRequiredError) Error() string {
	return e.Message
}

func (e *PaymentRequiredError) RequiredPayment() primitives.Amount {
	return e.Required
}

// ExecutionError is returned when a call reached the contract but did not succeed.
type ExecutionError struct {
	ExecutionResult primitives.ExecutionResult
	Message         string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.ExecutionResult, e.Message)
}

// HttpError is returned when the node refused the request before executing it.
type HttpError struct {
	StatusCode int
	Message    string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("got http status code %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string, timeout time.Duration) *Client {
	return &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) SendTransaction(ctx context.Context, tx *protocol.Transaction) (*protocol.TransactionReceipt, error) {
	receipt := &protocol.TransactionReceipt{}
	res, err := c.do(ctx, http.MethodPost, API_PREFIX+"/send-transaction", tx, receipt)
	if err != nil {
		return nil, err
	}
	return receipt, executionErrorOf(res, receipt.ExecutionResult, receipt.ErrorMessage)
}

func (c *Client) RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryResult, error) {
	result := &protocol.QueryResult{}
	res, err := c.do(ctx, http.MethodPost, API_PREFIX+"/run-query", query, result)
	if err != nil {
		return nil, err
	}
	return result, executionErrorOf(res, result.ExecutionResult, result.ErrorMessage)
}

// RecordCall returns the receipt alongside the error when the call was executed but failed.
func (c *Client) RecordCall(ctx context.Context, signer primitives.AccountId, deposit primitives.Amount) (*protocol.TransactionReceipt, error) {
	request := &protocol.RecordCallRequest{Signer: signer, AttachedDeposit: deposit}
	receipt := &protocol.TransactionReceipt{}
	res, err := c.do(ctx, http.MethodPost, API_PREFIX+"/contracts/CallTracker/record-call", request, receipt)
	if err != nil {
		return nil, err
	}
	return receipt, executionErrorOf(res, receipt.ExecutionResult, receipt.ErrorMessage)
}

func (c *Client) GetCallCount(ctx context.Context, account primitives.AccountId) (uint32, error) {
	response := &protocol.CallCountResponse{}
	if _, err := c.do(ctx, http.MethodGet, API_PREFIX+"/contracts/CallTracker/call-count/"+url.PathEscape(account.String()), nil, response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

func (c *Client) GetContractBalance(ctx context.Context, contractName primitives.ContractName) (primitives.Amount, error) {
	response := &protocol.ContractBalanceResponse{}
	if _, err := c.do(ctx, http.MethodGet, API_PREFIX+"/contracts/"+url.PathEscape(contractName.String())+"/balance", nil, response); err != nil {
		return primitives.ZeroAmount, err
	}
	return response.Balance, nil
}

func (c *Client) Health(ctx context.Context) (*protocol.HealthResponse, error) {
	response := &protocol.HealthResponse{}
	if _, err := c.do(ctx, http.MethodGet, "/health", nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// do decodes into output whenever the node executed the call, whatever the status code.
func (c *Client) do(ctx context.Context, method string, path string, input interface{}, output interface{}) (*http.Response, error) {
	var body io.Reader
	if input != nil {
		data, err := json.Marshal(input)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, body)
	if err != nil {
		return nil, err
	}
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed calling %s", path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading response of %s", path)
	}

	if res.StatusCode != http.StatusOK && res.Header.Get(protocol.HEADER_EXECUTION_RESULT) == "" {
		response := &protocol.ErrorResponse{}
		if err := json.Unmarshal(data, response); err != nil || response.Error == "" {
			return nil, &HttpError{StatusCode: res.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return nil, &HttpError{StatusCode: res.StatusCode, Message: response.Error}
	}

	if err := json.Unmarshal(data, output); err != nil {
		return nil, errors.Wrapf(err, "failed decoding response of %s", path)
	}
	return res, nil
}

func executionErrorOf(res *http.Response, result primitives.ExecutionResult, message string) error {
	if res.StatusCode == http.StatusPaymentRequired {
		required, err := primitives.ParseAmount(res.Header.Get(protocol.HEADER_REQUIRED_PAYMENT))
		if err != nil {
			return errors.Wrap(err, "node sent an invalid required payment")
		}
		return &PaymentRequiredError{Required: required, Message: message}
	}
	if result != primitives.EXECUTION_RESULT_SUCCESS {
		return &ExecutionError{ExecutionResult: result, Message: message}
	}
	return nil
}
