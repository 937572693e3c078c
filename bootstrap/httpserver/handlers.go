// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/processor/native/repository/CallTracker"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/call-tracker-go/services/publicapi"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const MAX_REQUEST_BODY_BYTES = 1 << 20

const (
	CONTENT_TYPE_JSON       = "application/json"
	CONTENT_TYPE_PLAIN_TEXT = "text/plain"
	HEALTH_STATUS_OK        = "ok"
)

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

func readJson(w http.ResponseWriter, r *http.Request, into interface{}) *httpErr {
	if r.Body == nil || r.Body == http.NoBody {
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_REQUEST_BODY_BYTES))
	if err := decoder.Decode(into); err != nil {
		return &httpErr{http.StatusBadRequest, log.Error(err), "http request body is not valid: " + err.Error()}
	}
	return nil
}

func (s *HttpServer) sendTransactionHandler(w http.ResponseWriter, r *http.Request) {
	tx := &protocol.Transaction{}
	if e := readJson(w, r, tx); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	s.sendTransaction(w, r, tx)
}

// the caller is whoever the request names as signer, the dev host trusts it
func (s *HttpServer) recordCallHandler(w http.ResponseWriter, r *http.Request) {
	request := &protocol.RecordCallRequest{}
	if e := readJson(w, r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	s.sendTransaction(w, r, &protocol.Transaction{
		Signer:          request.Signer,
		ContractName:    calltracker.CONTRACT_NAME,
		MethodName:      calltracker.METHOD_RECORD_CALL.Name,
		InputArguments:  protocol.ArgumentArray{},
		AttachedDeposit: request.AttachedDeposit,
	})
}

func (s *HttpServer) sendTransaction(w http.ResponseWriter, r *http.Request, tx *protocol.Transaction) {
	output, err := s.publicApi.SendTransaction(r.Context(), &services.SendTransactionInput{Transaction: tx})
	if output == nil || output.TransactionReceipt == nil {
		s.writeApiError(w, err)
		return
	}

	receipt := output.TransactionReceipt
	w.Header().Set(protocol.HEADER_TRANSACTION_ID, receipt.TxId.String())
	code := s.writeExecutionHeaders(w, receipt.ExecutionResult, output.CallError)
	if err != nil && code < http.StatusInternalServerError {
		code = http.StatusInternalServerError
	}
	s.writeJsonResponse(w, code, receipt)
}

func (s *HttpServer) runQueryHandler(w http.ResponseWriter, r *http.Request) {
	query := &protocol.Query{}
	if e := readJson(w, r, query); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	output, err := s.publicApi.RunQuery(r.Context(), &services.RunQueryInput{Query: query})
	if output == nil || output.QueryResult == nil {
		s.writeApiError(w, err)
		return
	}
	code := s.writeExecutionHeaders(w, output.QueryResult.ExecutionResult, output.CallError)
	s.writeJsonResponse(w, code, output.QueryResult)
}

func (s *HttpServer) callCountHandler(w http.ResponseWriter, r *http.Request) {
	param, e := urlParam(r, "account")
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	account := primitives.AccountId(param)
	query := &protocol.Query{
		ContractName:   calltracker.CONTRACT_NAME,
		MethodName:     calltracker.METHOD_GET_CALL_COUNT.Name,
		InputArguments: protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: account.String()}},
	}

	output, err := s.publicApi.RunQuery(r.Context(), &services.RunQueryInput{Query: query})
	if output == nil || output.QueryResult == nil {
		s.writeApiError(w, err)
		return
	}

	result := output.QueryResult
	code := s.writeExecutionHeaders(w, result.ExecutionResult, output.CallError)
	if result.ExecutionResult != primitives.EXECUTION_RESULT_SUCCESS {
		s.writeJsonResponse(w, code, result)
		return
	}
	if len(result.OutputArguments) != 1 || !result.OutputArguments[0].IsTypeUint32Value() {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Stringable("output", result.OutputArguments), "call count query returned an unexpected output"})
		return
	}
	s.writeJsonResponse(w, http.StatusOK, &protocol.CallCountResponse{
		Account: account,
		Count:   result.OutputArguments[0].Uint32Value,
	})
}

func (s *HttpServer) contractBalanceHandler(w http.ResponseWriter, r *http.Request) {
	param, e := urlParam(r, "contract")
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	contractName := primitives.ContractName(param)
	balance, err := s.publicApi.GetContractBalance(r.Context(), contractName)
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	s.writeJsonResponse(w, http.StatusOK, &protocol.ContractBalanceResponse{
		ContractName: contractName,
		Balance:      balance,
	})
}

// urlParam unescapes a path segment, chi matches on the raw path whenever the request has one
func urlParam(r *http.Request, name string) (string, *httpErr) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", &httpErr{http.StatusBadRequest, log.Error(err), "invalid " + name + " in path"}
	}
	return value, nil
}

func (s *HttpServer) health(w http.ResponseWriter, r *http.Request) {
	s.writeJsonResponse(w, http.StatusOK, &protocol.HealthResponse{
		Status:  HEALTH_STATUS_OK,
		Version: config.GetVersion().String(),
	})
}

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", CONTENT_TYPE_PLAIN_TEXT)
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

// writeExecutionHeaders returns the http code matching the execution outcome
func (s *HttpServer) writeExecutionHeaders(w http.ResponseWriter, result primitives.ExecutionResult, callErr error) int {
	w.Header().Set(protocol.HEADER_EXECUTION_RESULT, result.String())
	if callErr != nil {
		w.Header().Set(protocol.HEADER_ERROR_DETAILS, callErr.Error())
	}

	var paymentErr types.PaymentError
	if errors.As(callErr, &paymentErr) {
		w.Header().Set(protocol.HEADER_REQUIRED_PAYMENT, paymentErr.RequiredPayment().String())
		return http.StatusPaymentRequired
	}
	return translateExecutionResultToHttpCode(result)
}

func translateExecutionResultToHttpCode(result primitives.ExecutionResult) int {
	switch result {
	case primitives.EXECUTION_RESULT_SUCCESS:
		return http.StatusOK
	case primitives.EXECUTION_RESULT_ERROR_SMART_CONTRACT:
		return http.StatusOK
	case primitives.EXECUTION_RESULT_ERROR_INPUT:
		return http.StatusBadRequest
	case primitives.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED:
		return http.StatusNotFound
	case primitives.EXECUTION_RESULT_ERROR_UNEXPECTED:
		return http.StatusInternalServerError
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) writeApiError(w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("public api returned no output")
	}
	if errors.Is(err, publicapi.ErrInvalidRequest) {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}
	s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "request failed: " + err.Error()})
}

func (s *HttpServer) writeJsonResponse(w http.ResponseWriter, code int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed to encode response"})
		return
	}
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeError(w http.ResponseWriter, code int, message string) {
	data, _ := json.Marshal(&protocol.ErrorResponse{Error: message})
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	s.writeError(w, m.code, m.message)
}
