// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"time"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) RunQuery(parentCtx context.Context, input *services.RunQueryInput) (*services.RunQueryOutput, error) {
	start := time.Now()
	defer s.metrics.runQueryTime.RecordSince(start)

	s.metrics.totalQueriesFromClients.Inc()
	var query *protocol.Query
	if input != nil {
		query = input.Query
	}
	if err := validateQuery(query); err != nil {
		s.metrics.totalQueriesErrInvalidRequest.Inc()
		s.logger.Info("run query received invalid input", log.Error(err))
		return nil, err
	}

	logger := s.logger.WithTags(logfields.Contract(query.ContractName), logfields.Method(query.MethodName))

	ctx, cancel := context.WithTimeout(parentCtx, s.config.SendTransactionTimeout())
	defer cancel()

	output, err := s.virtualMachine.ProcessQuery(ctx, &services.ProcessQueryInput{Query: query})
	if output == nil {
		if err == nil {
			err = errors.New("virtual machine returned no output")
		}
		logger.Info("query processing failed", log.Error(err))
		return nil, errors.Wrap(err, "failed to process query")
	}

	return &services.RunQueryOutput{
		QueryResult: &protocol.QueryResult{
			ExecutionResult: output.ExecutionResult,
			OutputArguments: output.OutputArguments,
			ErrorMessage:    errorMessage(output.CallError),
		},
		CallError: output.CallError,
	}, err
}
