// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/eventexport"
	"github.com/orbs-network/call-tracker-go/services/publicapi"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
)

type harness struct {
	papi          services.PublicApi
	vmMock        *services.MockVirtualMachine
	publisherMock *eventexport.MockPublisher
	metrics       metric.Registry
}

func newPublicApiHarness(logger log.Logger, txTimeout time.Duration) *harness {
	registry := metric.NewRegistry()
	vmMock := &services.MockVirtualMachine{}
	publisherMock := &eventexport.MockPublisher{}
	papi := publicapi.NewPublicApi(config.ForPublicApiTests(txTimeout), vmMock, publisherMock, logger, registry)
	return &harness{
		papi:          papi,
		vmMock:        vmMock,
		publisherMock: publisherMock,
		metrics:       registry,
	}
}

func (h *harness) transactionSucceeds(output *services.ProcessTransactionOutput) {
	h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Return(output, nil).Times(1)
}

func (h *harness) transactionFails(result primitives.ExecutionResult, callErr error) {
	h.vmMock.When("ProcessTransaction", mock.Any, mock.Any).Return(&services.ProcessTransactionOutput{
		Signer:          "alice.testnet",
		ExecutionResult: result,
		OutputArguments: protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: callErr.Error()}},
		CallError:       callErr,
	}, nil).Times(1)
}

func (h *harness) virtualMachineIsNeverCalled() {
	h.vmMock.Never("ProcessTransaction", mock.Any, mock.Any)
	h.vmMock.Never("ProcessQuery", mock.Any, mock.Any)
}

func (h *harness) expectPublished(times int) {
	h.publisherMock.When("Publish", mock.Any, mock.Any).Return().Times(times)
}

func (h *harness) expectNothingPublished() {
	h.publisherMock.Never("Publish", mock.Any, mock.Any)
}

func (h *harness) verifyMocks() (bool, error) {
	if ok, err := h.vmMock.Verify(); !ok {
		return ok, err
	}
	return h.publisherMock.Verify()
}

func (h *harness) gauge(name string) int64 {
	return h.metrics.Get(name).(*metric.Gauge).Value()
}
