// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package eventexport

import (
	"context"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/scribe/log"
)

var LogTag = log.Service("event-export")

// Publisher ships the events of committed transactions out of the node. Publish never blocks the caller.
type Publisher interface {
	Publish(ctx context.Context, receipt *protocol.TransactionReceipt)
}

type ExportedEvent struct {
	TxId         primitives.TxId         `json:"txId"`
	Account      primitives.AccountId    `json:"account"`
	ContractName primitives.ContractName `json:"contractName"`
	EventName    string                  `json:"eventName"`
	Arguments    protocol.ArgumentArray  `json:"arguments"`
}

func eventsOf(receipt *protocol.TransactionReceipt) []*ExportedEvent {
	if receipt == nil || receipt.ExecutionResult != primitives.EXECUTION_RESULT_SUCCESS {
		return nil
	}
	var events []*ExportedEvent
	for _, event := range receipt.OutputEvents {
		events = append(events, &ExportedEvent{
			TxId:         receipt.TxId,
			Account:      receipt.Signer,
			ContractName: event.ContractName,
			EventName:    event.EventName,
			Arguments:    event.Arguments,
		})
	}
	return events
}

type loggingPublisher struct {
	logger log.Logger
}

func NewLoggingPublisher(parentLogger log.Logger) Publisher {
	return &loggingPublisher{logger: parentLogger.WithTags(LogTag)}
}

func (p *loggingPublisher) Publish(ctx context.Context, receipt *protocol.TransactionReceipt) {
	for _, event := range eventsOf(receipt) {
		p.logger.Info("contract event",
			logfields.Transaction(event.TxId),
			logfields.Account(event.Account),
			logfields.Contract(event.ContractName),
			log.String("event", event.EventName),
			log.Stringable("arguments", event.Arguments))
	}
}
