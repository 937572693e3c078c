// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package eventexport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/segmentio/kafka-go"
)

const EVENT_NAME_HEADER = "event-name"

// MessageWriter is the part of kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	govnr.TreeSupervisor

	writer  MessageWriter
	queue   chan kafka.Message
	cancel  context.CancelFunc
	logger  log.Logger
	metrics *kafkaMetrics
}

type kafkaMetrics struct {
	published   *metric.Rate
	dropped     *metric.Rate
	failed      *metric.Rate
	queueLength *metric.Gauge
	writeTime   *metric.Histogram
}

func newKafkaMetrics(factory metric.Factory) *kafkaMetrics {
	return &kafkaMetrics{
		published:   factory.NewRate("EventExport.Kafka.Published.Count"),
		dropped:     factory.NewRate("EventExport.Kafka.Dropped.Count"),
		failed:      factory.NewRate("EventExport.Kafka.Failed.Count"),
		queueLength: factory.NewGauge("EventExport.Kafka.QueueLength.Count"),
		writeTime:   factory.NewLatency("EventExport.Kafka.WriteTime.Millis", 30*time.Second),
	}
}

func NewKafkaPublisher(parentCtx context.Context, cfg config.EventExportConfig, parentLogger log.Logger, metricFactory metric.Factory) *KafkaPublisher {
	logger := parentLogger.WithTags(LogTag, log.String("topic", cfg.EventExportKafkaTopic()))
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.EventExportKafkaBrokers()...),
		Topic:        cfg.EventExportKafkaTopic(),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Info("kafka writer: " + fmt.Sprintf(msg, args...))
		}),
	}
	return NewKafkaPublisherWithWriter(parentCtx, writer, cfg.EventExportBufferSize(), parentLogger, metricFactory)
}

func NewKafkaPublisherWithWriter(parentCtx context.Context, writer MessageWriter, bufferSize uint32, parentLogger log.Logger, metricFactory metric.Factory) *KafkaPublisher {
	ctx, cancel := context.WithCancel(parentCtx)
	p := &KafkaPublisher{
		writer:  writer,
		queue:   make(chan kafka.Message, bufferSize),
		cancel:  cancel,
		logger:  parentLogger.WithTags(LogTag),
		metrics: newKafkaMetrics(metricFactory),
	}
	p.Supervise(p.startWriting(ctx))
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, receipt *protocol.TransactionReceipt) {
	for _, event := range eventsOf(receipt) {
		value, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("failed to encode exported event", log.Error(err), logfields.Transaction(event.TxId))
			continue
		}
		message := kafka.Message{
			Key:     []byte(event.Account),
			Value:   value,
			Headers: []kafka.Header{{Key: EVENT_NAME_HEADER, Value: []byte(event.EventName)}},
		}

		select {
		case p.queue <- message:
			p.metrics.queueLength.Update(int64(len(p.queue)))
		default:
			p.metrics.dropped.Inc()
			p.logger.Error("export queue is full, dropping exported event", logfields.Transaction(event.TxId), log.String("event", event.EventName))
		}
	}
}

func (p *KafkaPublisher) startWriting(ctx context.Context) govnr.ShutdownWaiter {
	return govnr.Forever(ctx, "kafka-event-writer", logfields.GovnrErrorer(p.logger), func() {
		for {
			select {
			case <-ctx.Done():
				return
			case message := <-p.queue:
				p.metrics.queueLength.Update(int64(len(p.queue)))
				p.write(ctx, message)
			}
		}
	})
}

func (p *KafkaPublisher) write(ctx context.Context, message kafka.Message) {
	start := time.Now()
	defer p.metrics.writeTime.RecordSince(start)

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.metrics.failed.Inc()
		p.logger.Error("failed to write exported event to kafka", log.Error(err), log.String("key", string(message.Key)))
		return
	}
	p.metrics.published.Inc()
}

func (p *KafkaPublisher) GracefulShutdown(shutdownContext context.Context) {
	p.cancel()
	p.WaitUntilShutdown(shutdownContext)
	if err := p.writer.Close(); err != nil {
		p.logger.Info("failed to close kafka writer", log.Error(err))
	}
}
