// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"strings"
	"time"

	"github.com/orbs-network/call-tracker-go/primitives"
)

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

const (
	CALL_TRACKER_FREE_CALL_ALLOWANCE = "CALL_TRACKER_FREE_CALL_ALLOWANCE"
	CALL_TRACKER_FEE_PER_EXTRA_CALL  = "CALL_TRACKER_FEE_PER_EXTRA_CALL"
	CALL_TRACKER_TOKEN_SYMBOL        = "CALL_TRACKER_TOKEN_SYMBOL"

	VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS = "VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS"

	STATE_STORAGE_POSTGRES_DSN = "STATE_STORAGE_POSTGRES_DSN"

	EVENT_EXPORT_KAFKA_BROKERS = "EVENT_EXPORT_KAFKA_BROKERS"
	EVENT_EXPORT_KAFKA_TOPIC   = "EVENT_EXPORT_KAFKA_TOPIC"
	EVENT_EXPORT_BUFFER_SIZE   = "EVENT_EXPORT_BUFFER_SIZE"

	PUBLIC_API_SEND_TRANSACTION_TIMEOUT = "PUBLIC_API_SEND_TRANSACTION_TIMEOUT"

	HTTP_ADDRESS             = "HTTP_ADDRESS"
	HTTP_REQUESTS_PER_SECOND = "HTTP_REQUESTS_PER_SECOND"
	PROFILING                = "PROFILING"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
	LOGGER_FULL_LOG         = "LOGGER_FULL_LOG"
)

type config struct {
	kv map[string]NodeConfigValue
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
	return c
}

func (c *config) has(key string) bool {
	_, found := c.kv[key]
	return found
}

func (c *config) CallTrackerFreeCallAllowance() uint32 {
	return c.kv[CALL_TRACKER_FREE_CALL_ALLOWANCE].Uint32Value
}

// the fee is validated on startup, an unparsable value reads as zero
func (c *config) CallTrackerFeePerExtraCall() primitives.Amount {
	fee, err := primitives.ParseAmount(c.kv[CALL_TRACKER_FEE_PER_EXTRA_CALL].StringValue)
	if err != nil {
		return primitives.ZeroAmount
	}
	return fee
}

func (c *config) CallTrackerTokenSymbol() string {
	return c.kv[CALL_TRACKER_TOKEN_SYMBOL].StringValue
}

func (c *config) VirtualMachineAtomicTransactions() bool {
	return c.kv[VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS].BoolValue
}

func (c *config) StateStoragePostgresDsn() string {
	return c.kv[STATE_STORAGE_POSTGRES_DSN].StringValue
}

func (c *config) EventExportKafkaBrokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.kv[EVENT_EXPORT_KAFKA_BROKERS].StringValue, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func (c *config) EventExportKafkaTopic() string {
	return c.kv[EVENT_EXPORT_KAFKA_TOPIC].StringValue
}

func (c *config) EventExportBufferSize() uint32 {
	return c.kv[EVENT_EXPORT_BUFFER_SIZE].Uint32Value
}

func (c *config) SendTransactionTimeout() time.Duration {
	return c.kv[PUBLIC_API_SEND_TRANSACTION_TIMEOUT].DurationValue
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpRequestsPerSecond() uint32 {
	return c.kv[HTTP_REQUESTS_PER_SECOND].Uint32Value
}

func (c *config) Profiling() bool {
	return c.kv[PROFILING].BoolValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}
