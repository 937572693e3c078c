// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

func ForNativeProcessorTests(freeCallAllowance uint32, feePerExtraCall string) NativeProcessorConfig {
	cfg := emptyConfig()
	cfg.SetUint32(CALL_TRACKER_FREE_CALL_ALLOWANCE, freeCallAllowance)
	cfg.SetString(CALL_TRACKER_FEE_PER_EXTRA_CALL, feePerExtraCall)
	cfg.SetString(CALL_TRACKER_TOKEN_SYMBOL, "NEAR")
	return cfg
}

func ForVirtualMachineTests(atomicTransactions bool) VirtualMachineConfig {
	cfg := emptyConfig()
	cfg.SetBool(VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS, atomicTransactions)
	return cfg
}

func ForPublicApiTests(sendTransactionTimeout time.Duration) PublicApiConfig {
	cfg := emptyConfig()
	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, sendTransactionTimeout)
	return cfg
}

func ForEventExportTests(brokers string, topic string, bufferSize uint32) EventExportConfig {
	cfg := emptyConfig()
	cfg.SetString(EVENT_EXPORT_KAFKA_BROKERS, brokers)
	cfg.SetString(EVENT_EXPORT_KAFKA_TOPIC, topic)
	cfg.SetUint32(EVENT_EXPORT_BUFFER_SIZE, bufferSize)
	return cfg
}

func ForHttpServerTests(requestsPerSecond uint32) HttpServerConfig {
	cfg := emptyConfig()
	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, requestsPerSecond)
	cfg.SetBool(PROFILING, false)
	return cfg
}

// ForNodeTests is the production config bound to a random local port, with atomicity switchable for host behavior tests
func ForNodeTests(atomicTransactions bool) mutableNodeConfig {
	cfg := defaultProductionConfig()
	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 0)
	cfg.SetBool(VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS, atomicTransactions)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, time.Hour)
	return cfg
}
