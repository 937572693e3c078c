// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	// 3 free calls, then 0.01 per call
	cfg.SetUint32(CALL_TRACKER_FREE_CALL_ALLOWANCE, 3)
	cfg.SetString(CALL_TRACKER_FEE_PER_EXTRA_CALL, "0.01")
	cfg.SetString(CALL_TRACKER_TOKEN_SYMBOL, "NEAR")

	cfg.SetBool(VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS, true)

	// empty dsn keeps state in memory
	cfg.SetString(STATE_STORAGE_POSTGRES_DSN, "")

	// no brokers means events are only logged
	cfg.SetString(EVENT_EXPORT_KAFKA_BROKERS, "")
	cfg.SetString(EVENT_EXPORT_KAFKA_TOPIC, "call-tracker-events")
	cfg.SetUint32(EVENT_EXPORT_BUFFER_SIZE, 1000)

	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 10*time.Second)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 100)
	cfg.SetBool(PROFILING, false)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, false)

	return cfg
}

// config for a node serving real traffic
func ForProduction() mutableNodeConfig {
	return defaultProductionConfig()
}

// config for a local node: verbose logs, profiling and no request limit
func ForDevelopment() mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetBool(PROFILING, true)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 0)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 5*time.Second)

	return cfg
}
