// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"

	"github.com/orbs-network/call-tracker-go/primitives"
)

type NodeConfig interface {
	// call tracker contract
	CallTrackerFreeCallAllowance() uint32
	CallTrackerFeePerExtraCall() primitives.Amount
	CallTrackerTokenSymbol() string

	// virtual machine
	VirtualMachineAtomicTransactions() bool

	// state storage
	StateStoragePostgresDsn() string

	// event export
	EventExportKafkaBrokers() []string
	EventExportKafkaTopic() string
	EventExportBufferSize() uint32

	// public api
	SendTransactionTimeout() time.Duration

	// http
	HttpAddress() string
	HttpRequestsPerSecond() uint32
	Profiling() bool

	// instrumentation
	MetricsReportInterval() time.Duration
	LoggerFullLog() bool
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig
}

type NativeProcessorConfig interface {
	CallTrackerFreeCallAllowance() uint32
	CallTrackerFeePerExtraCall() primitives.Amount
	CallTrackerTokenSymbol() string
}

type VirtualMachineConfig interface {
	VirtualMachineAtomicTransactions() bool
}

type StateStorageConfig interface {
	StateStoragePostgresDsn() string
}

type EventExportConfig interface {
	EventExportKafkaBrokers() []string
	EventExportKafkaTopic() string
	EventExportBufferSize() uint32
}

type PublicApiConfig interface {
	SendTransactionTimeout() time.Duration
}

type LoggerConfig interface {
	LoggerFullLog() bool
}

type HttpServerConfig interface {
	HttpAddress() string
	HttpRequestsPerSecond() uint32
	Profiling() bool
}
