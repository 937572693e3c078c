// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const ENV_PREFIX = "CALLTRACKER"

// envOverrides lists every key that may be overridden from the environment, e.g. CALLTRACKER_HTTP_ADDRESS.
// Unset variables leave the field nil and the config untouched.
type envOverrides struct {
	FreeCallAllowance      *uint32        `envconfig:"CALL_TRACKER_FREE_CALL_ALLOWANCE"`
	FeePerExtraCall        *string        `envconfig:"CALL_TRACKER_FEE_PER_EXTRA_CALL"`
	TokenSymbol            *string        `envconfig:"CALL_TRACKER_TOKEN_SYMBOL"`
	AtomicTransactions     *bool          `envconfig:"VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS"`
	PostgresDsn            *string        `envconfig:"STATE_STORAGE_POSTGRES_DSN"`
	KafkaBrokers           *string        `envconfig:"EVENT_EXPORT_KAFKA_BROKERS"`
	KafkaTopic             *string        `envconfig:"EVENT_EXPORT_KAFKA_TOPIC"`
	EventBufferSize        *uint32        `envconfig:"EVENT_EXPORT_BUFFER_SIZE"`
	SendTransactionTimeout *time.Duration `envconfig:"PUBLIC_API_SEND_TRANSACTION_TIMEOUT"`
	HttpAddress            *string        `envconfig:"HTTP_ADDRESS"`
	HttpRequestsPerSecond  *uint32        `envconfig:"HTTP_REQUESTS_PER_SECOND"`
	Profiling              *bool          `envconfig:"PROFILING"`
	MetricsReportInterval  *time.Duration `envconfig:"METRICS_REPORT_INTERVAL"`
	LoggerFullLog          *bool          `envconfig:"LOGGER_FULL_LOG"`
}

// LoadDotEnv copies the given .env files into the process environment without overriding variables
// that are already set. With no files, a missing ./.env is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "failed to load .env")
	}
	return nil
}

// ModifyFromEnvironment applies CALLTRACKER_* environment variables on top of cfg.
func ModifyFromEnvironment(cfg mutableNodeConfig) error {
	var env envOverrides
	if err := envconfig.Process(ENV_PREFIX, &env); err != nil {
		return errors.Wrap(err, "failed to read config from environment")
	}

	if env.FreeCallAllowance != nil {
		cfg.SetUint32(CALL_TRACKER_FREE_CALL_ALLOWANCE, *env.FreeCallAllowance)
	}
	setStringIfPresent(cfg, CALL_TRACKER_FEE_PER_EXTRA_CALL, env.FeePerExtraCall)
	setStringIfPresent(cfg, CALL_TRACKER_TOKEN_SYMBOL, env.TokenSymbol)
	setBoolIfPresent(cfg, VIRTUAL_MACHINE_ATOMIC_TRANSACTIONS, env.AtomicTransactions)
	setStringIfPresent(cfg, STATE_STORAGE_POSTGRES_DSN, env.PostgresDsn)
	setStringIfPresent(cfg, EVENT_EXPORT_KAFKA_BROKERS, env.KafkaBrokers)
	setStringIfPresent(cfg, EVENT_EXPORT_KAFKA_TOPIC, env.KafkaTopic)
	if env.EventBufferSize != nil {
		cfg.SetUint32(EVENT_EXPORT_BUFFER_SIZE, *env.EventBufferSize)
	}
	if env.SendTransactionTimeout != nil {
		cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, *env.SendTransactionTimeout)
	}
	setStringIfPresent(cfg, HTTP_ADDRESS, env.HttpAddress)
	if env.HttpRequestsPerSecond != nil {
		cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, *env.HttpRequestsPerSecond)
	}
	setBoolIfPresent(cfg, PROFILING, env.Profiling)
	if env.MetricsReportInterval != nil {
		cfg.SetDuration(METRICS_REPORT_INTERVAL, *env.MetricsReportInterval)
	}
	setBoolIfPresent(cfg, LOGGER_FULL_LOG, env.LoggerFullLog)

	return nil
}

func setStringIfPresent(cfg mutableNodeConfig, key string, value *string) {
	if value != nil {
		cfg.SetString(key, *value)
	}
}

func setBoolIfPresent(cfg mutableNodeConfig, key string, value *bool) {
	if value != nil {
		cfg.SetBool(key, *value)
	}
}

// Load builds the node config: production preset, then json files, then .env, then the environment.
func Load(configFiles FilesPaths, dotEnvFiles ...string) (NodeConfig, error) {
	cfg, err := GetNodeConfigFromFiles(configFiles)
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(dotEnvFiles...); err != nil {
		return nil, err
	}
	if err := ModifyFromEnvironment(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
