// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/pkg/errors"
)

type keyChecker interface {
	has(key string) bool
}

func Validate(cfg NodeConfig) error {
	if c, ok := cfg.(keyChecker); ok {
		for _, key := range []string{CALL_TRACKER_FREE_CALL_ALLOWANCE, CALL_TRACKER_FEE_PER_EXTRA_CALL, HTTP_ADDRESS} {
			if !c.has(key) {
				return errors.Errorf("config key %s must be set", key)
			}
		}
	}

	if c, ok := cfg.(*config); ok {
		if _, err := primitives.ParseAmount(c.kv[CALL_TRACKER_FEE_PER_EXTRA_CALL].StringValue); err != nil {
			return errors.Wrapf(err, "config key %s is not a valid fee", CALL_TRACKER_FEE_PER_EXTRA_CALL)
		}
	}

	if cfg.HttpAddress() == "" {
		return errors.Errorf("config key %s must not be empty", HTTP_ADDRESS)
	}

	if len(cfg.EventExportKafkaBrokers()) > 0 {
		if cfg.EventExportKafkaTopic() == "" {
			return errors.Errorf("config key %s is required when kafka brokers are set", EVENT_EXPORT_KAFKA_TOPIC)
		}
		if cfg.EventExportBufferSize() == 0 {
			return errors.Errorf("config key %s must be positive when kafka brokers are set", EVENT_EXPORT_BUFFER_SIZE)
		}
	}

	return nil
}
