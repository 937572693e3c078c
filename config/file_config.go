// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// keys whose string values must never be read as durations
var plainStringKeys = map[string]bool{
	CALL_TRACKER_FEE_PER_EXTRA_CALL: true,
	CALL_TRACKER_TOKEN_SYMBOL:       true,
	STATE_STORAGE_POSTGRES_DSN:      true,
	EVENT_EXPORT_KAFKA_BROKERS:      true,
	EVENT_EXPORT_KAFKA_TOPIC:        true,
	HTTP_ADDRESS:                    true,
}

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return errors.Wrap(err, "config is not a json object")
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		name := convertKeyName(key)

		switch v := value.(type) {
		case bool:
			cfg.SetBool(name, v)
		case float64:
			if v < 0 || v != float64(uint32(v)) {
				return errors.Errorf("could not decode value for config key %s: %v is not a uint32", key, v)
			}
			cfg.SetUint32(name, uint32(v))
		case string:
			if plainStringKeys[name] {
				cfg.SetString(name, v)
			} else if duration, decodeError := time.ParseDuration(v); decodeError == nil {
				cfg.SetDuration(name, duration)
			} else {
				cfg.SetString(name, v)
			}
		default:
			return errors.Errorf("could not decode value for config key %s: unsupported type %T", key, value)
		}
	}

	return nil
}

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func (i *FilesPaths) Type() string {
	return "stringSlice"
}

// GetNodeConfigFromFiles starts from the production preset and applies every json file in order.
func GetNodeConfigFromFiles(configFiles FilesPaths) (mutableNodeConfig, error) {
	cfg := ForProduction()

	for _, configFile := range configFiles {
		contents, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open config file %s", configFile)
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "could not apply config file %s", configFile)
		}
	}

	return cfg, nil
}
