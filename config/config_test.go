// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/stretchr/testify/require"
)

func TestConfig_ProductionDefaults(t *testing.T) {
	cfg := ForProduction()

	require.EqualValues(t, 3, cfg.CallTrackerFreeCallAllowance())
	require.True(t, cfg.CallTrackerFeePerExtraCall().Equal(primitives.MustParseAmount("0.01")))
	require.Equal(t, "NEAR", cfg.CallTrackerTokenSymbol())
	require.True(t, cfg.VirtualMachineAtomicTransactions())
	require.Equal(t, ":8080", cfg.HttpAddress())
	require.Empty(t, cfg.EventExportKafkaBrokers())
	require.NoError(t, Validate(cfg))
}

func TestConfig_OverrideFromJson(t *testing.T) {
	cfg := ForProduction()
	err := modifyFromJson(cfg, `
{
	"call-tracker-free-call-allowance": 5,
	"call-tracker-fee-per-extra-call": "0.5",
	"virtual-machine-atomic-transactions": false,
	"event-export-kafka-brokers": "kafka-1:9092, kafka-2:9092",
	"metrics-report-interval": "1m",
	"http-address": ":9090"
}`)
	require.NoError(t, err)

	require.EqualValues(t, 5, cfg.CallTrackerFreeCallAllowance())
	require.Equal(t, "0.5", cfg.CallTrackerFeePerExtraCall().String())
	require.False(t, cfg.VirtualMachineAtomicTransactions())
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.EventExportKafkaBrokers())
	require.Equal(t, time.Minute, cfg.MetricsReportInterval())
	require.Equal(t, ":9090", cfg.HttpAddress())
}

func TestConfig_ParsesZeroValues(t *testing.T) {
	cfg := ForProduction()
	err := modifyFromJson(cfg, `{"call-tracker-free-call-allowance": 0, "profiling": false}`)
	require.NoError(t, err)

	require.EqualValues(t, 0, cfg.CallTrackerFreeCallAllowance())
	require.False(t, cfg.Profiling())
	require.NoError(t, Validate(cfg), "an allowance of zero is legal")
}

func TestConfig_RejectsNegativeNumbers(t *testing.T) {
	cfg := ForProduction()
	require.Error(t, modifyFromJson(cfg, `{"event-export-buffer-size": -1}`))
}

func TestConfig_RejectsNonObjectJson(t *testing.T) {
	require.Error(t, modifyFromJson(ForProduction(), `[1, 2]`))
}

func TestConfig_FromFilesAppliesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, os.WriteFile(first, []byte(`{"http-address": ":1111", "call-tracker-token-symbol": "ORBS"}`), 0600))
	require.NoError(t, os.WriteFile(second, []byte(`{"http-address": ":2222"}`), 0600))

	cfg, err := GetNodeConfigFromFiles(FilesPaths{first, second})
	require.NoError(t, err)
	require.Equal(t, ":2222", cfg.HttpAddress())
	require.Equal(t, "ORBS", cfg.CallTrackerTokenSymbol())
}

func TestConfig_FromMissingFileFails(t *testing.T) {
	_, err := GetNodeConfigFromFiles(FilesPaths{filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("missing fee", func(t *testing.T) {
		cfg := emptyConfig()
		cfg.SetUint32(CALL_TRACKER_FREE_CALL_ALLOWANCE, 3)
		cfg.SetString(HTTP_ADDRESS, ":8080")
		require.Error(t, Validate(cfg))
	})
	t.Run("negative fee", func(t *testing.T) {
		cfg := ForProduction()
		cfg.SetString(CALL_TRACKER_FEE_PER_EXTRA_CALL, "-0.01")
		require.Error(t, Validate(cfg))
	})
	t.Run("brokers without topic", func(t *testing.T) {
		cfg := ForProduction()
		cfg.SetString(EVENT_EXPORT_KAFKA_BROKERS, "localhost:9092")
		cfg.SetString(EVENT_EXPORT_KAFKA_TOPIC, "")
		require.Error(t, Validate(cfg))
	})
	t.Run("empty http address", func(t *testing.T) {
		cfg := ForProduction()
		cfg.SetString(HTTP_ADDRESS, "")
		require.Error(t, Validate(cfg))
	})
}

func TestVersion_String(t *testing.T) {
	require.Equal(t, "development", Version{}.String())
	require.Equal(t, "v1.2.0 (abc123)", Version{Semantic: "v1.2.0", Commit: "abc123"}.String())
}
