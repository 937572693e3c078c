// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"sync/atomic"

	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("state-storage")

type metrics struct {
	readKeys      *metric.Rate
	committedKeys *metric.Rate
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		readKeys:      m.NewRate("StateStorage.ReadKeys.Count"),
		committedKeys: m.NewRate("StateStorage.CommittedKeys.Count"),
	}
}

type service struct {
	persistence adapter.StatePersistence
	logger      log.Logger
	metrics     *metrics

	commitCount uint64
}

func NewStateStorage(persistence adapter.StatePersistence, parentLogger log.Logger, metricFactory metric.Factory) services.StateStorage {
	return &service{
		persistence: persistence,
		logger:      parentLogger.WithTags(LogTag),
		metrics:     newMetrics(metricFactory),
	}
}

func (s *service) CommitStateDiff(ctx context.Context, input *services.CommitStateDiffInput) (*services.CommitStateDiffOutput, error) {
	diff := adapter.ChainState{}
	keys := 0
	for _, contractDiff := range input.ContractStateDiffs {
		if contractDiff.ContractName == "" {
			return nil, errors.New("state diff is missing a contract name")
		}
		if _, found := diff[contractDiff.ContractName]; !found {
			diff[contractDiff.ContractName] = adapter.ContractState{}
		}
		for _, record := range contractDiff.StateDiffs {
			diff[contractDiff.ContractName][record.Key] = record.Value
			keys++
		}
	}

	if err := s.persistence.Write(ctx, diff); err != nil {
		return nil, errors.Wrap(err, "failed to persist state diff")
	}

	commitCount := atomic.AddUint64(&s.commitCount, 1)
	s.metrics.committedKeys.Measure(int64(keys))
	s.logger.Info("committed state diff", log.Int("keys", keys), log.Uint64("commit-count", commitCount))

	return &services.CommitStateDiffOutput{CommitCount: commitCount}, nil
}

// ReadKeys returns one record per requested key, missing keys have an empty value.
func (s *service) ReadKeys(ctx context.Context, input *services.ReadKeysInput) (*services.ReadKeysOutput, error) {
	if input.ContractName == "" {
		return nil, errors.New("missing contract name")
	}

	records := make([]*protocol.StateRecord, 0, len(input.Keys))
	for _, key := range input.Keys {
		value, found, err := s.persistence.Read(ctx, input.ContractName, key)
		if err != nil {
			s.logger.Info("failed to read key", logfields.Contract(input.ContractName), log.String("key", key), log.Error(err))
			return nil, err
		}
		if !found {
			value = []byte{}
		}
		records = append(records, &protocol.StateRecord{Key: key, Value: value})
	}
	s.metrics.readKeys.Measure(int64(len(records)))

	return &services.ReadKeysOutput{StateRecords: records}, nil
}
