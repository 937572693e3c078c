// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
)

type metrics struct {
	numberOfKeys      *metric.Gauge
	numberOfContracts *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfKeys:      m.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
		numberOfContracts: m.NewGauge("StateStoragePersistence.TotalNumberOfContracts.Count"),
	}
}

type InMemoryStatePersistence struct {
	metrics   *metrics
	mutex     sync.RWMutex
	fullState adapter.ChainState
}

func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		metrics:   newMetrics(metricFactory),
		fullState: adapter.ChainState{},
	}
}

func (sp *InMemoryStatePersistence) reportSize() {
	nContracts := 0
	nKeys := 0
	for _, records := range sp.fullState {
		nContracts++
		nKeys = nKeys + len(records)
	}
	sp.metrics.numberOfKeys.Update(int64(nKeys))
	sp.metrics.numberOfContracts.Update(int64(nContracts))
}

func (sp *InMemoryStatePersistence) Write(ctx context.Context, diff adapter.ChainState) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	for contract, records := range diff {
		for key, value := range records {
			sp._writeOneRecord(contract, key, value)
		}
	}
	sp.reportSize()
	return nil
}

func (sp *InMemoryStatePersistence) _writeOneRecord(c primitives.ContractName, key string, value []byte) {
	if _, ok := sp.fullState[c]; !ok {
		sp.fullState[c] = adapter.ContractState{}
	}

	if adapter.IsZeroValue(value) {
		delete(sp.fullState[c], key)
		if len(sp.fullState[c]) == 0 {
			delete(sp.fullState, c)
		}
		return
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	sp.fullState[c][key] = stored
}

func (sp *InMemoryStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	record, ok := sp.fullState[contract][key]
	return record, ok, nil
}

func (sp *InMemoryStatePersistence) Dump() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	output := strings.Builder{}
	output.WriteString("{")
	contracts := make([]primitives.ContractName, 0, len(sp.fullState))
	for c := range sp.fullState {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool { return contracts[i] < contracts[j] })
	for _, currentContract := range contracts {
		keys := make([]string, 0, len(sp.fullState[currentContract]))
		for k := range sp.fullState[currentContract] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		output.WriteString(string(currentContract) + ":{")
		for _, k := range keys {
			output.WriteString(fmt.Sprintf("%s:%x,", k, sp.fullState[currentContract][k]))
		}
		output.WriteString("},")
	}
	output.WriteString("}")
	return output.String()
}
