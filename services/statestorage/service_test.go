// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"reflect"
	"testing"

	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/call-tracker-go/test/with"
	"github.com/orbs-network/go-mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type mockPersistence struct {
	mock.Mock
}

func (m *mockPersistence) Write(ctx context.Context, diff adapter.ChainState) error {
	return m.Called(ctx, diff).Error(0)
}

func (m *mockPersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	ret := m.Called(ctx, contract, key)
	if value := ret.Get(0); value != nil {
		return value.([]byte), ret.Bool(1), ret.Error(2)
	}
	return nil, ret.Bool(1), ret.Error(2)
}

func (m *mockPersistence) Dump() string {
	return "mock"
}

func diffOf(contract primitives.ContractName, kv ...string) *services.CommitStateDiffInput {
	records := []*protocol.StateRecord{}
	for i := 0; i+1 < len(kv); i += 2 {
		records = append(records, &protocol.StateRecord{Key: kv[i], Value: []byte(kv[i+1])})
	}
	return &services.CommitStateDiffInput{
		ContractStateDiffs: []*protocol.ContractStateDiff{{ContractName: contract, StateDiffs: records}},
	}
}

func TestCommitThenReadKeys(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		s := NewStateStorage(memory.NewStatePersistence(metric.NewRegistry()), parent.Logger, metric.NewRegistry())
		ctx := context.Background()

		out, err := s.CommitStateDiff(ctx, diffOf("CallTracker", "c/alice", "\x01\x00\x00\x00"))
		require.NoError(t, err)
		require.EqualValues(t, 1, out.CommitCount)

		read, err := s.ReadKeys(ctx, &services.ReadKeysInput{ContractName: "CallTracker", Keys: []string{"c/alice", "c/bob"}})
		require.NoError(t, err)
		require.Len(t, read.StateRecords, 2)
		require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, read.StateRecords[0].Value)
		require.Equal(t, "c/bob", read.StateRecords[1].Key)
		require.Empty(t, read.StateRecords[1].Value, "missing key should read as empty")
	})
}

func TestCommitCountIncreases(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		s := NewStateStorage(memory.NewStatePersistence(metric.NewRegistry()), parent.Logger, metric.NewRegistry())

		for i := 1; i <= 3; i++ {
			out, err := s.CommitStateDiff(context.Background(), diffOf("CallTracker", "c/alice", "x"))
			require.NoError(t, err)
			require.EqualValues(t, i, out.CommitCount)
		}
	})
}

func TestReadKeysWithoutContractNameFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		s := NewStateStorage(memory.NewStatePersistence(metric.NewRegistry()), parent.Logger, metric.NewRegistry())

		_, err := s.ReadKeys(context.Background(), &services.ReadKeysInput{Keys: []string{"c/alice"}})
		require.Error(t, err)
	})
}

func TestCommitWithoutContractNameFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		persistence := &mockPersistence{}
		persistence.Never("Write", mock.Any, mock.Any)
		s := NewStateStorage(persistence, parent.Logger, metric.NewRegistry())

		_, err := s.CommitStateDiff(context.Background(), diffOf("", "k", "v"))
		require.Error(t, err)

		ok, err := persistence.Verify()
		require.True(t, ok, "%v", err)
	})
}

func TestCommitPassesWholeDiffToPersistence(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		persistence := &mockPersistence{}
		expected := adapter.ChainState{"CallTracker": {"c/alice": []byte("a"), "c/bob": []byte("b")}}
		diffMatcher := func(i interface{}) bool {
			return reflect.DeepEqual(expected, i)
		}
		persistence.When("Write", mock.Any, mock.AnyIf("whole diff", diffMatcher)).Return(nil).Times(1)
		s := NewStateStorage(persistence, parent.Logger, metric.NewRegistry())

		_, err := s.CommitStateDiff(context.Background(), diffOf("CallTracker", "c/alice", "a", "c/bob", "b"))
		require.NoError(t, err)

		ok, err := persistence.Verify()
		require.True(t, ok, "%v", err)
	})
}

func TestCommitFailureIsReturned(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		persistence := &mockPersistence{}
		persistence.When("Write", mock.Any, mock.Any).Return(errors.New("disk full")).Times(1)
		s := NewStateStorage(persistence, parent.Logger, metric.NewRegistry())

		_, err := s.CommitStateDiff(context.Background(), diffOf("CallTracker", "c/alice", "a"))
		require.Error(t, err)
	})
}

func TestReadFailureIsReturned(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		persistence := &mockPersistence{}
		persistence.When("Read", mock.Any, mock.Any, mock.Any).Return(nil, false, errors.New("connection reset"))
		s := NewStateStorage(persistence, parent.Logger, metric.NewRegistry())

		_, err := s.ReadKeys(context.Background(), &services.ReadKeysInput{ContractName: "CallTracker", Keys: []string{"c/alice"}})
		require.EqualError(t, err, "connection reset")
	})
}
