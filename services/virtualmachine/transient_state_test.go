// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/stretchr/testify/require"
)

type keyValuePair struct {
	key     string
	value   []byte
	isDirty bool
}

func requireDirtyPairs(t *testing.T, s *transientState, contract primitives.ContractName, expected []keyValuePair) {
	d := []keyValuePair{}
	s.forDirty(contract, func(key string, value []byte) {
		d = append(d, keyValuePair{key, value, true})
	})
	require.Equal(t, expected, d, "dirty keys should be equal")
}

func TestTransientStateReadMissingContract(t *testing.T) {
	s := newTransientState()

	_, found := s.getValue("Contract1", "c/alice")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateReadMissingKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "c/bob", []byte{0x77, 0x88}, false)

	_, found := s.getValue("Contract1", "c/alice")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateWriteReadKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "c/alice", []byte{0x77, 0x88}, false)

	v, found := s.getValue("Contract1", "c/alice")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x77, 0x88}, v, "value should be equal")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateReplaceKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "c/alice", []byte{0x77, 0x88}, false)
	s.setValue("Contract1", "c/alice", []byte{0x99, 0xaa, 0xbb}, false)

	v, found := s.getValue("Contract1", "c/alice")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x99, 0xaa, 0xbb}, v, "value should be equal")
}

func TestTransientStateWriteDirtyReadKeys(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x22, 0x33}, true)
	s.setValue("Contract1", "k2", []byte{0x33, 0x44}, false)
	s.setValue("Contract1", "k3", []byte{0x44, 0x55}, false)
	s.setValue("Contract1", "k3", []byte{0x55, 0x66}, true)
	s.setValue("Contract1", "k4", []byte{0x66, 0x77}, true)
	s.setValue("Contract1", "k4", []byte{0x77, 0x88}, false)
	s.setValue("Contract1", "k5", []byte{0x88, 0x99}, true)
	s.setValue("Contract1", "k5", []byte{0x99, 0xaa}, true)

	v, found := s.getValue("Contract1", "k1")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x22, 0x33}, v, "value should be equal")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{
		{"k1", []byte{0x22, 0x33}, true},
		{"k3", []byte{0x55, 0x66}, true},
		{"k5", []byte{0x99, 0xaa}, true},
	})
	require.True(t, s.isDirty())
}

func TestTransientStateWithoutWritesIsClean(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x01}, false)
	require.False(t, s.isDirty())
}
