// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package calltracker

import (
	"encoding/binary"
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
)

type contractConfig struct {
	allowance uint32
	fee       primitives.Amount
	symbol    string
}

func (c *contractConfig) CallTrackerFreeCallAllowance() uint32          { return c.allowance }
func (c *contractConfig) CallTrackerFeePerExtraCall() primitives.Amount { return c.fee }
func (c *contractConfig) CallTrackerTokenSymbol() string                { return c.symbol }

func defaultConfig() *contractConfig {
	return &contractConfig{allowance: 3, fee: primitives.MustParseAmount("0.01"), symbol: "NEAR"}
}

type recordedEvent struct {
	name string
	args []interface{}
}

// harness plays the host for a single contract instance. State writes are applied immediately and
// never rolled back, which is the strictest host a contract can run on.
type harness struct {
	ctx      types.Context
	contract *contract
	state    map[string]uint32
	signer   primitives.AccountId
	deposit  primitives.Amount
	events   []recordedEvent
}

func newHarness(logger log.Logger, config types.ContractConfig) *harness {
	h := &harness{
		ctx:   types.Context(1),
		state: make(map[string]uint32),
	}
	base := types.NewBaseContract(h, h, h, h, config, logger)
	h.contract = CONTRACT.InitSingleton(base).(*contract)
	return h
}

func (h *harness) callAs(account primitives.AccountId) {
	h.signer = account
	h.deposit = primitives.ZeroAmount
}

func (h *harness) attach(amount string) {
	h.deposit = primitives.MustParseAmount(amount)
}

func (h *harness) count(account primitives.AccountId) uint32 {
	return h.state[countKey(account)]
}

func (h *harness) recordFreeCalls(t testing.TB, n int) {
	for i := 0; i < n; i++ {
		_, err := h.contract.recordCall(h.ctx)
		require.NoError(t, err, "free call %d should succeed", i+1)
	}
}

func (h *harness) GetSignerAddress(ctx types.Context) (primitives.AccountId, error) {
	return h.signer, nil
}

func (h *harness) GetOwnContractName(ctx types.Context) (primitives.ContractName, error) {
	return CONTRACT_NAME, nil
}

func (h *harness) GetAttachedDeposit(ctx types.Context) (primitives.Amount, error) {
	return h.deposit, nil
}

func (h *harness) EmitEvent(ctx types.Context, eventName string, args ...interface{}) error {
	h.events = append(h.events, recordedEvent{name: eventName, args: args})
	return nil
}

func (h *harness) ReadUint32ByKey(ctx types.Context, key string) (uint32, error) {
	return h.state[key], nil
}

func (h *harness) WriteUint32ByKey(ctx types.Context, key string, value uint32) error {
	h.state[key] = value
	return nil
}

func (h *harness) ReadBytesByKey(ctx types.Context, key string) ([]byte, error) {
	v, found := h.state[key]
	if !found {
		return nil, nil
	}
	res := make([]byte, 4)
	binary.LittleEndian.PutUint32(res, v)
	return res, nil
}

func (h *harness) ReadStringByKey(ctx types.Context, key string) (string, error) {
	b, err := h.ReadBytesByKey(ctx, key)
	return string(b), err
}

func (h *harness) ReadUint64ByKey(ctx types.Context, key string) (uint64, error) {
	return uint64(h.state[key]), nil
}

func (h *harness) WriteBytesByKey(ctx types.Context, key string, value []byte) error {
	padded := make([]byte, 4)
	copy(padded, value)
	h.state[key] = binary.LittleEndian.Uint32(padded)
	return nil
}

func (h *harness) WriteStringByKey(ctx types.Context, key string, value string) error {
	return h.WriteBytesByKey(ctx, key, []byte(value))
}

func (h *harness) WriteUint64ByKey(ctx types.Context, key string, value uint64) error {
	h.state[key] = uint32(value)
	return nil
}

func (h *harness) ClearByKey(ctx types.Context, key string) error {
	delete(h.state, key)
	return nil
}
