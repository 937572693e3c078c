// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/jsonapi"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func startNode(t *testing.T, parent *with.LoggingHarness, nodeConfig config.NodeConfig) (Node, *jsonapi.Client) {
	node, err := NewNode(nodeConfig, parent.Logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		node.GracefulShutdown(ctx)
		node.WaitUntilShutdown(ctx)
	})
	return node, jsonapi.NewClient(fmt.Sprintf("http://127.0.0.1:%d", node.HttpPort()), 5*time.Second)
}

func TestNode_ChargesAfterFreeCalls(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		_, client := startNode(t, parent, config.ForNodeTests(true))
		ctx := context.Background()

		for i := 1; i <= 3; i++ {
			receipt, err := client.RecordCall(ctx, "alice.testnet", primitives.ZeroAmount)
			require.NoError(t, err, "call %d should be free", i)
			require.Equal(t, fmt.Sprintf("Call recorded. You have called this function %d times.", i), receipt.OutputArguments[0].StringValue)
		}

		_, err := client.RecordCall(ctx, "alice.testnet", primitives.ZeroAmount)
		var paymentErr *jsonapi.PaymentRequiredError
		require.True(t, errors.As(err, &paymentErr), "fourth call should require payment, got %v", err)
		require.Equal(t, "0.01", paymentErr.RequiredPayment().String())

		count, err := client.GetCallCount(ctx, "alice.testnet")
		require.NoError(t, err)
		require.EqualValues(t, 3, count, "rejected call must not be counted")

		receipt, err := client.RecordCall(ctx, "alice.testnet", primitives.MustParseAmount("0.01"))
		require.NoError(t, err)
		require.Equal(t, "Call recorded. You have called this function 4 times.", receipt.OutputArguments[0].StringValue)

		balance, err := client.GetContractBalance(ctx, "CallTracker")
		require.NoError(t, err)
		require.Equal(t, "0.01", balance.String())
	})
}

func TestNode_UnknownAccountHasNoCalls(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		node, client := startNode(t, parent, config.ForNodeTests(true))
		require.NotNil(t, node.PublicApi())

		count, err := client.GetCallCount(context.Background(), "nobody.testnet")
		require.NoError(t, err)
		require.Zero(t, count)

		health, err := client.Health(context.Background())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
	})
}

func TestNode_StartsWithKafkaExportAndShutsDown(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForNodeTests(true)
		cfg.SetString(config.EVENT_EXPORT_KAFKA_BROKERS, "127.0.0.1:1")

		node, err := NewNode(cfg, parent.Logger)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		node.GracefulShutdown(ctx)
		node.WaitUntilShutdown(ctx)
		require.NoError(t, ctx.Err(), "node should shut down before the deadline")
	})
}

func TestNode_FailsWhenPostgresIsUnreachable(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForNodeTests(true)
		cfg.SetString(config.STATE_STORAGE_POSTGRES_DSN, "postgres://user@127.0.0.1:1/calls?sslmode=disable&connect_timeout=1")

		_, err := NewNode(cfg, parent.Logger)
		require.Error(t, err)
	})
}
