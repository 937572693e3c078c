// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orbs-network/call-tracker-go/bootstrap"
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation"
	"github.com/orbs-network/call-tracker-go/jsonapi"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/test"
	"github.com/stretchr/testify/require"
)

type E2EConfig struct {
	Bootstrap   bool
	ApiEndpoint string
}

// an empty API_ENDPOINT starts a local node, otherwise the suite runs against the given one
func getConfig() E2EConfig {
	apiEndpoint := os.Getenv("API_ENDPOINT")
	return E2EConfig{
		Bootstrap:   apiEndpoint == "",
		ApiEndpoint: apiEndpoint,
	}
}

type harness struct {
	node        bootstrap.Node
	apiEndpoint string
	client      *jsonapi.Client
}

func newHarness(t *testing.T) *harness {
	h := &harness{apiEndpoint: getConfig().ApiEndpoint}

	if getConfig().Bootstrap {
		cfg := config.ForNodeTests(true)
		logger := instrumentation.GetLogger(filepath.Join(t.TempDir(), "node.log"), true, false, cfg)

		node, err := bootstrap.NewNode(cfg, logger)
		require.NoError(t, err)
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			node.GracefulShutdown(ctx)
			node.WaitUntilShutdown(ctx)
		})

		h.node = node
		h.apiEndpoint = fmt.Sprintf("http://127.0.0.1:%d", node.HttpPort())
	}

	h.client = jsonapi.NewClient(h.apiEndpoint, 10*time.Second)
	require.True(t, test.EventuallyWithin(5*time.Second, func() bool {
		_, err := h.client.Health(context.Background())
		return err == nil
	}), "node at %s is not healthy", h.apiEndpoint)
	return h
}

// newAccount is unique per run so the suite can run repeatedly against a long lived node
func newAccount(prefix string) primitives.AccountId {
	return primitives.AccountId(fmt.Sprintf("%s-%s.testnet", prefix, uuid.New().String()))
}

func (h *harness) recordCall(t *testing.T, account primitives.AccountId, deposit string) (string, error) {
	receipt, err := h.client.RecordCall(context.Background(), account, primitives.MustParseAmount(deposit))
	if err != nil {
		return "", err
	}
	require.NotEmpty(t, receipt.OutputArguments, "a successful record_call returns its message")
	return receipt.OutputArguments[0].StringValue, nil
}

func (h *harness) callCount(t *testing.T, account primitives.AccountId) uint32 {
	count, err := h.client.GetCallCount(context.Background(), account)
	require.NoError(t, err)
	return count
}

func (h *harness) balance(t *testing.T) primitives.Amount {
	balance, err := h.client.GetContractBalance(context.Background(), "CallTracker")
	require.NoError(t, err)
	return balance
}

func (h *harness) httpGet(t *testing.T, path string) string {
	res, err := http.Get(h.apiEndpoint + path)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode, "got http status code %d calling %s", res.StatusCode, path)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}
