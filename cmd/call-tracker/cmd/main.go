// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package cmd

import (
	"encoding/json"
	"io"
	"time"

	"github.com/orbs-network/call-tracker-go/jsonapi"
	"github.com/spf13/cobra"
)

type clientOptions struct {
	apiEndpoint string
	timeout     time.Duration
}

func (o *clientOptions) client() *jsonapi.Client {
	return jsonapi.NewClient(o.apiEndpoint, o.timeout)
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &clientOptions{}
	rootCmd := &cobra.Command{
		Use:          "call-tracker",
		Short:        "Call Tracker node and client",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiEndpoint, "api-endpoint", "http://localhost:8080", "base url of a running node")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "timeout of a single request to the node")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRecordCallCmd(opts))
	rootCmd.AddCommand(newCallCountCmd(opts))
	rootCmd.AddCommand(newBalanceCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func dumpJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
