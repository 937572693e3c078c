// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package cmd

import (
	"context"
	"fmt"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/spf13/cobra"
)

func newCallCountCmd(opts *clientOptions) *cobra.Command {
	var asJson bool
	c := &cobra.Command{
		Use:   "get-call-count <account>",
		Short: "Print how many calls an account has recorded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			account := primitives.AccountId(args[0])
			count, err := opts.client().GetCallCount(context.Background(), account)
			if err != nil {
				return err
			}
			if asJson {
				return dumpJSON(c.OutOrStdout(), &protocol.CallCountResponse{Account: account, Count: count})
			}
			fmt.Fprintln(c.OutOrStdout(), count)
			return nil
		},
	}
	c.Flags().BoolVar(&asJson, "json", false, "print the response as json")
	return c
}

func newBalanceCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [contract]",
		Short: "Print the tokens collected by a contract, CallTracker by default.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			contractName := primitives.ContractName("CallTracker")
			if len(args) == 1 {
				contractName = primitives.ContractName(args[0])
			}
			balance, err := opts.client().GetContractBalance(context.Background(), contractName)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), balance)
			return nil
		},
	}
}
