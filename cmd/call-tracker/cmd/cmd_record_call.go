// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package cmd

import (
	"context"
	"fmt"

	"github.com/orbs-network/call-tracker-go/jsonapi"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRecordCallCmd(opts *clientOptions) *cobra.Command {
	var deposit string
	c := &cobra.Command{
		Use:   "record-call <account>",
		Short: "Record a call on behalf of an account.",
		Long:  "Record a call on behalf of an account. Calls beyond the free allowance need --deposit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			amount, err := primitives.ParseAmount(deposit)
			if err != nil {
				return err
			}

			receipt, err := opts.client().RecordCall(context.Background(), primitives.AccountId(args[0]), amount)
			var paymentErr *jsonapi.PaymentRequiredError
			if errors.As(err, &paymentErr) {
				return errors.Errorf("%s (retry with --deposit %s)", paymentErr.Error(), paymentErr.RequiredPayment())
			}
			if err != nil {
				return err
			}

			if len(receipt.OutputArguments) > 0 && receipt.OutputArguments[0].IsTypeStringValue() {
				fmt.Fprintln(c.OutOrStdout(), receipt.OutputArguments[0].StringValue)
			}
			fmt.Fprintf(c.OutOrStdout(), "tx-id: %s\n", receipt.TxId)
			return nil
		},
	}
	c.Flags().StringVar(&deposit, "deposit", "", "tokens to attach to the call, e.g. 0.01")
	return c
}
