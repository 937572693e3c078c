// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"testing"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/stretchr/testify/require"
)

type withAmount struct {
	Name   string
	Amount primitives.Amount
}

func TestAssertCmpEqual_ComparesAmountsByValue(t *testing.T) {
	expected := withAmount{Name: "fee", Amount: primitives.MustParseAmount("0.01")}
	actual := withAmount{Name: "fee", Amount: primitives.MustParseAmount("0.010")}
	require.True(t, AssertCmpEqual(t, expected, actual))
}

func TestAssertCmpEqual_ReportsDifferences(t *testing.T) {
	inner := &testing.T{}
	expected := withAmount{Name: "fee", Amount: primitives.MustParseAmount("0.01")}
	actual := withAmount{Name: "fee", Amount: primitives.MustParseAmount("0.02")}
	require.False(t, AssertCmpEqual(inner, expected, actual))
}
