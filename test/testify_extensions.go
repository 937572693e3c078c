// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/stretchr/testify/assert"
)

// amounts are compared by value, so 0.010 equals 0.01
var cmpOptions = []cmp.Option{
	cmp.Comparer(func(a, b primitives.Amount) bool { return a.Equal(b) }),
}

func AssertCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) bool {
	if !cmp.Equal(expected, actual, cmpOptions...) {
		diff := cmp.Diff(expected, actual, cmpOptions...)
		return assert.Fail(t, fmt.Sprintf("Not equal (-expected +actual):\n%s", diff), msgAndArgs...)
	}
	return true
}

func RequireCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if AssertCmpEqual(t, expected, actual, msgAndArgs...) {
		return
	}
	t.FailNow()
}
