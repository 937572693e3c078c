// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import "github.com/orbs-network/call-tracker-go/primitives"

// PaymentError is implemented by contract errors caused by a missing or too small attached deposit.
type PaymentError interface {
	error
	RequiredPayment() primitives.Amount
}
