// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package calltracker

import (
	"fmt"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/pkg/errors"
)

var ErrInsufficientPayment = errors.New("insufficient attached deposit")
var ErrCounterOverflow = errors.New("call counter overflow")

// InsufficientPaymentError is returned when a call past the free allowance carries less than the fee.
// Retrying with at least Required attached succeeds.
type InsufficientPaymentError struct {
	Required          primitives.Amount
	Attached          primitives.Amount
	FreeCallAllowance uint32
	TokenSymbol       string
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("%s: you must pay %s %s after %d calls", ErrInsufficientPayment, e.Required, e.TokenSymbol, e.FreeCallAllowance)
}

func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}

func (e *InsufficientPaymentError) RequiredPayment() primitives.Amount {
	return e.Required
}

type CounterOverflowError struct {
	Account primitives.AccountId
}

func (e *CounterOverflowError) Error() string {
	return fmt.Sprintf("%s: account %s cannot record more calls", ErrCounterOverflow, e.Account)
}

func (e *CounterOverflowError) Is(target error) bool {
	return target == ErrCounterOverflow
}
