// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"database/sql/driver"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// the smallest indivisible token unit is 10^-24 of a token
const YoctoExponent = 24

// amounts are u128 counts of yocto units
const maxAmountExponent = 38

var maxYocto = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

var ErrAmountOutOfRange = errors.New("amount is larger than the largest token amount")

// Amount is a non-negative fixed point token amount. The zero value is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

var ZeroAmount = Amount{}

func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return ZeroAmount, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroAmount, errors.Wrapf(err, "invalid amount %q", s)
	}
	return newAmount(d)
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// AmountFromYocto converts an integer number of yocto units into an Amount.
func AmountFromYocto(yocto *big.Int) (Amount, error) {
	if yocto == nil {
		return ZeroAmount, nil
	}
	return newAmount(decimal.NewFromBigInt(yocto, -YoctoExponent))
}

// the exponent is bounded before d is ever rescaled or formatted
func newAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return ZeroAmount, errors.New("amount must not be negative")
	}
	if d.IsZero() {
		return ZeroAmount, nil
	}
	if d.Exponent() > maxAmountExponent {
		return ZeroAmount, ErrAmountOutOfRange
	}
	if d.Exponent() < -YoctoExponent && !hasYoctoPrecision(d) {
		return ZeroAmount, errors.New("amount is finer than the smallest token unit")
	}
	a := Amount{d: d}
	if a.Yocto().Cmp(maxYocto) > 0 {
		return ZeroAmount, ErrAmountOutOfRange
	}
	return a, nil
}

// hasYoctoPrecision reports whether the digits below the yocto unit of a non-zero d are all zero
func hasYoctoPrecision(d decimal.Decimal) bool {
	coefficient := d.Coefficient()
	extraDigits := -int64(d.Exponent()) - YoctoExponent
	if extraDigits >= int64(len(coefficient.String())) {
		return false
	}
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(extraDigits), nil)
	return new(big.Int).Rem(coefficient, divisor).Sign() == 0
}

// Yocto returns the amount as an integer number of yocto units.
func (a Amount) Yocto() *big.Int {
	return a.d.Shift(YoctoExponent).BigInt()
}

// Add fails with ErrAmountOutOfRange when the sum no longer fits the token range.
func (a Amount) Add(other Amount) (Amount, error) {
	return newAmount(a.d.Add(other.d))
}

func (a Amount) Cmp(other Amount) int {
	return a.d.Cmp(other.d)
}

func (a Amount) GreaterOrEqual(other Amount) bool {
	return a.d.GreaterThanOrEqual(other.d)
}

func (a Amount) Equal(other Amount) bool {
	return a.d.Equal(other.d)
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) String() string {
	return a.d.String()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.d.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) Value() (driver.Value, error) {
	return a.d.String(), nil
}

func (a *Amount) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	parsed, err := newAmount(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
