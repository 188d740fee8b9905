// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package money implements the non-negative time and amount primitives
// the auction and dividend engines build on: whole-second timestamps,
// a checked 256-bit Amount type, and the rent rounding helpers that
// keep every deposit/refund/rent computation exact.
package money

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// RatePeriod is the span a Rate is quoted over: a Rate of r means "r
// stable units per RatePeriod seconds".
const RatePeriod Timedelta = 86_400

// Timestamp is a non-negative count of whole seconds since epoch.
type Timestamp uint64

// Timedelta is a non-negative count of whole seconds.
type Timedelta uint64

// Sub returns a saturating t - u: if u > t, the result is zero rather
// than wrapping, matching spec "now < begin_time" classification
// rules that treat the past as distance zero.
func (t Timestamp) Sub(u Timestamp) Timedelta {
	if u >= t {
		return 0
	}
	return Timedelta(t - u)
}

// Add returns t + d.
func (t Timestamp) Add(d Timedelta) Timestamp {
	return t + Timestamp(d)
}

// Before reports whether t occurs strictly before u.
func (t Timestamp) Before(u Timestamp) bool { return t < u }

// Amount is a non-negative fixed-precision integer amount of some
// denom, backed by a checked 256-bit integer so overflow is detected
// rather than silently wrapped.
type Amount struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Amount{}

// NewAmount constructs an Amount from a non-negative uint64.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// String renders the amount in base 10.
func (a Amount) String() string { return a.v.Dec() }

// Uint64 returns the amount as a uint64, panicking on overflow. Its
// only caller is the tax adapter, for a scaled rate denominator that
// is known to fit.
func (a Amount) Uint64() uint64 {
	if !a.v.IsUint64() {
		panic(fmt.Sprintf("money: amount %s does not fit in uint64", a.v.Dec()))
	}
	return a.v.Uint64()
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.v.IsZero() }

// Cmp compares a to b: -1, 0, or 1.
func (a Amount) Cmp(b Amount) int { return a.v.Cmp(&b.v) }

// LessThan reports a < b.
func (a Amount) LessThan(b Amount) bool { return a.Cmp(b) < 0 }

// GreaterThan reports a > b.
func (a Amount) GreaterThan(b Amount) bool { return a.Cmp(b) > 0 }

// Add returns a + b, or ErrOverflow if the 256-bit result would wrap.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	_, overflow := out.v.AddOverflow(&a.v, &b.v)
	if overflow {
		return Amount{}, ErrOverflow
	}
	return out, nil
}

// Sub returns a - b, or ErrOverflow if b > a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.LessThan(b) {
		return Amount{}, ErrOverflow
	}
	var out Amount
	out.v.Sub(&a.v, &b.v)
	return out, nil
}

// SatSub returns a saturating a - b: zero instead of an error when
// b > a, the "saturating_sub" refund computations rely on throughout.
func (a Amount) SatSub(b Amount) Amount {
	out, err := a.Sub(b)
	if err != nil {
		return Zero
	}
	return out
}

// MulRatio returns floor(a * numer / denom), checked for overflow in
// the intermediate product. denom must be non-zero.
func (a Amount) MulRatio(numer, denom uint64) (Amount, error) {
	if denom == 0 {
		return Amount{}, fmt.Errorf("money: MulRatio by zero denominator")
	}
	var wide uint256.Int
	var n uint256.Int
	n.SetUint64(numer)
	_, overflow := wide.MulOverflow(&a.v, &n)
	if overflow {
		return Amount{}, ErrOverflow
	}
	var d uint256.Int
	d.SetUint64(denom)
	var out Amount
	out.v.Div(&wide, &d)
	return out, nil
}

// MulRatioCeil returns ceil(a * numer / denom).
func (a Amount) MulRatioCeil(numer, denom uint64) (Amount, error) {
	if denom == 0 {
		return Amount{}, fmt.Errorf("money: MulRatioCeil by zero denominator")
	}
	var wide uint256.Int
	var n uint256.Int
	n.SetUint64(numer)
	_, overflow := wide.MulOverflow(&a.v, &n)
	if overflow {
		return Amount{}, ErrOverflow
	}
	var d uint256.Int
	d.SetUint64(denom)
	var quot, rem uint256.Int
	quot.DivMod(&wide, &d, &rem)
	out := Amount{v: quot}
	if !rem.IsZero() {
		return out.Add(NewAmount(1))
	}
	return out, nil
}

// BigInt returns a as a freshly allocated *big.Int, for interop with
// the fixedpoint package's ray-scaled arithmetic.
func (a Amount) BigInt() *big.Int {
	return a.v.ToBig()
}

// AmountFromBigInt converts a non-negative *big.Int back into an
// Amount, or ErrOverflow if it doesn't fit in 256 bits or is negative.
func AmountFromBigInt(n *big.Int) (Amount, error) {
	if n.Sign() < 0 {
		return Amount{}, ErrOverflow
	}
	v, overflow := uint256.FromBig(n)
	if overflow {
		return Amount{}, ErrOverflow
	}
	return Amount{v: *v}, nil
}

// Rate is an Amount interpreted as stablecoin units per RatePeriod.
type Rate = Amount

// DepositFloor returns floor(delta * rate / RatePeriod): the rounded-
// down deposit bound used for upper limits (max deposit for a lease,
// max-allowed funding cap).
func DepositFloor(delta Timedelta, rate Rate) (Amount, error) {
	return rate.MulRatio(uint64(delta), uint64(RatePeriod))
}

// DepositCeil returns ceil(delta * rate / RatePeriod): the rounded-up
// deposit bound used for lower limits and for rent actually spent,
// so rounding never undercharges.
func DepositCeil(delta Timedelta, rate Rate) (Amount, error) {
	return rate.MulRatioCeil(uint64(delta), uint64(RatePeriod))
}

// SecondsFromDeposit returns floor(deposit * RatePeriod / rate), the
// number of seconds of lease a deposit buys at rate. rate must be
// non-zero; callers must check Rate.IsZero() themselves since a zero
// rate means "no expiry".
func SecondsFromDeposit(deposit Amount, rate Rate) (Timedelta, error) {
	if rate.IsZero() {
		return 0, fmt.Errorf("money: SecondsFromDeposit undefined for zero rate")
	}
	scaled, err := deposit.MulRatio(uint64(RatePeriod), 1)
	if err != nil {
		return 0, err
	}
	var q uint256.Int
	q.Div(&scaled.v, &rate.v)
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return Timedelta(q.Uint64()), nil
}

// Addr is an opaque, comparable address handle. The engine never
// validates or derives addresses; it only compares and stores the
// bytes the host dispatcher hands it.
type Addr string

// IsZero reports whether the address is the empty/unset value.
func (a Addr) IsZero() bool { return a == "" }
