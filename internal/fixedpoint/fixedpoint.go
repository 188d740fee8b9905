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

// Package fixedpoint implements the "ray" scaled accumulator the
// dividend engine uses for its per-token multiplier: a monotone
// fixed-point rational with 18 fractional decimal digits, the same
// scaling convention Compound/Aave-style interest indices use.
package fixedpoint

import (
	"fmt"
	"math/big"
)

// Scale is 10^18, the number of fractional units in one whole Fixed.
var Scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Fixed is a non-negative ray-scaled fixed-point number: the
// underlying integer represents value * Scale.
type Fixed struct {
	raw *big.Int
}

// Zero returns the additive identity.
func Zero() Fixed { return Fixed{raw: new(big.Int)} }

// FromRaw wraps an already-scaled integer (value * Scale) as a Fixed.
// Used when restoring persisted state.
func FromRaw(raw *big.Int) Fixed {
	if raw == nil {
		return Zero()
	}
	return Fixed{raw: new(big.Int).Set(raw)}
}

// Raw returns the underlying scaled integer, safe for persistence.
func (f Fixed) Raw() *big.Int {
	if f.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(f.raw)
}

func (f Fixed) bigOrZero() *big.Int {
	if f.raw == nil {
		return new(big.Int)
	}
	return f.raw
}

// Add returns f + g.
func (f Fixed) Add(g Fixed) Fixed {
	return Fixed{raw: new(big.Int).Add(f.bigOrZero(), g.bigOrZero())}
}

// Sub returns f - g. Callers must not let the multiplier go negative;
// the dividend engine never subtracts from state.multiplier (it is
// monotone non-decreasing), so this is only used for per-account
// deltas which are always non-negative by construction.
func (f Fixed) Sub(g Fixed) Fixed {
	return Fixed{raw: new(big.Int).Sub(f.bigOrZero(), g.bigOrZero())}
}

// Cmp compares f to g.
func (f Fixed) Cmp(g Fixed) int { return f.bigOrZero().Cmp(g.bigOrZero()) }

// IsZero reports whether f is exactly zero.
func (f Fixed) IsZero() bool { return f.bigOrZero().Sign() == 0 }

// RatioOf returns numer/denom as a Fixed (floor-rounded at ray
// precision). denom must be non-zero.
func RatioOf(numer, denom *big.Int) Fixed {
	scaled := new(big.Int).Mul(numer, Scale)
	return Fixed{raw: scaled.Div(scaled, denom)}
}

// MulInt returns floor(f * n) as a plain integer, where n is an
// ordinary (non-scaled) integer amount such as a staked token count.
// This is the "multiply_ratio(numer_delta, denom_const)" operation
// used when folding a staker's accrued dividend.
func (f Fixed) MulInt(n *big.Int) *big.Int {
	out := new(big.Int).Mul(f.bigOrZero(), n)
	return out.Div(out, Scale)
}

// String renders the Fixed as a decimal with 18 fractional digits.
func (f Fixed) String() string {
	raw := f.bigOrZero()
	whole := new(big.Int).Div(raw, Scale)
	frac := new(big.Int).Mod(raw, Scale)
	return fmt.Sprintf("%d.%018d", whole, frac)
}
