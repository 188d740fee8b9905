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

// Package tax defines the pure, host-injected tax adapter the engine
// treats as a black box: net = amount - tax(denom, amount).
package tax

import "github.com/nametax/engine/internal/money"

// Adapter is injected at construction into the dividend engine's
// WithdrawDividends path. Implementations must be pure and
// deterministic; the engine never retries or caches on their behalf.
type Adapter interface {
	// Net returns amount minus whatever tax applies to it.
	Net(denom string, amount money.Amount) (money.Amount, error)
	// Tax returns the amount of tax added/withheld.
	Tax(denom string, amount money.Amount) (money.Amount, error)
}

// NoopAdapter charges no tax: Net == amount, Tax == 0.
type NoopAdapter struct{}

func (NoopAdapter) Net(_ string, amount money.Amount) (money.Amount, error) {
	return amount, nil
}

func (NoopAdapter) Tax(_ string, _ money.Amount) (money.Amount, error) {
	return money.Zero, nil
}

// FlatRateAdapter reproduces the classic "stability tax" shape this
// engine's predecessor collected: a fixed rate (RateNumer/RateDenom)
// applied so that amount + tax sums to the original attached total,
// i.e. tax = amount - floor(amount / (1 + rate)), capped at Cap. Only
// Denom is taxed; every other denom is tax-free. Grounded on
// terra.rs's calculate_tax/calculate_added_tax (source: terraswap),
// with the 1+rate division expressed as an integer multiply_ratio at
// 1e18 scale to match that implementation's rounding exactly.
type FlatRateAdapter struct {
	Denom     string
	RateNumer uint64
	RateDenom uint64
	Cap       money.Amount
}

const taxScale = 1_000_000_000_000_000_000 // 1e18, a.k.a. DECIMAL_FRACTION

func (f FlatRateAdapter) Tax(denom string, amount money.Amount) (money.Amount, error) {
	if denom != f.Denom || f.RateNumer == 0 {
		return money.Zero, nil
	}
	rateScaled, err := money.NewAmount(taxScale).MulRatio(f.RateNumer, f.RateDenom)
	if err != nil {
		return money.Amount{}, err
	}
	denomScaled, err := rateScaled.Add(money.NewAmount(taxScale))
	if err != nil {
		return money.Amount{}, err
	}
	kept, err := amount.MulRatio(taxScale, denomScaled.Uint64())
	if err != nil {
		return money.Amount{}, err
	}
	t, err := amount.Sub(kept)
	if err != nil {
		return money.Amount{}, err
	}
	if !f.Cap.IsZero() && t.GreaterThan(f.Cap) {
		return f.Cap, nil
	}
	return t, nil
}

func (f FlatRateAdapter) Net(denom string, amount money.Amount) (money.Amount, error) {
	taxed, err := f.Tax(denom, amount)
	if err != nil {
		return money.Amount{}, err
	}
	return amount.Sub(taxed)
}
