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

package dividend

import (
	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// WithdrawTokens folds matured unstaking balance, then pays out amount
// of the base token.
func (e *Engine) WithdrawTokens(b store.Batch, sender money.Addr, amount money.Amount, recipient *money.Addr, now money.Timestamp) (Effect, error) {
	s, ok, err := e.getStake(sender)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return Effect{}, engineerr.New(engineerr.InsufficientTokens)
	}

	s, err = e.foldUnstaked(s, now)
	if err != nil {
		return Effect{}, err
	}
	if s.Unstaked.LessThan(amount) {
		return Effect{}, engineerr.New(engineerr.InsufficientTokens)
	}
	s.Unstaked = s.Unstaked.SatSub(amount)

	if err := e.putStake(b, sender, s); err != nil {
		return Effect{}, err
	}

	to := sender
	if recipient != nil {
		to = *recipient
	}
	return Effect{Kind: EffectTokenTransfer, To: to, Denom: e.cfg.BaseToken, Amount: amount}, nil
}

// WithdrawDividends folds accrued dividend, then pays out the
// tax-adjusted net amount.
func (e *Engine) WithdrawDividends(b store.Batch, sender money.Addr, recipient *money.Addr) (Effect, error) {
	global, _, err := e.getState()
	if err != nil {
		return Effect{}, err
	}
	s, ok, err := e.getStake(sender)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return Effect{}, engineerr.New(engineerr.InsufficientFunds)
	}

	s, err = foldDividend(global, s)
	if err != nil {
		return Effect{}, err
	}
	if s.Dividend.IsZero() {
		return Effect{}, engineerr.New(engineerr.InsufficientFunds)
	}

	net, err := e.tax.Net(e.cfg.StableDenom, s.Dividend)
	if err != nil {
		return Effect{}, err
	}

	s.Dividend = money.Zero
	if err := e.putStake(b, sender, s); err != nil {
		return Effect{}, err
	}

	to := sender
	if recipient != nil {
		to = *recipient
	}
	return Effect{Kind: EffectStableTransfer, To: to, Denom: e.cfg.StableDenom, Amount: net}, nil
}
