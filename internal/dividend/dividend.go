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

// Package dividend implements the root-collector staking engine: a
// global per-token dividend multiplier fed by rent the auction engine
// forwards, and per-account stake/unstake/withdraw bookkeeping with an
// unbonding delay.
package dividend

import (
	"encoding/json"
	"fmt"

	"github.com/nametax/engine/internal/fixedpoint"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
)

// Config is the immutable-after-init configuration.
type Config struct {
	BaseToken    string          `json:"baseToken"`
	StableDenom  string          `json:"stableDenom"`
	UnstakeDelay money.Timedelta `json:"unstakeDelay"`
}

// State is the global accounting record.
type State struct {
	Multiplier  fixedpoint.Fixed `json:"multiplier"`
	TotalStaked money.Amount     `json:"totalStaked"`
	Residual    money.Amount     `json:"residual"`
}

// Stake is the per-account record.
type Stake struct {
	Staked             money.Amount     `json:"staked"`
	Unstaking          money.Amount     `json:"unstaking"`
	Unstaked           money.Amount     `json:"unstaked"`
	UnstakingBeginTime *money.Timestamp `json:"unstakingBeginTime,omitempty"`
	Multiplier         fixedpoint.Fixed `json:"multiplier"`
	Dividend           money.Amount     `json:"dividend"`
}

// IsEmpty reports whether the account record can be pruned.
func (s Stake) IsEmpty() bool {
	return s.Staked.IsZero() && s.Unstaking.IsZero() && s.Unstaked.IsZero() && s.Dividend.IsZero()
}

// Effect is an outbound instruction the dispatcher must carry out
// atomically with the state write that produced it.
type Effect struct {
	// Kind is one of "tokenTransfer" (base_token) or "stableTransfer"
	// (stable_denom, tax-adjusted dividend payout).
	Kind   string       `json:"kind"`
	To     money.Addr   `json:"to"`
	Denom  string       `json:"denom"`
	Amount money.Amount `json:"amount"`
}

const (
	EffectTokenTransfer  = "tokenTransfer"
	EffectStableTransfer = "stableTransfer"
)

// Engine is the dividend engine bound to one configuration, a Store
// namespace, and a tax adapter for dividend withdrawals.
type Engine struct {
	cfg   Config
	store store.Store
	tax   tax.Adapter
}

// New constructs an Engine; the global multiplier starts at zero.
func New(cfg Config, st store.Store, taxAdapter tax.Adapter) (*Engine, error) {
	if taxAdapter == nil {
		taxAdapter = tax.NoopAdapter{}
	}
	e := &Engine{cfg: cfg, store: st, tax: taxAdapter}
	_, ok, err := e.getState()
	if err != nil {
		return nil, err
	}
	if !ok {
		b := st.NewBatch()
		if err := e.putState(b, State{}); err != nil {
			return nil, err
		}
		if err := b.Commit(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

const stateKey = "dividend/state"

func stakeKey(addr money.Addr) []byte {
	return []byte("dividend/stake/" + string(addr))
}

func (e *Engine) getState() (State, bool, error) {
	raw, ok, err := e.store.Get([]byte(stateKey))
	if err != nil || !ok {
		return State{}, ok, err
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, false, fmt.Errorf("dividend: corrupt global state: %w", err)
	}
	return st, true, nil
}

func (e *Engine) putState(b store.Batch, st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("dividend: encode global state: %w", err)
	}
	b.Set([]byte(stateKey), raw)
	return nil
}

func (e *Engine) getStake(addr money.Addr) (Stake, bool, error) {
	raw, ok, err := e.store.Get(stakeKey(addr))
	if err != nil || !ok {
		return Stake{}, ok, err
	}
	var s Stake
	if err := json.Unmarshal(raw, &s); err != nil {
		return Stake{}, false, fmt.Errorf("dividend: corrupt stake record for %q: %w", addr, err)
	}
	return s, true, nil
}

func (e *Engine) putStake(b store.Batch, addr money.Addr, s Stake) error {
	if s.IsEmpty() {
		b.Delete(stakeKey(addr))
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("dividend: encode stake record for %q: %w", addr, err)
	}
	b.Set(stakeKey(addr), raw)
	return nil
}

// foldDividend folds the global multiplier's accrual into an account's
// cached dividend and advances its entry multiplier, the "fold
// dividend" step shared by Stake, Unstake, and WithdrawDividends.
func foldDividend(global State, s Stake) (Stake, error) {
	delta := global.Multiplier.Sub(s.Multiplier)
	if !delta.IsZero() && !s.Staked.IsZero() {
		accrued := delta.MulInt(s.Staked.BigInt())
		accruedAmt, err := money.AmountFromBigInt(accrued)
		if err != nil {
			return s, err
		}
		d, err := s.Dividend.Add(accruedAmt)
		if err != nil {
			return s, err
		}
		s.Dividend = d
	}
	s.Multiplier = global.Multiplier
	return s, nil
}

// foldUnstaked matures an account's unbonding tokens into withdrawable
// balance once unstake_delay has elapsed.
func (e *Engine) foldUnstaked(s Stake, now money.Timestamp) (Stake, error) {
	if s.UnstakingBeginTime == nil {
		return s, nil
	}
	if s.UnstakingBeginTime.Add(e.cfg.UnstakeDelay) > now {
		return s, nil
	}
	u, err := s.Unstaked.Add(s.Unstaking)
	if err != nil {
		return s, err
	}
	s.Unstaked = u
	s.Unstaking = money.Zero
	s.UnstakingBeginTime = nil
	return s, nil
}
