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

// UnstakeTokens begins the unbonding clock
// on amount, folding any matured unstaking balance and accrued
// dividend first.
func (e *Engine) UnstakeTokens(b store.Batch, sender money.Addr, amount money.Amount, now money.Timestamp) error {
	if amount.IsZero() {
		return engineerr.New(engineerr.Unfunded)
	}

	global, _, err := e.getState()
	if err != nil {
		return err
	}
	s, ok, err := e.getStake(sender)
	if err != nil {
		return err
	}
	if !ok {
		return engineerr.New(engineerr.InsufficientTokens)
	}

	s, err = foldDividend(global, s)
	if err != nil {
		return err
	}
	s, err = e.foldUnstaked(s, now)
	if err != nil {
		return err
	}

	if s.Staked.LessThan(amount) {
		return engineerr.New(engineerr.InsufficientTokens)
	}
	s.Staked = s.Staked.SatSub(amount)
	newUnstaking, err := s.Unstaking.Add(amount)
	if err != nil {
		return err
	}
	s.Unstaking = newUnstaking
	t := now
	s.UnstakingBeginTime = &t

	global.TotalStaked = global.TotalStaked.SatSub(amount)

	if err := e.putStake(b, sender, s); err != nil {
		return err
	}
	return e.putState(b, global)
}
