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

import "github.com/nametax/engine/internal/money"

// GetState returns the global DividendState.
func (e *Engine) GetState() (State, error) {
	st, _, err := e.getState()
	return st, err
}

// GetStakeState returns an account's stake record, folding any matured
// unstaking balance and accrued dividend as of now so the view is
// current even when the account hasn't triggered a write recently.
func (e *Engine) GetStakeState(addr money.Addr, now money.Timestamp) (Stake, error) {
	global, _, err := e.getState()
	if err != nil {
		return Stake{}, err
	}
	s, _, err := e.getStake(addr)
	if err != nil {
		return Stake{}, err
	}
	s, err = foldDividend(global, s)
	if err != nil {
		return Stake{}, err
	}
	return e.foldUnstaked(s, now)
}
