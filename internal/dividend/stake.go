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

// Stake implements the Receive(Stake) token-receive hook.
func (e *Engine) Stake(b store.Batch, sender money.Addr, amount money.Amount) error {
	if amount.IsZero() {
		return engineerr.New(engineerr.Unfunded)
	}

	global, _, err := e.getState()
	if err != nil {
		return err
	}

	s, _, err := e.getStake(sender)
	if err != nil {
		return err
	}
	s, err = foldDividend(global, s)
	if err != nil {
		return err
	}

	newStaked, err := s.Staked.Add(amount)
	if err != nil {
		return err
	}
	s.Staked = newStaked

	newTotal, err := global.TotalStaked.Add(amount)
	if err != nil {
		return err
	}
	global.TotalStaked = newTotal

	if err := e.putStake(b, sender, s); err != nil {
		return err
	}
	return e.putState(b, global)
}
