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

package auction

import (
	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// FundName extends the current lease by adding to
// begin_deposit without resetting begin_time, capped so the remaining
// lease measured from now never exceeds max_lease.
func (e *Engine) FundName(b store.Batch, name string, expectedOwner money.Addr, attached money.Amount, _ money.Addr, now money.Timestamp) ([]Effect, error) {
	if attached.IsZero() {
		return nil, engineerr.New(engineerr.Unfunded)
	}

	rec, ok, err := e.getRecord(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, engineerr.New(engineerr.UnexpectedState)
	}
	if rec.Owner != expectedOwner {
		return nil, engineerr.New(engineerr.Unauthorized)
	}

	elapsed := now.Sub(rec.BeginTime)
	maxAllowed, err := money.DepositFloor(e.cfg.MaxLease+elapsed, rec.Rate)
	if err != nil {
		return nil, err
	}
	newDeposit, err := rec.BeginDeposit.Add(attached)
	if err != nil {
		return nil, err
	}
	if newDeposit.GreaterThan(maxAllowed) {
		return nil, engineerr.New(engineerr.BidInvalidInterval)
	}

	newRec := rec.clone()
	newRec.BeginDeposit = newDeposit
	if err := e.putRecord(b, name, newRec); err != nil {
		return nil, err
	}

	return []Effect{{Kind: EffectForward, To: e.cfg.Collector, Denom: e.cfg.StableDenom, Amount: attached}}, nil
}
