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

// SetNameRate changes the name's rate. It is equivalent to the owner
// self-bidding: a new counter window opens (previous_owner resets to
// the current owner per the open question resolved in DESIGN.md)
// while the transition anchor is preserved unchanged.
func (e *Engine) SetNameRate(b store.Batch, name string, newRate money.Rate, sender money.Addr, now money.Timestamp) error {
	rec, ok, err := e.getRecord(name)
	if err != nil {
		return err
	}
	if !ok {
		return engineerr.New(engineerr.UnexpectedState)
	}

	phase := classify(*rec, now, e.cfg)
	if !phase.canSetRate(sender) {
		return engineerr.New(engineerr.Unauthorized)
	}

	s := now.Sub(rec.BeginTime)
	spent, err := money.DepositCeil(s, rec.Rate)
	if err != nil {
		return err
	}
	remaining := rec.BeginDeposit.SatSub(spent)

	minRemaining, err := money.DepositCeil(e.cfg.MinLease, newRate)
	if err != nil {
		return err
	}
	maxRemaining, err := money.DepositFloor(e.cfg.MaxLease, newRate)
	if err != nil {
		return err
	}
	if remaining.LessThan(minRemaining) || remaining.GreaterThan(maxRemaining) {
		return engineerr.New(engineerr.BidInvalidInterval)
	}

	owner := rec.Owner
	newRec := rec.clone()
	newRec.Rate = newRate
	newRec.BeginTime = now
	newRec.BeginDeposit = remaining
	newRec.PreviousOwner = &owner
	newRec.PreviousTransitionReferenceTime = rec.TransitionReferenceTime
	// transition_reference_time is intentionally left unchanged.

	return e.putRecord(b, name, newRec)
}
