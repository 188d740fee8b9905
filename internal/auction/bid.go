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

// BidName either creates a fresh record (no record, or the current
// one is Expired) or contests an existing one in
// Valid/TransitionDelay/CounterDelay.
func (e *Engine) BidName(b store.Batch, name string, offeredRate money.Rate, attached money.Amount, sender money.Addr, now money.Timestamp) ([]Effect, error) {
	rec, ok, err := e.getRecord(name)
	if err != nil {
		return nil, err
	}

	if !ok {
		return e.bidFresh(b, name, offeredRate, attached, sender, now, false)
	}

	phase := classify(*rec, now, e.cfg)
	if phase.Kind == PhaseExpired {
		return e.bidFresh(b, name, offeredRate, attached, sender, now, true)
	}

	return e.bidExisting(b, name, *rec, phase, offeredRate, attached, sender, now)
}

// bidFresh handles the "no record / Expired" case. A bid landing on an
// Expired record starts a clean transition window anchored to the new
// bid rather than preserving any anchor from the lapsed record.
func (e *Engine) bidFresh(b store.Batch, name string, offeredRate money.Rate, attached money.Amount, sender money.Addr, now money.Timestamp, wasExpired bool) ([]Effect, error) {
	minDeposit, err := money.DepositCeil(e.cfg.MinLease, offeredRate)
	if err != nil {
		return nil, err
	}
	maxDeposit, err := money.DepositFloor(e.cfg.MaxLease, offeredRate)
	if err != nil {
		return nil, err
	}
	if attached.LessThan(minDeposit) || attached.GreaterThan(maxDeposit) {
		return nil, engineerr.New(engineerr.BidInvalidInterval)
	}

	transitionRef := money.Timestamp(0)
	if wasExpired {
		transitionRef = now
	}

	rec := NameRecord{
		Owner:                           sender,
		Rate:                            offeredRate,
		BeginTime:                       now,
		BeginDeposit:                    attached,
		TransitionReferenceTime:         transitionRef,
		PreviousOwner:                   nil,
		PreviousTransitionReferenceTime: 0,
	}
	if err := e.putRecord(b, name, rec); err != nil {
		return nil, err
	}

	if attached.IsZero() {
		return nil, nil
	}
	return []Effect{{Kind: EffectForward, To: e.cfg.Collector, Denom: e.cfg.StableDenom, Amount: attached}}, nil
}

// bidExisting handles Valid/TransitionDelay/CounterDelay contests.
func (e *Engine) bidExisting(b store.Batch, name string, rec NameRecord, phase Phase, offeredRate money.Rate, attached money.Amount, sender money.Addr, now money.Timestamp) ([]Effect, error) {
	if sender == rec.Owner {
		return nil, engineerr.New(engineerr.Unauthorized)
	}

	s := now.Sub(rec.BeginTime)
	if !rec.Rate.IsZero() && s >= e.cfg.CounterDelay && s < e.cfg.CounterDelay+e.cfg.BidDelay {
		return nil, engineerr.New(engineerr.ClosedForBids)
	}

	if !offeredRate.GreaterThan(rec.Rate) {
		return nil, engineerr.NewBidRateTooLow(rec.Rate)
	}

	spent, err := money.DepositCeil(s, rec.Rate)
	if err != nil {
		return nil, err
	}
	refund := rec.BeginDeposit.SatSub(spent)

	if !attached.GreaterThan(refund) {
		return nil, engineerr.NewBidDepositTooLow(refund)
	}

	minDeposit, err := money.DepositCeil(e.cfg.MinLease, offeredRate)
	if err != nil {
		return nil, err
	}
	maxDeposit, err := money.DepositFloor(e.cfg.MaxLease, offeredRate)
	if err != nil {
		return nil, err
	}
	if attached.LessThan(minDeposit) || attached.GreaterThan(maxDeposit) {
		return nil, engineerr.New(engineerr.BidInvalidInterval)
	}

	prevOwner := phase.authoritativeOwner()
	prevTransitionRef := phase.TransitionRef

	newRec := rec.clone()
	newRec.PreviousOwner = prevOwner
	newRec.PreviousTransitionReferenceTime = prevTransitionRef
	newRec.Owner = sender
	newRec.Rate = offeredRate
	newRec.BeginTime = now
	newRec.BeginDeposit = attached

	if prevOwner == nil || *prevOwner != sender {
		newRec.TransitionReferenceTime = now
	} else {
		newRec.TransitionReferenceTime = prevTransitionRef
	}

	if err := e.putRecord(b, name, newRec); err != nil {
		return nil, err
	}

	var effects []Effect
	if !refund.IsZero() {
		effects = append(effects, Effect{Kind: EffectRefund, To: rec.Owner, Denom: e.cfg.StableDenom, Amount: refund})
	}
	forwardAmt := attached.SatSub(refund)
	if !forwardAmt.IsZero() {
		effects = append(effects, Effect{Kind: EffectForward, To: e.cfg.Collector, Denom: e.cfg.StableDenom, Amount: forwardAmt})
	}
	return effects, nil
}
