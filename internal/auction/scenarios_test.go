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
	"testing"

	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// TestScenarioInitialBid reproduces a reference fresh bid's query fields and
// gross forward amount. The tax-adjusted credit the collector actually
// receives is exercised at the dispatcher level, where the tax adapter
// is applied (see internal/dispatch).
func TestScenarioInitialBid(t *testing.T) {
	e, st := newTestEngine(t)
	b := st.NewBatch()

	const name = "example"
	rate := money.NewAmount(4_513)
	attached := money.NewAmount(1_230_000)
	effects, err := e.BidName(b, name, rate, attached, "bidder", 1_234)
	if err != nil {
		t.Fatalf("BidName: %v", err)
	}
	if got := sumEffects(effects, EffectForward); got.Cmp(attached) != 0 {
		t.Errorf("gross forward effect = %s, want %s", got, attached)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	st_, err := e.GetNameState(name, 1_234)
	if err != nil {
		t.Fatalf("GetNameState: %v", err)
	}
	if st_.CounterDelayEnd != 606_034 {
		t.Errorf("counter_delay_end = %d, want 606034", st_.CounterDelayEnd)
	}
	if st_.BidDelayEnd != 16_384_510 {
		t.Errorf("bid_delay_end = %d, want 16384510", st_.BidDelayEnd)
	}
	if st_.ExpireTime == nil || *st_.ExpireTime != 23_549_206 {
		t.Errorf("expire_time = %v, want 23549206", st_.ExpireTime)
	}
}

// TestScenarioCounterThenRecounter reproduces a reference sequence of
// two successive counter-bids, checking the final owner/previous_owner
// pair.
func TestScenarioCounterThenRecounter(t *testing.T) {
	e, st := newTestEngine(t)
	b := st.NewBatch()
	const name = "example"

	if _, err := e.BidName(b, name, money.NewAmount(123), money.NewAmount(30_000), "bidder1", 1_234); err != nil {
		t.Fatalf("bidder1: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit bidder1: %v", err)
	}
	b = st.NewBatch()
	t2 := money.Timestamp(1_234 + 604_800 + 15_778_476)
	if _, err := e.BidName(b, name, money.NewAmount(124), money.NewAmount(30_000), "bidder2", t2); err != nil {
		t.Fatalf("bidder2: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit bidder2: %v", err)
	}
	b = st.NewBatch()
	t3 := t2.Add(100)
	if _, err := e.BidName(b, name, money.NewAmount(125), money.NewAmount(30_000), "bidder3", t3); err != nil {
		t.Fatalf("bidder3: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit bidder3: %v", err)
	}

	rec, ok, err := e.getRecord(name)
	if err != nil || !ok {
		t.Fatalf("getRecord: %v %v", ok, err)
	}
	if rec.Owner != "bidder3" {
		t.Errorf("owner = %s, want bidder3", rec.Owner)
	}
	if rec.PreviousOwner == nil || *rec.PreviousOwner != "bidder1" {
		t.Errorf("previous_owner = %v, want bidder1", rec.PreviousOwner)
	}
}

// TestScenarioFundOvershoot reproduces a reference scenario where
// funding past max_lease (measured from now) fails by exactly one
// unit of overshoot.
func TestScenarioFundOvershoot(t *testing.T) {
	const name = "example"
	owner := money.Addr("bidder1")

	run := func(attach uint64) error {
		e, st := newTestEngine(t)
		b := st.NewBatch()
		if _, err := e.BidName(b, name, money.NewAmount(123), money.NewAmount(30_000), owner, 1_234); err != nil {
			t.Fatalf("initial bid: %v", err)
		}
		if err := b.Commit(); err != nil {
			t.Fatalf("commit initial bid: %v", err)
		}
		b = st.NewBatch()
		_, err := e.FundName(b, name, owner, money.NewAmount(attach), owner, 2_000)
		return err
	}

	if err := run(194_626); engineerr.KindOf(err) != engineerr.BidInvalidInterval {
		t.Errorf("FundName(194626) err = %v, want BidInvalidInterval", err)
	}
	if err := run(194_625); err != nil {
		t.Errorf("FundName(194625) err = %v, want success", err)
	}
}

// TestScenarioSetRateDuringCounter reproduces the reference permission
// and bound checks for setting a rate. A SetNameRate call right after
// a bid always lands in CounterDelay (begin_time was just reset),
// where can_set_rate holds for nobody; the owner-success and invalid-
// interval branches are therefore exercised once the record has moved
// into TransitionDelay, where can_set_rate actually gates on sender.
func TestScenarioSetRateDuringCounter(t *testing.T) {
	const name = "example"
	owner := money.Addr("bidder1")
	other := money.Addr("bidder2")

	newEngineAt := func(t *testing.T) (*Engine, store.Store) {
		e, st := newTestEngine(t)
		b := st.NewBatch()
		if _, err := e.BidName(b, name, money.NewAmount(123), money.NewAmount(30_000), owner, 0); err != nil {
			t.Fatalf("initial bid: %v", err)
		}
		if err := b.Commit(); err != nil {
			t.Fatalf("commit initial bid: %v", err)
		}
		return e, st
	}

	t.Run("different bidder fails during counter delay", func(t *testing.T) {
		e, st := newEngineAt(t)
		b := st.NewBatch()
		err := e.SetNameRate(b, name, money.NewAmount(100), other, 100)
		if engineerr.KindOf(err) != engineerr.Unauthorized {
			t.Errorf("err = %v, want Unauthorized", err)
		}
	})

	t.Run("owner succeeds once past counter delay", func(t *testing.T) {
		e, st := newEngineAt(t)
		b := st.NewBatch()
		err := e.SetNameRate(b, name, money.NewAmount(100), owner, 604_800)
		if err != nil {
			t.Errorf("err = %v, want success", err)
		}
	})

	t.Run("different bidder still fails once past counter delay", func(t *testing.T) {
		e, st := newEngineAt(t)
		b := st.NewBatch()
		err := e.SetNameRate(b, name, money.NewAmount(100), other, 604_800)
		if engineerr.KindOf(err) != engineerr.Unauthorized {
			t.Errorf("err = %v, want Unauthorized", err)
		}
	})

	t.Run("too-high rate fails on remaining-deposit bound", func(t *testing.T) {
		e, st := newEngineAt(t)
		b := st.NewBatch()
		err := e.SetNameRate(b, name, money.NewAmount(500), owner, 604_800)
		if engineerr.KindOf(err) != engineerr.BidInvalidInterval {
			t.Errorf("err = %v, want BidInvalidInterval", err)
		}
	})
}
