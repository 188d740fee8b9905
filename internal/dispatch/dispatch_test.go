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

package dispatch

import (
	"context"
	"testing"

	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/resolver"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
)

func testAuctionConfig() auction.Config {
	return auction.Config{
		Collector:       "collector",
		StableDenom:     "uabc",
		MinLease:        15_778_476,
		MaxLease:        157_784_760,
		CounterDelay:    604_800,
		TransitionDelay: 1_814_400,
		BidDelay:        15_778_476,
	}
}

func newTestDispatcher(t *testing.T, taxAdapter tax.Adapter) (*Dispatcher, store.Store) {
	t.Helper()
	st := store.NewMemStore()

	auctionEngine, err := auction.New(testAuctionConfig(), st)
	if err != nil {
		t.Fatalf("auction.New: %v", err)
	}
	dividendEngine, err := dividend.New(dividend.Config{
		BaseToken:    "unomtoken",
		StableDenom:  "uabc",
		UnstakeDelay: 1_000_000,
	}, st, taxAdapter)
	if err != nil {
		t.Fatalf("dividend.New: %v", err)
	}
	resolverEngine := resolver.New(st, auctionEngine)

	return New(st, auctionEngine, dividendEngine, resolverEngine, taxAdapter), st
}

// TestDispatchRelaysForwardIntoDividendDeposit checks the required
// cross-engine wiring: an auction "forward" effect never reaches the
// caller directly, it is folded into the dividend engine's residual
// (nobody is staked yet in this test) within the same Dispatch call.
func TestDispatchRelaysForwardIntoDividendDeposit(t *testing.T) {
	d, _ := newTestDispatcher(t, tax.NoopAdapter{})

	effects, err := d.Dispatch(context.Background(), Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(123)},
	}, "bidder1", money.NewAmount(30_000), 1_234)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(effects) != 0 {
		t.Errorf("effects = %v, want none: the forward effect is relayed, not returned", effects)
	}

	global, err := d.dividend.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if global.Residual.Cmp(money.NewAmount(30_000)) != 0 {
		t.Errorf("residual = %s, want 30000 (the full untaxed forward, nobody staked)", global.Residual)
	}
}

// TestScenarioInitialBidTaxedForward reproduces the reference initial-
// bid scenario's collector-side number end to end: BidName forwards
// 1,230,000, which the relay step taxes down to 1,225,038 before
// crediting the dividend engine, using a rate (81/20000 = 0.405%)
// chosen so the adapter's integer formula reproduces that exact
// figure.
func TestScenarioInitialBidTaxedForward(t *testing.T) {
	taxAdapter := tax.FlatRateAdapter{
		Denom:     "uabc",
		RateNumer: 81,
		RateDenom: 20_000,
	}
	d, _ := newTestDispatcher(t, taxAdapter)

	_, err := d.Dispatch(context.Background(), Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(4_513)},
	}, "bidder", money.NewAmount(1_230_000), 1_234)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	global, err := d.dividend.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if global.Residual.Cmp(money.NewAmount(1_225_038)) != 0 {
		t.Errorf("residual = %s, want 1225038 (1230000 - tax(4962))", global.Residual)
	}
}

// TestDispatchRelaysRefundToCaller checks that, unlike forward, a
// counter-bid's refund effect passes untaxed straight through to the
// caller as an Effect the host must pay out.
func TestDispatchRelaysRefundToCaller(t *testing.T) {
	d, _ := newTestDispatcher(t, tax.NoopAdapter{})
	ctx := context.Background()

	if _, err := d.Dispatch(ctx, Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(123)},
	}, "bidder1", money.NewAmount(30_000), 1_234); err != nil {
		t.Fatalf("first bid: %v", err)
	}

	effects, err := d.Dispatch(ctx, Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(124)},
	}, "bidder2", money.NewAmount(30_000), 1_234+100)
	if err != nil {
		t.Fatalf("counter bid: %v", err)
	}

	var sawRefund bool
	for _, eff := range effects {
		if eff.Kind == auction.EffectRefund {
			sawRefund = true
			if eff.To != money.Addr("bidder1") {
				t.Errorf("refund.To = %s, want bidder1", eff.To)
			}
		}
		if eff.Kind == auction.EffectForward {
			t.Errorf("forward effect leaked to caller: %+v", eff)
		}
	}
	if !sawRefund {
		t.Errorf("expected a refund effect for bidder1's outbid deposit")
	}
}

// TestDispatchCommitsAtomically checks that a failing operation
// leaves no partial state: a second bid from the current owner is
// rejected before any write, so a later query still sees the original
// record untouched.
func TestDispatchCommitsAtomically(t *testing.T) {
	d, _ := newTestDispatcher(t, tax.NoopAdapter{})
	ctx := context.Background()

	if _, err := d.Dispatch(ctx, Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(123)},
	}, "bidder1", money.NewAmount(30_000), 1_234); err != nil {
		t.Fatalf("first bid: %v", err)
	}

	if _, err := d.Dispatch(ctx, Message{
		BidName: &BidName{Name: "example", OfferedRate: money.NewAmount(124)},
	}, "bidder1", money.NewAmount(30_000), 1_235); err == nil {
		t.Errorf("expected Unauthorized for a self counter-bid, got nil error")
	}

	st, err := d.auction.GetNameState("example", 1_235)
	if err != nil {
		t.Fatalf("GetNameState: %v", err)
	}
	if st.Rate.Cmp(money.NewAmount(123)) != 0 {
		t.Errorf("rate = %s, want unchanged 123 after the rejected bid", st.Rate)
	}
}
