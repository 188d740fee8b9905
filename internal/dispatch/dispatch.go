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
	"fmt"
	"sync"

	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/logging"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/resolver"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
)

// Effect is the dispatcher-level outbound instruction, unifying
// auction.Effect and dividend.Effect into one shape the host acts on
// after a successful Dispatch.
type Effect struct {
	Kind   string
	To     money.Addr
	Denom  string
	Amount money.Amount
}

// Dispatcher owns the single shared Store and the three engines built
// on it, and is the only place that relays the auction engine's
// forward effect into the dividend engine's Deposit.
type Dispatcher struct {
	mu       sync.Mutex
	store    store.Store
	auction  *auction.Engine
	dividend *dividend.Engine
	resolver *resolver.Engine
	tax      tax.Adapter
}

// New constructs a Dispatcher over already-instantiated engines
// sharing one Store. taxAdapter is applied to every forward effect
// before it is relayed into the dividend engine's Deposit, the same
// deduct-tax step the collector's native-token transfer underwent in
// the multi-contract system this engine replaces; nil falls back to
// tax.NoopAdapter.
func New(st store.Store, auctionEngine *auction.Engine, dividendEngine *dividend.Engine, resolverEngine *resolver.Engine, taxAdapter tax.Adapter) *Dispatcher {
	if taxAdapter == nil {
		taxAdapter = tax.NoopAdapter{}
	}
	return &Dispatcher{
		store:    st,
		auction:  auctionEngine,
		dividend: dividendEngine,
		resolver: resolverEngine,
		tax:      taxAdapter,
	}
}

// Dispatch is the single entry point: it takes a typed Message plus
// the (sender, funds, now) triple, runs the matching operation against
// a fresh Batch, and commits that batch atomically only on success —
// either both the new state and the outbound transfers it produced
// are committed, or neither is.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message, sender money.Addr, funds money.Amount, now money.Timestamp) ([]Effect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := d.store.NewBatch()
	effects, err := d.route(b, msg, sender, funds, now)
	if err != nil {
		logging.GetEngineLogger("dispatch").Warn("operation rejected", "sender", sender, "err", err)
		return nil, err
	}
	if err := b.Commit(); err != nil {
		return nil, fmt.Errorf("dispatch: commit failed: %w", err)
	}
	return effects, nil
}

func (d *Dispatcher) route(b store.Batch, msg Message, sender money.Addr, funds money.Amount, now money.Timestamp) ([]Effect, error) {
	switch {
	case msg.BidName != nil:
		return d.bidName(b, *msg.BidName, sender, funds, now)
	case msg.FundName != nil:
		return d.fundName(b, *msg.FundName, sender, funds, now)
	case msg.SetNameRate != nil:
		return nil, d.auction.SetNameRate(b, msg.SetNameRate.Name, msg.SetNameRate.NewRate, sender, now)
	case msg.TransferNameOwner != nil:
		return nil, d.auction.TransferNameOwner(b, msg.TransferNameOwner.Name, msg.TransferNameOwner.To, sender, now)
	case msg.SetNameController != nil:
		return nil, d.auction.SetNameController(b, msg.SetNameController.Name, msg.SetNameController.Controller, sender, now)
	case msg.Deposit != nil:
		return nil, d.dividend.Deposit(b, funds)
	case msg.Stake != nil:
		return nil, d.dividend.Stake(b, sender, msg.Stake.Amount)
	case msg.UnstakeTokens != nil:
		return nil, d.dividend.UnstakeTokens(b, sender, msg.UnstakeTokens.Amount, now)
	case msg.WithdrawTokens != nil:
		eff, err := d.dividend.WithdrawTokens(b, sender, msg.WithdrawTokens.Amount, msg.WithdrawTokens.Recipient, now)
		if err != nil {
			return nil, err
		}
		return []Effect{fromDividendEffect(eff)}, nil
	case msg.WithdrawDividends != nil:
		eff, err := d.dividend.WithdrawDividends(b, sender, msg.WithdrawDividends.Recipient)
		if err != nil {
			return nil, err
		}
		return []Effect{fromDividendEffect(eff)}, nil
	case msg.SetNameValue != nil:
		return nil, d.resolver.SetNameValue(b, msg.SetNameValue.Name, msg.SetNameValue.Value, sender, now)
	default:
		return nil, engineerr.New(engineerr.UnexpectedState)
	}
}

// bidName runs the auction bid, then relays any "forward" effect into
// the dividend engine's Deposit within the same batch — the cross-
// engine wiring the two engines otherwise have no way to share.
func (d *Dispatcher) bidName(b store.Batch, msg BidName, sender money.Addr, funds money.Amount, now money.Timestamp) ([]Effect, error) {
	auctionEffects, err := d.auction.BidName(b, msg.Name, msg.OfferedRate, funds, sender, now)
	if err != nil {
		return nil, err
	}
	return d.relay(b, auctionEffects)
}

func (d *Dispatcher) fundName(b store.Batch, msg FundName, sender money.Addr, funds money.Amount, now money.Timestamp) ([]Effect, error) {
	auctionEffects, err := d.auction.FundName(b, msg.Name, msg.ExpectedOwner, funds, sender, now)
	if err != nil {
		return nil, err
	}
	return d.relay(b, auctionEffects)
}

// relay converts auction effects to dispatcher effects, folding any
// "forward" effect into the dividend engine's Deposit as the refund
// effect (which does leave the engine, paid by the host to the old
// bidder) passes through unchanged. The forward amount is tax-adjusted
// first: the collector only ever receives what arrives after the
// native transfer's deduct-tax step. Effects are ordered refund, then
// forward, then dividend bookkeeping.
func (d *Dispatcher) relay(b store.Batch, auctionEffects []auction.Effect) ([]Effect, error) {
	var out []Effect
	for _, eff := range auctionEffects {
		switch eff.Kind {
		case auction.EffectForward:
			net, err := d.tax.Net(eff.Denom, eff.Amount)
			if err != nil {
				return nil, err
			}
			if err := d.dividend.Deposit(b, net); err != nil {
				return nil, err
			}
		case auction.EffectRefund:
			out = append(out, Effect{Kind: eff.Kind, To: eff.To, Denom: eff.Denom, Amount: eff.Amount})
		}
	}
	return out, nil
}

func fromDividendEffect(e dividend.Effect) Effect {
	return Effect{Kind: e.Kind, To: e.To, Denom: e.Denom, Amount: e.Amount}
}
