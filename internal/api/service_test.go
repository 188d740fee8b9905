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

package api

import (
	"net/http"
	"testing"

	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/dispatch"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/resolver"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.NewMemStore()

	auctionEngine, err := auction.New(auction.Config{
		Collector:       "collector",
		StableDenom:     "uabc",
		MinLease:        15_778_476,
		MaxLease:        157_784_760,
		CounterDelay:    604_800,
		TransitionDelay: 1_814_400,
		BidDelay:        15_778_476,
	}, st)
	if err != nil {
		t.Fatalf("auction.New: %v", err)
	}

	dividendEngine, err := dividend.New(dividend.Config{
		BaseToken:    "unomtoken",
		StableDenom:  "uabc",
		UnstakeDelay: 1_000_000,
	}, st, tax.NoopAdapter{})
	if err != nil {
		t.Fatalf("dividend.New: %v", err)
	}

	resolverEngine := resolver.New(st, auctionEngine)
	d := dispatch.New(st, auctionEngine, dividendEngine, resolverEngine, tax.NoopAdapter{})

	return NewService(d, auctionEngine, dividendEngine, resolverEngine)
}

// TestBidNameThenGetNameState checks that a BidName call dispatched
// through the service is visible to a subsequent GetNameState query.
func TestBidNameThenGetNameState(t *testing.T) {
	s := newTestService(t)
	req := &http.Request{}

	bidReply := &BidNameReply{}
	bidArgs := &BidNameArgs{
		Name:        "example",
		Sender:      "bidder1",
		OfferedRate: money.NewAmount(123),
		Attached:    money.NewAmount(30_000),
		Now:         1_234,
	}
	if err := s.BidName(req, bidArgs, bidReply); err != nil {
		t.Fatalf("BidName: %v", err)
	}
	if len(bidReply.Effects) != 0 {
		t.Errorf("effects = %v, want none: a fresh bid's forward effect is relayed into the dividend engine, not returned", bidReply.Effects)
	}

	stateReply := &GetNameStateReply{}
	stateArgs := &GetNameStateArgs{Name: "example", Now: 1_234}
	if err := s.GetNameState(req, stateArgs, stateReply); err != nil {
		t.Fatalf("GetNameState: %v", err)
	}
	if stateReply.State == nil {
		t.Fatalf("expected a non-nil name state")
	}
	if stateReply.State.BidOwner == nil || *stateReply.State.BidOwner != "bidder1" {
		t.Errorf("bidOwner = %v, want bidder1", stateReply.State.BidOwner)
	}
}

// TestStakeThenGetStakeState checks the staking path end to end
// through the JSON-RPC method surface.
func TestStakeThenGetStakeState(t *testing.T) {
	s := newTestService(t)
	req := &http.Request{}

	if err := s.Stake(req, &StakeArgs{Sender: "alice", Amount: money.NewAmount(1_000)}, &StakeReply{}); err != nil {
		t.Fatalf("Stake: %v", err)
	}

	reply := &GetStakeStateReply{}
	if err := s.GetStakeState(req, &GetStakeStateArgs{Addr: "alice", Now: 0}, reply); err != nil {
		t.Fatalf("GetStakeState: %v", err)
	}
	if reply.Stake.Staked.Cmp(money.NewAmount(1_000)) != 0 {
		t.Errorf("staked = %s, want 1000", reply.Stake.Staked)
	}
}

// TestSetNameValueThenResolveName checks that a name's controller can
// set a value through the dispatcher and have it resolve back out,
// while a non-controller is rejected.
func TestSetNameValueThenResolveName(t *testing.T) {
	s := newTestService(t)
	req := &http.Request{}

	if err := s.BidName(req, &BidNameArgs{
		Name: "example", Sender: "owner",
		OfferedRate: money.NewAmount(123), Attached: money.NewAmount(30_000),
		Now: 1_000,
	}, &BidNameReply{}); err != nil {
		t.Fatalf("BidName: %v", err)
	}

	pastCounterDelay := uint64(1_000 + 604_800 + 1)
	if err := s.SetNameController(req, &SetNameControllerArgs{
		Name: "example", Sender: "owner", Controller: "owner", Now: pastCounterDelay,
	}, &SetNameControllerReply{}); err != nil {
		t.Fatalf("SetNameController: %v", err)
	}

	v := "198.51.100.7"
	if err := s.SetNameValue(req, &SetNameValueArgs{
		Name: "example", Sender: "someone-else", Value: &v, Now: pastCounterDelay,
	}, &SetNameValueReply{}); engineerr.KindOf(err) != engineerr.Unauthorized {
		t.Errorf("non-controller SetNameValue err = %v, want Unauthorized", err)
	}

	if err := s.SetNameValue(req, &SetNameValueArgs{
		Name: "example", Sender: "owner", Value: &v, Now: pastCounterDelay,
	}, &SetNameValueReply{}); err != nil {
		t.Fatalf("SetNameValue: %v", err)
	}

	resolveReply := &ResolveNameReply{}
	if err := s.ResolveName(req, &ResolveNameArgs{Name: "example", Now: pastCounterDelay}, resolveReply); err != nil {
		t.Fatalf("ResolveName: %v", err)
	}
	if resolveReply.Value == nil || *resolveReply.Value != v {
		t.Errorf("resolved value = %v, want %q", resolveReply.Value, v)
	}
}

// TestGetConfigReturnsBothEngineConfigs checks the aggregate config
// query surfaces both sub-engines' settings.
func TestGetConfigReturnsBothEngineConfigs(t *testing.T) {
	s := newTestService(t)
	reply := &GetConfigReply{}
	if err := s.GetConfig(&http.Request{}, &GetConfigArgs{}, reply); err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if reply.Auction.Collector != "collector" {
		t.Errorf("auction.Collector = %s, want collector", reply.Auction.Collector)
	}
	if reply.Dividend.BaseToken != "unomtoken" {
		t.Errorf("dividend.BaseToken = %s, want unomtoken", reply.Dividend.BaseToken)
	}
}
