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
	"testing"

	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
)

func newTestEngine(t *testing.T) (*Engine, store.Store) {
	t.Helper()
	st := store.NewMemStore()
	e, err := New(Config{
		BaseToken:    "unomtoken",
		StableDenom:  "uabc",
		UnstakeDelay: 1_000_000,
	}, st, tax.NoopAdapter{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, st
}

// TestStakeRejectsZero checks the Unfunded guard.
func TestStakeRejectsZero(t *testing.T) {
	e, st := newTestEngine(t)
	b := st.NewBatch()
	if err := e.Stake(b, "alice", money.Zero); engineerr.KindOf(err) != engineerr.Unfunded {
		t.Errorf("err = %v, want Unfunded", err)
	}
}

// TestStakeAccumulates checks that repeated Stake calls add, both to
// the account's own Staked balance and to the global TotalStaked.
func TestStakeAccumulates(t *testing.T) {
	e, st := newTestEngine(t)
	b := st.NewBatch()

	if err := e.Stake(b, "alice", money.NewAmount(1_000)); err != nil {
		t.Fatalf("first stake: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit first stake: %v", err)
	}
	b = st.NewBatch()
	if err := e.Stake(b, "alice", money.NewAmount(500)); err != nil {
		t.Fatalf("second stake: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit second stake: %v", err)
	}

	s, err := e.GetStakeState("alice", 0)
	if err != nil {
		t.Fatalf("GetStakeState: %v", err)
	}
	if s.Staked.Cmp(money.NewAmount(1_500)) != 0 {
		t.Errorf("staked = %s, want 1500", s.Staked)
	}

	global, err := e.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if global.TotalStaked.Cmp(money.NewAmount(1_500)) != 0 {
		t.Errorf("total_staked = %s, want 1500", global.TotalStaked)
	}
}

// TestStakeDoesNotRetroactivelyEarn checks that a staker joining after
// a deposit has already been folded into the multiplier earns nothing
// from that earlier deposit.
func TestStakeDoesNotRetroactivelyEarn(t *testing.T) {
	e, st := newTestEngine(t)
	b := st.NewBatch()

	if err := e.Stake(b, "alice", money.NewAmount(1_000)); err != nil {
		t.Fatalf("alice stake: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit alice stake: %v", err)
	}
	b = st.NewBatch()
	if err := e.Deposit(b, money.NewAmount(1_000)); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit deposit: %v", err)
	}
	b = st.NewBatch()
	if err := e.Stake(b, "bob", money.NewAmount(1_000)); err != nil {
		t.Fatalf("bob stake: %v", err)
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("commit bob stake: %v", err)
	}

	bobState, err := e.GetStakeState("bob", 0)
	if err != nil {
		t.Fatalf("GetStakeState(bob): %v", err)
	}
	if !bobState.Dividend.IsZero() {
		t.Errorf("bob dividend = %s, want zero (joined after the deposit)", bobState.Dividend)
	}
}
