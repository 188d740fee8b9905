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

// Package auction implements the per-name Harberger-tax phase machine:
// NameRecord storage, the pure Phase classifier, and the five
// operations (bid, fund, set-rate, transfer-owner, set-controller)
// that mutate a name's lease under competing bids.
package auction

import (
	"encoding/json"
	"fmt"

	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// Config is the immutable-after-init configuration for one auction
// deployment.
type Config struct {
	Collector       money.Addr      `json:"collector"`
	StableDenom     string          `json:"stableDenom"`
	MinLease        money.Timedelta `json:"minLease"`
	MaxLease        money.Timedelta `json:"maxLease"`
	CounterDelay    money.Timedelta `json:"counterDelay"`
	TransitionDelay money.Timedelta `json:"transitionDelay"`
	BidDelay        money.Timedelta `json:"bidDelay"`
}

// Validate enforces the instantiation precondition.
func (c Config) Validate() error {
	if c.MinLease > c.MaxLease {
		return engineerr.New(engineerr.InvalidConfig)
	}
	return nil
}

// NameRecord is the persisted per-name state.
type NameRecord struct {
	Owner                           money.Addr      `json:"owner"`
	Controller                      *money.Addr     `json:"controller,omitempty"`
	Rate                            money.Rate      `json:"rate"`
	BeginTime                       money.Timestamp `json:"beginTime"`
	BeginDeposit                    money.Amount    `json:"beginDeposit"`
	TransitionReferenceTime         money.Timestamp `json:"transitionReferenceTime"`
	PreviousOwner                   *money.Addr     `json:"previousOwner,omitempty"`
	PreviousTransitionReferenceTime money.Timestamp `json:"previousTransitionReferenceTime"`
}

func (r NameRecord) clone() NameRecord {
	out := r
	if r.Controller != nil {
		c := *r.Controller
		out.Controller = &c
	}
	if r.PreviousOwner != nil {
		p := *r.PreviousOwner
		out.PreviousOwner = &p
	}
	return out
}

// Effect is an outbound instruction the dispatcher must carry out
// atomically with the state write that produced it.
type Effect struct {
	// Kind is one of "refund", "forward".
	Kind string `json:"kind"`
	To   money.Addr   `json:"to"`
	Denom string      `json:"denom"`
	Amount money.Amount `json:"amount"`
}

const (
	EffectRefund  = "refund"
	EffectForward = "forward"
)

// Engine is the auction engine bound to one configuration and backed
// by a Store namespace.
type Engine struct {
	cfg   Config
	names store.Store
}

// New constructs an Engine, failing with InvalidConfig if
// min_lease > max_lease.
func New(cfg Config, names store.Store) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, names: names}, nil
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() Config { return e.cfg }

const nameRecordPrefix = "auction/name/"

func nameKey(name string) []byte {
	return []byte(nameRecordPrefix + name)
}

func (e *Engine) getRecord(name string) (*NameRecord, bool, error) {
	raw, ok, err := e.names.Get(nameKey(name))
	if err != nil || !ok {
		return nil, ok, err
	}
	var rec NameRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, fmt.Errorf("auction: corrupt record for %q: %w", name, err)
	}
	return &rec, true, nil
}

func (e *Engine) putRecord(b store.Batch, name string, rec NameRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("auction: encode record for %q: %w", name, err)
	}
	b.Set(nameKey(name), raw)
	return nil
}

// iterate walks every NameRecord in lexicographic key order, calling
// fn until it returns false or the store is exhausted. Used by
// GetAllNameStates's pagination.
func (e *Engine) iterate(startAfter string, fn func(name string, rec NameRecord) bool) error {
	cursor := []byte(nameRecordPrefix)
	if startAfter != "" {
		// start_after is exclusive: append a zero byte so the scan
		// resumes strictly after the given name.
		cursor = append([]byte(nameRecordPrefix+startAfter), 0)
	}
	return e.names.IteratePrefix([]byte(nameRecordPrefix), cursor, func(key, val []byte) (bool, error) {
		name := string(key[len(nameRecordPrefix):])
		var rec NameRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return false, fmt.Errorf("auction: corrupt record for %q: %w", name, err)
		}
		return fn(name, rec), nil
	})
}
