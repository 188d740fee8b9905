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
)

// NameState is the read-only projection GetNameState returns: a
// name's phase-derived status at the instant of the call.
type NameState struct {
	Name               string           `json:"name"`
	NameOwner          *money.Addr      `json:"nameOwner,omitempty"`
	BidOwner           *money.Addr      `json:"bidOwner,omitempty"`
	Controller         *money.Addr      `json:"controller,omitempty"`
	Rate               money.Rate       `json:"rate"`
	BeginTime          money.Timestamp  `json:"beginTime"`
	BeginDeposit       money.Amount     `json:"beginDeposit"`
	CurrentDeposit     money.Amount     `json:"currentDeposit"`
	CounterDelayEnd    money.Timestamp  `json:"counterDelayEnd"`
	TransitionDelayEnd money.Timestamp  `json:"transitionDelayEnd"`
	BidDelayEnd        money.Timestamp  `json:"bidDelayEnd"`
	ExpireTime         *money.Timestamp `json:"expireTime,omitempty"`
}

// GetNameState returns the current phase-derived status of name.
func (e *Engine) GetNameState(name string, now money.Timestamp) (*NameState, error) {
	rec, ok, err := e.getRecord(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, engineerr.New(engineerr.UnexpectedState)
	}
	return e.projectState(name, *rec, now)
}

func (e *Engine) projectState(name string, rec NameRecord, now money.Timestamp) (*NameState, error) {
	phase := classify(rec, now, e.cfg)

	st := &NameState{
		Name:               name,
		Controller:         rec.Controller,
		Rate:               rec.Rate,
		BeginTime:          rec.BeginTime,
		BeginDeposit:       rec.BeginDeposit,
		CounterDelayEnd:    rec.BeginTime.Add(e.cfg.CounterDelay),
		TransitionDelayEnd: rec.TransitionReferenceTime.Add(e.cfg.CounterDelay + e.cfg.TransitionDelay),
		BidDelayEnd:        rec.BeginTime.Add(e.cfg.CounterDelay + e.cfg.BidDelay),
	}

	switch phase.Kind {
	case PhaseExpired:
		st.NameOwner = nil
		st.BidOwner = nil
		et := phase.ExpireTime
		st.ExpireTime = &et
	case PhaseCounterDelay:
		st.NameOwner = phase.NameOwner
		bo := phase.BidOwner
		st.BidOwner = &bo
	default: // Valid, TransitionDelay
		o := phase.Owner
		st.NameOwner = &o
		st.BidOwner = &o
	}

	if phase.Kind != PhaseExpired && !rec.Rate.IsZero() {
		maxS, err := money.SecondsFromDeposit(rec.BeginDeposit, rec.Rate)
		if err != nil {
			return nil, err
		}
		et := rec.BeginTime.Add(maxS)
		st.ExpireTime = &et
	}

	s := now.Sub(rec.BeginTime)
	spent, err := money.DepositCeil(s, rec.Rate)
	if err != nil {
		return nil, err
	}
	st.CurrentDeposit = rec.BeginDeposit.SatSub(spent)

	return st, nil
}

const (
	defaultListLimit = 10
	maxListLimit     = 30
)

// GetAllNameStates lists names in lexicographic ascending order over
// name bytes, exclusive of startAfter, paginated by limit.
func (e *Engine) GetAllNameStates(startAfter string, limit int, now money.Timestamp) ([]*NameState, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var out []*NameState
	err := e.iterate(startAfter, func(name string, rec NameRecord) bool {
		st, err := e.projectState(name, rec, now)
		if err != nil {
			return false
		}
		out = append(out, st)
		return len(out) < limit
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NameStateView is the read-only view the resolver engine gates writes
// on: who controls the name, and when (if ever) it expires.
type NameStateView struct {
	Controller *money.Addr
	ExpireTime *money.Timestamp
}

// NameStateView returns the resolver-facing projection for name, or
// ok=false if the name has never been bid on.
func (e *Engine) NameStateView(name string, now money.Timestamp) (NameStateView, bool, error) {
	rec, ok, err := e.getRecord(name)
	if err != nil || !ok {
		return NameStateView{}, ok, err
	}
	st, err := e.projectState(name, *rec, now)
	if err != nil {
		return NameStateView{}, false, err
	}
	return NameStateView{Controller: st.Controller, ExpireTime: st.ExpireTime}, true, nil
}
