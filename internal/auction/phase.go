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

import "github.com/nametax/engine/internal/money"

// PhaseKind discriminates the four phases a name can be in.
type PhaseKind int

const (
	PhaseValid PhaseKind = iota
	PhaseTransitionDelay
	PhaseCounterDelay
	PhaseExpired
)

// Phase is the derived, never-stored classification of a NameRecord at
// a point in time. Which fields are meaningful depends on Kind, except
// TransitionRef, which is set for every Kind; callers switch on Kind
// first.
type Phase struct {
	Kind PhaseKind

	// Owner: Valid, TransitionDelay. TransitionRef: every Kind.
	Owner          money.Addr
	TransitionRef  money.Timestamp

	// CounterDelay
	NameOwner *money.Addr
	BidOwner  money.Addr

	// Expired
	ExpireTime money.Timestamp
}

// classify is the pure total function phase classification requires:
// phase(record, now, config) is deterministic and idempotent.
func classify(rec NameRecord, now money.Timestamp, cfg Config) Phase {
	if now < rec.BeginTime {
		return Phase{Kind: PhaseExpired, ExpireTime: 0, TransitionRef: rec.TransitionReferenceTime}
	}

	s := now.Sub(rec.BeginTime)

	if !rec.Rate.IsZero() {
		maxS, err := money.SecondsFromDeposit(rec.BeginDeposit, rec.Rate)
		if err == nil && uint64(s) >= uint64(maxS) {
			return Phase{
				Kind:          PhaseExpired,
				ExpireTime:    rec.BeginTime.Add(maxS),
				TransitionRef: rec.TransitionReferenceTime,
			}
		}
	}

	t := now.Sub(rec.TransitionReferenceTime)

	if s < money.Timedelta(cfg.CounterDelay) {
		return Phase{
			Kind:          PhaseCounterDelay,
			NameOwner:     rec.PreviousOwner,
			BidOwner:      rec.Owner,
			TransitionRef: rec.PreviousTransitionReferenceTime,
		}
	}

	if t < cfg.CounterDelay+cfg.TransitionDelay {
		return Phase{
			Kind:          PhaseTransitionDelay,
			Owner:         rec.Owner,
			TransitionRef: rec.TransitionReferenceTime,
		}
	}

	return Phase{
		Kind:          PhaseValid,
		Owner:         rec.Owner,
		TransitionRef: rec.TransitionReferenceTime,
	}
}

// authoritativeOwner returns the owner a phase treats as the name's
// real owner for transfer/set-rate purposes, or nil in CounterDelay
// when there was never a previous owner (fresh name, first counter).
func (p Phase) authoritativeOwner() *money.Addr {
	switch p.Kind {
	case PhaseValid, PhaseTransitionDelay:
		o := p.Owner
		return &o
	case PhaseCounterDelay:
		return p.NameOwner
	default:
		return nil
	}
}

// canSetRate reports whether sender may change the name's rate.
func (p Phase) canSetRate(sender money.Addr) bool {
	switch p.Kind {
	case PhaseValid, PhaseTransitionDelay:
		return sender == p.Owner
	default:
		return false
	}
}

// canTransferName reports whether sender may reassign the name's owner.
func (p Phase) canTransferName(sender money.Addr) bool {
	switch p.Kind {
	case PhaseValid, PhaseTransitionDelay:
		return sender == p.Owner
	case PhaseCounterDelay:
		return p.NameOwner != nil && *p.NameOwner == sender
	default:
		return false
	}
}

// canTransferBid reports whether sender, as the current bidder in
// CounterDelay, may redirect the pending bid to another address.
func (p Phase) canTransferBid(sender money.Addr) bool {
	return p.Kind == PhaseCounterDelay && p.BidOwner == sender
}

// canSetController reports whether sender may change the name's
// controller; identical to canTransferName.
func (p Phase) canSetController(sender money.Addr) bool {
	return p.canTransferName(sender)
}
