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

// TransferNameOwner reassigns ownership of name. No fund effects are
// produced.
func (e *Engine) TransferNameOwner(b store.Batch, name string, to money.Addr, sender money.Addr, now money.Timestamp) error {
	rec, ok, err := e.getRecord(name)
	if err != nil {
		return err
	}
	if !ok {
		return engineerr.New(engineerr.UnexpectedState)
	}

	phase := classify(*rec, now, e.cfg)
	newRec := rec.clone()

	switch {
	case phase.Kind == PhaseValid || phase.Kind == PhaseTransitionDelay:
		if !phase.canTransferName(sender) {
			return engineerr.New(engineerr.Unauthorized)
		}
		newRec.Owner = to
	case phase.Kind == PhaseCounterDelay && phase.canTransferName(sender):
		newRec.PreviousOwner = &to
	case phase.canTransferBid(sender):
		newRec.Owner = to
	default:
		return engineerr.New(engineerr.Unauthorized)
	}

	return e.putRecord(b, name, newRec)
}

// SetNameController changes the name's controller, gated by the same
// predicate as TransferNameOwner's Valid/TransitionDelay/
// CounterDelay-name-owner branch.
func (e *Engine) SetNameController(b store.Batch, name string, controller money.Addr, sender money.Addr, now money.Timestamp) error {
	rec, ok, err := e.getRecord(name)
	if err != nil {
		return err
	}
	if !ok {
		return engineerr.New(engineerr.UnexpectedState)
	}

	phase := classify(*rec, now, e.cfg)
	if !phase.canSetController(sender) {
		return engineerr.New(engineerr.Unauthorized)
	}

	newRec := rec.clone()
	newRec.Controller = &controller
	return e.putRecord(b, name, newRec)
}
