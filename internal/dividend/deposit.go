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
	"github.com/nametax/engine/internal/fixedpoint"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// Deposit folds rent forwarded by the auction engine (relayed by the
// dispatcher) into the multiplier, or parks it in residual if nobody
// is staked yet to receive it.
func (e *Engine) Deposit(b store.Batch, attached money.Amount) error {
	global, _, err := e.getState()
	if err != nil {
		return err
	}

	pool, err := attached.Add(global.Residual)
	if err != nil {
		return err
	}

	if global.TotalStaked.IsZero() {
		global.Residual = pool
		return e.putState(b, global)
	}

	delta := fixedpoint.RatioOf(pool.BigInt(), global.TotalStaked.BigInt())
	global.Multiplier = global.Multiplier.Add(delta)

	spent := delta.MulInt(global.TotalStaked.BigInt())
	spentAmt, err := money.AmountFromBigInt(spent)
	if err != nil {
		return err
	}
	global.Residual = pool.SatSub(spentAmt)

	return e.putState(b, global)
}
