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

// Package dispatch implements the single request/response entry point:
// a tagged-union Message carrying one operation, delivered with a
// (sender, funds, now) triple and applied atomically across the
// auction, dividend, and resolver engines.
package dispatch

import "github.com/nametax/engine/internal/money"

// Message is a tagged union over every state-changing operation this
// engine exposes. Exactly one field is non-nil per dispatch.
type Message struct {
	BidName            *BidName
	FundName           *FundName
	SetNameRate        *SetNameRate
	TransferNameOwner  *TransferNameOwner
	SetNameController  *SetNameController
	Deposit            *Deposit
	Stake              *Stake
	UnstakeTokens      *UnstakeTokens
	WithdrawTokens     *WithdrawTokens
	WithdrawDividends  *WithdrawDividends
	SetNameValue       *SetNameValue
}

type BidName struct {
	Name        string
	OfferedRate money.Rate
}

type FundName struct {
	Name          string
	ExpectedOwner money.Addr
}

type SetNameRate struct {
	Name    string
	NewRate money.Rate
}

type TransferNameOwner struct {
	Name string
	To   money.Addr
}

type SetNameController struct {
	Name       string
	Controller money.Addr
}

// Deposit carries no fields beyond the dispatch-level funds amount;
// it exists so Message can discriminate on it being present.
type Deposit struct{}

type Stake struct {
	Amount money.Amount
}

type UnstakeTokens struct {
	Amount money.Amount
}

type WithdrawTokens struct {
	Amount    money.Amount
	Recipient *money.Addr
}

type WithdrawDividends struct {
	Recipient *money.Addr
}

type SetNameValue struct {
	Name  string
	Value *string
}
