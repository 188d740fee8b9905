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

// Package api exposes the engine's operations and queries as a
// JSON-RPC service, registered the same way the Avalanche-lineage
// platform VM registers its "platform" namespace: one Go method per
// RPC call, each with its own Args/Reply struct pair.
package api

import (
	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/money"
)

type BidNameArgs struct {
	Name        string       `json:"name"`
	Sender      money.Addr   `json:"sender"`
	OfferedRate money.Amount `json:"offeredRate"`
	Attached    money.Amount `json:"attached"`
	Now         uint64       `json:"now"`
}

type BidNameReply struct {
	Effects []EffectView `json:"effects"`
}

type FundNameArgs struct {
	Name          string       `json:"name"`
	Sender        money.Addr   `json:"sender"`
	ExpectedOwner money.Addr   `json:"expectedOwner"`
	Attached      money.Amount `json:"attached"`
	Now           uint64       `json:"now"`
}

type FundNameReply struct {
	Effects []EffectView `json:"effects"`
}

type SetNameRateArgs struct {
	Name    string       `json:"name"`
	Sender  money.Addr   `json:"sender"`
	NewRate money.Amount `json:"newRate"`
	Now     uint64       `json:"now"`
}

type SetNameRateReply struct{}

type TransferNameOwnerArgs struct {
	Name   string     `json:"name"`
	Sender money.Addr `json:"sender"`
	To     money.Addr `json:"to"`
	Now    uint64     `json:"now"`
}

type TransferNameOwnerReply struct{}

type SetNameControllerArgs struct {
	Name       string     `json:"name"`
	Sender     money.Addr `json:"sender"`
	Controller money.Addr `json:"controller"`
	Now        uint64     `json:"now"`
}

type SetNameControllerReply struct{}

type GetNameStateArgs struct {
	Name string `json:"name"`
	Now  uint64 `json:"now"`
}

type GetNameStateReply struct {
	State *auction.NameState `json:"state"`
}

type GetAllNameStatesArgs struct {
	StartAfter string `json:"startAfter"`
	Limit      int    `json:"limit"`
	Now        uint64 `json:"now"`
}

type GetAllNameStatesReply struct {
	States []*auction.NameState `json:"states"`
}

type GetConfigArgs struct{}

type GetConfigReply struct {
	Auction  auction.Config  `json:"auction"`
	Dividend dividend.Config `json:"dividend"`
}

type DepositArgs struct {
	Attached money.Amount `json:"attached"`
}

type DepositReply struct{}

type StakeArgs struct {
	Sender money.Addr   `json:"sender"`
	Amount money.Amount `json:"amount"`
}

type StakeReply struct{}

type UnstakeTokensArgs struct {
	Sender money.Addr   `json:"sender"`
	Amount money.Amount `json:"amount"`
	Now    uint64       `json:"now"`
}

type UnstakeTokensReply struct{}

type WithdrawTokensArgs struct {
	Sender    money.Addr   `json:"sender"`
	Amount    money.Amount `json:"amount"`
	Recipient *money.Addr  `json:"recipient,omitempty"`
	Now       uint64       `json:"now"`
}

type WithdrawTokensReply struct {
	Effect EffectView `json:"effect"`
}

type WithdrawDividendsArgs struct {
	Sender    money.Addr  `json:"sender"`
	Recipient *money.Addr `json:"recipient,omitempty"`
}

type WithdrawDividendsReply struct {
	Effect EffectView `json:"effect"`
}

type GetStakeStateArgs struct {
	Addr money.Addr `json:"addr"`
	Now  uint64     `json:"now"`
}

type GetStakeStateReply struct {
	Stake dividend.Stake `json:"stake"`
}

type SetNameValueArgs struct {
	Name   string     `json:"name"`
	Sender money.Addr `json:"sender"`
	Value  *string    `json:"value,omitempty"`
	Now    uint64     `json:"now"`
}

type SetNameValueReply struct{}

type ResolveNameArgs struct {
	Name string `json:"name"`
	Now  uint64 `json:"now"`
}

type ResolveNameReply struct {
	Value      *string `json:"value,omitempty"`
	ExpireTime *uint64 `json:"expireTime,omitempty"`
}

// EffectView is the wire shape for a dispatch.Effect.
type EffectView struct {
	Kind   string       `json:"kind"`
	To     money.Addr   `json:"to"`
	Denom  string       `json:"denom"`
	Amount money.Amount `json:"amount"`
}
