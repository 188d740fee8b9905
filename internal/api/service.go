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

	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/dispatch"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/resolver"
)

// Service is the JSON-RPC-exposed facade over the dispatcher and the
// read-only query paths of each engine.
type Service struct {
	dispatcher *dispatch.Dispatcher
	auction    *auction.Engine
	dividend   *dividend.Engine
	resolver   *resolver.Engine
}

// NewService constructs a Service.
func NewService(d *dispatch.Dispatcher, auctionEngine *auction.Engine, dividendEngine *dividend.Engine, resolverEngine *resolver.Engine) *Service {
	return &Service{dispatcher: d, auction: auctionEngine, dividend: dividendEngine, resolver: resolverEngine}
}

func toEffectViews(effects []dispatch.Effect) []EffectView {
	out := make([]EffectView, 0, len(effects))
	for _, e := range effects {
		out = append(out, EffectView{Kind: e.Kind, To: e.To, Denom: e.Denom, Amount: e.Amount})
	}
	return out
}

func (s *Service) BidName(r *http.Request, args *BidNameArgs, reply *BidNameReply) error {
	msg := dispatch.Message{BidName: &dispatch.BidName{Name: args.Name, OfferedRate: args.OfferedRate}}
	effects, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, args.Attached, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.Effects = toEffectViews(effects)
	return nil
}

func (s *Service) FundName(r *http.Request, args *FundNameArgs, reply *FundNameReply) error {
	msg := dispatch.Message{FundName: &dispatch.FundName{Name: args.Name, ExpectedOwner: args.ExpectedOwner}}
	effects, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, args.Attached, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.Effects = toEffectViews(effects)
	return nil
}

func (s *Service) SetNameRate(r *http.Request, args *SetNameRateArgs, reply *SetNameRateReply) error {
	msg := dispatch.Message{SetNameRate: &dispatch.SetNameRate{Name: args.Name, NewRate: args.NewRate}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	return err
}

func (s *Service) TransferNameOwner(r *http.Request, args *TransferNameOwnerArgs, reply *TransferNameOwnerReply) error {
	msg := dispatch.Message{TransferNameOwner: &dispatch.TransferNameOwner{Name: args.Name, To: args.To}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	return err
}

func (s *Service) SetNameController(r *http.Request, args *SetNameControllerArgs, reply *SetNameControllerReply) error {
	msg := dispatch.Message{SetNameController: &dispatch.SetNameController{Name: args.Name, Controller: args.Controller}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	return err
}

func (s *Service) GetNameState(r *http.Request, args *GetNameStateArgs, reply *GetNameStateReply) error {
	st, err := s.auction.GetNameState(args.Name, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.State = st
	return nil
}

func (s *Service) GetAllNameStates(r *http.Request, args *GetAllNameStatesArgs, reply *GetAllNameStatesReply) error {
	states, err := s.auction.GetAllNameStates(args.StartAfter, args.Limit, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.States = states
	return nil
}

func (s *Service) GetConfig(r *http.Request, args *GetConfigArgs, reply *GetConfigReply) error {
	reply.Auction = s.auction.Config()
	reply.Dividend = s.dividend.Config()
	return nil
}

func (s *Service) Deposit(r *http.Request, args *DepositArgs, reply *DepositReply) error {
	msg := dispatch.Message{Deposit: &dispatch.Deposit{}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, "", args.Attached, 0)
	return err
}

func (s *Service) Stake(r *http.Request, args *StakeArgs, reply *StakeReply) error {
	msg := dispatch.Message{Stake: &dispatch.Stake{Amount: args.Amount}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, 0)
	return err
}

func (s *Service) UnstakeTokens(r *http.Request, args *UnstakeTokensArgs, reply *UnstakeTokensReply) error {
	msg := dispatch.Message{UnstakeTokens: &dispatch.UnstakeTokens{Amount: args.Amount}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	return err
}

func (s *Service) WithdrawTokens(r *http.Request, args *WithdrawTokensArgs, reply *WithdrawTokensReply) error {
	msg := dispatch.Message{WithdrawTokens: &dispatch.WithdrawTokens{Amount: args.Amount, Recipient: args.Recipient}}
	effects, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	if len(effects) > 0 {
		e := effects[0]
		reply.Effect = EffectView{Kind: e.Kind, To: e.To, Denom: e.Denom, Amount: e.Amount}
	}
	return nil
}

func (s *Service) WithdrawDividends(r *http.Request, args *WithdrawDividendsArgs, reply *WithdrawDividendsReply) error {
	msg := dispatch.Message{WithdrawDividends: &dispatch.WithdrawDividends{Recipient: args.Recipient}}
	effects, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, 0)
	if err != nil {
		return err
	}
	if len(effects) > 0 {
		e := effects[0]
		reply.Effect = EffectView{Kind: e.Kind, To: e.To, Denom: e.Denom, Amount: e.Amount}
	}
	return nil
}

func (s *Service) GetStakeState(r *http.Request, args *GetStakeStateArgs, reply *GetStakeStateReply) error {
	st, err := s.dividend.GetStakeState(args.Addr, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.Stake = st
	return nil
}

func (s *Service) SetNameValue(r *http.Request, args *SetNameValueArgs, reply *SetNameValueReply) error {
	msg := dispatch.Message{SetNameValue: &dispatch.SetNameValue{Name: args.Name, Value: args.Value}}
	_, err := s.dispatcher.Dispatch(r.Context(), msg, args.Sender, money.Zero, money.Timestamp(args.Now))
	return err
}

func (s *Service) ResolveName(r *http.Request, args *ResolveNameArgs, reply *ResolveNameReply) error {
	res, err := s.resolver.ResolveName(args.Name, money.Timestamp(args.Now))
	if err != nil {
		return err
	}
	reply.Value = res.Value
	if res.ExpireTime != nil {
		t := uint64(*res.ExpireTime)
		reply.ExpireTime = &t
	}
	return nil
}
