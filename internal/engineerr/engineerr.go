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

// Package engineerr defines the wire-visible, discriminated error
// taxonomy the engine requires: every invariant violation surfaces
// as one of these Kinds, never as a bare string or a process fault.
package engineerr

import "fmt"

// Kind discriminates the error taxonomy.
type Kind string

const (
	InvalidConfig      Kind = "InvalidConfig"
	Unauthorized       Kind = "Unauthorized"
	Unfunded           Kind = "Unfunded"
	UnexpectedState    Kind = "UnexpectedState"
	BidRateTooLow      Kind = "BidRateTooLow"
	BidDepositTooLow   Kind = "BidDepositTooLow"
	BidInvalidInterval Kind = "BidInvalidInterval"
	ClosedForBids      Kind = "ClosedForBids"
	NameExpired        Kind = "NameExpired"
	Overflow           Kind = "Overflow"
	InsufficientTokens Kind = "InsufficientTokens"
	InsufficientFunds  Kind = "InsufficientFunds"
)

// Error is the engine's single error type. Kind is always set;
// Rate/Deposit are populated only for the two parameterized variants
// BidRateTooLow and BidDepositTooLow.
type Error struct {
	Kind    Kind
	Rate    fmt.Stringer `json:"rate,omitempty"`
	Deposit fmt.Stringer `json:"deposit,omitempty"`
}

func (e *Error) Error() string {
	switch e.Kind {
	case BidRateTooLow:
		return fmt.Sprintf("%s: offered rate must exceed %s", e.Kind, e.Rate)
	case BidDepositTooLow:
		return fmt.Sprintf("%s: attached funds must exceed %s", e.Kind, e.Deposit)
	default:
		return string(e.Kind)
	}
}

// Is supports errors.Is(err, engineerr.New(kind)) by comparing Kind
// only, so callers can match without caring about the payload.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a plain, payload-free Error of the given Kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// NewBidRateTooLow constructs the BidRateTooLow variant.
func NewBidRateTooLow(rate fmt.Stringer) *Error {
	return &Error{Kind: BidRateTooLow, Rate: rate}
}

// NewBidDepositTooLow constructs the BidDepositTooLow variant.
func NewBidDepositTooLow(deposit fmt.Stringer) *Error {
	return &Error{Kind: BidDepositTooLow, Deposit: deposit}
}

// KindOf extracts the Kind from any error produced by this package,
// or "" if err is nil or not one of ours.
func KindOf(err error) Kind {
	e, ok := err.(*Error)
	if !ok {
		return ""
	}
	return e.Kind
}
