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

// Package resolver implements a thin name -> string map, gated by the
// auction engine's read-only name-state view.
package resolver

import (
	"encoding/json"
	"fmt"

	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/engineerr"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/store"
)

// NameStateSource is the read-only view the auction engine exposes;
// the resolver depends on this narrow interface rather than on
// *auction.Engine directly so it never reaches into auction state.
type NameStateSource interface {
	NameStateView(name string, now money.Timestamp) (auction.NameStateView, bool, error)
}

// Engine is the resolver, bound to a Store namespace and a source of
// name-state views.
type Engine struct {
	store  store.Store
	source NameStateSource
}

// New constructs a resolver Engine.
func New(st store.Store, source NameStateSource) *Engine {
	return &Engine{store: st, source: source}
}

func valueKey(name string) []byte {
	return []byte("resolver/value/" + name)
}

// SetNameValue rejects unless the name's controller is sender and the
// name is not expired.
func (e *Engine) SetNameValue(b store.Batch, name string, value *string, sender money.Addr, now money.Timestamp) error {
	view, ok, err := e.source.NameStateView(name, now)
	if err != nil {
		return err
	}
	if !ok || view.Controller == nil || *view.Controller != sender {
		return engineerr.New(engineerr.Unauthorized)
	}
	if view.ExpireTime != nil && *view.ExpireTime <= now {
		return engineerr.New(engineerr.NameExpired)
	}

	if value == nil {
		b.Delete(valueKey(name))
		return nil
	}
	raw, err := json.Marshal(*value)
	if err != nil {
		return fmt.Errorf("resolver: encode value for %q: %w", name, err)
	}
	b.Set(valueKey(name), raw)
	return nil
}

// ResolveResult is the reply shape for ResolveName.
type ResolveResult struct {
	Value      *string          `json:"value,omitempty"`
	ExpireTime *money.Timestamp `json:"expireTime,omitempty"`
}

// ResolveName returns the current value and expiry for name.
func (e *Engine) ResolveName(name string, now money.Timestamp) (ResolveResult, error) {
	view, _, err := e.source.NameStateView(name, now)
	if err != nil {
		return ResolveResult{}, err
	}

	raw, ok, err := e.store.Get(valueKey(name))
	if err != nil {
		return ResolveResult{}, err
	}
	res := ResolveResult{ExpireTime: view.ExpireTime}
	if !ok {
		return res, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ResolveResult{}, fmt.Errorf("resolver: corrupt value for %q: %w", name, err)
	}
	res.Value = &v
	return res, nil
}
