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
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"
	gorillajson "github.com/gorilla/rpc/v2/json"
)

// NewHandler registers svc under the "engine" JSON-RPC namespace,
// exactly as the Avalanche-lineage platform VM registers its
// "platform" namespace: one gorilla/rpc server, a JSON codec bound to
// both the bare and charset-qualified content types.
func NewHandler(svc *Service) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(gorillajson.NewCodec(), "application/json")
	server.RegisterCodec(gorillajson.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(svc, "engine"); err != nil {
		return nil, fmt.Errorf("api: failed to register service: %w", err)
	}
	return server, nil
}
