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

// nomcalc is an offline calculator exposing the rent-rounding helpers
// an operator needs when sizing a bid or fund transaction without
// standing up the full engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nametax/engine/internal/money"
)

var cmdlineFlags struct {
	mode    string
	delta   uint64
	rate    uint64
	deposit uint64
}

func main() {
	flag.StringVar(&cmdlineFlags.mode, "mode", "", "one of: floor, ceil, seconds")
	flag.Uint64Var(&cmdlineFlags.delta, "delta", 0, "elapsed seconds (floor/ceil modes)")
	flag.Uint64Var(&cmdlineFlags.rate, "rate", 0, "rate per RATE_PERIOD")
	flag.Uint64Var(&cmdlineFlags.deposit, "deposit", 0, "deposit amount (seconds mode)")
	flag.Parse()

	rate := money.NewAmount(cmdlineFlags.rate)

	switch cmdlineFlags.mode {
	case "floor":
		out, err := money.DepositFloor(money.Timedelta(cmdlineFlags.delta), rate)
		fail(err)
		fmt.Println(out.String())
	case "ceil":
		out, err := money.DepositCeil(money.Timedelta(cmdlineFlags.delta), rate)
		fail(err)
		fmt.Println(out.String())
	case "seconds":
		deposit := money.NewAmount(cmdlineFlags.deposit)
		out, err := money.SecondsFromDeposit(deposit, rate)
		fail(err)
		fmt.Println(uint64(out))
	default:
		fmt.Println("mode must be one of: floor, ceil, seconds")
		os.Exit(1)
	}
}

func fail(err error) {
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}
