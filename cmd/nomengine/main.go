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

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	_ "net/http/pprof"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nametax/engine/internal/api"
	"github.com/nametax/engine/internal/auction"
	"github.com/nametax/engine/internal/config"
	"github.com/nametax/engine/internal/dispatch"
	"github.com/nametax/engine/internal/dividend"
	"github.com/nametax/engine/internal/logging"
	"github.com/nametax/engine/internal/money"
	"github.com/nametax/engine/internal/resolver"
	"github.com/nametax/engine/internal/store"
	"github.com/nametax/engine/internal/tax"
	"github.com/nametax/engine/internal/version"
)

const programName = "nomengine"

var cmdlineFlags struct {
	configFile string
	version    bool
}

func main() {
	flag.StringVar(&cmdlineFlags.configFile, "config", "", "path to config file to load")
	flag.BoolVar(&cmdlineFlags.version, "version", false, "show version")
	flag.Parse()

	if cmdlineFlags.version {
		fmt.Printf("%s %s\n", programName, version.GetVersionString())
		os.Exit(0)
	}

	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}

	logging.Configure()
	logger := logging.GetLogger()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Info)); err != nil {
		logger.Warn("failed to set GOMAXPROCS", "error", err)
	}

	if cfg.Debug.ListenPort > 0 {
		logger.Info("starting debug listener", "address", cfg.Debug.ListenAddress, "port", cfg.Debug.ListenPort)
		go func() {
			addr := fmt.Sprintf("%s:%d", cfg.Debug.ListenAddress, cfg.Debug.ListenPort)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error("debug listener failed", "error", err)
				os.Exit(1)
			}
		}()
	}

	st, err := store.OpenBadgerStore(cfg.Storage.Directory)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	auctionEngine, err := auction.New(auction.Config{
		Collector:       money.Addr(cfg.Auction.Collector),
		StableDenom:     cfg.Auction.StableDenom,
		MinLease:        money.Timedelta(cfg.Auction.MinLeaseSeconds),
		MaxLease:        money.Timedelta(cfg.Auction.MaxLeaseSeconds),
		CounterDelay:    money.Timedelta(cfg.Auction.CounterDelay),
		TransitionDelay: money.Timedelta(cfg.Auction.TransitionDelay),
		BidDelay:        money.Timedelta(cfg.Auction.BidDelay),
	}, st)
	if err != nil {
		logger.Error("invalid auction config", "error", err)
		os.Exit(1)
	}

	taxAdapter := tax.Adapter(tax.NoopAdapter{})
	if cfg.Dividend.TaxRateNumer > 0 {
		taxAdapter = tax.FlatRateAdapter{
			Denom:     cfg.Auction.StableDenom,
			RateNumer: cfg.Dividend.TaxRateNumer,
			RateDenom: cfg.Dividend.TaxRateDenom,
			Cap:       money.NewAmount(cfg.Dividend.TaxCap),
		}
	}

	dividendEngine, err := dividend.New(dividend.Config{
		BaseToken:    cfg.Dividend.BaseToken,
		StableDenom:  cfg.Auction.StableDenom,
		UnstakeDelay: money.Timedelta(cfg.Dividend.UnstakeDelay),
	}, st, taxAdapter)
	if err != nil {
		logger.Error("invalid dividend config", "error", err)
		os.Exit(1)
	}

	resolverEngine := resolver.New(st, auctionEngine)

	dispatcher := dispatch.New(st, auctionEngine, dividendEngine, resolverEngine, taxAdapter)
	svc := api.NewService(dispatcher, auctionEngine, dividendEngine, resolverEngine)

	handler, err := api.NewHandler(svc)
	if err != nil {
		logger.Error("failed to build API handler", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", handler)

	addr := fmt.Sprintf("%s:%d", cfg.ListenAddress, cfg.ListenPort)
	logger.Info("starting API listener", "address", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("API listener failed", "error", err)
		os.Exit(1)
	}
}
