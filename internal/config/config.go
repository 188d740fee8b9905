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

package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the process-wide configuration for the nomengine binary:
// storage location, logging, the debug listener, the JSON-RPC API
// listener, and the auction/dividend/resolver deployment parameters.
type Config struct {
	Logging       LoggingConfig  `yaml:"logging"`
	Debug         DebugConfig    `yaml:"debug"`
	Storage       StorageConfig  `yaml:"storage"`
	Auction       AuctionConfig  `yaml:"auction"`
	Dividend      DividendConfig `yaml:"dividend"`
	ListenAddress string         `yaml:"listenAddress" envconfig:"LISTEN_ADDRESS"`
	ListenPort    uint           `yaml:"port" envconfig:"PORT"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port" envconfig:"DEBUG_PORT"`
}

type StorageConfig struct {
	Directory string `yaml:"dir" envconfig:"STORAGE_DIR"`
}

// AuctionConfig mirrors auction.Config for YAML/env loading; it is
// translated into an auction.Config by cmd/nomengine at startup.
type AuctionConfig struct {
	Collector       string `yaml:"collector"        envconfig:"AUCTION_COLLECTOR"`
	StableDenom     string `yaml:"stableDenom"      envconfig:"AUCTION_STABLE_DENOM"`
	MinLeaseSeconds uint64 `yaml:"minLeaseSeconds"  envconfig:"AUCTION_MIN_LEASE_SECONDS"`
	MaxLeaseSeconds uint64 `yaml:"maxLeaseSeconds"  envconfig:"AUCTION_MAX_LEASE_SECONDS"`
	CounterDelay    uint64 `yaml:"counterDelay"     envconfig:"AUCTION_COUNTER_DELAY"`
	TransitionDelay uint64 `yaml:"transitionDelay"  envconfig:"AUCTION_TRANSITION_DELAY"`
	BidDelay        uint64 `yaml:"bidDelay"         envconfig:"AUCTION_BID_DELAY"`
}

// DividendConfig mirrors dividend.Config for YAML/env loading, plus
// the flat-rate tax adapter parameters applied to the collector's
// forwarded deposits and to dividend withdrawals. TaxRateNumer of 0
// disables tax entirely (tax.NoopAdapter).
type DividendConfig struct {
	BaseToken    string `yaml:"baseToken"     envconfig:"DIVIDEND_BASE_TOKEN"`
	UnstakeDelay uint64 `yaml:"unstakeDelay"  envconfig:"DIVIDEND_UNSTAKE_DELAY"`
	TaxRateNumer uint64 `yaml:"taxRateNumer"  envconfig:"DIVIDEND_TAX_RATE_NUMER"`
	TaxRateDenom uint64 `yaml:"taxRateDenom"  envconfig:"DIVIDEND_TAX_RATE_DENOM"`
	TaxCap       uint64 `yaml:"taxCap"        envconfig:"DIVIDEND_TAX_CAP"`
}

// globalConfig is the singleton instance, seeded with defaults whose
// lease and delay lengths are whole 24-hour days.
var globalConfig = &Config{
	ListenPort: 3000,
	Logging: LoggingConfig{
		Level: "info",
	},
	Debug: DebugConfig{
		ListenAddress: "localhost",
		ListenPort:    0,
	},
	Storage: StorageConfig{
		Directory: "./.nomengine",
	},
	Auction: AuctionConfig{
		StableDenom:     "uabc",
		MinLeaseSeconds: 30 * 24 * 3600,
		MaxLeaseSeconds: 730 * 24 * 3600,
		CounterDelay:    24 * 3600,
		TransitionDelay: 24 * 3600,
		BidDelay:        24 * 3600,
	},
	Dividend: DividendConfig{
		UnstakeDelay: 21 * 24 * 3600,
	},
}

// Load reads configFile (if non-empty) as YAML into the global config,
// then overlays environment variables.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %s", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %s", err)
		}
	}
	// We use "dummy" as the app name here to (mostly) prevent picking up
	// env vars that we hadn't explicitly specified in annotations above
	if err := envconfig.Process("dummy", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %s", err)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance.
func GetConfig() *Config {
	return globalConfig
}
