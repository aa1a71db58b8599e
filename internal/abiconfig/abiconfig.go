// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package abiconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// SelectorCacheSize is a size for a cache of parsed signatures. It has a
	// default, but no subcommand reads it; the CLI keeps no such cache.
	SelectorCacheSize = ffc("cache.selectorLimit")
	// ProfilesFile points at a TOML file of named signature aliases.
	ProfilesFile = ffc("profiles.file")
	// ServeAddress is the listen address of the "serve" subcommand's HTTP facade.
	ServeAddress = ffc("serve.address")
	// ServePort is the listen port of the "serve" subcommand's HTTP facade.
	ServePort = ffc("serve.port")
	// OutputFormat names a rendering for results ("json" or "hex"). It has a
	// default, but no subcommand reads it: encode always prints hex and
	// decode always prints JSON.
	OutputFormat = ffc("output.format")
)

func setDefaults() {
	viper.SetDefault(string(SelectorCacheSize), 1000)
	viper.SetDefault(string(ServeAddress), "127.0.0.1")
	viper.SetDefault(string(ServePort), 8080)
	viper.SetDefault(string(OutputFormat), "json")
}

func Reset() {
	config.RootConfigReset(setDefaults)
}
