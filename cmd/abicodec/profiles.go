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

package abicodec

import (
	"context"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/pelletier/go-toml"

	"github.com/go-ethabi/ethabi/internal/abiconfig"
	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// profiles is a named set of signature aliases, loaded from a TOML file
// such as:
//
//	[profiles]
//	transfer = "transfer(address,uint256)"
//	approve  = "approve(address,uint256)"
type profiles struct {
	Profiles map[string]string `toml:"profiles"`
}

func loadProfiles(ctx context.Context, path string) (*profiles, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgConfigFileNotFound, path)
	}
	p := &profiles{}
	if err := toml.Unmarshal(b, p); err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgConfigFileNotFound, path)
	}
	return p, nil
}

// resolve returns the signature registered under name, or name itself if
// it is not a registered profile alias - so a caller can pass either a
// profile name or a raw signature interchangeably.
func (p *profiles) resolve(ctx context.Context, name string) (string, error) {
	if p == nil {
		return name, nil
	}
	if sig, ok := p.Profiles[name]; ok {
		return sig, nil
	}
	return name, nil
}

// resolveSignature applies the --profiles file (or the profiles.file config
// key) to a raw command-line argument, substituting a registered alias for
// its signature. With no profiles file configured, raw is returned as-is.
func resolveSignature(ctx context.Context, raw string) (string, error) {
	path := profilesFile
	if path == "" {
		path = config.GetString(abiconfig.ProfilesFile)
	}
	if path == "" {
		return raw, nil
	}
	p, err := loadProfiles(ctx, path)
	if err != nil {
		return "", err
	}
	return p.resolve(ctx, raw)
}
