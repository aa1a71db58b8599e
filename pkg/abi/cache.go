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

package abi

import (
	"context"
	"time"

	"github.com/karlseguin/ccache"
)

const defaultCacheTTL = 24 * time.Hour

// SelectorCache memoizes Parse against the raw signature text, so a long
// running process (a watch loop, an HTTP server) does not re-lex/re-parse
// the same signature on every call.
type SelectorCache struct {
	entries *ccache.Cache
	ttl     time.Duration
}

// NewSelectorCache builds a size-bounded LRU cache of parsed signatures.
// size is the maximum number of distinct signatures to retain.
func NewSelectorCache(size int) *SelectorCache {
	return &SelectorCache{
		entries: ccache.New(ccache.Configure().MaxSize(int64(size))),
		ttl:     defaultCacheTTL,
	}
}

func (c *SelectorCache) Parse(ctx context.Context, signatureText string) (*Entry, error) {
	item := c.entries.Get(signatureText)
	if item != nil && !item.Expired() {
		return item.Value().(*Entry), nil
	}
	e, err := Parse(ctx, signatureText)
	if err != nil {
		return nil, err
	}
	c.entries.Set(signatureText, e, c.ttl)
	return e, nil
}
