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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorCacheReturnsSameEntryOnHit(t *testing.T) {
	c := NewSelectorCache(10)

	e1, err := c.Parse(context.Background(), "transfer(address,uint256)")
	assert.NoError(t, err)

	e2, err := c.Parse(context.Background(), "transfer(address,uint256)")
	assert.NoError(t, err)

	assert.Same(t, e1, e2)
}

func TestSelectorCacheDistinctSignatures(t *testing.T) {
	c := NewSelectorCache(10)

	e1, err := c.Parse(context.Background(), "transfer(address,uint256)")
	assert.NoError(t, err)

	e2, err := c.Parse(context.Background(), "approve(address,uint256)")
	assert.NoError(t, err)

	assert.NotSame(t, e1, e2)
	assert.Equal(t, "transfer", e1.Name)
	assert.Equal(t, "approve", e2.Name)
}

func TestSelectorCachePropagatesParseError(t *testing.T) {
	c := NewSelectorCache(10)

	_, err := c.Parse(context.Background(), "transfer(notAType)")
	assert.Error(t, err)
}
