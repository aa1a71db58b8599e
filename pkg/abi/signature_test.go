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

func TestCanonicalStripsNamesAndIndexed(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)

	sig, err := e.Canonical()
	assert.NoError(t, err)
	assert.Equal(t, "Transfer(address,address,uint256)", sig)
}

func TestCanonicalWithOptionsNamesAndIndexed(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)

	sig, err := e.CanonicalWithOptions(true, true)
	assert.NoError(t, err)
	assert.Equal(t, "Transfer(address indexed from,address indexed to,uint256 value)", sig)
}

func TestCanonicalWithOptionsNamesOnly(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,uint256 value)")
	assert.NoError(t, err)

	sig, err := e.CanonicalWithOptions(true, false)
	assert.NoError(t, err)
	assert.Equal(t, "Transfer(address from,uint256 value)", sig)
}
