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

func TestParseSimpleFunction(t *testing.T) {
	e, err := Parse(context.Background(), "transfer(address,uint256)")
	assert.NoError(t, err)
	assert.Equal(t, Function, e.Type)
	assert.Equal(t, "transfer", e.Name)
	assert.Len(t, e.Inputs, 2)
	assert.Equal(t, "address", e.Inputs[0].Type)
	assert.Equal(t, "uint256", e.Inputs[1].Type)
}

func TestParseNamedParamsAndIndexed(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)
	assert.Equal(t, "Transfer", e.Name)
	assert.Equal(t, "from", e.Inputs[0].Name)
	assert.True(t, e.Inputs[0].Indexed)
	assert.Equal(t, "value", e.Inputs[2].Name)
	assert.False(t, e.Inputs[2].Indexed)
}

func TestParseNestedTuplesAndArrays(t *testing.T) {
	e, err := Parse(context.Background(), "foo((uint256,bool)[],bytes32[3])")
	assert.NoError(t, err)
	assert.Equal(t, "tuple[]", e.Inputs[0].Type)
	assert.Len(t, e.Inputs[0].Components, 2)
	assert.Equal(t, "bytes32[3]", e.Inputs[1].Type)
}

func TestParseOutputs(t *testing.T) {
	e, err := Parse(context.Background(), "balanceOf(address)->(uint256)")
	assert.NoError(t, err)
	assert.Len(t, e.Inputs, 1)
	assert.Len(t, e.Outputs, 1)
	assert.Equal(t, "uint256", e.Outputs[0].Type)
}

func TestParseUnnamedSelector(t *testing.T) {
	e, err := Parse(context.Background(), "(uint256,address)")
	assert.NoError(t, err)
	assert.Equal(t, UnnamedEntry, e.Type)
	assert.Equal(t, "", e.Name)
	assert.Len(t, e.Inputs, 2)
}

func TestParseFixedPointSuffix(t *testing.T) {
	e, err := Parse(context.Background(), "setRate(fixed128x18)")
	assert.NoError(t, err)
	assert.Equal(t, "fixed128x18", e.Inputs[0].Type)
}

func TestParseFixedDefaultsSuffix(t *testing.T) {
	// A bare "fixed" with no MxN suffix falls back to defaultSuffix, exactly
	// as the JSON-ABI type-string path does for the same case.
	e, err := Parse(context.Background(), "setRate(fixed)")
	assert.NoError(t, err)
	assert.Equal(t, "fixed128x18", e.Inputs[0].Type)
}

func TestParseUnexpectedToken(t *testing.T) {
	_, err := Parse(context.Background(), "transfer(address,,uint256)")
	assert.Error(t, err)
}

func TestParseMissingCloseParen(t *testing.T) {
	_, err := Parse(context.Background(), "transfer(address,uint256")
	assert.Error(t, err)
}

func TestParseUnknownType(t *testing.T) {
	_, err := Parse(context.Background(), "transfer(notAType)")
	assert.Error(t, err)
}

func TestParseBadFixedSuffix(t *testing.T) {
	_, err := Parse(context.Background(), "setRate(fixed128y18)")
	assert.Error(t, err)
}
