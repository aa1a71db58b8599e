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
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	assert.NoError(t, err)
	return b
}

func TestDecodeEventTransfer(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)

	topic0, err := e.Topic0Ctx(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", hex.EncodeToString(topic0))

	topics := [][]byte{
		topic0,
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"),
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000002"),
	}
	data := mustHex(t, "0000000000000000000000000000000000000000000000000000000000000064")

	decoded, err := e.DecodeEventCtx(context.Background(), data, topics, EventDecodeOptions{CheckSignature: true})
	assert.NoError(t, err)
	assert.Equal(t, "Transfer", decoded.Name)
	assert.Equal(t, "1", decoded.Values["from"].Value.(*big.Int).String())
	assert.Equal(t, "2", decoded.Values["to"].Value.(*big.Int).String())
	assert.Equal(t, "100", decoded.Values["value"].Value.(*big.Int).String())
}

func TestDecodeEventTopic0Mismatch(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)

	badTopic0 := make([]byte, 32)
	topics := [][]byte{
		badTopic0,
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"),
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000002"),
	}
	data := mustHex(t, "0000000000000000000000000000000000000000000000000000000000000064")

	_, err = e.DecodeEventCtx(context.Background(), data, topics, EventDecodeOptions{CheckSignature: true})
	assert.Error(t, err)
}

func TestDecodeEventWrongTopicCount(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)

	_, err = e.DecodeEventCtx(context.Background(), []byte{}, [][]byte{{}}, EventDecodeOptions{CheckSignature: true})
	assert.Error(t, err)
}

func TestDecodeAnonymousEventSkipsTopic0(t *testing.T) {
	e, err := Parse(context.Background(), "Transfer(address indexed from,address indexed to,uint256 value)")
	assert.NoError(t, err)
	e.Anonymous = true

	topics := [][]byte{
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"),
		mustHex(t, "0000000000000000000000000000000000000000000000000000000000000002"),
	}
	data := mustHex(t, "0000000000000000000000000000000000000000000000000000000000000064")

	decoded, err := e.DecodeEventCtx(context.Background(), data, topics, EventDecodeOptions{CheckSignature: true})
	assert.NoError(t, err)
	assert.Equal(t, "1", decoded.Values["from"].Value.(*big.Int).String())
}

func TestDecodeEventDynamicIndexedFieldIsOpaque(t *testing.T) {
	e, err := Parse(context.Background(), "Log(string indexed message)")
	assert.NoError(t, err)

	topic0, err := e.Topic0Ctx(context.Background())
	assert.NoError(t, err)

	rawTopic := mustHex(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	topics := [][]byte{topic0, rawTopic}

	decoded, err := e.DecodeEventCtx(context.Background(), []byte{}, topics, EventDecodeOptions{CheckSignature: true})
	assert.NoError(t, err)
	assert.Equal(t, rawTopic, decoded.Values["message"].Value.([]byte))
}
