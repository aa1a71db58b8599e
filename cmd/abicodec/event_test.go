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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventCmdDecodesFromLogFlag(t *testing.T) {
	cmd := eventCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{
		"Transfer(address indexed from,address indexed to,uint256 value)",
		"--log", `{
			"removed": false,
			"logIndex": "0x0",
			"transactionIndex": "0x0",
			"blockNumber": "0x1",
			"transactionHash": "0x00",
			"blockHash": "0x00",
			"address": "0x0000000000000000000000000000000000000000",
			"data": "0x0000000000000000000000000000000000000000000000000000000000000064",
			"topics": [
				"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
				"0x0000000000000000000000000000000000000000000000000000000000000001",
				"0x0000000000000000000000000000000000000000000000000000000000000002"
			]
		}`,
	})

	assert.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"Transfer"`)
}
