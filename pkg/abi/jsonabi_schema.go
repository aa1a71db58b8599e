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

import "github.com/santhosh-tekuri/jsonschema/v5"

// jsonABISchema is the shape every entry of a JSON-ABI document must match
// before the tree walk in jsonabi.go begins - a generic structural check
// ("type" is a string, "components" nest the same shape) that catches a
// malformed document with one error up front, rather than a confusing
// failure partway through the walk.
var jsonABISchema = jsonschema.MustCompileString("abiEntry.json", `{
	"$ref": "#/$defs/entry",
	"$defs": {
		"entry": {
			"type": "object",
			"properties": {
				"type": { "type": "string" },
				"name": { "type": "string" },
				"inputs": {
					"type": "array",
					"items": { "$ref": "#/$defs/component" }
				},
				"outputs": {
					"type": "array",
					"items": { "$ref": "#/$defs/component" }
				},
				"stateMutability": {
					"type": "string",
					"enum": ["pure", "view", "nonpayable", "payable"]
				},
				"anonymous": { "type": "boolean" }
			},
			"required": ["type"]
		},
		"component": {
			"type": "object",
			"properties": {
				"type": { "type": "string" },
				"name": { "type": "string" },
				"indexed": { "type": "boolean" },
				"internalType": { "type": "string" },
				"components": {
					"type": "array",
					"items": { "$ref": "#/$defs/component" }
				}
			},
			"required": ["type"]
		}
	}
}`)
