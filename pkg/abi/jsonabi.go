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
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// ParseABIDocument accepts an already-unmarshalled generic JSON tree - a
// []interface{} of map[string]interface{} entries, or a single such map for
// a one-entry document - and builds the ABI it describes. Unlike ParseJSON
// it never touches encoding/json for the outer document, only for the
// per-entry re-marshal into the typed Entry/Parameter structs that already
// know how to walk themselves (Entry.Validate / Parameter.TypeComponentTree).
func ParseABIDocument(ctx context.Context, tree interface{}) (ABI, error) {
	var rawEntries []interface{}
	switch t := tree.(type) {
	case []interface{}:
		rawEntries = t
	case map[string]interface{}:
		rawEntries = []interface{}{t}
	default:
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidJSONABI, "expected an array or object")
	}

	a := make(ABI, 0, len(rawEntries))
	for _, raw := range rawEntries {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidJSONABI, "expected an object entry")
		}
		if err := jsonABISchema.Validate(m); err != nil {
			return nil, i18n.NewError(ctx, abimsgs.MsgJSONABISchemaValidation, err)
		}
		rawType, _ := m["type"].(string)
		switch EntryType(rawType) {
		case Function, Constructor, Receive, Fallback, Event, Error:
		default:
			// Not a recognized entry kind - dropped silently, not an error.
			continue
		}

		b, err := json.Marshal(m)
		if err != nil {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidJSONABI, err)
		}
		e := &Entry{}
		if err := json.Unmarshal(b, e); err != nil {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidJSONABI, err)
		}
		if err := e.ValidateCtx(ctx); err != nil {
			return nil, err
		}
		a = append(a, e)
	}
	return a, nil
}
