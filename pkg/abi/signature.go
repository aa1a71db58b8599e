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
	"strings"
)

// Canonical renders the selector signature used to derive a method ID or
// topic-0 - the function/event name followed by its parameter types only,
// with no parameter names and no "indexed" markers. This is exactly
// Entry.SignatureCtx, given a distinct name here because it is the value
// every HASH input in this package is built from.
func (e *Entry) Canonical() (string, error) {
	return e.CanonicalCtx(context.Background())
}

func (e *Entry) CanonicalCtx(ctx context.Context) (string, error) {
	return e.SignatureCtx(ctx)
}

// CanonicalWithOptions renders a human-readable signature, optionally
// including each parameter's name and/or its "indexed" marker - the form
// used when describing an event's fields to a person, as opposed to the
// terse form used to derive a hash.
func (e *Entry) CanonicalWithOptions(names, indexed bool) (string, error) {
	return e.CanonicalWithOptionsCtx(context.Background(), names, indexed)
}

func (e *Entry) CanonicalWithOptionsCtx(ctx context.Context, names, indexed bool) (string, error) {
	buff := new(strings.Builder)
	buff.WriteString(e.Name)
	buff.WriteByte('(')
	for i, p := range e.Inputs {
		if i > 0 {
			buff.WriteByte(',')
		}
		s, err := p.SignatureStringCtx(ctx)
		if err != nil {
			return "", err
		}
		buff.WriteString(s)
		if indexed && p.Indexed {
			buff.WriteString(" indexed")
		}
		if names && p.Name != "" {
			buff.WriteByte(' ')
			buff.WriteString(p.Name)
		}
	}
	buff.WriteByte(')')
	return buff.String(), nil
}
