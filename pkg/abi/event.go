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
	"bytes"
	"context"
	"encoding/hex"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// EventDecodeOptions controls how DecodeEventCtx validates the topics
// supplied alongside a log's data segment.
type EventDecodeOptions struct {
	// CheckSignature requires topic[0] to carry the event's own topic-0
	// hash, and verifies it. Anonymous events never consume a topic-0
	// slot, so this is forced to false for them regardless of the value
	// supplied here.
	CheckSignature bool
}

// DecodedEvent is the result of matching a log's topics/data against an
// Entry describing an event - every input field, indexed or not, resolved
// by name into a single flat value map.
type DecodedEvent struct {
	Name   string
	Values map[string]*ComponentValue
}

// Topic0 returns the 32-byte HASH(canonical signature) logs carry as
// topic[0] for a non-anonymous event - the event equivalent of a
// function's 4-byte method ID.
func (e *Entry) Topic0() ([]byte, error) {
	return e.Topic0Ctx(context.Background())
}

func (e *Entry) Topic0Ctx(ctx context.Context) ([]byte, error) {
	sig, err := e.CanonicalCtx(ctx)
	if err != nil {
		return nil, err
	}
	return defaultHasher([]byte(sig)), nil
}

// DecodeEvent matches a log's data/topics against the event's inputs.
func (e *Entry) DecodeEvent(dataBuf []byte, topics [][]byte, opts EventDecodeOptions) (*DecodedEvent, error) {
	return e.DecodeEventCtx(context.Background(), dataBuf, topics, opts)
}

func (e *Entry) DecodeEventCtx(ctx context.Context, dataBuf []byte, topics [][]byte, opts EventDecodeOptions) (*DecodedEvent, error) {
	checkSignature := opts.CheckSignature && !e.Anonymous

	indexed := make(ParameterArray, 0, len(e.Inputs))
	nonIndexed := make(ParameterArray, 0, len(e.Inputs))
	for _, p := range e.Inputs {
		if p.Indexed {
			indexed = append(indexed, p)
		} else {
			nonIndexed = append(nonIndexed, p)
		}
	}

	wantTopics := len(indexed)
	if checkSignature {
		wantTopics++
	}
	if len(topics) != wantTopics {
		return nil, i18n.NewError(ctx, abimsgs.MsgEventNotEnoughTopics, wantTopics, len(topics))
	}

	values := make(map[string]*ComponentValue, len(e.Inputs))

	topicOffset := 0
	if checkSignature {
		topic0, err := e.Topic0Ctx(ctx)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(topic0, topics[0]) {
			return nil, i18n.NewError(ctx, abimsgs.MsgEventTopic0Mismatch, e.String(), hex.EncodeToString(topic0), hex.EncodeToString(topics[0]))
		}
		topicOffset = 1
	}

	for i, p := range indexed {
		topic := topics[topicOffset+i]
		cv, err := decodeTopicValue(ctx, p, topic)
		if err != nil {
			return nil, err
		}
		values[p.Name] = cv
	}

	dataCV, err := nonIndexed.DecodeABIDataCtx(ctx, dataBuf, 0)
	if err != nil {
		return nil, err
	}
	for i, p := range nonIndexed {
		values[p.Name] = dataCV.Children[i]
	}

	return &DecodedEvent{Name: e.Name, Values: values}, nil
}

// decodeTopicValue decodes a single 32-byte topic against its field's type.
// A statically sized field (address, bool, uintN/intN, bytesN, enum-like
// elementary types) is decoded as the value it actually is. A dynamically
// sized field (string, bytes, arrays, tuples) is never "un-hashed" - a log
// only ever carries keccak256 of its encoded value in that slot - so it is
// surfaced as the raw 32-byte topic instead.
func decodeTopicValue(ctx context.Context, p *Parameter, topic []byte) (*ComponentValue, error) {
	tc, err := p.TypeComponentTreeCtx(ctx)
	if err != nil {
		return nil, err
	}
	component := tc.(*typeComponent)
	if component.isDynamic() {
		raw := make([]byte, len(topic))
		copy(raw, topic)
		return &ComponentValue{Component: component, Leaf: true, Value: raw}, nil
	}
	_, cv, err := decodeABIElement(ctx, p.Name, topic, 0, 0, component)
	return cv, err
}
