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
	"fmt"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// EncodeABIData serializes a value tree (built via ParseJSON/ParseExternalData,
// or constructed directly) into ABI encoded bytes - the head/tail binary layout
// used for function call data, function return data and event log data.
func (cv *ComponentValue) EncodeABIData() ([]byte, error) {
	return cv.EncodeABIDataCtx(context.Background())
}

func (cv *ComponentValue) EncodeABIDataCtx(ctx context.Context) ([]byte, error) {
	component, ok := cv.Component.(*typeComponent)
	if !ok {
		return nil, i18n.NewError(ctx, abimsgs.MsgBadABITypeComponent, cv.Component)
	}
	head, tail, err := encodeABIElement(ctx, "", cv, component)
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}

// encodeABIElement is symmetrical with decodeABIElement: every case here has
// a matching case there, and both apply the "static tuple inlining" rule -
// a static tuple/array contributes the sum of its children's head bytes with
// no offset slot of its own - in exactly the same place, so that what this
// package encodes, it can also decode.
//
// Unlike decodeABIElement, encodeABIElement needs no headStart/headPosition
// bookkeeping: an offset embedded in ABI encoded data is always relative to
// the start of its own immediately enclosing head/tail region, so each
// recursive call can treat "head" and "tail" as freshly zero-based byte
// slices and let its caller graft them into the right place.
func encodeABIElement(ctx context.Context, breadcrumbs string, cv *ComponentValue, component *typeComponent) (head []byte, tail []byte, err error) {
	switch component.cType {
	case ElementaryComponent:
		data, dynamic, err := component.elementaryType.encodeABIData(ctx, breadcrumbs, component, cv.Value)
		if err != nil {
			return nil, nil, err
		}
		if dynamic {
			return nil, data, nil
		}
		return data, nil, nil

	case FixedArrayComponent:
		children, err := repeatedChildren(ctx, breadcrumbs, cv, component)
		if err != nil {
			return nil, nil, err
		}
		seqHead, seqTail, err := encodeABISequence(ctx, breadcrumbs, cv.Children, children)
		if err != nil {
			return nil, nil, err
		}
		if !component.isDynamic() {
			return seqHead, nil, nil
		}
		return nil, append(seqHead, seqTail...), nil

	case DynamicArrayComponent:
		children := make([]*typeComponent, len(cv.Children))
		for i := range children {
			children[i] = component.arrayChild
		}
		seqHead, seqTail, err := encodeABISequence(ctx, breadcrumbs, cv.Children, children)
		if err != nil {
			return nil, nil, err
		}
		content := append(seqHead, seqTail...)
		return nil, encodeABILength(len(cv.Children), content), nil

	case TupleComponent:
		seqHead, seqTail, err := encodeABISequence(ctx, breadcrumbs, cv.Children, component.tupleChildren)
		if err != nil {
			return nil, nil, err
		}
		if !component.isDynamic() {
			return seqHead, nil, nil
		}
		return nil, append(seqHead, seqTail...), nil

	default:
		return nil, nil, i18n.NewError(ctx, abimsgs.MsgBadABITypeComponent, component.cType)
	}
}

func repeatedChildren(ctx context.Context, breadcrumbs string, cv *ComponentValue, component *typeComponent) ([]*typeComponent, error) {
	if len(cv.Children) != component.arrayLength {
		return nil, i18n.NewError(ctx, abimsgs.MsgFixedLengthABIArrayMismatch, len(cv.Children), component.arrayLength, breadcrumbs)
	}
	children := make([]*typeComponent, component.arrayLength)
	for i := range children {
		children[i] = component.arrayChild
	}
	return children, nil
}

// encodeABISequence encodes an ordered list of values (a tuple's fields, or
// an array's elements) into the head/tail region they share: static values
// are inlined into the head at the position their headSize() reserves for
// them; dynamic values get a single offset word in the head - relative to
// the start of this region - with their actual content appended to the tail.
func encodeABISequence(ctx context.Context, breadcrumbs string, values []*ComponentValue, components []*typeComponent) (head []byte, tail []byte, err error) {
	if len(values) != len(components) {
		return nil, nil, i18n.NewError(ctx, abimsgs.MsgTupleABIArrayMismatch, len(values), len(components), breadcrumbs)
	}
	headTotal := 0
	for _, c := range components {
		headTotal += c.headSize()
	}
	heads := make([][]byte, len(components))
	tails := make([][]byte, len(components))
	tailCursor := headTotal
	for i, childComponent := range components {
		childBreadcrumbs := fmt.Sprintf("%s[%d]", breadcrumbs, i)
		if childComponent.keyName != "" {
			childBreadcrumbs = fmt.Sprintf("%s.%s", breadcrumbs, childComponent.keyName)
		}
		childHead, childTail, err := encodeABIElement(ctx, childBreadcrumbs, values[i], childComponent)
		if err != nil {
			return nil, nil, err
		}
		if childComponent.isDynamic() {
			offsetWord := make([]byte, 32)
			big.NewInt(int64(tailCursor)).FillBytes(offsetWord)
			heads[i] = offsetWord
			tails[i] = childTail
			tailCursor += len(childTail)
		} else {
			heads[i] = childHead
		}
	}
	return joinAll(heads), joinAll(tails), nil
}

// encodeABILength prepends the uint256 length prefix used ahead of every
// dynamic array's and every dynamic bytes/string value's content.
func encodeABILength(length int, content []byte) []byte {
	data := make([]byte, 32+len(content))
	big.NewInt(int64(length)).FillBytes(data[0:32])
	copy(data[32:], content)
	return data
}

func joinAll(chunks [][]byte) []byte {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
