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
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// effectiveBits returns the integer width used for bounds checking and
// two's-complement arithmetic for this elementary component. "address" and
// "bool" carry no M suffix of their own (they're suffixTypeNone), but they
// are serialized as ordinary 256-bit words with a narrower logical range,
// so they get a fixed effective width rather than one derived from a suffix.
func (tc *typeComponent) effectiveBits() uint16 {
	switch tc.elementaryType {
	case ElementaryTypeAddress:
		return 160
	case ElementaryTypeBool:
		return 1
	default:
		return tc.m
	}
}

// readInput converts an externally supplied Go value (typically produced by
// json.Unmarshal into interface{}, but also accepted directly) into the
// canonical in-memory representation used throughout this package:
//   - int/uint/address       -> *big.Int
//   - fixed/ufixed           -> *big.Float
//   - bool                   -> bool
//   - bytesN/bytes/function  -> []byte
//   - string                 -> string
func (et *elementaryTypeInfo) readInput(ctx context.Context, breadcrumbs string, input interface{}) (interface{}, error) {
	switch et {
	case ElementaryTypeInt, ElementaryTypeUint:
		return getIntegerFromInterface(ctx, breadcrumbs, input)
	case ElementaryTypeAddress:
		b, err := getBytesFromInterface(ctx, breadcrumbs, input)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(b), nil
	case ElementaryTypeBool:
		b, err := getBoolFromInterface(ctx, breadcrumbs, input)
		if err != nil {
			return nil, err
		}
		if b {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case ElementaryTypeFixed, ElementaryTypeUfixed:
		return getFloatFromInterface(ctx, breadcrumbs, input)
	case ElementaryTypeBytes, ElementaryTypeFunction:
		return getBytesFromInterface(ctx, breadcrumbs, input)
	case ElementaryTypeString:
		return getStringFromInterface(ctx, breadcrumbs, input)
	default:
		return nil, i18n.NewError(ctx, abimsgs.MsgBadABITypeComponent, et)
	}
}

// decodeABIData decodes the 32-byte head slot (plus any tail data it
// references) for this elementary type, starting at headPosition within
// block, with headStart as the base for any offset it contains.
func (et *elementaryTypeInfo) decodeABIData(ctx context.Context, desc string, block []byte, headStart, headPosition int, component *typeComponent) (cv *ComponentValue, err error) {
	switch et {
	case ElementaryTypeInt:
		return decodeABISignedInt(ctx, desc, block, headStart, headPosition, component)
	case ElementaryTypeUint, ElementaryTypeAddress, ElementaryTypeBool:
		return decodeABIUnsignedInt(ctx, desc, block, headStart, headPosition, component)
	case ElementaryTypeFixed:
		return decodeABISignedFloat(ctx, desc, block, headStart, headPosition, component)
	case ElementaryTypeUfixed:
		return decodeABIUnsignedFloat(ctx, desc, block, headStart, headPosition, component)
	case ElementaryTypeBytes, ElementaryTypeFunction:
		return decodeABIBytes(ctx, desc, block, headStart, headPosition, component)
	case ElementaryTypeString:
		return decodeABIString(ctx, desc, block, headStart, headPosition, component)
	default:
		return nil, i18n.NewError(ctx, abimsgs.MsgBadABITypeComponent, et)
	}
}

// encodeABIData encodes value (already normalized by readInput, or supplied
// directly by a caller building a ComponentValue tree in Go) into its
// 32-byte head representation, plus any tail bytes for dynamic content.
func (et *elementaryTypeInfo) encodeABIData(ctx context.Context, desc string, component *typeComponent, value interface{}) (data []byte, dynamic bool, err error) {
	switch et {
	case ElementaryTypeInt:
		return abiEncodeSignedInteger(ctx, desc, component, value)
	case ElementaryTypeUint, ElementaryTypeAddress, ElementaryTypeBool:
		return abiEncodeUnsignedInteger(ctx, desc, component, value)
	case ElementaryTypeFixed:
		return abiEncodeSignedFloat(ctx, desc, component, value)
	case ElementaryTypeUfixed:
		return abiEncodeUnsignedFloat(ctx, desc, component, value)
	case ElementaryTypeBytes, ElementaryTypeFunction:
		return abiEncodeBytes(ctx, desc, component, value)
	case ElementaryTypeString:
		return abiEncodeString(ctx, desc, component, value)
	default:
		return nil, false, i18n.NewError(ctx, abimsgs.MsgBadABITypeComponent, et)
	}
}
