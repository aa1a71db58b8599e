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
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// TypeComponent is a modelled representation of a component of an ABI type.
// We don't just go to the tuple level, we go down all the way through the arrays too.
// This breaks things down into the way in which they are serialized/parsed.
// Example "((uint256,string[2],string[])[][3][],string)" becomes:
// - tuple1
//   - variable size array
//      - fixed size [3] array
//         - variable size array
//            - tuple2
//               - uint256
//               - fixed size [2] array
//                  - string
//               - variable size array
//                   - string
//   - string
// This thus matches the way a JSON structure would exist to supply values in
type TypeComponent interface {
	String() string                     // gives the signature for this type level of the type component hierarchy
	ComponentType() ComponentType       // classification of the component type (tuple, array or elemental)
	ElementaryType() ElementaryTypeInfo // only non-nil for elementary components
	ArrayChild() TypeComponent          // only non-nil for array components
	ArrayLength() int                   // only meaningful for fixed array components
	TupleChildren() []TypeComponent     // only non-nil for tuple components
	KeyName() string                    // the parameter/field name, if one was supplied
	StructName() string                 // the struct name, if this tuple was promoted from a JSON-ABI "struct ..." internalType
	Indexed() bool                      // whether this component was declared "indexed" (event parameters only)
	isDynamic() bool
	headSize() int
}

type typeComponent struct {
	cType            ComponentType       // Is this parameter an elementary type, an array, or a tuple
	elementaryType   *elementaryTypeInfo // for elementary types - the type info reference
	elementarySuffix string              // for elementary types - the suffix
	m                uint16              // M dimension of elementary type suffix
	n                uint16              // N dimension of elementary type suffix
	arrayLength      int                 // The length of a fixed length array
	arrayChild       *typeComponent      // For array parameter
	tupleChildren    []*typeComponent    // For tuple parameters
	keyName          string              // The parameter/field name, if one was supplied
	structName       string              // The struct name, for a tuple promoted from internalType "struct X"
	indexed          bool                // Whether this was declared "indexed" (event parameters only)
}

// elementaryTypeInfo defines the string parsing rules, as well as a pointer to the functions for
// serialization to a set of bytes, and back again
type elementaryTypeInfo struct {
	name          string     // The name of the type - the alphabetic characters up to an optional suffix
	suffixType    suffixType // Whether there is a length suffix, and its type
	defaultSuffix string     // If set and there is no suffix supplied, the following suffix is used
	mMin          uint16     // For suffixes with an M dimension, this is the minimum value
	mMax          uint16     // For suffixes with an M dimension, this is the maximum (inclusive) value
	mMod          uint16     // If non-zero, then (M % MMod) == 0 must be true
	nMin          uint16     // For suffixes with an N dimension, this is the minimum value
	nMax          uint16     // For suffixes with an N dimension, this is the maximum (inclusive) value
}

// ElementaryTypeInfo represents the rules for each elementary type understood by this ABI type parser.
type ElementaryTypeInfo interface {
	String() string // gives a summary of the rules the elemental type (used in error reporting)
}

func (et *elementaryTypeInfo) String() string {
	switch et.suffixType {
	case suffixTypeMOptional, suffixTypeMRequired:
		s := fmt.Sprintf("%s<M> (%d <= M <= %d)", et.name, et.mMin, et.mMax)
		if et.mMod != 0 {
			s = fmt.Sprintf("%s (M mod %d == 0)", s, et.mMod)
		}
		if et.suffixType == suffixTypeMOptional {
			s = fmt.Sprintf("%s / %s", et.name, s)
		}
		if et.defaultSuffix != "" {
			s = fmt.Sprintf("%s (%s == %s%s)", s, et.name, et.name, et.defaultSuffix)
		}
		return s
	case suffixTypeMxNRequired:
		s := fmt.Sprintf("%s<M>x<N> (%d <= M <= %d) (%d <= N <= %d)", et.name, et.mMin, et.mMax, et.nMin, et.nMax)
		if et.mMod != 0 {
			s = fmt.Sprintf("%s (M mod %d == 0)", s, et.mMod)
		}
		if et.defaultSuffix != "" {
			s = fmt.Sprintf("%s (%s == %s%s)", s, et.name, et.name, et.defaultSuffix)
		}
		return s
	default:
		return et.name
	}
}

var elementaryTypes = map[string]*elementaryTypeInfo{}

func registerElementaryType(et elementaryTypeInfo) *elementaryTypeInfo {
	elementaryTypes[et.name] = &et
	return &et
}

var (
	ElementaryTypeInt = registerElementaryType(elementaryTypeInfo{
		name:          "int",
		suffixType:    suffixTypeMRequired,
		defaultSuffix: "256",
		mMin:          8,
		mMax:          256,
		mMod:          8,
	})
	ElementaryTypeUint = registerElementaryType(elementaryTypeInfo{
		name:          "uint",
		suffixType:    suffixTypeMRequired,
		defaultSuffix: "256",
		mMin:          8,
		mMax:          256,
		mMod:          8,
	})
	ElementaryTypeAddress = registerElementaryType(elementaryTypeInfo{
		name:       "address",
		suffixType: suffixTypeNone,
	})
	ElementaryTypeBool = registerElementaryType(elementaryTypeInfo{
		name:       "bool",
		suffixType: suffixTypeNone,
	})
	ElementaryTypeFixed = registerElementaryType(elementaryTypeInfo{
		name:          "fixed",
		suffixType:    suffixTypeMxNRequired,
		defaultSuffix: "128x18",
		mMin:          8,
		mMax:          256,
		mMod:          8,
		nMin:          1,
		nMax:          80,
	})
	ElementaryTypeUfixed = registerElementaryType(elementaryTypeInfo{
		name:          "ufixed",
		suffixType:    suffixTypeMxNRequired,
		defaultSuffix: "128x18",
		mMin:          8,
		mMax:          256,
		mMod:          8,
		nMin:          1,
		nMax:          80,
	})
	ElementaryTypeBytes = registerElementaryType(elementaryTypeInfo{
		name:       "bytes",
		suffixType: suffixTypeMOptional, // note that "bytes" without a suffix is a special dynamic sized byte sequence
		mMin:       1,
		mMax:       32,
	})
	ElementaryTypeFunction = registerElementaryType(elementaryTypeInfo{
		name:       "function",
		suffixType: suffixTypeNone,
	})
	ElementaryTypeString = registerElementaryType(elementaryTypeInfo{
		name:       "string",
		suffixType: suffixTypeNone,
	})
	ElementaryTypeTuple = registerElementaryType(elementaryTypeInfo{
		name:       "tuple",
		suffixType: suffixTypeNone,
	})
)

type suffixType int

const (
	suffixTypeNone        suffixType = iota // There is no suffix possible - like "address" or "bool"
	suffixTypeMOptional                     // There is a single dimension suffix, and it is optional - like "bytes"/"bytes32"
	suffixTypeMRequired                     // There is a single dimension suffix, and it is required - like "uint256"
	suffixTypeMxNRequired                   // There is a two-dimensional suffix - like "fixed128x128"
)

// ComponentType classifies a node of the type tree: elementary leaf, one of
// the two array shapes, or a tuple.
type ComponentType int

const (
	ElementaryComponent ComponentType = iota
	FixedArrayComponent
	DynamicArrayComponent
	TupleComponent
)

func (tc *typeComponent) String() string {
	switch tc.cType {
	case ElementaryComponent:
		return fmt.Sprintf("%s%s", tc.elementaryType.name, tc.elementarySuffix)
	case FixedArrayComponent:
		return fmt.Sprintf("%s[%d]", tc.arrayChild.String(), tc.arrayLength)
	case DynamicArrayComponent:
		return fmt.Sprintf("%s[]", tc.arrayChild.String())
	case TupleComponent:
		buff := new(strings.Builder)
		buff.WriteByte('(')
		for i, child := range tc.tupleChildren {
			if i > 0 {
				buff.WriteByte(',')
			}
			buff.WriteString(child.String())
		}
		buff.WriteByte(')')
		return buff.String()
	default:
		return ""
	}
}

func (tc *typeComponent) ComponentType() ComponentType {
	return tc.cType
}

func (tc *typeComponent) ElementaryType() ElementaryTypeInfo {
	return tc.elementaryType
}

func (tc *typeComponent) ArrayLength() int { return tc.arrayLength }
func (tc *typeComponent) KeyName() string  { return tc.keyName }
func (tc *typeComponent) StructName() string { return tc.structName }
func (tc *typeComponent) Indexed() bool    { return tc.indexed }

func (tc *typeComponent) ArrayChild() TypeComponent {
	if tc.arrayChild == nil {
		return nil
	}
	return tc.arrayChild
}

func (tc *typeComponent) TupleChildren() []TypeComponent {
	if tc.tupleChildren == nil {
		return nil
	}
	children := make([]TypeComponent, len(tc.tupleChildren))
	for i, c := range tc.tupleChildren {
		children[i] = c
	}
	return children
}

// isDynamic implements the dyn(T) classifier: every elementary type is
// static except unsuffixed "bytes" and "string"; a fixed array of length
// zero is always static; otherwise a fixed array is dynamic iff its
// element type is; a dynamic array is always dynamic; a tuple is dynamic
// iff any one of its fields is.
func (tc *typeComponent) isDynamic() bool {
	switch tc.cType {
	case ElementaryComponent:
		name := tc.elementaryType.name
		return name == "string" || (name == "bytes" && tc.elementarySuffix == "")
	case FixedArrayComponent:
		return tc.arrayLength > 0 && tc.arrayChild.isDynamic()
	case DynamicArrayComponent:
		return true
	case TupleComponent:
		for _, c := range tc.tupleChildren {
			if c.isDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headSize returns the number of head-section bytes this component
// contributes within its enclosing tuple. Every component occupies 32
// bytes there (either its value directly, for a static component, or an
// offset pointer into the tail, for a dynamic one) with exactly one
// exception: a static tuple is inlined in place of its parent's slot,
// contributing the recursive sum of its own children's head sizes rather
// than a single offset word. The same rule applies to a static fixed
// array of static tuples. Getting this exception right at every nesting
// level, not just the outermost one, is what makes offset arithmetic
// line up with solc-generated call data.
func (tc *typeComponent) headSize() int {
	if tc.cType == TupleComponent && !tc.isDynamic() {
		total := 0
		for _, c := range tc.tupleChildren {
			total += c.headSize()
		}
		return total
	}
	if tc.cType == FixedArrayComponent && !tc.isDynamic() {
		return tc.arrayLength * tc.arrayChild.headSize()
	}
	return 32
}

func (p *Parameter) parseABIParameterComponents(ctx context.Context) (tc *typeComponent, err error) {
	abiTypeString := p.Type

	// Extract the elementary type
	etBuilder := new(strings.Builder)
	for _, r := range abiTypeString {
		if r >= 'a' && r <= 'z' {
			etBuilder.WriteRune(r)
		} else {
			break
		}
	}
	etStr := etBuilder.String()
	et, ok := elementaryTypes[etStr]
	if !ok {
		return nil, i18n.NewError(ctx, abimsgs.MsgUnsupportedABIType, etStr, abiTypeString)
	}

	// Split what's left of the string into the suffix, and any array definitions
	suffix, arrays := splitElementaryTypeSuffix(abiTypeString, len(etStr))
	if suffix == "" {
		suffix = et.defaultSuffix
	}

	if et == ElementaryTypeTuple {
		tc = &typeComponent{
			cType:         TupleComponent,
			tupleChildren: make([]*typeComponent, len(p.Components)),
		}
		if name, ok := structNameFromInternalType(p.InternalType); ok {
			tc.structName = name
		}
		// Process all the components of the tuple
		for i, c := range p.Components {
			if tc.tupleChildren[i], err = c.parseABIParameterComponents(ctx); err != nil {
				return nil, err
			}
			if tc.structName != "" && tc.tupleChildren[i].keyName == "" {
				// Struct field-address addressing requires every field to
				// have a name - synthesize one for an unnamed field.
				tc.tupleChildren[i].keyName = fmt.Sprintf("var%d", i)
			}
		}
	} else {
		if tc, err = buildElementaryTypeComponent(ctx, abiTypeString, et, suffix); err != nil {
			return nil, err
		}
	}

	tc.keyName = p.Name
	tc.indexed = p.Indexed

	if arrays != "" {
		// The component needs to be wrapped in some number of array dimensions
		return parseArrays(ctx, abiTypeString, tc, arrays)
	}

	return tc, nil
}

// buildElementaryTypeComponent validates suffix against the rules of et
// (required/optional/absent, M/N bounds, M modulus) and returns the
// resulting leaf typeComponent. desc is the original text being parsed,
// used only to build error messages.
func buildElementaryTypeComponent(ctx context.Context, desc string, et *elementaryTypeInfo, suffix string) (*typeComponent, error) {
	tc := &typeComponent{
		cType:            ElementaryComponent,
		elementaryType:   et,
		elementarySuffix: suffix,
	}
	switch et.suffixType {
	case suffixTypeNone:
		if suffix != "" {
			return nil, i18n.NewError(ctx, abimsgs.MsgUnsupportedABISuffix, suffix, desc, et)
		}
	case suffixTypeMRequired:
		if suffix == "" {
			return nil, i18n.NewError(ctx, abimsgs.MsgMissingABISuffix, desc, et)
		}
		if err := parseMSuffix(ctx, desc, tc, suffix); err != nil {
			return nil, err
		}
	case suffixTypeMOptional:
		if suffix != "" {
			if err := parseMSuffix(ctx, desc, tc, suffix); err != nil {
				return nil, err
			}
		}
	case suffixTypeMxNRequired:
		if suffix == "" {
			return nil, i18n.NewError(ctx, abimsgs.MsgMissingABISuffix, desc, et)
		}
		if err := parseMxNSuffix(ctx, desc, tc, suffix); err != nil {
			return nil, err
		}
	}
	return tc, nil
}

// structNameFromInternalType pulls "Thing" out of an internalType of
// "struct Thing" or "struct Contract.Thing[]"
func structNameFromInternalType(internalType string) (string, bool) {
	const prefix = "struct "
	if !strings.HasPrefix(internalType, prefix) {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimPrefix(internalType, prefix))
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}
	return name, name != ""
}

// splitElementaryTypeSuffix splits out the "256" from "[8][]" in "uint256[8][]"
func splitElementaryTypeSuffix(abiTypeString string, pos int) (string, string) {
	suffix := new(strings.Builder)
	for ; pos < len(abiTypeString) && abiTypeString[pos] != '['; pos++ {
		suffix.WriteByte(abiTypeString[pos])
	}
	arrays := new(strings.Builder)
	for ; pos < len(abiTypeString); pos++ {
		arrays.WriteByte(abiTypeString[pos])
	}
	return suffix.String(), arrays.String()
}

// parseMSuffix parses the "256" in "uint256" against the <M> rules for an elementary type, such as uint<M>, or ufixed<M>x<N>.
func parseMSuffix(ctx context.Context, abiTypeString string, ec *typeComponent, suffix string) error {
	val, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	ec.m = uint16(val)
	if ec.m < ec.elementaryType.mMin || ec.m > ec.elementaryType.mMax {
		return i18n.NewError(ctx, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	if ec.elementaryType.mMod != 0 && (ec.m%ec.elementaryType.mMod) != 0 {
		return i18n.NewError(ctx, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	return nil
}

// parseNSuffix parses the "18" in "ufixed256x18" against the <N> rules for an elementary type, such as ufixed<M>x<N>
func parseNSuffix(ctx context.Context, abiTypeString string, ec *typeComponent, suffix string) error {
	val, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	ec.n = uint16(val)
	if ec.n < ec.elementaryType.nMin || ec.n > ec.elementaryType.nMax {
		return i18n.NewError(ctx, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	return nil
}

// parseMxNSuffix validates the "256x18" in "ufixed256x18", individually validating the <M> and <N> parts of the elementary type
func parseMxNSuffix(ctx context.Context, abiTypeString string, ec *typeComponent, suffix string) error {
	pos := 0
	mStr := new(strings.Builder)
	for ; pos < len(suffix) && suffix[pos] != 'x'; pos++ {
		mStr.WriteByte(suffix[pos])
	}
	if pos >= (len(suffix) - 1) {
		return i18n.NewError(ctx, abimsgs.MsgInvalidABISuffix, abiTypeString, ec.elementaryType)
	}
	pos++
	if err := parseMSuffix(ctx, abiTypeString, ec, mStr.String()); err != nil {
		return err
	}
	return parseNSuffix(ctx, abiTypeString, ec, suffix[pos:])
}

// parseArrayM parses the "8" in "uint256[8]" for a fixed length array of <type>[M]
func parseArrayM(ctx context.Context, abiTypeString string, ac *typeComponent, mStr string) error {
	val, err := strconv.ParseUint(mStr, 10, 32)
	if err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgInvalidABIArraySpec, abiTypeString)
	}
	ac.arrayLength = int(val)
	return nil
}

// parseArrays builds the array wrapper(s) for the "[8][]" part of
// "uint256[8][]", walking the dimensions iteratively (left to right, as
// declared) instead of via recursion whose depth tracks the number of
// array dimensions in the input. A signature with many bracket pairs
// therefore costs stack space proportional to nothing, not to the input.
func parseArrays(ctx context.Context, abiTypeString string, child *typeComponent, suffix string) (*typeComponent, error) {
	current := child
	for len(suffix) > 0 {
		if suffix[0] != '[' {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidABIArraySpec, abiTypeString)
		}
		end := strings.IndexByte(suffix, ']')
		if end < 0 {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidABIArraySpec, abiTypeString)
		}
		mStr := suffix[1:end]
		var next *typeComponent
		if mStr == "" {
			next = &typeComponent{
				cType:      DynamicArrayComponent,
				arrayChild: current,
			}
		} else {
			next = &typeComponent{
				cType:      FixedArrayComponent,
				arrayChild: current,
			}
			if err := parseArrayM(ctx, abiTypeString, next, mStr); err != nil {
				return nil, err
			}
		}
		current = next
		suffix = suffix[end+1:]
	}
	return current, nil
}
