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
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

// UnnamedEntry is the EntryType produced by Parse for a bare "(...)"
// signature with no leading name - a selector with no function identity,
// used to describe a raw tuple shape rather than a callable method.
const UnnamedEntry EntryType = ""

var signatureBaseTypes = map[string]bool{
	"uint": true, "int": true, "address": true, "bool": true,
	"fixed": true, "ufixed": true, "bytes": true, "function": true, "string": true,
}

// Parse reads a human-readable function/event signature
// ("transfer(address,uint256)", "Transfer(address indexed from,address indexed to,uint256 value)")
// and returns the Entry it describes.
func Parse(ctx context.Context, signatureText string) (*Entry, error) {
	tokens, err := lex(ctx, signatureText)
	if err != nil {
		return nil, err
	}
	p := &parser{src: signatureText, tokens: tokens}
	return p.parseSelector(ctx)
}

// argFrame accumulates the fields of one arglist ("(" ... ")") as they are
// completed. Tuple nesting is modelled as a stack of these frames rather
// than as parser call recursion, so a signature containing many levels of
// nested tuples costs no additional Go call-stack depth than a flat one -
// only additional entries on this heap-allocated stack.
type argFrame struct {
	children []*typeComponent
}

type parser struct {
	src    string
	tokens []token
	pos    int
}

func (p *parser) peek() token   { return p.tokens[p.pos] }
func (p *parser) advance() token { t := p.tokens[p.pos]; p.pos++; return t }

func (p *parser) errAt(ctx context.Context, t token) error {
	return i18n.NewError(ctx, abimsgs.MsgUnexpectedABISignatureToken, t.text, t.offset, p.src)
}

func (p *parser) parseSelector(ctx context.Context) (*Entry, error) {
	e := &Entry{Type: UnnamedEntry}
	if p.peek().kind == tokIdent {
		e.Name = p.advance().text
		e.Type = Function
	}
	if p.peek().kind != tokLParen {
		return nil, p.errAt(ctx, p.peek())
	}
	inputs, err := p.parseArgList(ctx)
	if err != nil {
		return nil, err
	}
	e.Inputs = inputs

	if p.peek().kind == tokArrow {
		p.advance()
		outputs, err := p.parseArgList(ctx)
		if err != nil {
			return nil, err
		}
		e.Outputs = outputs
	}

	if p.peek().kind != tokEOF {
		return nil, p.errAt(ctx, p.peek())
	}
	return e, nil
}

// parseArgList consumes one "(" arg { "," arg } ")" group, using an
// explicit stack of argFrame to support arbitrarily nested tuple args
// without recursing once per nesting level.
func (p *parser) parseArgList(ctx context.Context) (ParameterArray, error) {
	if p.peek().kind != tokLParen {
		return nil, p.errAt(ctx, p.peek())
	}
	p.advance() // consume "("
	stack := []*argFrame{{}}
	expectArgOrClose := true

	for {
		if len(stack) == 0 {
			break
		}
		top := stack[len(stack)-1]

		switch p.peek().kind {
		case tokRParen:
			p.advance()
			tc := &typeComponent{
				cType:         TupleComponent,
				tupleChildren: top.children,
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				// Closed the outermost arglist - return its fields directly.
				return tupleChildrenToParameters(tc.tupleChildren), nil
			}
			completed, err := p.finishArg(ctx, tc)
			if err != nil {
				return nil, err
			}
			stack[len(stack)-1].children = append(stack[len(stack)-1].children, completed)
			expectArgOrClose = false
			continue

		case tokLParen:
			if !expectArgOrClose {
				return nil, p.errAt(ctx, p.peek())
			}
			p.advance()
			stack = append(stack, &argFrame{})
			expectArgOrClose = true
			continue

		case tokComma:
			if expectArgOrClose {
				return nil, p.errAt(ctx, p.peek())
			}
			p.advance()
			expectArgOrClose = true
			continue

		case tokIdent:
			if !expectArgOrClose {
				return nil, p.errAt(ctx, p.peek())
			}
			tc, err := p.parseAtomicType(ctx)
			if err != nil {
				return nil, err
			}
			completed, err := p.finishArg(ctx, tc)
			if err != nil {
				return nil, err
			}
			top.children = append(top.children, completed)
			expectArgOrClose = false
			continue

		default:
			return nil, p.errAt(ctx, p.peek())
		}
	}
	return nil, p.errAt(ctx, p.peek())
}

// parseAtomicType consumes a base type name plus its optional <M>/<M>x<N>
// suffix - all one ident token off the lexer, since digits are valid
// identifier-continuation characters there. The base name is recovered by
// taking the leading letter run and treating what's left as the suffix
// string, exactly as typecomponents.go's parseABIParameterComponents does
// for the JSON-ABI path; buildElementaryTypeComponent is left to validate
// the suffix shape (including splitting "128x18" on its "x").
func (p *parser) parseAtomicType(ctx context.Context) (*typeComponent, error) {
	nameTok := p.advance()
	baseName, suffix := splitTypeNameSuffix(nameTok.text)
	et, ok := elementaryTypes[baseName]
	if !ok || !signatureBaseTypes[baseName] {
		return nil, i18n.NewError(ctx, abimsgs.MsgUnsupportedABIType, nameTok.text, p.src)
	}
	if suffix == "" {
		suffix = et.defaultSuffix
	}

	return buildElementaryTypeComponent(ctx, baseName+suffix, et, suffix)
}

// splitTypeNameSuffix splits "uint256" into "uint"/"256", "fixed128x18" into
// "fixed"/"128x18", and "bool" into "bool"/"" - the leading run of letters is
// the base type name, everything after it is the suffix.
func splitTypeNameSuffix(text string) (string, string) {
	i := 0
	for i < len(text) && !isDigit(text[i]) {
		i++
	}
	return text[:i], text[i:]
}

// finishArg wraps a completed atomic/tuple type with its trailing "[...]"
// array suffixes, consumed left to right in a simple loop (so a run of
// bracket pairs costs no additional call-stack depth), then consumes the
// optional "indexed" keyword and trailing parameter name that may follow
// any argument.
func (p *parser) finishArg(ctx context.Context, tc *typeComponent) (*typeComponent, error) {
	for p.peek().kind == tokLBracket {
		p.advance()
		arrayLength := -1
		if p.peek().kind == tokNumber {
			lenTok := p.advance()
			n := 0
			for _, r := range lenTok.text {
				n = n*10 + int(r-'0')
			}
			arrayLength = n
		}
		if p.peek().kind != tokRBracket {
			return nil, p.errAt(ctx, p.peek())
		}
		p.advance()
		if arrayLength < 0 {
			tc = &typeComponent{cType: DynamicArrayComponent, arrayChild: tc}
		} else {
			tc = &typeComponent{cType: FixedArrayComponent, arrayChild: tc, arrayLength: arrayLength}
		}
	}

	if p.peek().kind == tokIdent && p.peek().text == "indexed" {
		p.advance()
		tc.indexed = true
	}
	if p.peek().kind == tokIdent {
		tc.keyName = p.advance().text
	}
	return tc, nil
}

// tupleChildrenToParameters converts a parsed type tree back into the
// Parameter form used by Entry.Inputs/Outputs, caching the already-built
// typeComponent so a subsequent Validate/TypeComponentTree call does not
// re-parse the type string.
func tupleChildrenToParameters(children []*typeComponent) ParameterArray {
	params := make(ParameterArray, len(children))
	for i, c := range children {
		// A tuple, or an array of tuples, is written the JSON-ABI way: "tuple"
		// plus its array suffixes as the Type, and its fields as Components.
		base, arraySuffix := c, ""
		for base.cType == FixedArrayComponent || base.cType == DynamicArrayComponent {
			if base.cType == FixedArrayComponent {
				arraySuffix = "[" + strconv.Itoa(base.arrayLength) + "]" + arraySuffix
			} else {
				arraySuffix = "[]" + arraySuffix
			}
			base = base.arrayChild
		}
		params[i] = &Parameter{
			Name:   c.keyName,
			Type:   c.String(),
			Indexed: c.indexed,
			parsed: c,
		}
		if base.cType == TupleComponent {
			params[i].Type = "tuple" + arraySuffix
			params[i].Components = tupleChildrenToParameters(base.tupleChildren)
		}
	}
	return params
}
