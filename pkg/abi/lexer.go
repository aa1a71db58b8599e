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

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokArrow
	tokEOF
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// scanner turns a human-readable signature string ("transfer(address,uint256)")
// into a flat token stream. It carries no parsing state of its own beyond a
// read cursor, so it never recurses - lexing cost is linear in input length
// regardless of how deeply nested the signature's tuples/arrays are.
type scanner struct {
	src    string
	pos    int
	tokens []token
}

func lex(ctx context.Context, src string) ([]token, error) {
	s := &scanner{src: src}
	for {
		s.skipWhitespace()
		if s.pos >= len(s.src) {
			s.tokens = append(s.tokens, token{kind: tokEOF, offset: s.pos})
			return s.tokens, nil
		}
		start := s.pos
		c := s.src[s.pos]
		switch {
		case c == '(':
			s.tokens = append(s.tokens, token{kind: tokLParen, text: "(", offset: start})
			s.pos++
		case c == ')':
			s.tokens = append(s.tokens, token{kind: tokRParen, text: ")", offset: start})
			s.pos++
		case c == '[':
			s.tokens = append(s.tokens, token{kind: tokLBracket, text: "[", offset: start})
			s.pos++
		case c == ']':
			s.tokens = append(s.tokens, token{kind: tokRBracket, text: "]", offset: start})
			s.pos++
		case c == ',':
			s.tokens = append(s.tokens, token{kind: tokComma, text: ",", offset: start})
			s.pos++
		case c == '-' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '>':
			s.tokens = append(s.tokens, token{kind: tokArrow, text: "->", offset: start})
			s.pos += 2
		case isDigit(c):
			for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
				s.pos++
			}
			s.tokens = append(s.tokens, token{kind: tokNumber, text: s.src[start:s.pos], offset: start})
		case isIdentStart(c):
			for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
				s.pos++
			}
			s.tokens = append(s.tokens, token{kind: tokIdent, text: s.src[start:s.pos], offset: start})
		default:
			return nil, i18n.NewError(ctx, abimsgs.MsgUnexpectedABISignatureChar, string(c), start, src)
		}
	}
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t' || s.src[s.pos] == '\n' || s.src[s.pos] == '\r') {
		s.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
