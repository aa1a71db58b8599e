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

import "golang.org/x/crypto/sha3"

// Hasher computes the 32-byte Keccak-256 digest used to derive a method's
// 4-byte selector and an event's 32-byte topic-0. It is pluggable so a
// caller that already has an HSM-backed or hardware-accelerated Keccak-256
// implementation can supply it instead of the default.
type Hasher func(data []byte) []byte

// Keccak256 is the default Hasher, using golang.org/x/crypto/sha3's
// Legacy Keccak-256 (the pre-NIST-finalization variant Ethereum uses -
// not the standard SHA3-256).
func Keccak256(data []byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hash.Sum(nil)
}

// defaultHasher is used by GenerateIDCtx/Topic0Ctx when no other Hasher
// has been selected. Exposed as a package variable, rather than a
// constant, so a process can swap it once at startup.
var defaultHasher Hasher = Keccak256

// SetDefaultHasher overrides the package-wide default Hasher used by
// Entry.GenerateIDCtx and Entry.Topic0Ctx.
func SetDefaultHasher(h Hasher) {
	if h != nil {
		defaultHasher = h
	}
}
