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

package abimsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	// Type model / lexer / parser
	MsgUnsupportedABIType        = ffe("FF23001", "Unsupported ABI type '%s' in '%s'")
	MsgUnsupportedABISuffix      = ffe("FF23002", "Unsupported suffix '%s' on type '%s' - %s")
	MsgMissingABISuffix          = ffe("FF23003", "Missing required suffix on type '%s' - %s")
	MsgInvalidABISuffix          = ffe("FF23004", "Invalid suffix on type '%s' - %s")
	MsgInvalidABIArraySpec       = ffe("FF23005", "Invalid array specifier on type '%s'")
	MsgInvalidElementaryABIType  = ffe("FF23006", "Invalid elementary type suffix '%s' in '%s'")
	MsgBadABITypeComponent       = ffe("FF23007", "Invalid type component: %v")
	MsgUnexpectedABISignatureToken = ffe("FF23008", "Unexpected token '%s' at position %d in '%s'")
	MsgUnexpectedABISignatureChar  = ffe("FF23014", "Unexpected character '%s' at position %d in '%s'")
	MsgUnexpectedEndOfSignature  = ffe("FF23009", "Unexpected end of signature '%s'")
	MsgExpectedCloseParen        = ffe("FF23010", "Expected ')' at position %d in '%s'")
	MsgInvalidIdentifier         = ffe("FF23011", "Invalid identifier '%s' at position %d in '%s'")
	MsgMaxNestingExceeded        = ffe("FF23012", "Maximum tuple nesting depth %d exceeded in '%s'")
	MsgUnknownEntryType          = ffe("FF23013", "Unknown entry type '%s'")

	// Value input walking (JSON/interface{} -> ComponentValue)
	MsgInvalidIntegerABIInput      = ffe("FF23020", "Cannot parse value type '%T' (%v) as %s - %s")
	MsgInvalidFloatABIInput        = ffe("FF23021", "Cannot parse value type '%T' (%v) as %s - %s")
	MsgInvalidBoolABIInput         = ffe("FF23022", "Cannot parse value type '%T' (%v) as %s - %s")
	MsgInvalidStringABIInput       = ffe("FF23023", "Cannot parse value type '%T' (%v) as %s - %s")
	MsgInvalidHexABIInput          = ffe("FF23024", "Cannot parse value type '%T' (%v) as hex bytes - %s")
	MsgMustBeSliceABIInput         = ffe("FF23025", "Must supply an array for %T - %s")
	MsgFixedLengthABIArrayMismatch = ffe("FF23026", "Wrong number of entries for fixed length array: supplied=%d required=%d - %s")
	MsgTupleABIArrayMismatch       = ffe("FF23027", "Wrong number of entries in array for tuple: supplied=%d required=%d - %s")
	MsgTupleABINotArrayOrMap       = ffe("FF23028", "Must supply an array or map for tuple %T - %s")
	MsgTupleInABINoName             = ffe("FF23029", "No name for entry %d in tuple - %s")
	MsgMissingInputKeyABITuple     = ffe("FF23030", "Missing input field '%s' - %s")

	// Encode
	MsgWrongTypeComponentABIEncode = ffe("FF23040", "Must supply a %s not %T to encode as %v - %s")
	MsgInsufficientDataABIEncode   = ffe("FF23041", "Expected %d bytes, found %d bytes - %s")
	MsgNumberTooLargeABIEncode     = ffe("FF23042", "Number does not fit in %d bits - %s")
	MsgInvalidNumberString         = ffe("FF23043", "Invalid number string '%s'")
	MsgInvalidIntPrecisionLoss     = ffe("FF23044", "Value '%s' would lose precision converting to an integer")
	MsgInvalidJSONTypeForBigInt    = ffe("FF23045", "Cannot parse %T as a number")

	// Decode
	MsgNotEnoughtBytesABISignature   = ffe("FF23050", "Not enough bytes to contain a 4-byte method signature")
	MsgIncorrectABISignatureID       = ffe("FF23051", "Method signature '%s' resolves to id '%s' which does not match supplied data '%s'")
	MsgNotEnoughBytesABIValue        = ffe("FF23052", "Not enough bytes to decode value of type %v - %s")
	MsgNotEnoughBytesABIArrayCount   = ffe("FF23053", "Not enough bytes to decode array length - %s")
	MsgABIArrayCountTooLarge         = ffe("FF23054", "Array length %s too large - %s")

	// Output serialization
	MsgUnknownABIElementaryType   = ffe("FF23060", "Unknown elementary type %v - %s")
	MsgUnknownTupleSerializer     = ffe("FF23061", "Unknown output formatting mode %d")

	// Event codec
	MsgEventTopic0Mismatch  = ffe("FF23070", "Event signature '%s' resolves to topic[0] '%s' which does not match supplied topic[0] '%s'")
	MsgEventNotEnoughTopics = ffe("FF23071", "Event expects %d topics but %d were supplied")
	MsgEventNoAnonymousTopic0 = ffe("FF23072", "Anonymous events do not consume a topic[0] signature slot")

	// JSON-ABI loader
	MsgInvalidJSONABI          = ffe("FF23080", "Invalid JSON-ABI document: %s")
	MsgJSONABISchemaValidation = ffe("FF23081", "JSON-ABI document failed schema validation: %s")
	MsgDuplicateABIEntry       = ffe("FF23082", "Duplicate %s '%s' in ABI")
	MsgNoSuchABIEntry          = ffe("FF23083", "No %s named '%s' in ABI")

	// ethtypes restore-from-driver-value
	MsgTypeRestoreFailed = ffe("FF23090", "Failed to restore type '%T' into '%T'")

	// CLI / config
	MsgInvalidOutputFormat = ffe("FF23100", "Invalid output format '%s'")
	MsgConfigFileNotFound  = ffe("FF23101", "Config file not found at '%s'")
	MsgProfileNotFound     = ffe("FF23102", "No profile named '%s' loaded")
	MsgConfigFailed        = ffe("FF23103", "Failed to read config")
	MsgJSONABIFetchFailed  = ffe("FF23104", "Failed to fetch JSON-ABI document from '%s'")
	MsgWatchStartFailed    = ffe("FF23105", "Failed to start watching '%s'")
)
