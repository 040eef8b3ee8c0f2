// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package asn1 encodes trees of ASN.1 values into the tag-length-value wire
// format under one of three encoding rules:
//   - BER allows indefinite-length constructed values.
//   - DER is canonical: definite length only and every value in its minimal
//     representation.
//   - DL uses definite length only, without DER value canonicalization.
//
// Values are not known to this package. Anything implementing [Primitive]
// can be written: the encoder asks the value to normalize itself for the
// active rules and then calls back into the encoder from Primitive.Encode.
//
// Reference:
// - http://luca.ntop.org/Teaching/Appunti/asn1.html
// - ISO/IEC 8825-1:2021
package asn1

// Identifier octet flags.
// Reference: ISO/IEC 8825-1: 8.1.2
const (
	ClassUniversal       = 0x00
	ClassApplication     = 0x40
	ClassContextSpecific = 0x80
	ClassPrivate         = 0xC0

	// Constructed marks a constructed encoding.
	Constructed = 0x20

	// ClassMask selects the class bits of an identifier octet.
	ClassMask = 0xC0
)

// Universal tag numbers used by the encoders in this module.
const (
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagPrintableString = 19
	TagGeneralizedTime = 24
)

// Encoding names accepted by NewEncoderWithRules and Marshal.
const (
	EncodingBER = "BER"
	EncodingDER = "DER"
	EncodingDL  = "DL"
)

// Ruleset selects the encoding rules of an Encoder.
type Ruleset int

const (
	// BER is the permissive rule set and the default.
	BER Ruleset = iota

	// DER is the distinguished, fully canonical rule set.
	DER

	// DL is definite-length only, without DER value canonicalization.
	DL
)

// String returns the encoding name of r.
func (r Ruleset) String() string {
	switch r {
	case DER:
		return EncodingDER
	case DL:
		return EncodingDL
	default:
		return EncodingBER
	}
}

// ParseRuleset maps an encoding name to its Ruleset. The match is exact and
// case-sensitive; unknown names select BER.
func ParseRuleset(encoding string) Ruleset {
	switch encoding {
	case EncodingDER:
		return DER
	case EncodingDL:
		return DL
	default:
		return BER
	}
}

// Encodable is anything that resolves to an encodable ASN.1 value.
type Encodable interface {
	// ToPrimitive returns the underlying value to encode.
	ToPrimitive() Primitive
}

// Primitive is a resolved ASN.1 value that knows how to write itself.
type Primitive interface {
	Encodable

	// Encode writes the value to e. The identifier octets are written only
	// when withTag is true.
	Encode(e *Encoder, withTag bool) error

	// EncodeConstructed reports whether Encode produces a constructed
	// encoding.
	EncodeConstructed() bool

	// EncodedLength returns the number of octets Encode writes under the
	// value's own form. Definite-length constructed values use it to size
	// their content before writing.
	EncodedLength(withTag bool) int

	// ToDER returns the DER form of the value.
	ToDER() Primitive

	// ToDL returns the definite-length form of the value.
	ToDL() Primitive
}
