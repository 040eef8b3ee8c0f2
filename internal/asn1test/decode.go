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

// Package asn1test decodes TLV streams produced by the encoders of this
// module so that tests can check them structurally.
// Note:
//   - Both definite and indefinite length are supported.
//   - The length of the encoded data must fit the memory space of the int32
//     type.
//
// Reference:
// - ISO/IEC 8825-1:2021
package asn1test

import (
	"encoding/asn1"
	"fmt"
)

// Value is a decoded TLV node.
type Value struct {
	// Class is the class bits of the first identifier octet.
	Class int

	// Constructed reports whether the constructed bit is set.
	Constructed bool

	// Tag is the tag number.
	Tag int

	// Indefinite reports whether the value used indefinite length.
	Indefinite bool

	// IdentifierLen and LengthLen are the number of identifier and length
	// octets.
	IdentifierLen int
	LengthLen     int

	// Content is the content octets of a primitive value, or the raw content
	// of a definite-length constructed value.
	Content []byte

	// Members are the members of a constructed value.
	Members []*Value
}

// Parse decodes exactly one TLV from r. Trailing data is an error.
func Parse(r []byte) (*Value, error) {
	v, rest, err := decode(r, 0)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, asn1.SyntaxError{Msg: fmt.Sprintf("decoding TLV: %d octets of trailing data", len(rest))}
	}
	return v, nil
}

// maxDepth bounds the nesting of constructed values.
const maxDepth = 64

// decode decodes one TLV and returns the remaining octets.
//
// Reference: ISO/IEC 8825-1: 8.1.1.3
func decode(r []byte, depth int) (*Value, []byte, error) {
	if depth > maxDepth {
		return nil, nil, asn1.StructuralError{Msg: "decoding TLV: nesting too deep"}
	}

	// structure of an encoding (primitive or constructed)
	// +----------------+----------------+----------------+
	// | identifier     | length         | content        |
	// +----------------+----------------+----------------+
	v := &Value{}
	var err error
	start := len(r)
	v.Class, v.Constructed, v.Tag, r, err = DecodeIdentifier(r)
	if err != nil {
		return nil, nil, err
	}
	v.IdentifierLen = start - len(r)

	start = len(r)
	contentLen, indefinite, r, err := DecodeLength(r)
	if err != nil {
		return nil, nil, err
	}
	v.LengthLen = start - len(r)

	if indefinite {
		if !v.Constructed {
			return nil, nil, asn1.StructuralError{Msg: "decoding TLV: indefinite length on a primitive value"}
		}
		v.Indefinite = true
		for {
			if len(r) >= 2 && r[0] == 0x00 && r[1] == 0x00 {
				return v, r[2:], nil
			}
			if len(r) == 0 {
				return nil, nil, asn1.SyntaxError{Msg: "decoding TLV: missing end-of-contents octets"}
			}
			var m *Value
			m, r, err = decode(r, depth+1)
			if err != nil {
				return nil, nil, err
			}
			v.Members = append(v.Members, m)
		}
	}

	if contentLen > len(r) {
		return nil, nil, asn1.SyntaxError{Msg: fmt.Sprintf("decoding TLV: length octets value %d exceeds the remaining %d octets", contentLen, len(r))}
	}
	v.Content = r[:contentLen]
	rest := r[contentLen:]
	if v.Constructed {
		content := v.Content
		for len(content) > 0 {
			var m *Value
			m, content, err = decode(content, depth+1)
			if err != nil {
				return nil, nil, err
			}
			v.Members = append(v.Members, m)
		}
	}
	return v, rest, nil
}

// DecodeIdentifier decodes identifier octets.
//
// Returns:
// int - The class bits.
// bool - Whether the value is constructed.
// int - The tag number.
// []byte - The remaining part of the input after the identifier octets.
// error - An error that can occur during the decoding process.
//
// Reference: ISO/IEC 8825-1: 8.1.2
func DecodeIdentifier(r []byte) (int, bool, int, []byte, error) {
	if len(r) < 1 {
		return 0, false, 0, nil, asn1.SyntaxError{Msg: "decoding identifier octets: identifier octets is empty"}
	}
	b := r[0]
	class := int(b & 0xc0)
	constructed := b&0x20 != 0
	tag := int(b & 0x1f)
	offset := 1

	// high-tag-number form
	// Reference: ISO/IEC 8825-1: 8.1.2.4
	if tag == 0x1f {
		tag = 0
		for {
			if offset >= len(r) {
				return 0, false, 0, nil, asn1.SyntaxError{Msg: "decoding identifier octets: high-tag-number form with early EOF"}
			}
			if tag > (1<<31-1)>>7 {
				return 0, false, 0, nil, asn1.StructuralError{Msg: "decoding identifier octets: tag number does not fit int32"}
			}
			c := r[offset]
			offset++
			tag = tag<<7 | int(c&0x7f)
			if c&0x80 == 0 {
				break
			}
		}
	}
	return class, constructed, tag, r[offset:], nil
}

// DecodeLength decodes length octets.
//
// Returns:
// int - The length; zero for indefinite length.
// bool - Whether the length is indefinite.
// []byte - The remaining part of the input after the length octets.
// error - An error that can occur during the decoding process.
//
// Reference: ISO/IEC 8825-1: 8.1.3
func DecodeLength(r []byte) (int, bool, []byte, error) {
	if len(r) < 1 {
		return 0, false, nil, asn1.SyntaxError{Msg: "decoding length octets: length octets is empty"}
	}
	b := r[0]
	offset := 1

	if b < 0x80 {
		// short form
		// Reference: ISO/IEC 8825-1: 8.1.3.4
		return int(b), false, r[offset:], nil
	} else if b == 0x80 {
		// Reference: ISO/IEC 8825-1: 8.1.3.6.1
		return 0, true, r[offset:], nil
	}

	// long form
	// Reference: ISO/IEC 8825-1: 8.1.3.5
	n := int(b & 0x7f)
	if n > 4 {
		return 0, false, nil, asn1.StructuralError{Msg: fmt.Sprintf("decoding length octets: length of encoded data (%d bytes) cannot exceed 4 bytes", n)}
	}
	if offset+n > len(r) {
		return 0, false, nil, asn1.SyntaxError{Msg: "decoding length octets: long form length octets with early EOF"}
	}
	var length uint64
	for i := 0; i < n; i++ {
		length = (length << 8) | uint64(r[offset])
		offset++
	}

	// length must fit the memory space of the int32.
	if (length >> 31) > 0 {
		return 0, false, nil, asn1.StructuralError{Msg: fmt.Sprintf("decoding length octets: length %d does not fit the memory space of int32", length)}
	}
	return int(length), false, r[offset:], nil
}

// HasIndefinite reports whether v or any of its members uses indefinite
// length.
func (v *Value) HasIndefinite() bool {
	if v.Indefinite {
		return true
	}
	for _, m := range v.Members {
		if m.HasIndefinite() {
			return true
		}
	}
	return false
}
