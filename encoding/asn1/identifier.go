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

package asn1

import "math"

// WriteIdentifier encodes the identifier octets of a value. Nothing is
// written when withTag is false.
//
// Parameters:
// withTag - whether the identifier is written at all.
// flags - the class and constructed bits.
// tagNo - the tag number, in the range 0 to math.MaxInt32.
//
// Reference: ISO/IEC 8825-1: 8.1.2
func (e *Encoder) WriteIdentifier(withTag bool, flags, tagNo int) error {
	if !withTag {
		return nil
	}
	if tagNo < 0 {
		violation("negative tag number %d", tagNo)
	}
	if tagNo > math.MaxInt32 {
		violation("tag number %d exceeds 32 bits", tagNo)
	}
	if tagNo < 31 {
		return e.out.WriteByte(byte(flags | tagNo))
	}

	// high-tag-number form
	// Reference: ISO/IEC 8825-1: 8.1.2.4
	var stack [6]byte
	pos := len(stack)
	pos--
	stack[pos] = byte(tagNo & 0x7f)
	for tagNo > 127 {
		tagNo >>= 7
		pos--
		stack[pos] = byte(tagNo&0x7f | 0x80)
	}
	pos--
	stack[pos] = byte(flags | 0x1f)
	_, err := e.out.Write(stack[pos:])
	return err
}

// IdentifierLength returns the number of identifier octets for tagNo.
func IdentifierLength(tagNo int) int {
	if tagNo < 31 {
		return 1
	}
	length := 2
	for tagNo > 127 {
		length++
		tagNo >>= 7
	}
	return length
}
