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

// lengthIndefinite is the length octet opening an indefinite-length value.
const lengthIndefinite = 0x80

// writeLength encodes definite length octets. Short form is used for lengths
// less than 128, otherwise long form in the minimum number of octets.
// Reference: ISO/IEC 8825-1: 8.1.3
func (e *Encoder) writeLength(length int) error {
	if length < 0 {
		violation("negative length %d", length)
	}
	if length < 0x80 {
		return e.out.WriteByte(byte(length))
	}

	size := DLLength(length) - 1
	if err := e.out.WriteByte(0x80 | byte(size)); err != nil {
		return err
	}
	for i := (size - 1) * 8; i >= 0; i -= 8 {
		if err := e.out.WriteByte(byte(length >> i)); err != nil {
			return err
		}
	}
	return nil
}

// writeEndOfContents writes the two octets closing an indefinite-length
// value.
// Reference: ISO/IEC 8825-1: 8.1.5
func (e *Encoder) writeEndOfContents() error {
	if err := e.out.WriteByte(0x00); err != nil {
		return err
	}
	return e.out.WriteByte(0x00)
}

// DLLength returns the number of octets used to encode length in definite
// form.
func DLLength(length int) int {
	if length < 0x80 {
		return 1
	}
	count := 2
	for length >>= 8; length != 0; length >>= 8 {
		count++
	}
	return count
}

// DLEncodingLength returns the total length of a definite-length encoding
// with a single identifier octet.
func DLEncodingLength(withTag bool, contentsLength int) int {
	n := DLLength(contentsLength) + contentsLength
	if withTag {
		n++
	}
	return n
}

// DLEncodingLengthWithTag returns the total length of a definite-length
// encoding whose identifier carries tagNo.
func DLEncodingLengthWithTag(withTag bool, tagNo, contentsLength int) int {
	n := DLLength(contentsLength) + contentsLength
	if withTag {
		n += IdentifierLength(tagNo)
	}
	return n
}
