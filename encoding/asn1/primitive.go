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

// structure of a primitive encoding
// +----------------+----------------+----------------+
// | identifier     | length         | content        |
// +----------------+----------------+----------------+

// WriteEncodedByte writes a primitive value with a single content octet.
func (e *Encoder) WriteEncodedByte(withTag bool, flags, tagNo int, contents byte) error {
	if err := e.writeHeader(withTag, flags, tagNo, 1); err != nil {
		return err
	}
	return e.out.WriteByte(contents)
}

// WriteEncoded writes a primitive value with contents as content octets.
func (e *Encoder) WriteEncoded(withTag bool, flags, tagNo int, contents []byte) error {
	if err := e.writeHeader(withTag, flags, tagNo, len(contents)); err != nil {
		return err
	}
	_, err := e.out.Write(contents)
	return err
}

// WriteEncodedSlice writes a primitive value whose content octets are
// contents[off:off+n].
func (e *Encoder) WriteEncodedSlice(withTag bool, flags, tagNo int, contents []byte, off, n int) error {
	checkSlice(contents, off, n)
	return e.WriteEncoded(withTag, flags, tagNo, contents[off:off+n])
}

// WriteEncodedHead writes a primitive value whose content octets are head
// followed by tail, e.g. the unused-bits octet of a BIT STRING followed by
// its data.
func (e *Encoder) WriteEncodedHead(withTag bool, flags, tagNo int, head byte, tail []byte) error {
	if err := e.writeHeader(withTag, flags, tagNo, 1+len(tail)); err != nil {
		return err
	}
	if err := e.out.WriteByte(head); err != nil {
		return err
	}
	_, err := e.out.Write(tail)
	return err
}

// WriteEncodedHeadTail writes a primitive value whose content octets are
// head, body[off:off+n] and tail.
func (e *Encoder) WriteEncodedHeadTail(withTag bool, flags, tagNo int, head byte, body []byte, off, n int, tail byte) error {
	checkSlice(body, off, n)
	if err := e.writeHeader(withTag, flags, tagNo, 2+n); err != nil {
		return err
	}
	if err := e.out.WriteByte(head); err != nil {
		return err
	}
	if _, err := e.out.Write(body[off : off+n]); err != nil {
		return err
	}
	return e.out.WriteByte(tail)
}

// writeHeader writes the identifier and definite length octets.
func (e *Encoder) writeHeader(withTag bool, flags, tagNo, length int) error {
	if err := e.WriteIdentifier(withTag, flags, tagNo); err != nil {
		return err
	}
	return e.writeLength(length)
}

func checkSlice(b []byte, off, n int) {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		violation("content range [%d:%d+%d] out of bounds for %d octets", off, off, n, len(b))
	}
}
