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

// WriteElements writes the complete encoding of every element, in order.
func (e *Encoder) WriteElements(elements []Encodable) error {
	for _, element := range elements {
		if element == nil {
			return ErrNilObject
		}
		p := element.ToPrimitive()
		if p == nil {
			return ErrNilObject
		}
		if err := e.WritePrimitive(p, true); err != nil {
			return err
		}
	}
	return nil
}

// WritePrimitives writes the complete encoding of every primitive, in order.
func (e *Encoder) WritePrimitives(primitives []Primitive) error {
	for _, p := range primitives {
		if p == nil {
			return ErrNilObject
		}
		if err := e.WritePrimitive(p, true); err != nil {
			return err
		}
	}
	return nil
}

// WriteEncodedDefinite writes a definite-length constructed value. The
// caller computes contentsLength up front, usually as the sum of the
// members' EncodedLength; the members must write exactly that many octets.
func (e *Encoder) WriteEncodedDefinite(withTag bool, flags, tagNo, contentsLength int, elements []Encodable) error {
	if err := e.writeHeader(withTag, flags, tagNo, contentsLength); err != nil {
		return err
	}
	start := e.out.n
	if err := e.WriteElements(elements); err != nil {
		return err
	}
	if written := e.out.n - start; written != int64(contentsLength) {
		violation("declared content length %d but members wrote %d octets", contentsLength, written)
	}
	return nil
}

// WriteEncodedIndef writes a constructed value in indefinite-length form:
// the identifier, the 0x80 length octet, the members and the end-of-contents
// octets. It is only valid under BER.
// Reference: ISO/IEC 8825-1: 8.1.3.6
func (e *Encoder) WriteEncodedIndef(withTag bool, flags, tagNo int, elements []Encodable) error {
	if err := e.writeIndefHeader(withTag, flags, tagNo); err != nil {
		return err
	}
	if err := e.WriteElements(elements); err != nil {
		return err
	}
	return e.writeEndOfContents()
}

// WriteEncodedIndefContents wraps already encoded members in an
// indefinite-length constructed value. It is only valid under BER.
func (e *Encoder) WriteEncodedIndefContents(withTag bool, flags, tagNo int, contents []byte) error {
	if err := e.writeIndefHeader(withTag, flags, tagNo); err != nil {
		return err
	}
	if _, err := e.out.Write(contents); err != nil {
		return err
	}
	return e.writeEndOfContents()
}

func (e *Encoder) writeIndefHeader(withTag bool, flags, tagNo int) error {
	if e.rules != BER {
		violation("indefinite length under %s", e.rules)
	}
	if err := e.WriteIdentifier(withTag, flags|Constructed, tagNo); err != nil {
		return err
	}
	return e.out.WriteByte(lengthIndefinite)
}
