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

package types

import (
	stdasn1 "encoding/asn1"
	"fmt"

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER.
type ObjectIdentifier struct {
	oid     stdasn1.ObjectIdentifier
	content []byte
}

// NewObjectIdentifier returns the OBJECT IDENTIFIER oid.
// Reference: ISO/IEC 8825-1: 8.19
func NewObjectIdentifier(oid stdasn1.ObjectIdentifier) (*ObjectIdentifier, error) {
	if len(oid) < 2 || oid[0] < 0 || oid[0] > 2 || oid[1] < 0 || (oid[0] < 2 && oid[1] >= 40) {
		return nil, fmt.Errorf("%w: object identifier %v", ErrInvalidValue, oid)
	}
	content := appendBase128(nil, oid[0]*40+oid[1])
	for _, arc := range oid[2:] {
		if arc < 0 {
			return nil, fmt.Errorf("%w: object identifier %v", ErrInvalidValue, oid)
		}
		content = appendBase128(content, arc)
	}
	return &ObjectIdentifier{oid: oid, content: content}, nil
}

// appendBase128 appends n in base 128 with the continuation bit set on all
// but the last octet.
func appendBase128(dst []byte, n int) []byte {
	var stack [10]byte
	pos := len(stack) - 1
	stack[pos] = byte(n & 0x7f)
	for n > 127 {
		n >>= 7
		pos--
		stack[pos] = byte(n&0x7f | 0x80)
	}
	return append(dst, stack[pos:]...)
}

// OID returns the arcs of o.
func (o *ObjectIdentifier) OID() stdasn1.ObjectIdentifier { return o.oid }

func (o *ObjectIdentifier) ToPrimitive() asn1.Primitive { return o }

func (o *ObjectIdentifier) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, asn1.ClassUniversal, asn1.TagOID, o.content)
}

func (o *ObjectIdentifier) EncodeConstructed() bool { return false }

func (o *ObjectIdentifier) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, len(o.content))
}

func (o *ObjectIdentifier) ToDER() asn1.Primitive { return o }

func (o *ObjectIdentifier) ToDL() asn1.Primitive { return o }
