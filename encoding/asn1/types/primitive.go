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
	"fmt"
	"math/big"

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// Boolean is an ASN.1 BOOLEAN.
//
//	BOOLEAN ::= [UNIVERSAL 1] IMPLICIT ...
type Boolean struct {
	value byte
}

// NewBoolean returns a BOOLEAN encoded as 0xFF for true and 0x00 for false.
func NewBoolean(v bool) *Boolean {
	if v {
		return &Boolean{value: 0xff}
	}
	return &Boolean{value: 0x00}
}

// NewBooleanOctet returns a BOOLEAN with the given content octet. Any
// non-zero octet is true; BER keeps the octet as given, DER writes 0xFF.
func NewBooleanOctet(b byte) *Boolean {
	return &Boolean{value: b}
}

// Value returns the truth value of b.
func (b *Boolean) Value() bool { return b.value != 0 }

func (b *Boolean) ToPrimitive() asn1.Primitive { return b }

func (b *Boolean) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncodedByte(withTag, asn1.ClassUniversal, asn1.TagBoolean, b.value)
}

func (b *Boolean) EncodeConstructed() bool { return false }

func (b *Boolean) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, 1)
}

// ToDER returns the canonical BOOLEAN.
// Reference: ISO/IEC 8825-1: 11.1
func (b *Boolean) ToDER() asn1.Primitive {
	if b.value != 0 && b.value != 0xff {
		return &Boolean{value: 0xff}
	}
	return b
}

func (b *Boolean) ToDL() asn1.Primitive { return b }

// Integer is an ASN.1 INTEGER stored as its two's complement content octets.
type Integer struct {
	content []byte
}

// NewInteger returns the INTEGER v.
func NewInteger(v int64) *Integer {
	return NewBigInteger(big.NewInt(v))
}

// NewBigInteger returns the INTEGER n in the minimal number of octets.
func NewBigInteger(n *big.Int) *Integer {
	return &Integer{content: twosComplement(n)}
}

// NewIntegerContent returns an INTEGER with the given content octets, which
// may carry redundant leading octets. DER strips them.
func NewIntegerContent(content []byte) (*Integer, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty INTEGER content", ErrInvalidValue)
	}
	return &Integer{content: content}, nil
}

// Value returns the value of i.
func (i *Integer) Value() *big.Int {
	n := new(big.Int).SetBytes(i.content)
	if i.content[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(i.content))*8))
	}
	return n
}

func (i *Integer) ToPrimitive() asn1.Primitive { return i }

func (i *Integer) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, asn1.ClassUniversal, asn1.TagInteger, i.content)
}

func (i *Integer) EncodeConstructed() bool { return false }

func (i *Integer) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, len(i.content))
}

// ToDER returns the INTEGER without redundant leading octets.
// Reference: ISO/IEC 8825-1: 8.3.2
func (i *Integer) ToDER() asn1.Primitive {
	c := i.content
	for len(c) > 1 && ((c[0] == 0x00 && c[1]&0x80 == 0) || (c[0] == 0xff && c[1]&0x80 != 0)) {
		c = c[1:]
	}
	if len(c) == len(i.content) {
		return i
	}
	return &Integer{content: c}
}

func (i *Integer) ToDL() asn1.Primitive { return i }

// twosComplement returns the minimal two's complement octets of n.
func twosComplement(n *big.Int) []byte {
	if n.Sign() >= 0 {
		b := n.Bytes()
		if len(b) == 0 || b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// -n - 1 has the complemented bits of n
	m := new(big.Int).Neg(n)
	m.Sub(m, big.NewInt(1))
	b := m.Bytes()
	for j := range b {
		b[j] ^= 0xff
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		b = append([]byte{0xff}, b...)
	}
	return b
}

// Null is the ASN.1 NULL.
type Null struct{}

// NewNull returns NULL.
func NewNull() *Null { return &Null{} }

func (n *Null) ToPrimitive() asn1.Primitive { return n }

func (n *Null) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, asn1.ClassUniversal, asn1.TagNull, nil)
}

func (n *Null) EncodeConstructed() bool { return false }

func (n *Null) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, 0)
}

func (n *Null) ToDER() asn1.Primitive { return n }

func (n *Null) ToDL() asn1.Primitive { return n }

// String is a character string type whose content octets are the encoded
// characters, such as UTF8String or PrintableString.
type String struct {
	tag     int
	content []byte
}

// NewUTF8String returns a UTF8String.
func NewUTF8String(s string) *String {
	return &String{tag: asn1.TagUTF8String, content: []byte(s)}
}

// NewPrintableString returns a PrintableString. It fails if s contains a
// character outside the PrintableString set.
func NewPrintableString(s string) (*String, error) {
	for i := 0; i < len(s); i++ {
		if !isPrintable(s[i]) {
			return nil, fmt.Errorf("%w: %q is not a PrintableString character", ErrInvalidValue, s[i])
		}
	}
	return &String{tag: asn1.TagPrintableString, content: []byte(s)}, nil
}

// isPrintable reports whether b belongs to the PrintableString set.
// Reference: ITU-T X.680 41.4
func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		b == ' ' || b == '\'' || b == '(' || b == ')' || b == '+' ||
		b == ',' || b == '-' || b == '.' || b == '/' || b == ':' ||
		b == '=' || b == '?'
}

// String returns the characters of s.
func (s *String) String() string { return string(s.content) }

func (s *String) ToPrimitive() asn1.Primitive { return s }

func (s *String) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, asn1.ClassUniversal, s.tag, s.content)
}

func (s *String) EncodeConstructed() bool { return false }

func (s *String) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, len(s.content))
}

func (s *String) ToDER() asn1.Primitive { return s }

func (s *String) ToDL() asn1.Primitive { return s }
