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

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// BitString is an ASN.1 BIT STRING.
//
// The content octets are the number of unused bits in the final octet
// followed by the data.
// Reference: ISO/IEC 8825-1: 8.6
type BitString struct {
	data    []byte
	padBits int
	der     bool
}

// NewBitString returns a BIT STRING of data whose final octet has padBits
// unused bits. BER and DL keep the unused bits as given; DER clears them.
func NewBitString(data []byte, padBits int) (*BitString, error) {
	if padBits < 0 || padBits > 7 {
		return nil, fmt.Errorf("%w: BIT STRING pad bits %d not in range 0..7", ErrInvalidValue, padBits)
	}
	if len(data) == 0 && padBits != 0 {
		return nil, fmt.Errorf("%w: empty BIT STRING with %d pad bits", ErrInvalidValue, padBits)
	}
	return &BitString{data: data, padBits: padBits}, nil
}

// Bytes returns the data and the number of unused bits.
func (b *BitString) Bytes() ([]byte, int) { return b.data, b.padBits }

func (b *BitString) ToPrimitive() asn1.Primitive { return b }

func (b *BitString) Encode(e *asn1.Encoder, withTag bool) error {
	pad := byte(b.padBits)
	if !b.der || len(b.data) == 0 {
		return e.WriteEncodedHead(withTag, asn1.ClassUniversal, asn1.TagBitString, pad, b.data)
	}
	// DER: unused bits are zero
	// Reference: ISO/IEC 8825-1: 11.2.1
	last := len(b.data) - 1
	lastOctet := b.data[last] & (0xff << b.padBits)
	return e.WriteEncodedHeadTail(withTag, asn1.ClassUniversal, asn1.TagBitString, pad, b.data, 0, last, lastOctet)
}

func (b *BitString) EncodeConstructed() bool { return false }

func (b *BitString) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, 1+len(b.data))
}

func (b *BitString) ToDER() asn1.Primitive {
	if b.der {
		return b
	}
	return &BitString{data: b.data, padBits: b.padBits, der: true}
}

func (b *BitString) ToDL() asn1.Primitive { return b }
