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
	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// DefaultChunkSize is the segment size of BER OCTET STRINGs.
const DefaultChunkSize = 1000

// OctetString is an ASN.1 OCTET STRING.
type OctetString struct {
	content   []byte
	chunkSize int // BER form only; zero for the primitive form
}

// NewOctetString returns an OCTET STRING that is always primitive.
func NewOctetString(content []byte) *OctetString {
	return &OctetString{content: content}
}

// NewBEROctetString returns an OCTET STRING that is written in constructed,
// indefinite-length form under BER when content exceeds chunkSize octets.
// A non-positive chunkSize selects DefaultChunkSize.
func NewBEROctetString(content []byte, chunkSize int) *OctetString {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &OctetString{content: content, chunkSize: chunkSize}
}

// Octets returns the content of o.
func (o *OctetString) Octets() []byte { return o.content }

func (o *OctetString) ToPrimitive() asn1.Primitive { return o }

func (o *OctetString) Encode(e *asn1.Encoder, withTag bool) error {
	if !o.EncodeConstructed() {
		return e.WriteEncoded(withTag, asn1.ClassUniversal, asn1.TagOctetString, o.content)
	}
	return e.WriteEncodedIndef(withTag, asn1.ClassUniversal, asn1.TagOctetString, o.chunks())
}

// EncodeConstructed reports whether o is split into segments.
func (o *OctetString) EncodeConstructed() bool {
	return o.chunkSize > 0 && len(o.content) > o.chunkSize
}

func (o *OctetString) EncodedLength(withTag bool) int {
	if !o.EncodeConstructed() {
		return asn1.DLEncodingLength(withTag, len(o.content))
	}
	return indefiniteLength(withTag, asn1.TagOctetString, o.chunks())
}

// chunks splits the content into primitive segments.
// Reference: ISO/IEC 8825-1: 8.7.3
func (o *OctetString) chunks() []asn1.Encodable {
	var segments []asn1.Encodable
	for i := 0; i < len(o.content); i += o.chunkSize {
		end := i + o.chunkSize
		if end > len(o.content) {
			end = len(o.content)
		}
		segments = append(segments, NewOctetString(o.content[i:end]))
	}
	return segments
}

// ToDER returns the primitive form of o.
func (o *OctetString) ToDER() asn1.Primitive {
	if o.chunkSize == 0 {
		return o
	}
	return NewOctetString(o.content)
}

// ToDL returns the primitive form of o.
func (o *OctetString) ToDL() asn1.Primitive {
	return o.ToDER()
}
