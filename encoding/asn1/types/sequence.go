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
	"bytes"
	"sort"

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// Sequence is an ASN.1 SEQUENCE or SEQUENCE OF.
type Sequence struct {
	elements []asn1.Encodable
	form     form
}

// NewSequence returns a SEQUENCE that is always written in DER.
func NewSequence(elements ...asn1.Encodable) *Sequence {
	return &Sequence{elements: elements, form: formDER}
}

// NewBERSequence returns a SEQUENCE that is written with indefinite length
// under BER.
func NewBERSequence(elements ...asn1.Encodable) *Sequence {
	return &Sequence{elements: elements, form: formBER}
}

// NewDLSequence returns a SEQUENCE that is written with definite length
// and members in DL.
func NewDLSequence(elements ...asn1.Encodable) *Sequence {
	return &Sequence{elements: elements, form: formDL}
}

// Elements returns the members of s.
func (s *Sequence) Elements() []asn1.Encodable { return s.elements }

func (s *Sequence) ToPrimitive() asn1.Primitive { return s }

func (s *Sequence) Encode(e *asn1.Encoder, withTag bool) error {
	return encodeConstructed(e, withTag, asn1.ClassUniversal, asn1.TagSequence, s.elements, s.form)
}

func (s *Sequence) EncodeConstructed() bool { return true }

func (s *Sequence) EncodedLength(withTag bool) int {
	if s.form == formBER {
		return indefiniteLength(withTag, asn1.TagSequence, s.elements)
	}
	return asn1.DLEncodingLength(withTag, contentsLength(s.elements, s.form))
}

func (s *Sequence) ToDER() asn1.Primitive {
	if s.form == formDER {
		return s
	}
	return &Sequence{elements: s.elements, form: formDER}
}

// ToDL returns s unchanged if it is already definite length.
func (s *Sequence) ToDL() asn1.Primitive {
	if s.form != formBER {
		return s
	}
	return &Sequence{elements: s.elements, form: formDL}
}

// Set is an ASN.1 SET or SET OF. In DER the members are written in
// ascending order of their DER encodings.
// Reference: ISO/IEC 8825-1: 11.6
type Set struct {
	elements []asn1.Encodable
	form     form
}

// NewSet returns a SET that is always written in DER.
func NewSet(elements ...asn1.Encodable) *Set {
	return &Set{elements: sortDER(elements), form: formDER}
}

// NewBERSet returns a SET that is written with indefinite length under BER.
// Members keep their order outside DER.
func NewBERSet(elements ...asn1.Encodable) *Set {
	return &Set{elements: elements, form: formBER}
}

// NewDLSet returns a SET that is written with definite length and members
// in DL. Members keep their order.
func NewDLSet(elements ...asn1.Encodable) *Set {
	return &Set{elements: elements, form: formDL}
}

// Elements returns the members of s in encoding order.
func (s *Set) Elements() []asn1.Encodable { return s.elements }

func (s *Set) ToPrimitive() asn1.Primitive { return s }

func (s *Set) Encode(e *asn1.Encoder, withTag bool) error {
	return encodeConstructed(e, withTag, asn1.ClassUniversal, asn1.TagSet, s.elements, s.form)
}

func (s *Set) EncodeConstructed() bool { return true }

func (s *Set) EncodedLength(withTag bool) int {
	if s.form == formBER {
		return indefiniteLength(withTag, asn1.TagSet, s.elements)
	}
	return asn1.DLEncodingLength(withTag, contentsLength(s.elements, s.form))
}

func (s *Set) ToDER() asn1.Primitive {
	if s.form == formDER {
		return s
	}
	return &Set{elements: sortDER(s.elements), form: formDER}
}

func (s *Set) ToDL() asn1.Primitive {
	if s.form != formBER {
		return s
	}
	return &Set{elements: s.elements, form: formDL}
}

// sortDER returns a copy of elements ordered by their DER encodings. The
// elements are returned as given if any of them cannot be encoded, leaving
// the failure to the encoder.
func sortDER(elements []asn1.Encodable) []asn1.Encodable {
	if len(elements) < 2 {
		return elements
	}
	type keyed struct {
		element asn1.Encodable
		der     []byte
	}
	sorted := make([]keyed, len(elements))
	for i, element := range elements {
		der, err := asn1.Marshal(element, asn1.EncodingDER)
		if err != nil {
			return elements
		}
		sorted[i] = keyed{element: element, der: der}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].der, sorted[j].der) < 0
	})
	result := make([]asn1.Encodable, len(sorted))
	for i, k := range sorted {
		result[i] = k.element
	}
	return result
}
