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

// Package types provides ASN.1 values that encode themselves with an
// asn1.Encoder under the BER, DER and DL rules.
//
// Constructed values come in three forms. The BER form uses indefinite
// length, the DL form definite length, and the DER form definite length with
// every member in DER. Encoding a value under DER or DL converts it to the
// matching form automatically.
package types

import (
	"errors"

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// form is the encoding form of a constructed value.
type form int

const (
	formBER form = iota
	formDL
	formDER
)

// ErrInvalidValue is returned by constructors given malformed input.
var ErrInvalidValue = errors.New("asn1/types: invalid value")

// Encoded returns the encoding of obj under the rules named by encoding.
func Encoded(obj asn1.Encodable, encoding string) ([]byte, error) {
	return asn1.Marshal(obj, encoding)
}

// normalize returns p in the given form.
func normalize(p asn1.Primitive, f form) asn1.Primitive {
	switch f {
	case formDER:
		return p.ToDER()
	case formDL:
		return p.ToDL()
	default:
		return p
	}
}

// contentsLength sums the definite-length encodings of elements in form f.
func contentsLength(elements []asn1.Encodable, f form) int {
	n := 0
	for _, element := range elements {
		if p := resolve(element); p != nil {
			n += normalize(p, f).EncodedLength(true)
		}
	}
	return n
}

// resolve returns the primitive of element, or nil if there is none.
func resolve(element asn1.Encodable) asn1.Primitive {
	if element == nil {
		return nil
	}
	return element.ToPrimitive()
}

// checkElements returns asn1.ErrNilObject if any element cannot be encoded.
func checkElements(elements []asn1.Encodable) error {
	for _, element := range elements {
		if resolve(element) == nil {
			return asn1.ErrNilObject
		}
	}
	return nil
}

// encodeConstructed writes elements as the content of a constructed value in
// form f.
func encodeConstructed(e *asn1.Encoder, withTag bool, flags, tagNo int, elements []asn1.Encodable, f form) error {
	if err := checkElements(elements); err != nil {
		return err
	}
	switch f {
	case formDER:
		return e.DERSubEncoder().WriteEncodedDefinite(withTag, flags|asn1.Constructed, tagNo, contentsLength(elements, formDER), elements)
	case formDL:
		return e.DLSubEncoder().WriteEncodedDefinite(withTag, flags|asn1.Constructed, tagNo, contentsLength(elements, formDL), elements)
	default:
		return e.WriteEncodedIndef(withTag, flags, tagNo, elements)
	}
}

// indefiniteLength returns the length of an indefinite-length encoding of
// elements.
func indefiniteLength(withTag bool, tagNo int, elements []asn1.Encodable) int {
	n := 3 // length octet and end-of-contents
	if withTag {
		n += asn1.IdentifierLength(tagNo)
	}
	for _, element := range elements {
		if p := resolve(element); p != nil {
			n += p.EncodedLength(true)
		}
	}
	return n
}
