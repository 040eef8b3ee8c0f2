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

// Tagged is a value with a tag of its own, such as [0] EXPLICIT or
// [0] IMPLICIT.
//
// An explicit tag wraps the complete encoding of the value in a constructed
// element. An implicit tag replaces the identifier of the value.
// Reference: ISO/IEC 8825-1: 8.14
type Tagged struct {
	explicit bool
	class    int
	tagNo    int
	obj      asn1.Encodable
	form     form
}

// NewTagged returns a tagged value that is always written in DER. class is
// one of the asn1.Class constants.
func NewTagged(explicit bool, class, tagNo int, obj asn1.Encodable) *Tagged {
	return newTagged(explicit, class, tagNo, obj, formDER)
}

// NewBERTagged returns a tagged value that is written with indefinite length
// under BER when explicit or when the value is constructed.
func NewBERTagged(explicit bool, class, tagNo int, obj asn1.Encodable) *Tagged {
	return newTagged(explicit, class, tagNo, obj, formBER)
}

// NewDLTagged returns a tagged value that is written with definite length.
func NewDLTagged(explicit bool, class, tagNo int, obj asn1.Encodable) *Tagged {
	return newTagged(explicit, class, tagNo, obj, formDL)
}

func newTagged(explicit bool, class, tagNo int, obj asn1.Encodable, f form) *Tagged {
	return &Tagged{
		explicit: explicit,
		class:    class & asn1.ClassMask,
		tagNo:    tagNo,
		obj:      obj,
		form:     f,
	}
}

// Explicit reports whether t is explicitly tagged.
func (t *Tagged) Explicit() bool { return t.explicit }

// Class returns the tag class of t.
func (t *Tagged) Class() int { return t.class }

// TagNumber returns the tag number of t.
func (t *Tagged) TagNumber() int { return t.tagNo }

// Object returns the tagged value.
func (t *Tagged) Object() asn1.Encodable { return t.obj }

func (t *Tagged) ToPrimitive() asn1.Primitive { return t }

func (t *Tagged) Encode(e *asn1.Encoder, withTag bool) error {
	p := resolve(t.obj)
	if p == nil {
		return asn1.ErrNilObject
	}
	if t.explicit {
		return encodeConstructed(e, withTag, t.class, t.tagNo, []asn1.Encodable{p}, t.form)
	}

	p = normalize(p, t.form)
	flags := t.class
	if p.EncodeConstructed() {
		flags |= asn1.Constructed
	}
	if err := e.WriteIdentifier(withTag, flags, t.tagNo); err != nil {
		return err
	}
	switch t.form {
	case formDER:
		e = e.DERSubEncoder()
	case formDL:
		e = e.DLSubEncoder()
	}
	return e.WritePrimitive(p, false)
}

// EncodeConstructed reports whether the identifier of t carries the
// constructed bit.
func (t *Tagged) EncodeConstructed() bool {
	if t.explicit {
		return true
	}
	p := resolve(t.obj)
	return p != nil && normalize(p, t.form).EncodeConstructed()
}

func (t *Tagged) EncodedLength(withTag bool) int {
	p := resolve(t.obj)
	if p == nil {
		return 0
	}
	if t.explicit {
		if t.form == formBER {
			return indefiniteLength(withTag, t.tagNo, []asn1.Encodable{p})
		}
		return asn1.DLEncodingLengthWithTag(withTag, t.tagNo, normalize(p, t.form).EncodedLength(true))
	}
	n := normalize(p, t.form).EncodedLength(false)
	if withTag {
		n += asn1.IdentifierLength(t.tagNo)
	}
	return n
}

func (t *Tagged) ToDER() asn1.Primitive {
	if t.form == formDER {
		return t
	}
	return newTagged(t.explicit, t.class, t.tagNo, t.obj, formDER)
}

func (t *Tagged) ToDL() asn1.Primitive {
	if t.form != formBER {
		return t
	}
	return newTagged(t.explicit, t.class, t.tagNo, t.obj, formDL)
}
