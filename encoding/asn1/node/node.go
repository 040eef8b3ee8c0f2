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

// Package node describes ASN.1 values as a generic tree of tagged nodes that
// can be exchanged as CBOR and written with an asn1.Encoder.
package node

import (
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// ErrInvalidNode is returned when a tree does not describe an encodable
// ASN.1 value.
var ErrInvalidNode = errors.New("asn1/node: invalid node")

// maxNestedLevels bounds the CBOR nesting. Each node takes two levels.
const maxNestedLevels = 256

var (
	decMode cbor.DecMode
	encMode cbor.EncMode
)

func init() {
	var err error
	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels:   maxNestedLevels,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Node is one TLV of a tree.
//
// Class holds the class bits of the identifier octet, one of the asn1.Class
// constants. Primitive nodes carry Content, constructed nodes carry
// Children. Indefinite only applies to constructed nodes written under BER;
// DER and DL always use definite length.
type Node struct {
	Class       int     `cbor:"class"`
	Number      int     `cbor:"number"`
	Constructed bool    `cbor:"constructed,omitempty"`
	Indefinite  bool    `cbor:"indefinite,omitempty"`
	Content     []byte  `cbor:"content,omitempty"`
	Children    []*Node `cbor:"children,omitempty"`

	// definite is set on the copies made for DER and DL.
	definite bool
}

// Unmarshal decodes a tree from CBOR and validates it.
func Unmarshal(data []byte) (*Node, error) {
	var n Node
	if err := decMode.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("asn1/node: decoding CBOR: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Marshal validates n and returns its canonical CBOR encoding.
func Marshal(n *Node) ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return encMode.Marshal(n)
}

// Validate reports the first node of the tree that cannot be encoded.
func (n *Node) Validate() error {
	return n.validate("$")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("%w: %s: missing node", ErrInvalidNode, path)
	}
	if n.Class&^asn1.ClassMask != 0 {
		return fmt.Errorf("%w: %s: class %#x is not one of 0x00, 0x40, 0x80, 0xc0", ErrInvalidNode, path, n.Class)
	}
	if n.Number < 0 {
		return fmt.Errorf("%w: %s: negative tag number %d", ErrInvalidNode, path, n.Number)
	}
	if n.Number > math.MaxInt32 {
		return fmt.Errorf("%w: %s: tag number %d exceeds 32 bits", ErrInvalidNode, path, n.Number)
	}
	if !n.Constructed {
		if n.Indefinite {
			return fmt.Errorf("%w: %s: primitive node with indefinite length", ErrInvalidNode, path)
		}
		if len(n.Children) != 0 {
			return fmt.Errorf("%w: %s: primitive node with children", ErrInvalidNode, path)
		}
		return nil
	}
	if len(n.Content) != 0 {
		return fmt.Errorf("%w: %s: constructed node with content", ErrInvalidNode, path)
	}
	for i, child := range n.Children {
		if err := child.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) ToPrimitive() asn1.Primitive { return n }

func (n *Node) Encode(e *asn1.Encoder, withTag bool) error {
	if !n.Constructed {
		return e.WriteEncoded(withTag, n.Class, n.Number, n.Content)
	}
	definite := n.definite || e.Ruleset() != asn1.BER
	elements := make([]asn1.Encodable, len(n.Children))
	for i, child := range n.Children {
		if child == nil {
			return asn1.ErrNilObject
		}
		if definite {
			elements[i] = child.definiteCopy()
		} else {
			elements[i] = child
		}
	}
	if n.Indefinite && !definite {
		return e.WriteEncodedIndef(withTag, n.Class, n.Number, elements)
	}
	return e.WriteEncodedDefinite(withTag, n.Class|asn1.Constructed, n.Number, n.contentsLength(definite), elements)
}

func (n *Node) EncodeConstructed() bool { return n.Constructed }

func (n *Node) EncodedLength(withTag bool) int {
	return n.length(withTag, n.definite)
}

// length returns the encoded length of n, with every constructed node in
// definite form if definite is set.
func (n *Node) length(withTag, definite bool) int {
	if !n.Constructed {
		return asn1.DLEncodingLengthWithTag(withTag, n.Number, len(n.Content))
	}
	contents := n.contentsLength(definite)
	if n.Indefinite && !definite {
		length := contents + 3 // length octet and end-of-contents
		if withTag {
			length += asn1.IdentifierLength(n.Number)
		}
		return length
	}
	return asn1.DLEncodingLengthWithTag(withTag, n.Number, contents)
}

func (n *Node) contentsLength(definite bool) int {
	contents := 0
	for _, child := range n.Children {
		if child != nil {
			contents += child.length(true, definite)
		}
	}
	return contents
}

// ToDER returns n in definite-length form.
func (n *Node) ToDER() asn1.Primitive { return n.definiteCopy() }

// ToDL returns n in definite-length form.
func (n *Node) ToDL() asn1.Primitive { return n.definiteCopy() }

func (n *Node) definiteCopy() *Node {
	if n.definite || !n.Constructed {
		return n
	}
	c := *n
	c.definite = true
	return &c
}
