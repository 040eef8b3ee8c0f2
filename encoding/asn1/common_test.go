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

import (
	"errors"
	"testing"
)

// rawPrimitive is a primitive value with fixed content octets. derContent,
// if set, is the content of its DER form.
type rawPrimitive struct {
	flags      int
	tag        int
	content    []byte
	derContent []byte
}

func (p *rawPrimitive) ToPrimitive() Primitive { return p }

func (p *rawPrimitive) Encode(e *Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, p.flags, p.tag, p.content)
}

func (p *rawPrimitive) EncodeConstructed() bool { return false }

func (p *rawPrimitive) EncodedLength(withTag bool) int {
	return DLEncodingLengthWithTag(withTag, p.tag, len(p.content))
}

func (p *rawPrimitive) ToDER() Primitive {
	if p.derContent == nil {
		return p
	}
	return &rawPrimitive{flags: p.flags, tag: p.tag, content: p.derContent}
}

func (p *rawPrimitive) ToDL() Primitive { return p }

// rawConstructed is a constructed value in one of the three forms. extra is
// added to the declared definite length to simulate a broken value.
type rawConstructed struct {
	flags   int
	tag     int
	members []Encodable
	form    Ruleset
	extra   int
}

func (c *rawConstructed) ToPrimitive() Primitive { return c }

func (c *rawConstructed) Encode(e *Encoder, withTag bool) error {
	switch c.form {
	case DER:
		return e.DERSubEncoder().WriteEncodedDefinite(withTag, c.flags|Constructed, c.tag, c.contentsLength()+c.extra, c.members)
	case DL:
		return e.DLSubEncoder().WriteEncodedDefinite(withTag, c.flags|Constructed, c.tag, c.contentsLength()+c.extra, c.members)
	default:
		return e.WriteEncodedIndef(withTag, c.flags, c.tag, c.members)
	}
}

func (c *rawConstructed) EncodeConstructed() bool { return true }

func (c *rawConstructed) EncodedLength(withTag bool) int {
	return DLEncodingLengthWithTag(withTag, c.tag, c.contentsLength())
}

func (c *rawConstructed) contentsLength() int {
	n := 0
	for _, m := range c.members {
		p := m.ToPrimitive()
		if c.form == DER {
			p = p.ToDER()
		} else {
			p = p.ToDL()
		}
		n += p.EncodedLength(true)
	}
	return n
}

func (c *rawConstructed) ToDER() Primitive {
	return &rawConstructed{flags: c.flags, tag: c.tag, members: c.members, form: DER, extra: c.extra}
}

func (c *rawConstructed) ToDL() Primitive {
	if c.form == DER {
		return c
	}
	return &rawConstructed{flags: c.flags, tag: c.tag, members: c.members, form: DL, extra: c.extra}
}

// errorWriter fails every write after the first limit octets.
type errorWriter struct {
	limit   int
	written []byte
}

var errWrite = errors.New("write error")

func (ew *errorWriter) Write(p []byte) (int, error) {
	room := ew.limit - len(ew.written)
	if room <= 0 {
		return 0, errWrite
	}
	if len(p) > room {
		ew.written = append(ew.written, p[:room]...)
		return room, errWrite
	}
	ew.written = append(ew.written, p...)
	return len(p), nil
}

// plainWriter hides every method but Write of the wrapped writer.
type plainWriter struct {
	w interface{ Write([]byte) (int, error) }
}

func (pw plainWriter) Write(p []byte) (int, error) {
	return pw.w.Write(p)
}

// expectViolation fails the test unless f panics with a ContractViolation.
func expectViolation(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a contract violation panic")
		}
		if _, ok := r.(ContractViolation); !ok {
			t.Fatalf("panic value = %v (%T), want ContractViolation", r, r)
		}
	}()
	f()
}
