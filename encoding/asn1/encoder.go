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
	"bytes"
	"io"
)

// Encoder writes ASN.1 values to a sink under one rule set.
//
// An Encoder is not safe for concurrent use. Sub-encoders obtained from
// DERSubEncoder and DLSubEncoder share the sink of their parent, so all of
// them append to a single ordered stream.
type Encoder struct {
	out   *sink
	rules Ruleset
}

// NewEncoder returns a BER encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		out:   newSink(w),
		rules: BER,
	}
}

// NewEncoderWithRules returns an encoder writing to w with the rules named
// by encoding. "DER" and "DL" select the definite-length rule sets; any other
// name selects BER.
func NewEncoderWithRules(w io.Writer, encoding string) *Encoder {
	return &Encoder{
		out:   newSink(w),
		rules: ParseRuleset(encoding),
	}
}

// Marshal returns the encoding of obj under the rules named by encoding.
// The whole value is encoded in memory, so nothing is returned on failure.
func Marshal(obj Encodable, encoding string) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoderWithRules(&buf, encoding).WriteObject(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ruleset returns the active rule set of e.
func (e *Encoder) Ruleset() Ruleset {
	return e.rules
}

// WriteObject writes the complete encoding of obj.
func (e *Encoder) WriteObject(obj Encodable) error {
	if obj == nil {
		return ErrNilObject
	}
	p := obj.ToPrimitive()
	if p == nil {
		return ErrNilObject
	}
	if err := e.WritePrimitive(p, true); err != nil {
		return err
	}
	return e.flushInternal()
}

// WritePrimitive normalizes p for the active rule set and lets it encode
// itself with e. Constructed values call it for their members.
func (e *Encoder) WritePrimitive(p Primitive, withTag bool) error {
	switch e.rules {
	case DER:
		p = p.ToDER()
	case DL:
		p = p.ToDL()
	}
	return p.Encode(e, withTag)
}

// DERSubEncoder returns an encoder on the same sink that applies DER.
func (e *Encoder) DERSubEncoder() *Encoder {
	if e.rules == DER {
		return e
	}
	return &Encoder{out: e.out, rules: DER}
}

// DLSubEncoder returns an encoder on the same sink that applies DL.
func (e *Encoder) DLSubEncoder() *Encoder {
	if e.rules == DL {
		return e
	}
	return &Encoder{out: e.out, rules: DL}
}

// Flush flushes the sink if it buffers internally.
func (e *Encoder) Flush() error {
	return e.out.flush()
}

// Close closes the sink if it implements io.Closer. The sink is released
// once, even when Close is called on several encoders sharing it.
func (e *Encoder) Close() error {
	return e.out.close()
}

// flushInternal runs once at the end of every WriteObject. The encoder does
// not buffer yet, so there is nothing to do.
func (e *Encoder) flushInternal() error {
	return nil
}
