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
	"errors"
	"testing"
)

func TestWriteEncodedVariants(t *testing.T) {
	long := make([]byte, 130)
	for i := range long {
		long[i] = byte(i)
	}

	tests := []struct {
		name  string
		write func(e *Encoder) error
		want  []byte
	}{
		{
			name: "single byte",
			write: func(e *Encoder) error {
				return e.WriteEncodedByte(true, ClassUniversal, TagInteger, 0x05)
			},
			want: []byte{0x02, 0x01, 0x05},
		},
		{
			name: "single byte without tag",
			write: func(e *Encoder) error {
				return e.WriteEncodedByte(false, ClassUniversal, TagBoolean, 0xff)
			},
			want: []byte{0x01, 0xff},
		},
		{
			name: "buffer",
			write: func(e *Encoder) error {
				return e.WriteEncoded(true, ClassUniversal, TagOctetString, []byte{0xde, 0xad})
			},
			want: []byte{0x04, 0x02, 0xde, 0xad},
		},
		{
			name: "empty buffer",
			write: func(e *Encoder) error {
				return e.WriteEncoded(true, ClassUniversal, TagNull, nil)
			},
			want: []byte{0x05, 0x00},
		},
		{
			name: "buffer with high tag number",
			write: func(e *Encoder) error {
				return e.WriteEncoded(true, ClassContextSpecific, 300, []byte{0x01})
			},
			want: []byte{0x9f, 0x82, 0x2c, 0x01, 0x01},
		},
		{
			name: "slice",
			write: func(e *Encoder) error {
				return e.WriteEncodedSlice(true, ClassUniversal, TagOctetString, []byte{0x01, 0x02, 0x03, 0x04}, 1, 2)
			},
			want: []byte{0x04, 0x02, 0x02, 0x03},
		},
		{
			name: "empty slice at end",
			write: func(e *Encoder) error {
				return e.WriteEncodedSlice(true, ClassUniversal, TagOctetString, []byte{0x01}, 1, 0)
			},
			want: []byte{0x04, 0x00},
		},
		{
			name: "head and tail",
			write: func(e *Encoder) error {
				return e.WriteEncodedHead(true, ClassUniversal, TagBitString, 0x04, []byte{0xf0})
			},
			want: []byte{0x03, 0x02, 0x04, 0xf0},
		},
		{
			name: "head and empty tail",
			write: func(e *Encoder) error {
				return e.WriteEncodedHead(true, ClassUniversal, TagBitString, 0x00, nil)
			},
			want: []byte{0x03, 0x01, 0x00},
		},
		{
			name: "head body tail",
			write: func(e *Encoder) error {
				return e.WriteEncodedHeadTail(true, ClassUniversal, TagBitString, 0x03, []byte{0xaa, 0xbb, 0xcc}, 1, 1, 0xf8)
			},
			want: []byte{0x03, 0x03, 0x03, 0xbb, 0xf8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := tt.write(NewEncoder(buf)); err != nil {
				t.Fatalf("write error = %v", err)
			}
			if got := buf.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("got = %x, want %x", got, tt.want)
			}
		})
	}

	t.Run("long form content", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := NewEncoder(buf).WriteEncoded(true, ClassUniversal, TagOctetString, long); err != nil {
			t.Fatalf("WriteEncoded() error = %v", err)
		}
		got := buf.Bytes()
		if !bytes.Equal(got[:3], []byte{0x04, 0x81, 0x82}) {
			t.Errorf("header = %x, want 048182", got[:3])
		}
		if !bytes.Equal(got[3:], long) {
			t.Errorf("content mismatch")
		}
		if len(got) != DLEncodingLength(true, len(long)) {
			t.Errorf("encoded %d octets, DLEncodingLength() = %d", len(got), DLEncodingLength(true, len(long)))
		}
	})
}

func TestPrimitiveScenarioAllRulesets(t *testing.T) {
	for _, encoding := range []string{EncodingBER, EncodingDER, EncodingDL} {
		t.Run(encoding, func(t *testing.T) {
			got, err := Marshal(&rawPrimitive{tag: TagInteger, content: []byte{0x05}}, encoding)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if want := []byte{0x02, 0x01, 0x05}; !bytes.Equal(got, want) {
				t.Errorf("Marshal() = %x, want %x", got, want)
			}
		})
	}
}

func TestWriteEncodedSliceOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		off  int
		n    int
	}{
		{name: "negative offset", off: -1, n: 1},
		{name: "negative length", off: 0, n: -1},
		{name: "offset past end", off: 5, n: 0},
		{name: "length past end", off: 2, n: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectViolation(t, func() {
				_ = NewEncoder(&bytes.Buffer{}).WriteEncodedSlice(true, ClassUniversal, TagOctetString, []byte{1, 2, 3, 4}, tt.off, tt.n)
			})
			expectViolation(t, func() {
				_ = NewEncoder(&bytes.Buffer{}).WriteEncodedHeadTail(true, ClassUniversal, TagBitString, 0, []byte{1, 2, 3, 4}, tt.off, tt.n, 0)
			})
		})
	}
}

func TestWriteEncodedFailed(t *testing.T) {
	// every prefix of the encoding must surface the sink error
	content := []byte{0x01, 0x02, 0x03}
	full := []byte{0x03, 0x05, 0x07, 0x01, 0x02, 0x03, 0x80}
	for limit := 0; limit < len(full); limit++ {
		ew := &errorWriter{limit: limit}
		err := NewEncoder(ew).WriteEncodedHeadTail(true, ClassUniversal, TagBitString, 0x07, content, 0, 3, 0x80)
		if !errors.Is(err, errWrite) {
			t.Fatalf("limit %d: error = %v, want %v", limit, err, errWrite)
		}
		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("limit %d: error = %T, want *WriteError", limit, err)
		}
		if !bytes.Equal(ew.written, full[:limit]) {
			t.Errorf("limit %d: sink holds %x, want %x", limit, ew.written, full[:limit])
		}
	}
}
