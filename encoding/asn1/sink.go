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
	"io"
)

// Writer is the interface that wraps the basic Write and WriteByte methods.
type Writer interface {
	io.Writer
	io.ByteWriter
}

// flusher is implemented by sinks that buffer internally.
type flusher interface {
	Flush() error
}

// sink is the byte destination shared by an Encoder and all of its
// sub-encoders. It counts the octets written so that constructed values can
// check their declared lengths.
type sink struct {
	w       io.Writer
	bw      io.ByteWriter // nil if w is not an io.ByteWriter
	n       int64
	scratch [1]byte
	closed  bool
}

func newSink(w io.Writer) *sink {
	s := &sink{w: w}
	if bw, ok := w.(io.ByteWriter); ok {
		s.bw = bw
	}
	return s
}

func (s *sink) WriteByte(b byte) error {
	if s.bw != nil {
		if err := s.bw.WriteByte(b); err != nil {
			return &WriteError{Detail: err}
		}
		s.n++
		return nil
	}
	s.scratch[0] = b
	_, err := s.Write(s.scratch[:])
	return err
}

func (s *sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, &WriteError{Detail: err}
	}
	return n, nil
}

func (s *sink) flush() error {
	f, ok := s.w.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return &WriteError{Message: "flush", Detail: err}
	}
	return nil
}

// close releases the underlying writer once. Later calls do nothing.
func (s *sink) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	c, ok := s.w.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return &WriteError{Message: "close", Detail: err}
	}
	return nil
}
