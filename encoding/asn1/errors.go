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
	"fmt"
)

// ErrInvalidArgument is returned when the caller passes nothing to encode.
var ErrInvalidArgument = errors.New("asn1: invalid argument")

// ErrNilObject is returned by WriteObject and Marshal for a nil object.
var ErrNilObject = fmt.Errorf("%w: null object detected", ErrInvalidArgument)

// WriteError is used when the underlying sink fails. Bytes written before
// the failure stay in the sink.
type WriteError struct {
	Message string
	Detail  error
}

func (e *WriteError) Error() string {
	msg := "asn1: write failure"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Detail != nil {
		msg += ": " + e.Detail.Error()
	}
	return msg
}

func (e *WriteError) Unwrap() error {
	return e.Detail
}

// ContractViolation is the panic value raised when a value implementation
// breaks the encoder contract, e.g. by declaring a content length it does not
// write. It indicates a programming error and is never returned as an error.
type ContractViolation string

func (c ContractViolation) Error() string {
	return "asn1: contract violation: " + string(c)
}

func violation(format string, args ...any) {
	panic(ContractViolation(fmt.Sprintf(format, args...)))
}
