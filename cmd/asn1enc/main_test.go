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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
	"github.com/notaryproject/notation-asn1-go/encoding/asn1/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree returns SEQUENCE { INTEGER 5 } as CBOR, with indefinite length
// under BER.
func sampleTree(t *testing.T) []byte {
	t.Helper()
	data, err := node.Marshal(&node.Node{
		Number:      asn1.TagSequence,
		Constructed: true,
		Indefinite:  true,
		Children:    []*node.Node{{Number: asn1.TagInteger, Content: []byte{0x05}}},
	})
	require.NoError(t, err)
	return data
}

func TestRun(t *testing.T) {
	tests := []struct {
		rules string
		want  []byte
	}{
		{rules: "BER", want: []byte{0x30, 0x80, 0x02, 0x01, 0x05, 0x00, 0x00}},
		{rules: "DER", want: []byte{0x30, 0x03, 0x02, 0x01, 0x05}},
		{rules: "DL", want: []byte{0x30, 0x03, 0x02, 0x01, 0x05}},
	}
	for _, tt := range tests {
		t.Run(tt.rules, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"-rules", tt.rules}, bytes.NewReader(sampleTree(t)), &stdout, &stderr)
			require.Equal(t, exitOK, code, stderr.String())
			assert.Equal(t, tt.want, stdout.Bytes())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tree.cbor")
	out := filepath.Join(dir, "tree.der")
	require.NoError(t, os.WriteFile(in, sampleTree(t), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rules", "DER", "-in", in, "-out", out, "-v"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Empty(t, stdout.Bytes())
	assert.Contains(t, stderr.String(), "wrote encoding")
	assert.Contains(t, stderr.String(), "octets=5")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x03, 0x02, 0x01, 0x05}, got)
}

func TestRunBrotli(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-rules", "BER", "-brotli", "-quality", "11"}, bytes.NewReader(sampleTree(t)), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	got, err := io.ReadAll(brotli.NewReader(&stdout))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x80, 0x02, 0x01, 0x05, 0x00, 0x00}, got)
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown rules", []string{"-rules", "CER"}},
		{"lower case rules", []string{"-rules", "der"}},
		{"unknown flag", []string{"-x"}},
		{"extra argument", []string{"tree.cbor"}},
		{"quality out of range", []string{"-brotli", "-quality", "12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, bytes.NewReader(sampleTree(t)), &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout.Bytes())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "Usage: asn1enc")
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input []byte
	}{
		{name: "malformed CBOR", input: []byte{0xff}},
		{name: "invalid node", input: []byte{0xa1, 0x66, 'n', 'u', 'm', 'b', 'e', 'r', 0x20}},
		{name: "tag number above 32 bits", input: []byte{0xa1, 0x66, 'n', 'u', 'm', 'b', 'e', 'r', 0x1b, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{name: "missing input file", args: []string{"-in", filepath.Join(t.TempDir(), "missing.cbor")}},
		{name: "unwritable output", args: []string{"-out", filepath.Join(t.TempDir(), "no", "such", "dir")}, input: sampleTree(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, bytes.NewReader(tt.input), &stdout, &stderr)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr.String(), "encoding failed")
		})
	}
}
