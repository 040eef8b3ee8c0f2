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

// Command asn1enc reads an ASN.1 value described as a CBOR node tree and
// writes its BER, DER or DL encoding.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
	"github.com/notaryproject/notation-asn1-go/encoding/asn1/node"
)

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// config holds the parsed command line.
type config struct {
	rules   string
	in      string
	out     string
	brotli  bool
	quality int
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "asn1enc: %v\n", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := encode(cfg, stdin, stdout, logger); err != nil {
		logger.Error("encoding failed", "error", err)
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("asn1enc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.rules, "rules", asn1.EncodingBER, "encoding rules: BER, DER or DL")
	fs.StringVar(&cfg.in, "in", "-", "CBOR node tree to read, - for stdin")
	fs.StringVar(&cfg.out, "out", "-", "file to write the encoding to, - for stdout")
	fs.BoolVar(&cfg.brotli, "brotli", false, "compress the output with brotli")
	fs.IntVar(&cfg.quality, "quality", brotli.DefaultCompression, "brotli quality, 0 to 11")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: asn1enc [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	switch cfg.rules {
	case asn1.EncodingBER, asn1.EncodingDER, asn1.EncodingDL:
	default:
		return nil, fmt.Errorf("unknown encoding rules %q", cfg.rules)
	}
	if cfg.quality < brotli.BestSpeed || cfg.quality > brotli.BestCompression {
		return nil, fmt.Errorf("brotli quality %d not in range %d..%d", cfg.quality, brotli.BestSpeed, brotli.BestCompression)
	}
	return cfg, nil
}

func encode(cfg *config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (err error) {
	data, err := readInput(cfg.in, stdin)
	if err != nil {
		return err
	}
	tree, err := node.Unmarshal(data)
	if err != nil {
		return err
	}
	logger.Debug("read node tree", "source", cfg.in, "size", len(data))

	dst := stdout
	if cfg.out != "-" {
		f, createErr := os.Create(cfg.out)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		dst = f
	}

	var compressor *brotli.Writer
	if cfg.brotli {
		compressor = brotli.NewWriterLevel(dst, cfg.quality)
		dst = compressor
	}
	counter := &countingWriter{w: dst}
	enc := asn1.NewEncoderWithRules(bufio.NewWriter(counter), cfg.rules)
	if err := enc.WriteObject(tree); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return fmt.Errorf("closing brotli stream: %w", err)
		}
	}
	logger.Debug("wrote encoding", "rules", enc.Ruleset(), "octets", counter.n, "brotli", cfg.brotli)
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// countingWriter counts the octets passed to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
