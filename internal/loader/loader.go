// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/kdiff/internal/tree"
)

// StdinLocation reads the document from standard input.
const StdinLocation = "-"

var (
	// ErrNotFound means the document does not exist at its location.
	ErrNotFound = errors.New("document not found")
	// ErrParse means the document exists but is not a single YAML mapping.
	ErrParse = errors.New("document could not be parsed")
)

// Error reports a failure to load the document at Location. Kind is one of
// ErrNotFound or ErrParse, or nil for anything else.
type Error struct {
	Location string
	Kind     error
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
		b.WriteString(": ")
	}
	if e.Location != "" {
		b.WriteString(e.Location)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// Loader reads YAML documents from files, stdin or S3 and converts them to
// document trees.
type Loader struct {
	log    log.Interface
	stdin  io.Reader
	s3     ObjectGetter
	s3Opts []S3Option
	cache  bool
}

// Option customizes a Loader.
type Option func(*Loader)

// WithLogger sets the logger. Defaults to the apex process logger.
func WithLogger(l log.Interface) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithStdin sets the reader behind the "-" location. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(ld *Loader) { ld.stdin = r }
}

// WithS3 sets the client used for s3:// locations. Without it a client is
// built from the shared AWS config the first time one is needed.
func WithS3(g ObjectGetter) Option {
	return func(ld *Loader) { ld.s3 = g }
}

// WithS3Options passes profile and region overrides to the lazily built S3
// client.
func WithS3Options(opts ...S3Option) Option {
	return func(ld *Loader) { ld.s3Opts = append(ld.s3Opts, opts...) }
}

// WithCache turns the on-disk cache for remote documents on or off.
func WithCache(enabled bool) Option {
	return func(ld *Loader) { ld.cache = enabled }
}

// New returns a Loader configured by opts.
func New(opts ...Option) *Loader {
	ld := &Loader{
		log:   log.Log,
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load reads and parses the document at location, which is a file path, "-"
// for stdin, or s3://bucket/key.
func (ld *Loader) Load(ctx context.Context, location string) (*tree.Node, error) {
	data, err := ld.read(ctx, location)
	if err != nil {
		return nil, err
	}
	ld.log.Debugf("loaded %s from %s", humanize.Bytes(uint64(len(data))), location)

	root, err := parse(data)
	if err != nil {
		return nil, &Error{Location: location, Kind: ErrParse, Err: err}
	}
	return root, nil
}

func (ld *Loader) read(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == StdinLocation:
		data, err := io.ReadAll(ld.stdin)
		if err != nil {
			return nil, &Error{Location: "stdin", Err: err}
		}
		return data, nil
	case strings.HasPrefix(location, s3Scheme):
		return ld.readS3(ctx, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Location: location, Kind: ErrNotFound, Err: err}
		}
		return nil, &Error{Location: location, Err: err}
	}
	return data, nil
}

// Parse converts a single YAML document to a tree. An empty or null document
// is an empty mapping. More than one document, or a root that is not a
// mapping, is an ErrParse.
func Parse(data []byte) (*tree.Node, error) {
	root, err := parse(data)
	if err != nil {
		return nil, &Error{Kind: ErrParse, Err: err}
	}
	return root, nil
}

func parse(data []byte) (*tree.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return tree.Mapping(), nil
		}
		return nil, err
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, err
	default:
		if n, convErr := tree.FromYAML(&extra); convErr != nil || !isNull(n) {
			return nil, fmt.Errorf("line %d: expected a single document", extra.Line)
		}
	}

	root, err := tree.FromYAML(&doc)
	if err != nil {
		return nil, err
	}
	if isNull(root) {
		return tree.Mapping(), nil
	}
	if !root.IsMapping() {
		return nil, fmt.Errorf("document root is a %s, expected a mapping", root.Kind)
	}
	return root, nil
}

func isNull(n *tree.Node) bool {
	return n.IsScalar() && (n == nil || n.Value == nil)
}
