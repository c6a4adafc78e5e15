// Package fs reads HTML documents from the local filesystem and standard input.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/getlinks"
	"golang.org/x/net/html/charset"
)

// StdinName is the document name that refers to standard input.
const StdinName = "-"

// DefaultMaxBytes is the default size limit for a single document.
const DefaultMaxBytes = 32 << 20

// Ensure DocumentReader implements getlinks.DocumentSource at compile time.
var _ getlinks.DocumentSource = (*DocumentReader)(nil)

// DocumentReader reads HTML documents from files, or from standard input
// for the name "-". Content is decoded to UTF-8.
type DocumentReader struct {
	stdin    io.Reader
	maxBytes int64
}

// Option configures a DocumentReader.
type Option func(*DocumentReader)

// WithStdin sets the reader used for the name "-".
// Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(d *DocumentReader) {
		d.stdin = r
	}
}

// WithMaxBytes sets the size limit for a single document.
// Defaults to DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(d *DocumentReader) {
		d.maxBytes = n
	}
}

// NewDocumentReader creates a new DocumentReader.
func NewDocumentReader(opts ...Option) *DocumentReader {
	d := &DocumentReader{
		stdin:    os.Stdin,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadDocument reads the named document.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is
// larger than the configured limit.
func (d *DocumentReader) ReadDocument(ctx context.Context, name string) (*getlinks.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var src io.Reader
	if name == StdinName {
		src = d.stdin
	} else {
		f, err := os.Open(name)
		if errors.Is(err, os.ErrNotExist) {
			return nil, getlinks.Errorf(getlinks.ENOTFOUND, "document %q not found", name)
		} else if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(io.LimitReader(src, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > d.maxBytes {
		return nil, getlinks.Errorf(getlinks.EINVALID, "document %q exceeds %d bytes", name, d.maxBytes)
	}

	html, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return &getlinks.Document{
		Name: name,
		HTML: html,
		Hash: ComputeHash(html),
	}, nil
}

// decode converts data to UTF-8. Valid UTF-8 is returned unchanged;
// anything else is decoded using the byte order mark or <meta> charset
// declaration, falling back to windows-1252.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	enc, _, _ := charset.DetermineEncoding(data, "text/html")
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
