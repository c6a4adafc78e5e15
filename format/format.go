// Package format renders extraction results as text, JSON or YAML.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/getlinks"
	"gopkg.in/yaml.v3"
)

// Supported format names.
const (
	NameText = "text"
	NameJSON = "json"
	NameYAML = "yaml"
)

// Compile-time interface verification.
var (
	_ getlinks.Formatter = (*Text)(nil)
	_ getlinks.Formatter = (*JSON)(nil)
	_ getlinks.Formatter = (*YAML)(nil)
)

// New returns the formatter registered under name.
// Returns EINVALID for unknown names.
func New(name string) (getlinks.Formatter, error) {
	switch name {
	case NameText, "":
		return &Text{}, nil
	case NameJSON:
		return &JSON{}, nil
	case NameYAML:
		return &YAML{}, nil
	default:
		return nil, getlinks.Errorf(getlinks.EINVALID, "unknown format %q (want text, json or yaml)", name)
	}
}

// Text writes one link per line. When there is more than one result each
// block is preceded by a "# <document>" header and separated by a blank line.
type Text struct{}

// Format implements getlinks.Formatter.
func (f *Text) Format(w io.Writer, results []*getlinks.Result) error {
	headers := len(results) > 1
	for i, r := range results {
		if headers {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "# %s\n", r.Document); err != nil {
				return err
			}
		}
		for _, link := range r.Links {
			if _, err := fmt.Fprintln(w, link); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSON writes all results as an indented JSON array.
type JSON struct{}

// Format implements getlinks.Formatter.
func (f *JSON) Format(w io.Writer, results []*getlinks.Result) error {
	if results == nil {
		results = []*getlinks.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

// YAML writes all results as a YAML sequence.
type YAML struct{}

// Format implements getlinks.Formatter.
func (f *YAML) Format(w io.Writer, results []*getlinks.Result) error {
	if results == nil {
		results = []*getlinks.Result{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
