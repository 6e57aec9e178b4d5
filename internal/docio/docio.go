// Package docio reads and writes the documents handed to mappers.
//
// Input may be YAML or JSON (JSON is read as YAML). A selector written as a
// YAML path ("$.payload.items") restricts decoding to one sub-document.
package docio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmptyData is returned when the input holds no document.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the selector matches nothing.
	ErrPathNotFound = errors.New("path not found")
	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("unknown format")
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Decode parses data into nested maps and lists. An empty selector decodes
// the whole document.
func Decode(data []byte, selector string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	if selector == "" || selector == "$" {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return doc, nil
	}

	path, err := yaml.PathString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	if err := path.Read(bytes.NewReader(data), &doc); err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, selector)
		}

		return nil, fmt.Errorf("reading selector %q: %w", selector, err)
	}

	return doc, nil
}

// Encode renders v in the requested format. JSON output is a single line.
func Encode(v any, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatJSON:
		out, err = yaml.MarshalWithOptions(v, yaml.JSON())
	case FormatYAML:
		out, err = yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}

	return out, nil
}
