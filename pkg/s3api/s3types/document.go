// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("malformed configuration document")
	ErrAbsentDocument    = errors.New("configuration document is absent")
)

// Document is a sub-configuration carried verbatim in bucket metadata, such
// as versioning, replication or lifecycle settings. Its content belongs to
// the component that interprets it; a Document only guarantees well-formed
// JSON, kept in compact form so encodings are byte-stable.
//
// The zero Document is absent and encodes as null. A Document is immutable.
type Document struct {
	raw []byte
}

// ParseDocument validates data as JSON and compacts it. Empty input and a
// JSON null yield the absent Document.
func ParseDocument(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Document{}, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return Document{raw: buf.Bytes()}, nil
}

// NewDocument encodes v, typically one of the typed configuration views in
// this package or a plain map. A nil v yields the absent Document.
func NewDocument(v any) (Document, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return ParseDocument(buf.Bytes())
}

func (d Document) IsZero() bool { return len(d.raw) == 0 }

// Bytes returns a copy of the compact JSON, or nil when absent.
func (d Document) Bytes() []byte {
	if d.IsZero() {
		return nil
	}
	return bytes.Clone(d.raw)
}

func (d Document) String() string {
	if d.IsZero() {
		return "null"
	}
	return string(d.raw)
}

// Equal reports whether both documents hold the same compact JSON.
func (d Document) Equal(other Document) bool {
	return bytes.Equal(d.raw, other.raw)
}

// Decode unmarshals the document into v. Key matching follows encoding/json,
// so a view decodes both camelCase and AWS-style capitalized keys.
func (d Document) Decode(v any) error {
	if d.IsZero() {
		return ErrAbsentDocument
	}
	return json.Unmarshal(d.raw, v)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return bytes.Clone(d.raw), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
