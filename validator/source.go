// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import "fmt"

// Source names the part of a request a field is read from.
type Source int

// The zero Source is unset and resolves to SourceBody.
const (
	sourceUnset Source = iota
	SourceBody
	SourceQuery
	SourceParams
)

// ParseSource converts "body", "query" or "params" into a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "body":
		return SourceBody, nil
	case "query":
		return SourceQuery, nil
	case "params":
		return SourceParams, nil
	default:
		return sourceUnset, fmt.Errorf("%w: got %q", ErrInvalidSource, s)
	}
}

func (s Source) String() string {
	switch s {
	case SourceBody:
		return "body"
	case SourceQuery:
		return "query"
	case SourceParams:
		return "params"
	default:
		return "unset"
	}
}

// stringValued reports whether values from s always arrive as text.
func (s Source) stringValued() bool {
	return s == SourceQuery || s == SourceParams
}

func (s Source) valid() bool {
	return s >= SourceBody && s <= SourceParams
}
