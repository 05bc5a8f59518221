// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
)

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber reports whether v is a valid number for the given source.
//
// Body values are JSON-typed, so only numeric Go values pass. Query and path
// values are text, so a string passes when it is a JavaScript numeric
// literal such as "42", "-3.5e2", "Infinity" or "0x1A"; empty strings fail.
func IsNumber(v any, src Source) bool {
	if src.stringValued() {
		if s, ok := v.(string); ok {
			return isNumericString(s)
		}
	}
	return isNumeric(v)
}

// IsBoolean reports whether v is a valid boolean for the given source.
//
// For query and path values the strings "true" and "false" pass in any
// letter case, as does a native bool. Body values must be native bools.
func IsBoolean(v any, src Source) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	if !src.stringValued() {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// IsExactType reports whether the runtime type name of v equals tag.
func IsExactType(v any, present bool, tag string) bool {
	return TypeName(v, present) == tag
}

// TypeName returns the JSON runtime type name of a decoded value:
// "undefined" for an absent field, "object" for null, maps, slices and
// structs, and "number", "string", "boolean" or "function" otherwise.
func TypeName(v any, present bool) string {
	if !present {
		return "undefined"
	}
	if v == nil {
		return "object"
	}
	if _, ok := v.(json.Number); ok {
		return TagNumber
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Func:
		return TagFunction
	default:
		return "object"
	}
}

func isNumeric(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(json.Number); ok {
		return true
	}
	return TypeName(v, true) == TagNumber
}

// numericString matches the JavaScript numeric string grammar: signed
// decimals with optional exponent, signed Infinity, and unsigned 0x, 0o and
// 0b integers. Digit separators and Go-only spellings ("inf", "NaN") do not
// match.
var numericString = regexp.MustCompile(
	`^(?:[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)|0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+)$`,
)

func isNumericString(s string) bool {
	return numericString.MatchString(strings.TrimSpace(s))
}
