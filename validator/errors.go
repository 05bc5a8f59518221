// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"errors"
	"fmt"
)

// Configuration errors returned by [Validator.Configure]. They describe
// programmer mistakes in a descriptor list and never depend on request data.
// Callers can match against them with [errors.Is].
var (
	// ErrNoDescriptors is returned when Configure is called without any
	// field descriptors.
	ErrNoDescriptors = errors.New("at least one field descriptor is required")

	// ErrInvalidDescriptor is returned when a descriptor is neither a field
	// name, a [Field], nor a 1-3 element list.
	ErrInvalidDescriptor = errors.New("descriptor must be a string, a Field or a list")

	// ErrEmptyDescriptor is returned for a descriptor list with no elements.
	ErrEmptyDescriptor = errors.New("descriptor list is empty")

	// ErrTooManyElements is returned for a descriptor list longer than
	// [name, type-or-predicate, source].
	ErrTooManyElements = errors.New("descriptor list has more than 3 elements")

	// ErrInvalidFieldName is returned when the field name is not a non-empty
	// string.
	ErrInvalidFieldName = errors.New("field name must be a non-empty string")

	// ErrInvalidRule is returned when the second descriptor element is neither
	// a type tag nor a predicate function.
	ErrInvalidRule = errors.New("rule must be a type tag or a predicate function")

	// ErrInvalidSource is returned when the third descriptor element is not
	// one of "body", "query" or "params".
	ErrInvalidSource = errors.New(`source must be "body", "query", or "params"`)
)

// ConfigError reports which descriptor of a Configure call was malformed.
type ConfigError struct {
	// Index is the zero-based position of the descriptor in the call.
	Index int

	// Descriptor is the offending descriptor as supplied by the caller.
	Descriptor any

	// Err is one of the sentinel errors above.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("validator: descriptor #%d (%#v): %v", e.Index, e.Descriptor, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
