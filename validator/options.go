// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultStatusCode is the response status for rejected requests.
	DefaultStatusCode = 400

	// DefaultMessage is the fixed-mode message used by [WithMessage] callers
	// that want the stock wording.
	DefaultMessage = "One or more of the required params was missing or invalid."

	// FieldMessagePrefix starts the default field-specific message.
	FieldMessagePrefix = "The following parameter was missing or invalid: "

	// DefaultMaxBodyBytes caps how much of a request body is read.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// Option configures a [Validator].
type Option func(*Validator)

// WithStatusCode sets the status code of rejection responses. Non-positive
// values keep the current code.
func WithStatusCode(code int) Option {
	return func(v *Validator) {
		if code > 0 {
			v.statusCode = code
		}
	}
}

// WithMessage switches to fixed-message mode: every rejection carries msg
// regardless of the failing field. An empty msg keeps the current mode.
func WithMessage(msg string) Option {
	return func(v *Validator) {
		if msg != "" {
			v.message = func(string) string { return msg }
		}
	}
}

// WithMessageFunc builds the rejection message from the failing field name.
func WithMessageFunc(fn func(field string) string) Option {
	return func(v *Validator) {
		if fn != nil {
			v.message = fn
		}
	}
}

// WithMaxBodyBytes limits how many body bytes the HTTP middleware decodes.
func WithMaxBodyBytes(n int64) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) {
		v.logger = l
	}
}

// FieldMessage is the default field-specific message.
func FieldMessage(field string) string {
	return fmt.Sprintf("%s%q.", FieldMessagePrefix, field)
}
