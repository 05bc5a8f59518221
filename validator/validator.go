// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"github.com/rs/zerolog"
)

// Validator holds the rejection settings shared by every Gate it configures.
type Validator struct {
	statusCode   int
	message      func(field string) string
	maxBodyBytes int64
	logger       zerolog.Logger
}

// New returns a Validator. Without options rejections use status 400 and
// the field-specific message built by [FieldMessage].
func New(opts ...Option) *Validator {
	v := &Validator{
		statusCode:   DefaultStatusCode,
		message:      FieldMessage,
		maxBodyBytes: DefaultMaxBodyBytes,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// With returns a copy of v with opts applied on top of its settings.
func (v *Validator) With(opts ...Option) *Validator {
	cp := *v
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// StatusCode returns the status code used for rejections.
func (v *Validator) StatusCode() int {
	return v.statusCode
}

// Configure normalizes and compiles descriptors into a Gate. It fails on the
// first malformed descriptor with a *ConfigError, so configuration mistakes
// surface before any request is served.
func (v *Validator) Configure(descriptors ...any) (*Gate, error) {
	checkers, err := compileAll(descriptors)
	if err != nil {
		return nil, err
	}

	g := &Gate{
		checkers:     checkers,
		statusCode:   v.statusCode,
		message:      v.message,
		maxBodyBytes: v.maxBodyBytes,
		logger:       v.logger,
	}
	for _, c := range checkers {
		if c.source == SourceBody {
			g.readsBody = true
			break
		}
	}

	return g, nil
}

// MustConfigure is like Configure but panics on a configuration error.
func (v *Validator) MustConfigure(descriptors ...any) *Gate {
	g, err := v.Configure(descriptors...)
	if err != nil {
		panic(err)
	}
	return g
}

// Outcome is the result of running a Gate against one request.
type Outcome struct {
	// Field is the name of the first failing field, empty when all passed.
	Field string
}

// Passed reports whether every checker succeeded.
func (o Outcome) Passed() bool {
	return o.Field == ""
}

// Gate is an immutable, ordered list of compiled checkers.
type Gate struct {
	checkers     []checker
	statusCode   int
	message      func(field string) string
	maxBodyBytes int64
	logger       zerolog.Logger
	readsBody    bool
}

// Check runs the checkers in declaration order and stops at the first
// failure. Panics from custom predicates are not recovered.
func (g *Gate) Check(req Request) Outcome {
	for _, c := range g.checkers {
		if !c.run(req) {
			return Outcome{Field: c.field}
		}
	}
	return Outcome{}
}

// Fields returns the configured field names in declaration order.
func (g *Gate) Fields() []string {
	names := make([]string, len(g.checkers))
	for i, c := range g.checkers {
		names[i] = c.field
	}
	return names
}

// Message returns the rejection message for a failing field.
func (g *Gate) Message(field string) string {
	return g.message(field)
}

// StatusCode returns the status code of rejection responses.
func (g *Gate) StatusCode() int {
	return g.statusCode
}
