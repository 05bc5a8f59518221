// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=request.go -destination=../internal/mock/request_mock.go -package=mock

// Request exposes the three sources a field can be read from.
type Request interface {
	// Lookup returns the value of name in src and whether it is present.
	// It must not panic when the source itself is missing.
	Lookup(src Source, name string) (any, bool)
}

// MapRequest is a Request backed by plain maps. Nil maps are treated as
// empty sources.
type MapRequest struct {
	Body   map[string]any
	Query  map[string]any
	Params map[string]any
}

func (m MapRequest) Lookup(src Source, name string) (any, bool) {
	var container map[string]any
	switch src {
	case SourceBody:
		container = m.Body
	case SourceQuery:
		container = m.Query
	case SourceParams:
		container = m.Params
	}
	v, ok := container[name]
	return v, ok
}

type bodyCtxKey struct{}

// WithBody stores an already decoded request body in ctx. The HTTP
// middleware prefers it over reading the request body itself.
func WithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyCtxKey{}, body)
}

// BodyFromContext returns the body stored by [WithBody].
func BodyFromContext(ctx context.Context) (map[string]any, bool) {
	body, ok := ctx.Value(bodyCtxKey{}).(map[string]any)
	return body, ok
}

// httpRequest adapts *http.Request to Request. The body is decoded once by
// the middleware before checkers run.
type httpRequest struct {
	r     *http.Request
	body  map[string]any
	query url.Values
}

func (h *httpRequest) Lookup(src Source, name string) (any, bool) {
	switch src {
	case SourceBody:
		v, ok := h.body[name]
		return v, ok
	case SourceQuery:
		return valuesLookup(h.query, name)
	case SourceParams:
		return h.param(name)
	default:
		return nil, false
	}
}

func (h *httpRequest) param(name string) (any, bool) {
	if rctx := chi.RouteContext(h.r.Context()); rctx != nil {
		keys := rctx.URLParams.Keys
		// the innermost router's value wins, as in chi.URLParam
		for i := len(keys) - 1; i >= 0; i-- {
			if keys[i] == name {
				return rctx.URLParams.Values[i], true
			}
		}
	}
	if v := h.r.PathValue(name); v != "" {
		return v, true
	}
	return nil, false
}

// valuesLookup surfaces a single value as a string and a repeated key as
// []string.
func valuesLookup(values url.Values, name string) (any, bool) {
	vals, ok := values[name]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	if len(vals) == 1 {
		return vals[0], true
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out, true
}
