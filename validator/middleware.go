// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// ErrorResponse is the JSON payload of a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Middleware returns an http middleware that rejects requests failing the
// gate and calls next exactly once otherwise. It fits chi's Use and With.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &httpRequest{r: r, query: r.URL.Query()}
		if g.readsBody {
			req.body = g.readBody(r)
		}

		out := g.Check(req)
		if !out.Passed() {
			g.log(r.Context()).Info().
				Str("field", out.Field).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", g.statusCode).
				Msg("request validation failed")
			g.reject(w, out.Field)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler wraps h with the gate.
func (g *Gate) Handler(h http.HandlerFunc) http.Handler {
	return g.Middleware(h)
}

func (g *Gate) reject(w http.ResponseWriter, field string) {
	data, err := json.Marshal(ErrorResponse{Error: g.message(field)})
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(g.statusCode)
	w.Write(data)
}

// readBody decodes the request body into a field map and puts the consumed
// bytes back so downstream handlers see an unread body.
func (g *Gate) readBody(r *http.Request) map[string]any {
	if body, ok := BodyFromContext(r.Context()); ok {
		return body
	}
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, g.maxBodyBytes))
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), r.Body))
	if err != nil {
		g.log(r.Context()).Debug().Err(err).Msg("error reading request body")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		values, err := url.ParseQuery(string(data))
		if err != nil {
			g.log(r.Context()).Debug().Err(err).Msg("error decoding form body")
			return nil
		}
		body := make(map[string]any, len(values))
		for name := range values {
			body[name], _ = valuesLookup(values, name)
		}
		return body
	}

	body := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		g.log(r.Context()).Debug().Err(err).Msg("error decoding JSON body")
		return nil
	}
	return body
}

func (g *Gate) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &g.logger
}
