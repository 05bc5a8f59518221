// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-req-validator/internal/logger"
	"github.com/MKhiriev/go-req-validator/validator"
	"github.com/go-chi/chi/v5"
)

// Banner is the plain-text body of GET /.
const Banner = "Request validation server is running"

// mountExamples registers the demo routes:
//
//	POST /example-1/{id}: body email (string), body user (object), params id (number)
//	POST /example-2:      body password (string)
func (h *Handler) mountExamples(r chi.Router) error {
	r.Get("/", h.banner)

	example1, err := h.validator.Configure(
		"email",
		validator.ByNameAndType("user", validator.Type("object")),
		validator.ByNameTypeAndSource("id", validator.Type(validator.TagNumber), validator.SourceParams),
	)
	if err != nil {
		return fmt.Errorf("configuring /example-1: %w", err)
	}

	example2, err := h.validator.Configure(validator.ByName("password"))
	if err != nil {
		return fmt.Errorf("configuring /example-2: %w", err)
	}

	r.With(example1.Middleware).Post("/example-1/{id}", h.accepted)
	r.With(example2.Middleware).Post("/example-2", h.accepted)

	return nil
}

func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Banner))
}

// accepted is the terminal handler of every validated route.
func (h *Handler) accepted(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("validated request accepted")
	w.WriteHeader(http.StatusOK)
}
