// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every validation gate is configured here, so a
// bad descriptor in the demo routes or the route table fails startup.
func (h *Handler) Init() (*chi.Mux, error) {
	if h.validator == nil {
		return nil, ErrNilValidator
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	if err := h.mountExamples(router); err != nil {
		return nil, err
	}

	router.Get("/api/version/", h.getServerVersion)

	if h.table != nil {
		if err := h.table.Mount(router, h.validator, http.HandlerFunc(h.accepted)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMountingRoutes, err)
		}
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}
